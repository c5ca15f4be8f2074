// Package common contains shared constants and sentinel errors used across
// questionboard components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the authorization header and
// prepended to access tokens in authentication responses.
const BearerPrefix = "Bearer "
