package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/questionboard/questionboard/internal/common"
	"github.com/questionboard/questionboard/internal/server/auth"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	UserID       int64  `json:"userId"`
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	UserID       int64  `json:"userId,omitempty"`
}

type userResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "invalid request body"})
		return
	}

	res, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, authResponse{Message: "invalid username or password"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken:  common.BearerPrefix + res.AccessToken,
		RefreshToken: res.RefreshToken,
		UserID:       res.UserID,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "invalid request body"})
		return
	}

	res, err := s.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			writeJSON(w, http.StatusBadRequest, authResponse{Message: "username already taken"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Message:      "user successfully registered",
		AccessToken:  common.BearerPrefix + res.AccessToken,
		RefreshToken: res.RefreshToken,
		UserID:       res.UserID,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "invalid request body"})
		return
	}

	res, err := s.auth.Refresh(r.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrInvalidRefreshToken) {
			writeJSON(w, http.StatusUnauthorized, authResponse{Message: "refresh token is not valid"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Message:     "token successfully refreshed",
		AccessToken: common.BearerPrefix + res.AccessToken,
		UserID:      res.UserID,
	})
}

// handleMe resolves the request's principal to its user row. It is the one
// route in this service that requires authentication.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, authResponse{Message: "authentication required"})
		return
	}

	user, err := s.auth.UserByID(r.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusUnauthorized, authResponse{Message: "authentication required"})
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{UserID: user.ID, Username: user.Username})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
	writeJSON(w, http.StatusInternalServerError, authResponse{Message: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
