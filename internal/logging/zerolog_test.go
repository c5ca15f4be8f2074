package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestZerologLogger_InfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologWriter(&buf)

	log.Info(context.Background(), "hello", "addr", ":8080")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "hello" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
	if entry["addr"] != ":8080" {
		t.Fatalf("unexpected addr field: %v", entry["addr"])
	}
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologWriter(&buf).With("module", "httpapi")

	log.Warn(context.Background(), "slow request")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["module"] != "httpapi" {
		t.Fatalf("child logger lost bound field: %v", entry["module"])
	}
	if entry["level"] != "warn" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
}
