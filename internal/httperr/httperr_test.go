package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConstructorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", ValidationFailed("bad payload"), http.StatusBadRequest},
		{"unauthenticated", Unauthenticated("no token"), http.StatusUnauthorized},
		{"forbidden", Forbidden("not yours"), http.StatusForbidden},
		{"not found", NotFound("no such record"), http.StatusNotFound},
		{"internal", Internal("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.want {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.want)
			}
			if tt.err.Error() != tt.err.Message {
				t.Errorf("Error() = %q, want the message", tt.err.Error())
			}
		})
	}
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, NotFound("Goal not found"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Goal not found" {
		t.Errorf("message = %q, want %q", body["message"], "Goal not found")
	}
}
