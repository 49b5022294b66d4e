// File: cmd/api/helpers_test.go
// Description: Tests for the JSON read/write helpers

package main

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReadJSON(t *testing.T) {
	app := newOfflineApp(t)

	type input struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "Valid body",
			body:    `{"email": "a@b.com"}`,
			wantErr: "",
		},
		{
			name:    "Empty body",
			body:    ``,
			wantErr: "must not be empty",
		},
		{
			name:    "Badly-formed JSON",
			body:    `{"email": }`,
			wantErr: "badly-formed JSON",
		},
		{
			name:    "Unknown field",
			body:    `{"email": "a@b.com", "surprise": true}`,
			wantErr: "unknown key",
		},
		{
			name:    "Wrong type",
			body:    `{"email": 7}`,
			wantErr: "incorrect JSON type",
		},
		{
			name:    "Multiple JSON values",
			body:    `{"email": "a@b.com"}{"email": "c@d.com"}`,
			wantErr: "single JSON value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			var dest input
			err := app.readJSON(rr, req, &dest)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	app := newOfflineApp(t)

	rr := httptest.NewRecorder()
	err := app.writeJSON(rr, 201, envelope{"id": 7}, nil)
	if err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	checkResponseCode(t, 201, rr.Code)
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json content type, got %q", ct)
	}
	if !strings.Contains(rr.Body.String(), `"id": 7`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}
