package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"title":"rice cooker"}`},
		{name: "unknown field rejected", body: `{"title":"x","titel":"y"}`, wantErr: true},
		{name: "malformed json", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeBody(r, &p)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteError(rec, "order not found", http.StatusNotFound); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected json content type, got %q", ct)
	}

	var res ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Error != "order not found" {
		t.Errorf("expected error message in envelope, got %q", res.Error)
	}
}

func TestWriteValidationError(t *testing.T) {
	type form struct {
		Title  string `validate:"required"`
		Budget int    `validate:"gt=0"`
	}

	v := validator.New()
	err := v.Struct(form{})

	rec := httptest.NewRecorder()
	if werr := WriteValidationError(rec, err); werr != nil {
		t.Fatalf("unexpected error: %v", werr)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}

	var res ValidationErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.Error != "invalid request" {
		t.Errorf("expected generic error message, got %q", res.Error)
	}
	if res.Fields["Title"] != "required" {
		t.Errorf("expected Title tagged required, got %v", res.Fields)
	}
	if res.Fields["Budget"] != "gt" {
		t.Errorf("expected Budget tagged gt, got %v", res.Fields)
	}
}
