package validation

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name:    "Empty URL",
			url:     "",
			wantErr: true,
		},
		{
			name:    "JavaScript URL",
			url:     "javascript:alert(1)",
			wantErr: true,
		},
		{
			name:    "Invalid URL format",
			url:     "not-a-url",
			wantErr: true,
		},
		{
			name:    "Non-HTTP scheme",
			url:     "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "Non-YouTube URL",
			url:     "https://example.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "Lookalike domain",
			url:     "https://notyoutube.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "Valid YouTube URL",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid YouTube short URL",
			url:     "https://youtu.be/dQw4w9WgXcQ",
			wantErr: false,
		},
		{
			name:    "Valid bare video ID",
			url:     "dQw4w9WgXcQ",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExtractVideoID(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "Watch URL",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Watch URL with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Short URL",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Short URL with query",
			url:  "https://youtu.be/dQw4w9WgXcQ?si=abcdef",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Embed URL",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Shorts URL",
			url:  "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Mobile URL",
			url:  "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Bare video ID",
			url:  "dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name:    "YouTube URL without video ID",
			url:     "https://www.youtube.com/feed/subscriptions",
			wantErr: true,
		},
		{
			name:    "Watch URL with short ID",
			url:     "https://www.youtube.com/watch?v=tooshort",
			wantErr: true,
		},
		{
			name:    "Empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validator.ExtractVideoID(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVideoID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVideoIDCollapsesSurfaceForms(t *testing.T) {
	validator := NewValidator()

	urls := []string{
		"https://www.youtube.com/watch?v=abc12345678",
		"https://youtu.be/abc12345678",
		"https://www.youtube.com/embed/abc12345678",
		"abc12345678",
	}

	for _, u := range urls {
		id, err := validator.ExtractVideoID(u)
		if err != nil {
			t.Fatalf("ExtractVideoID(%q) error = %v", u, err)
		}
		if id != "abc12345678" {
			t.Errorf("ExtractVideoID(%q) = %q, want abc12345678", u, id)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		method  string
		ct      string
		opts    RequestValidationOpts
		wantErr bool
	}{
		{
			name:   "allowed method",
			method: "POST",
			opts:   RequestValidationOpts{AllowedMethods: []string{"POST"}},
		},
		{
			name:    "disallowed method",
			method:  "DELETE",
			opts:    RequestValidationOpts{AllowedMethods: []string{"GET", "POST"}},
			wantErr: true,
		},
		{
			name:   "json required and present",
			method: "POST",
			ct:     "application/json; charset=utf-8",
			opts:   RequestValidationOpts{RequireJSON: true},
		},
		{
			name:    "json required and missing",
			method:  "POST",
			ct:      "text/plain",
			opts:    RequestValidationOpts{RequireJSON: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader("{}"))
			if tt.ct != "" {
				req.Header.Set("Content-Type", tt.ct)
			}
			err := validator.ValidateRequest(req, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
