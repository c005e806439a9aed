package validation

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"vidbrief/errors"
)

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateURL performs URL validation
func (v *Validator) ValidateURL(urlStr string) error {
	const op = "Validator.ValidateURL"

	if urlStr == "" {
		return errors.InvalidInput(op, nil, "URL is required")
	}

	// A bare 11-character video ID is accepted as-is.
	if videoIDPattern.MatchString(urlStr) {
		return nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return errors.InvalidInput(op, err, "Invalid URL format")
	}

	// Protocol validation
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.InvalidInput(op, nil, "URL must use HTTP or HTTPS")
	}

	// Domain validation
	host := strings.TrimPrefix(parsedURL.Hostname(), "www.")
	if host != "youtube.com" && host != "m.youtube.com" && host != "youtu.be" {
		return errors.InvalidInput(op, nil, "Only YouTube URLs are supported")
	}

	return nil
}

// ExtractVideoID resolves the canonical YouTube video ID from a submitted URL
// or a bare ID. Duplicate detection is keyed on this ID, so different URL
// surface forms of the same video collapse to the same value.
func (v *Validator) ExtractVideoID(urlStr string) (string, error) {
	const op = "Validator.ExtractVideoID"

	if err := v.ValidateURL(urlStr); err != nil {
		return "", err
	}

	if videoIDPattern.MatchString(urlStr) {
		return urlStr, nil
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return "", errors.InvalidInput(op, err, "Invalid URL format")
	}

	var id string
	host := strings.TrimPrefix(parsedURL.Hostname(), "www.")
	switch host {
	case "youtu.be":
		id = strings.TrimPrefix(parsedURL.Path, "/")
	default:
		switch {
		case parsedURL.Path == "/watch":
			id = parsedURL.Query().Get("v")
		case strings.HasPrefix(parsedURL.Path, "/embed/"):
			id = strings.TrimPrefix(parsedURL.Path, "/embed/")
		case strings.HasPrefix(parsedURL.Path, "/shorts/"):
			id = strings.TrimPrefix(parsedURL.Path, "/shorts/")
		case strings.HasPrefix(parsedURL.Path, "/v/"):
			id = strings.TrimPrefix(parsedURL.Path, "/v/")
		}
	}

	if i := strings.IndexAny(id, "/?&"); i >= 0 {
		id = id[:i]
	}

	if !videoIDPattern.MatchString(id) {
		return "", errors.InvalidInput(op, nil, "No video ID found in URL")
	}

	return id, nil
}

// RequestValidationOpts holds options for request validation
type RequestValidationOpts struct {
	MaxContentLength int64
	AllowedMethods   []string
	RequireJSON      bool
}

// ValidateRequest validates HTTP requests
func (v *Validator) ValidateRequest(r *http.Request, opts RequestValidationOpts) error {
	const op = "Validator.ValidateRequest"

	// Method validation
	if len(opts.AllowedMethods) > 0 {
		methodAllowed := false
		for _, method := range opts.AllowedMethods {
			if r.Method == method {
				methodAllowed = true
				break
			}
		}
		if !methodAllowed {
			return errors.InvalidInput(op, nil, fmt.Sprintf("Method %s not allowed", r.Method))
		}
	}

	// Content type validation
	if opts.RequireJSON {
		if contentType := r.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
			return errors.InvalidInput(op, nil, "Content-Type must be application/json")
		}
	}

	// Content length validation
	if opts.MaxContentLength > 0 && r.ContentLength > opts.MaxContentLength {
		return errors.InvalidInput(op, nil, "Request body too large")
	}

	return nil
}
