package pin

import (
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// CreatePinInput holds the parameters for creating a pin.
type CreatePinInput struct {
	Title       string
	Description *string
	ImageURL    string
	Link        *string
}

// Validate checks all fields and collects all errors.
func (i CreatePinInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case len(title) > maxTitleLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if i.ImageURL == "" {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "required"})
	} else if !validURL(i.ImageURL) {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "must be a valid http(s) URL"})
	}

	if i.Link != nil && !validURL(*i.Link) {
		errs = append(errs, domain.FieldError{Field: "link", Message: "must be a valid http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPinsInput holds the parameters for listing pins.
type ListPinsInput struct {
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListPinsInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
