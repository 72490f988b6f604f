package board

import (
	"strings"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

const (
	maxNameLen        = 100
	maxDescriptionLen = 1000
)

// CreateBoardInput holds the parameters for creating a board.
type CreateBoardInput struct {
	Name        string
	Description *string
	IsPrivate   bool
}

// Validate checks all fields and collects all errors.
func (i CreateBoardInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
