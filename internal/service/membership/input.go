package membership

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/pinboard-backend/internal/domain"
)

// AddPinInput holds the parameters for adding a pin to a board.
type AddPinInput struct {
	BoardID uuid.UUID
	PinID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AddPinInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.PinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pin_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemovePinInput holds the parameters for removing a pin from a board.
type RemovePinInput struct {
	BoardID uuid.UUID
	PinID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemovePinInput) Validate() error {
	var errs []domain.FieldError
	if i.BoardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "board_id", Message: "required"})
	}
	if i.PinID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pin_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteBoardInput holds the parameters for deleting a board.
type DeleteBoardInput struct {
	BoardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteBoardInput) Validate() error {
	if i.BoardID == uuid.Nil {
		return domain.NewValidationError("board_id", "required")
	}
	return nil
}
