package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-shop-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every *ValidationErrors value.
	ErrValidation = errors.New("validation errors")
)

// Messages reported for violated fields.
const (
	MsgEmailInvalid      = "Valid email is required"
	MsgEmailRequired     = "Email is required"
	MsgPasswordLength    = "Password must be at least 6 characters"
	MsgPasswordTooLong   = "Password must be at most 72 characters"
	MsgPasswordRequired  = "Password is required"
	MsgNameLength        = "Name must be at least 2 characters"
	MsgPriceInvalid      = "Valid price (>= 0) is required"
	MsgPricePrecision    = "Price must have at most 2 decimal places"
	MsgStockInvalid      = "Stock must be a non-negative number"
	MsgDescriptionString = "Description must be a string"
	MsgNoFieldsToUpdate  = "At least one field must be provided for update"
	MsgNotANumber        = "must be a number"
)

// ValidationErrors collects every violated field of one validated input.
// It matches [ErrValidation] with errors.Is.
type ValidationErrors struct {
	Fields []models.FieldError
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationErrors) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

// errOrNil returns e when at least one field was reported.
func (e *ValidationErrors) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
