package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyItemName       = errors.New("item name is required")
	ErrEmptyLocation       = errors.New("location is required")
	ErrEmptyDocumentName   = errors.New("document name is required")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrEmptyLogin          = errors.New("login is required")
	ErrWeakPassword        = errors.New("password must be at least 8 characters")
)
