package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-stash-find/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a record or request.
	FieldUserID = "user_id"

	// FieldItemName targets the display name of a belonging.
	FieldItemName = "item_name"

	// FieldLocation targets the stored location of a belonging.
	FieldLocation = "location"

	// FieldDocumentName targets the display name of a document.
	FieldDocumentName = "document_name"

	// FieldDocumentType targets the document category value
	// (e.g. "receipt", "warranty").
	FieldDocumentType = "document_type"

	// FieldLogin targets the login of a user account.
	FieldLogin = "login"

	// FieldPassword targets the plain-text password of a registration or
	// login request.
	FieldPassword = "password"
)

// minPasswordLength is the minimum accepted password length in runes.
const minPasswordLength = 8

// RecordValidator implements the Validator interface for the record domain
// models: Item, Document, and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type RecordValidator struct {
}

// NewRecordValidator constructs a new RecordValidator
// and returns it as the Validator interface.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Item / *models.Item
//   - models.Document / *models.Document
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateItem validates a single Item model.
//
// Default validated fields (when none specified): UserID, ItemName, Location.
// Category and image reference are optional and never validated here.
//
// Returns the first encountered validation error or nil.
func (v *RecordValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldItemName, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if item.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldItemName:
			if strings.TrimSpace(item.ItemName) == "" {
				return ErrEmptyItemName
			}
		case FieldLocation:
			if strings.TrimSpace(item.Location) == "" {
				return ErrEmptyLocation
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDocument validates a single Document model.
//
// Default validated fields: UserID, DocumentName, DocumentType.
// The document type must be one of the values listed in
// [models.DocumentTypes].
func (v *RecordValidator) validateDocument(ctx context.Context, doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDocumentName, FieldDocumentType}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if doc.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldDocumentName:
			if strings.TrimSpace(doc.DocumentName) == "" {
				return ErrEmptyDocumentName
			}
		case FieldDocumentType:
			if !models.ValidDocumentType(doc.DocumentType) {
				return ErrInvalidDocumentType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates a User model carrying registration or login
// credentials.
//
// Default validated fields: Login, Password.
func (v *RecordValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < minPasswordLength {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
