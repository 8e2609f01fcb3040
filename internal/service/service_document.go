package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/internal/validators"
	"github.com/MKhiriev/go-stash-find/models"
)

// maxDocumentImageSize caps document scans at 10 MB.
const maxDocumentImageSize = 10 << 20

type documentService struct {
	documentRepository store.DocumentRepository
	imageStorage       store.ImageFileStorage
	validator          validators.Validator
	uuidGenerator      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewDocumentService constructs a DocumentService over the given repositories.
func NewDocumentService(documentRepository store.DocumentRepository, imageStorage store.ImageFileStorage, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		imageStorage:       imageStorage,
		validator:          validators.NewRecordValidator(),
		uuidGenerator:      utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// AddDocument validates and persists a new document, storing the optional
// scan image the same way AddItem does for belongings but with the larger
// document size limit.
func (s *documentService) AddDocument(ctx context.Context, doc models.Document, image []byte, imageType string) (models.Document, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, doc); err != nil {
		log.Err(err).Int64("user_id", doc.UserID).Msg("invalid document data provided")
		return models.Document{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if len(image) > 0 {
		name, err := checkImage(image, imageType, maxDocumentImageSize, s.uuidGenerator)
		if err != nil {
			return models.Document{}, err
		}
		if err := s.imageStorage.SaveImage(ctx, name, image); err != nil {
			return models.Document{}, fmt.Errorf("saving image failed: %w", err)
		}
		doc.ImageRef = name
	}

	created, err := s.documentRepository.CreateDocument(ctx, doc)
	if err != nil {
		if doc.ImageRef != "" {
			_ = s.imageStorage.DeleteImage(ctx, doc.ImageRef)
		}

		log.Err(err).Int64("user_id", doc.UserID).Msg("document creation ended with error")
		return models.Document{}, fmt.Errorf("document creation ended with error: %w", err)
	}

	return created, nil
}

func (s *documentService) GetDocument(ctx context.Context, id, userID int64) (models.Document, error) {
	return s.documentRepository.GetDocument(ctx, id, userID)
}

func (s *documentService) GetAllDocuments(ctx context.Context, userID int64) ([]models.Document, error) {
	return s.documentRepository.GetAllDocuments(ctx, userID)
}

// UpdateDocument applies a partial update, validating only the fields the
// update carries.
func (s *documentService) UpdateDocument(ctx context.Context, update models.DocumentUpdate) error {
	log := logger.FromContext(ctx)

	if !update.HasChanges() {
		return fmt.Errorf("%w: update has no fields to set", ErrInvalidDataProvided)
	}

	probe := models.Document{UserID: update.UserID}
	fields := []string{validators.FieldUserID}
	if update.DocumentName != nil {
		probe.DocumentName = *update.DocumentName
		fields = append(fields, validators.FieldDocumentName)
	}
	if update.DocumentType != nil {
		probe.DocumentType = *update.DocumentType
		fields = append(fields, validators.FieldDocumentType)
	}

	if err := s.validator.Validate(ctx, probe, fields...); err != nil {
		log.Err(err).Int64("user_id", update.UserID).Int64("id", update.ID).Msg("invalid document update provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.documentRepository.UpdateDocument(ctx, update)
}

// DeleteDocument removes the document and, best effort, its stored image.
func (s *documentService) DeleteDocument(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	doc, err := s.documentRepository.GetDocument(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.documentRepository.DeleteDocument(ctx, id, userID); err != nil {
		return err
	}

	if doc.ImageRef != "" {
		if err := s.imageStorage.DeleteImage(ctx, doc.ImageRef); err != nil {
			log.Warn().
				Err(err).
				Int64("id", id).
				Str("image_ref", doc.ImageRef).
				Msg("document deleted but image cleanup failed")
		}
	}

	return nil
}

func (s *documentService) LoadImage(ctx context.Context, name string) ([]byte, error) {
	return s.imageStorage.LoadImage(ctx, name)
}
