package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/internal/validators"
	"github.com/MKhiriev/go-stash-find/models"
)

// maxItemImageSize caps belonging photos at 5 MB.
const maxItemImageSize = 5 << 20

type itemService struct {
	itemRepository store.ItemRepository
	imageStorage   store.ImageFileStorage
	validator      validators.Validator
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewItemService constructs an ItemService over the given repositories.
func NewItemService(itemRepository store.ItemRepository, imageStorage store.ImageFileStorage, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		imageStorage:   imageStorage,
		validator:      validators.NewRecordValidator(),
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// AddItem validates and persists a new belonging. When image bytes are
// supplied they are checked against the size and content-type limits, stored
// on disk under a generated name, and the item records that name as its
// ImageRef.
func (s *itemService) AddItem(ctx context.Context, item models.Item, image []byte, imageType string) (models.Item, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, item); err != nil {
		log.Err(err).Int64("user_id", item.UserID).Msg("invalid item data provided")
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if len(image) > 0 {
		name, err := s.saveImage(ctx, image, imageType, maxItemImageSize)
		if err != nil {
			return models.Item{}, err
		}
		item.ImageRef = name
	}

	created, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		// the row never landed, so the stored image is orphaned
		if item.ImageRef != "" {
			_ = s.imageStorage.DeleteImage(ctx, item.ImageRef)
		}

		log.Err(err).Int64("user_id", item.UserID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return created, nil
}

func (s *itemService) GetItem(ctx context.Context, id, userID int64) (models.Item, error) {
	return s.itemRepository.GetItem(ctx, id, userID)
}

func (s *itemService) GetAllItems(ctx context.Context, userID int64) ([]models.Item, error) {
	return s.itemRepository.GetAllItems(ctx, userID)
}

// UpdateItem applies a partial update. Field values are validated only when
// present: an update that carries a name or location must not blank it out.
func (s *itemService) UpdateItem(ctx context.Context, update models.ItemUpdate) error {
	log := logger.FromContext(ctx)

	if !update.HasChanges() {
		return fmt.Errorf("%w: update has no fields to set", ErrInvalidDataProvided)
	}

	probe := models.Item{UserID: update.UserID}
	fields := []string{validators.FieldUserID}
	if update.ItemName != nil {
		probe.ItemName = *update.ItemName
		fields = append(fields, validators.FieldItemName)
	}
	if update.Location != nil {
		probe.Location = *update.Location
		fields = append(fields, validators.FieldLocation)
	}

	if err := s.validator.Validate(ctx, probe, fields...); err != nil {
		log.Err(err).Int64("user_id", update.UserID).Int64("id", update.ID).Msg("invalid item update provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.itemRepository.UpdateItem(ctx, update)
}

// DeleteItem removes the belonging and, best effort, its stored image.
func (s *itemService) DeleteItem(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.GetItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, id, userID); err != nil {
		return err
	}

	if item.ImageRef != "" {
		if err := s.imageStorage.DeleteImage(ctx, item.ImageRef); err != nil {
			log.Warn().
				Err(err).
				Int64("id", id).
				Str("image_ref", item.ImageRef).
				Msg("item deleted but image cleanup failed")
		}
	}

	return nil
}

func (s *itemService) LoadImage(ctx context.Context, name string) ([]byte, error) {
	return s.imageStorage.LoadImage(ctx, name)
}

// saveImage enforces the upload limits and stores the bytes under a fresh
// UUID name. Shared by the item and document services via their embedded
// image storage.
func (s *itemService) saveImage(ctx context.Context, image []byte, imageType string, maxSize int) (string, error) {
	name, err := checkImage(image, imageType, maxSize, s.uuidGenerator)
	if err != nil {
		return "", err
	}

	if err := s.imageStorage.SaveImage(ctx, name, image); err != nil {
		return "", fmt.Errorf("saving image failed: %w", err)
	}

	return name, nil
}

// checkImage validates upload limits and produces the opaque stored name.
func checkImage(image []byte, imageType string, maxSize int, gen *utils.UUIDGenerator) (string, error) {
	if len(image) > maxSize {
		return "", fmt.Errorf("%w: %d bytes over the %d byte limit", ErrImageTooLarge, len(image)-maxSize, maxSize)
	}
	if !strings.HasPrefix(imageType, "image/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImageType, imageType)
	}

	return gen.Generate(), nil
}
