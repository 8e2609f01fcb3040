package service

import (
	"context"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
)

// searchService runs the shared search core over the server-side postgres
// repositories. Resolution is stateless; suggestion sequencing is a
// per-session concern, so every HTTP suggest request gets its own suggester
// and an immediately-consumed ticket.
type searchService struct {
	itemResolver     *search.Resolver
	documentResolver *search.Resolver

	itemSource     search.RecordSource
	documentSource search.RecordSource

	searchConfig config.Search
	logger       *logger.Logger
}

// NewSearchService constructs a SearchService over the item and document
// repositories.
func NewSearchService(items store.ItemRepository, documents store.DocumentRepository, cfg config.Search, logger *logger.Logger) SearchService {
	itemSource := itemRecordSource{repository: items}
	documentSource := documentRecordSource{repository: documents}

	return &searchService{
		itemResolver:     search.NewResolver(itemSource, logger),
		documentResolver: search.NewResolver(documentSource, logger),
		itemSource:       itemSource,
		documentSource:   documentSource,
		searchConfig:     cfg,
		logger:           logger,
	}
}

func (s *searchService) ResolveItems(ctx context.Context, userID int64, query string) (search.Outcome, error) {
	return s.itemResolver.Resolve(ctx, userID, query)
}

func (s *searchService) ResolveDocuments(ctx context.Context, userID int64, query string) (search.Outcome, error) {
	return s.documentResolver.Resolve(ctx, userID, query)
}

func (s *searchService) SuggestItems(ctx context.Context, userID int64, input string) []models.Item {
	return recordsToItems(s.suggest(ctx, s.itemSource, userID, input))
}

func (s *searchService) SuggestDocuments(ctx context.Context, userID int64, input string) []models.Document {
	return recordsToDocuments(s.suggest(ctx, s.documentSource, userID, input))
}

func (s *searchService) suggest(ctx context.Context, source search.RecordSource, userID int64, input string) []search.Record {
	suggester := search.NewSuggester(source, s.searchConfig, s.logger)
	return suggester.Lookup(ctx, userID, suggester.Begin(input))
}
