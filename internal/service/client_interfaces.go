package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stash-find/internal/search"
	"github.com/MKhiriev/go-stash-find/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration and
// authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account on the server. On success the adapter
	// holds the bearer token for all subsequent requests.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user against the server. On success the adapter
	// holds the bearer token and the returned user carries the server-side
	// UserID.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// ClientRecordService manages the user's belongings and documents from the
// client. Reads are served from the local snapshot cache; mutations go to the
// server first and then refresh the affected snapshot so a following read
// sees the change.
type ClientRecordService interface {
	// RefreshSnapshots pulls fresh item and document snapshots from the
	// server and replaces the local cache contents.
	RefreshSnapshots(ctx context.Context) error

	// LastRefreshed reports when the local cache was last filled. Zero time
	// means never.
	LastRefreshed(ctx context.Context) (time.Time, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	AddItem(ctx context.Context, item models.Item) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	ListDocuments(ctx context.Context) ([]models.Document, error)
	AddDocument(ctx context.Context, doc models.Document) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// ClientFindService resolves "where is my X" queries and produces live
// suggestions over the local snapshot cache. Suggestion cycles are sequenced:
// every keystroke calls Begin*, and a Suggest* call whose ticket has been
// superseded returns nil so a stale response can never overwrite a newer
// list.
type ClientFindService interface {
	FindItems(ctx context.Context, query string) (search.Outcome, error)
	FindDocuments(ctx context.Context, query string) (search.Outcome, error)

	BeginItemSuggestion(input string) search.Ticket
	// SuggestItems returns nil when the ticket was superseded, an empty
	// slice when nothing should be shown, and up to the configured cap of
	// records otherwise.
	SuggestItems(ctx context.Context, t search.Ticket) []models.Item
	// ItemSuggestionCurrent reports whether the ticket still belongs to the
	// latest BeginItemSuggestion call. The UI re-checks right before
	// displaying a list: a keystroke can land between the lookup and the
	// moment its result is applied, and last input wins.
	ItemSuggestionCurrent(t search.Ticket) bool

	BeginDocumentSuggestion(input string) search.Ticket
	SuggestDocuments(ctx context.Context, t search.Ticket) []models.Document
	DocumentSuggestionCurrent(t search.Ticket) bool

	// SuggestionQuiet returns the debounce window the UI event loop should
	// wait after a keystroke before calling Suggest*.
	SuggestionQuiet() time.Duration
}
