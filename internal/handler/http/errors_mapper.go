package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stash-find/internal/app"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/service"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrImageTooLarge:        http.StatusBadRequest,
	service.ErrUnsupportedImageType: http.StatusBadRequest,

	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	// a missing user maps to 401 so login failures never reveal whether
	// the login exists
	store.ErrNoUserWasFound: http.StatusUnauthorized,

	store.ErrLoginAlreadyExists: http.StatusConflict,

	store.ErrItemNotFound:     http.StatusNotFound,
	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrImageNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:  app.MsgInvalidDataProvided,
	service.ErrImageTooLarge:        app.MsgImageTooLarge,
	service.ErrUnsupportedImageType: app.MsgUnsupportedImageType,

	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	store.ErrNoUserWasFound:            app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,

	store.ErrLoginAlreadyExists: app.MsgLoginAlreadyExists,

	store.ErrItemNotFound:     app.MsgRecordNotFound,
	store.ErrDocumentNotFound: app.MsgRecordNotFound,
	store.ErrImageNotFound:    app.MsgRecordNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// respondError maps err onto the API's uniform JSON error envelope.
// Server-side failures are logged at error level; client mistakes at debug.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
}

// respondBadJSON is the shared answer for request bodies that do not decode.
func (h *Handler) respondBadJSON(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON body")
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidDataProvided}, http.StatusBadRequest)
}

// userIDFromContext pulls the authenticated user's ID placed into the
// context by the auth middleware. A missing ID means the route was wired
// without the middleware; the request cannot be served.
func (h *Handler) userIDFromContext(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNoUserIDProvided}, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
