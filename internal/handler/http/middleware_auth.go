package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/app"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
)

// auth enforces JWT-based authentication. It extracts the bearer token from
// the "Authorization" header, validates it via the auth service and stores
// the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler. Requests with
// a missing, malformed, expired or otherwise invalid token are rejected
// with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
			return
		}

		// downstream handlers read the ID instead of re-parsing the token
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
