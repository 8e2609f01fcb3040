// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/adapter"
	"github.com/MKhiriev/go-stash-find/internal/app"
	"github.com/MKhiriev/go-stash-find/internal/store"
	"github.com/MKhiriev/go-stash-find/models"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Unrecognised errors pass through unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgImageTooLarge:
			return ErrImageTooLarge
		case app.MsgUnsupportedImageType:
			return ErrUnsupportedImageType
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidLoginPassword {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecordNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrServerUnavailable):
		return ErrServerUnavailable
	}

	return err
}

// extractBody pulls the server's error message out of an adapter error of
// the form "bad request: <body>". The body is the JSON error envelope the
// API writes; plain text bodies come back as-is.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body models.ErrorResponse
	if jsonErr := json.Unmarshal([]byte(msg), &body); jsonErr == nil && body.Error != "" {
		return body.Error
	}
	return msg
}
