// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-stash-find/internal/config"
	"github.com/MKhiriev/go-stash-find/internal/logger"
	"github.com/MKhiriev/go-stash-find/internal/utils"
	"github.com/MKhiriev/go-stash-find/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken, and the
// server-assigned UserID is read from the token's subject claim.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	h.SetToken(token)

	if registered.UserID == 0 {
		registered.UserID, _ = utils.ParseUserIDFromJWT(token)
	}
	registered.Password = ""

	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the
// server-side user record with the password hash stripped.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	h.SetToken(token)

	if foundUser.UserID == 0 {
		foundUser.UserID, _ = utils.ParseUserIDFromJWT(token)
	}
	foundUser.Password = ""
	foundUser.PasswordHash = ""

	return foundUser, nil
}

// ListItems implements [ServerAdapter]. It GETs /api/items and decodes the
// response into a slice of [models.Item], newest first. Requires a valid
// bearer token.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list items response: %w", err)
	}

	return items, nil
}

// CreateItem implements [ServerAdapter]. It POSTs the item to /api/items and
// returns the created record with server-assigned fields populated. Requires
// a valid bearer token.
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post("/api/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /api/items/{id}.
// Returns [ErrNotFound] (wrapped) on HTTP 404. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/items/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListDocuments implements [ServerAdapter]. It GETs /api/documents and decodes
// the response into a slice of [models.Document], newest first. Requires a
// valid bearer token.
func (h *httpServerAdapter) ListDocuments(ctx context.Context) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var documents []models.Document
	if err = json.Unmarshal(resp.Body(), &documents); err != nil {
		return nil, fmt.Errorf("decode list documents response: %w", err)
	}

	return documents, nil
}

// CreateDocument implements [ServerAdapter]. It POSTs the document to
// /api/documents. Requires a valid bearer token.
func (h *httpServerAdapter) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	var created models.Document

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		SetResult(&created).
		Post("/api/documents")
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return created, nil
}

// DeleteDocument implements [ServerAdapter]. It sends DELETE
// /api/documents/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteDocument(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/documents/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
