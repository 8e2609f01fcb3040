// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the server adapter gets resty's full
// request API plus room for our own helpers later.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and state. The adapter configures base URL, timeout and the bearer token
// on top of it.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
