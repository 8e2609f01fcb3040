// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds the small shared helpers: context keys, JWT issue and
// parse, bcrypt password hashing, JSON response writing, the resty client
// wrapper and uuid generation.
package utils

import (
	"context"
)

// contextKey is unexported so no other package can collide with our keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's ID through a request
// context. The auth middleware writes it, handlers read it back with
// [GetUserIDFromContext].
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reads the authenticated user's ID from ctx. ok is
// false when the value is missing or not an int64, which handlers treat as
// an unauthenticated request.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
