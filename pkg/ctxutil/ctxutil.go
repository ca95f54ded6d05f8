// Package ctxutil carries per-request identity through context.Context.
package ctxutil

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	adminKey     ctxKey = "admin"
)

// ErrInvalidUserID is returned by ParseUserID for blank, malformed or nil ids.
var ErrInvalidUserID = errors.New("invalid user id")

// ParseUserID parses a user id as sent in the X-User-Id header.
func ParseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrInvalidUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidUserID
	}
	return id, nil
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the caller's id. ok is false when the id is absent or nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithAdmin marks the caller as an administrator.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

func IsAdminCtx(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" when no request id is set.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogAttrs returns the request_id and user_id attributes present in ctx.
func LogAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr
	if rid := RequestIDFromCtx(ctx); rid != "" {
		attrs = append(attrs, slog.String("request_id", rid))
	}
	if uid, ok := UserIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("user_id", uid.String()))
	}
	return attrs
}
