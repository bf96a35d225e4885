// Package context carries per-request values between the HTTP layer and the usecases:
// the request ID, a logger scoped to it, and the authenticated user.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed back on every request
const HeaderXRequestID = "X-Request-Id"

type key string

const (
	requestIDKey key = "request_id"
	loggerKey    key = "logger"
	userIDKey    key = "user_id"
)

// Echo-scoped values, visible to middleware and handlers

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(requestIDKey), requestID)
}

// GetRequestID falls back to a fresh UUID so responses always carry an ID
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(requestIDKey)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetUser(c echo.Context, userID string) {
	c.Set(string(userIDKey), userID)
}

// GetUserID reports false when the route is unauthenticated
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(string(userIDKey)).(string)

	return userID, ok && userID != ""
}

// context.Context values, visible to usecases

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
