package middleware

import (
	"context"

	"examly/internal/models"
)

type ctxKey string

const (
	ContextRequestID ctxKey = "request_id"
	ContextUserID    ctxKey = "user_id"
	ContextClaims    ctxKey = "session_claims"
)

func UserIDFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(ContextUserID).(int)
	return v, ok
}

func SessionFromContext(ctx context.Context) (*models.SessionClaims, bool) {
	v, ok := ctx.Value(ContextClaims).(*models.SessionClaims)
	return v, ok
}
