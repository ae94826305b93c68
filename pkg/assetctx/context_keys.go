package assetctx

import (
	"context"
)

type ctxKey string

const (
	FolderKey    ctxKey = "folder"
	OperationKey ctxKey = "operation"
)

// WithFolder tags ctx with the logical folder an operation works in.
func WithFolder(ctx context.Context, folder string) context.Context {
	return context.WithValue(ctx, FolderKey, folder)
}

func FolderFromContext(ctx context.Context) (string, bool) {
	folder, ok := ctx.Value(FolderKey).(string)
	return folder, ok
}

// WithOperation tags ctx with the lifecycle operation name.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, OperationKey, op)
}

func OperationFromContext(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(OperationKey).(string)
	return op, ok
}
