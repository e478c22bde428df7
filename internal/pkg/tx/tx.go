package tx

import (
	"context"
	"net/http"
)

type key int

// KeyTx carries the unit-of-work entry point through the request context.
const KeyTx key = iota

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxMiddlewareHTTP makes the repository's transaction runner available to
// every handler via TxExecute.
func TxMiddlewareHTTP(repo DbRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside a single database transaction when a transaction
// runner is present in the context, and directly otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok || t.DbRepo == nil {
		return cb(ctx)
	}

	return t.DbRepo.WithTx(ctx, cb)
}
