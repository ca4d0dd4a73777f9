// Package tx carries a request-scoped transaction manager through the context
// so handlers can group repository calls into one transaction without holding
// a reference to the concrete repository.
package tx

import (
	"context"
	"net/http"
)

type key string

const KeyTx = key("tx")

type DBRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DBRepo
}

func TxMiddlewareHTTP(repo DBRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TxExecute runs cb inside the transaction manager found in ctx. Without one
// in the context, cb runs against the bare connection.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return cb(ctx)
	}
	return t.DbRepo.WithTx(ctx, cb)
}
