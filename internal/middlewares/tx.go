package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-gaming-platform/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is rolled back when the handler answers with a status of 400 or above.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.Beginx()
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)
			r = r.WithContext(ctx)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			if rw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				log.Errorw("failed to commit transaction", "error", err)
				if !rw.wroteHeader {
					writeError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			for _, fn := range hooks.fns {
				fn()
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	txKey    = contextKey{"tx"}
	hooksKey = contextKey{"commit-hooks"}
)

type commitHooks struct {
	fns []func()
}

// AfterCommit defers fn until the request transaction commits. It is dropped
// on rollback. Outside TxMiddleware fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey).(*commitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
