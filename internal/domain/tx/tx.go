package tx

import "context"

// Runner executes fn inside a single database transaction. Repositories
// called with the ctx handed to fn join that transaction.
type Runner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
