package repo

import "context"

// TxManager wraps fn in one atomic transaction. Repo calls made with the
// ctx passed to fn run inside that transaction; an error from fn rolls
// everything back.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
