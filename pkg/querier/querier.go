package querier

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	scopeTx   = "tx"
	scopePool = "pool"
)

// Querier отдает репозиторию транзакцию из контекста, если tx.Manager ее открыл,
// иначе пул. В orderdesk_db_statements_total видно, сколько запросов ушло мимо транзакций.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return q.executor(ctx, "exec").Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return q.executor(ctx, "query").Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return q.executor(ctx, "query_row").QueryRow(ctx, sql, args...)
}

// Ping для healthcheck, транзакция из контекста не нужна.
func (q *Querier) Ping(ctx context.Context) error {
	return q.pool.Ping(ctx)
}

func (q *Querier) executor(ctx context.Context, statement string) pgxv5.Tr {
	tr := q.getter.DefaultTrOrDB(ctx, q.pool)

	scope := scopeTx
	if tr == pgxv5.Tr(q.pool) {
		scope = scopePool
	}
	Statements.WithLabelValues(statement, scope).Inc()

	return tr
}
