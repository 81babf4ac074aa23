package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакции через go-transaction-manager и пишет их
// длительность в orderdesk_db_tx_duration_seconds.
type Manager struct {
	internal *manager.Manager
	now      func() time.Time
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		now:      time.Now,
	}
}

// Do открывает транзакцию read committed. Гонки на одном заказе разруливает
// compare-and-swap по version в репозитории, serializable тут не нужен.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.ReadCommitted, fn)
}

func (m *Manager) run(ctx context.Context, level pgx.TxIsoLevel, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)

	started := m.now()
	err := m.internal.DoWithSettings(ctx, txSettings, fn)
	observe(level, m.now().Sub(started), err)

	return err
}

func observe(level pgx.TxIsoLevel, elapsed time.Duration, err error) {
	TxDuration.WithLabelValues(string(level), outcome(err)).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "commit"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "rollback"
	}
}
