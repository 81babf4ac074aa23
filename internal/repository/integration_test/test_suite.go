//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"orderdesk/internal/pkg/migrations"
	"orderdesk/pkg/logger/zap_adapter"
	"orderdesk/pkg/querier"
	"orderdesk/pkg/tx"
)

const postgresImage = "postgres:16-alpine"

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	setupOnce       sync.Once
)

// setup поднимает один контейнер на пакет и прогоняет миграции.
// Контейнер убирает ryuk после завершения тестового процесса.
func setup() {
	setupOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := postgres.Run(ctx,
			postgresImage,
			postgres.WithDatabase("orderdesk"),
			postgres.WithUsername("orderdesk"),
			postgres.WithPassword("orderdesk"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		connString, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get connection string: %v", err)
		}

		pool, err := pgxpool.New(context.Background(), connString)
		if err != nil {
			log.Fatalf("failed to create pool: %v", err)
		}

		if err := migrations.Up(ctx, zap_adapter.NewNop(), pool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(pool)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return txInstance
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders, riders, menu_items, restaurants RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// Фикстуры: ресторан, блюдо, два курьера и заказы в разных статусах.
const (
	RestaurantID      = "11111111-1111-4111-8111-111111111111"
	OtherRestaurantID = "22222222-2222-4222-8222-222222222222"
	MenuItemID        = "33333333-3333-4333-8333-333333333333"
	RiderID           = "44444444-4444-4444-8444-444444444444"
	InactiveRiderID   = "55555555-5555-4555-8555-555555555555"

	PendingOrderID   = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaa1"
	PreparingOrderID = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaa2"
	DeliveredOrderID = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaa3"
	ForeignOrderID   = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaa4"
)

const FixturesSQL = `
	INSERT INTO restaurants (id, owner_id, name) VALUES
		('` + RestaurantID + `', 'owner-1', 'Пельменная'),
		('` + OtherRestaurantID + `', 'owner-2', 'Шаурма');

	INSERT INTO menu_items (id, restaurant_id, name, price) VALUES
		('` + MenuItemID + `', '` + RestaurantID + `', 'Пельмени', 450);

	INSERT INTO riders (id, name, phone, active) VALUES
		('` + RiderID + `', 'Snake Plissken', '+79031112233', TRUE),
		('` + InactiveRiderID + `', 'Max Rockatansky', '+79034445566', FALSE);

	INSERT INTO orders (id, restaurant_id, user_id, rider_id, status, total_amount, delivery_fee, delivery_address, created_at, updated_at) VALUES
		('` + PendingOrderID + `', '` + RestaurantID + `', 'user-1', NULL, 'pending', 900, 150, 'ул. Ленина 1', NOW() - INTERVAL '30 minutes', NOW() - INTERVAL '30 minutes'),
		('` + PreparingOrderID + `', '` + RestaurantID + `', 'user-2', NULL, 'preparing', 1350, 150, 'ул. Мира 5', NOW() - INTERVAL '20 minutes', NOW() - INTERVAL '20 minutes'),
		('` + DeliveredOrderID + `', '` + RestaurantID + `', 'user-1', '` + RiderID + `', 'delivered', 450, 150, 'ул. Ленина 1', NOW() - INTERVAL '2 hours', NOW() - INTERVAL '1 hour'),
		('` + ForeignOrderID + `', '` + OtherRestaurantID + `', 'user-3', NULL, 'pending', 700, 0, 'пр. Победы 9', NOW() - INTERVAL '10 minutes', NOW() - INTERVAL '10 minutes');

	INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price) VALUES
		('` + PendingOrderID + `', '` + MenuItemID + `', 'Пельмени', 2, 450),
		('` + PreparingOrderID + `', '` + MenuItemID + `', 'Пельмени', 3, 450);
`
