//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"perfume-order-api/internal/pkg/pgconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// CreateTestCustomer inserts a customer with fake contact data and returns its id.
func CreateTestCustomer(t *testing.T, db DBLike, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, first_name, last_name, email, phone, role) VALUES ($1, $2, $3, $4, $5, $6)",
		id, gofakeit.FirstName(), gofakeit.LastName(), id.String()+"@example.com", gofakeit.Phone(), role)
	require.NoError(t, err)
	return id
}

func CreateTestAddress(t *testing.T, db DBLike, customerID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO addresses (id, customer_id, province, canton, district, details) VALUES ($1, $2, $3, $4, $5, $6)",
		id, customerID, "San José", "Escazú", "San Rafael", gofakeit.Street())
	require.NoError(t, err)
	return id
}

// CreateTestProduct inserts an EauDeParfum with the given price (e.g. "89.90") and stock.
func CreateTestProduct(t *testing.T, db DBLike, price string, stock int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, brand, category, gender, price, stock) VALUES ($1, $2, $3, 'EauDeParfum', 'Unisex', $4, $5)",
		id, gofakeit.ProductName(), gofakeit.Company(), pgconv.DecimalToNumeric(decimal.RequireFromString(price)), stock)
	require.NoError(t, err)
	return id
}

func SetProductStock(t *testing.T, db DBLike, productID uuid.UUID, stock int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE products SET stock = $2 WHERE id = $1", productID, stock)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the migration bookkeeping
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
