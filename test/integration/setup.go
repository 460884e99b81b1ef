package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS categorias (
			id BIGSERIAL PRIMARY KEY,
			nome TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS itens (
			id BIGSERIAL PRIMARY KEY,
			categoria_id BIGINT REFERENCES categorias(id),
			nome TEXT NOT NULL,
			descricao TEXT NOT NULL DEFAULT '',
			preco NUMERIC(10, 2) NOT NULL,
			disponivel BOOLEAN NOT NULL DEFAULT TRUE,
			imagem_url TEXT
		);

		CREATE TABLE IF NOT EXISTS cupons (
			id BIGSERIAL PRIMARY KEY,
			codigo TEXT UNIQUE NOT NULL,
			descricao TEXT NOT NULL DEFAULT '',
			tipo TEXT NOT NULL CHECK (tipo IN ('percentual', 'fixo')),
			valor NUMERIC(10, 2) NOT NULL,
			minimo NUMERIC(10, 2) NOT NULL DEFAULT 0,
			ativo BOOLEAN NOT NULL DEFAULT TRUE,
			criado_em TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pedidos (
			id UUID PRIMARY KEY,
			user_id BIGINT NOT NULL,
			endereco TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Recebido',
			subtotal NUMERIC(10, 2) NOT NULL,
			frete NUMERIC(10, 2) NOT NULL DEFAULT 0,
			desconto NUMERIC(10, 2) NOT NULL DEFAULT 0,
			total NUMERIC(10, 2) NOT NULL,
			cupom_usado TEXT,
			criado_em TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pedido_itens (
			id UUID PRIMARY KEY,
			pedido_id UUID NOT NULL REFERENCES pedidos(id) ON DELETE CASCADE,
			item_id BIGINT NOT NULL REFERENCES itens(id),
			qtd INTEGER NOT NULL CHECK (qtd >= 1),
			preco_unit NUMERIC(10, 2) NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pedidos_user_id ON pedidos(user_id);
		CREATE INDEX IF NOT EXISTS idx_pedido_itens_pedido_id ON pedido_itens(pedido_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// CleanupDB truncates all tables between test cases.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`TRUNCATE pedido_itens, pedidos, cupons, itens, categorias RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to clean database: %v", err)
	}
}

// SeedMenu inserts the test categories and menu items.
func SeedMenu(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	var pizzasID, bebidasID int64
	if err := pool.QueryRow(ctx, `INSERT INTO categorias (nome) VALUES ('Pizzas') RETURNING id`).Scan(&pizzasID); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	if err := pool.QueryRow(ctx, `INSERT INTO categorias (nome) VALUES ('Bebidas') RETURNING id`).Scan(&bebidasID); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	items := []struct {
		categoryID int64
		name       string
		price      float64
		available  bool
	}{
		{pizzasID, "Pizza 4 Queijos", 49.90, true},
		{pizzasID, "Pizza Calabresa", 44.90, true},
		{pizzasID, "Pizza do Chef", 59.90, false},
		{bebidasID, "Coca-Cola 2L", 12.90, true},
		{bebidasID, "Guaraná Antarctica 2L", 9.90, true},
	}

	for _, item := range items {
		_, err := pool.Exec(ctx,
			`INSERT INTO itens (categoria_id, nome, preco, disponivel) VALUES ($1, $2, $3, $4)`,
			item.categoryID, item.name, item.price, item.available)
		if err != nil {
			t.Fatalf("failed to seed item %s: %v", item.name, err)
		}
	}
}

// SeedCoupons inserts the test coupons.
func SeedCoupons(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	coupons := []struct {
		code    string
		kind    string
		value   float64
		minimum float64
		active  bool
	}{
		{"PRIMEIRACOMPRA", "percentual", 10, 30, true},
		{"DESCONTO5", "fixo", 5, 20, true},
		{"ANTIGO", "fixo", 10, 0, false},
	}

	for _, c := range coupons {
		_, err := pool.Exec(ctx,
			`INSERT INTO cupons (codigo, tipo, valor, minimo, ativo) VALUES ($1, $2, $3, $4, $5)`,
			c.code, c.kind, c.value, c.minimum, c.active)
		if err != nil {
			t.Fatalf("failed to seed coupon %s: %v", c.code, err)
		}
	}
}
