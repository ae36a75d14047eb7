package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tienda-pos/internal/domain/entity"
	"github.com/jhoicas/Tienda-pos/internal/domain/repository"
	"github.com/jhoicas/Tienda-pos/pkg/config"
)

// schema DDL idempotente del almacén. sales.product_id no lleva FK: borrar un
// producto del catálogo está permitido y el historial conserva la referencia.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL CHECK (role IN ('admin', 'vendedor')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	quantity   BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	price      NUMERIC(14,2) NOT NULL CHECK (price >= 0),
	currency   TEXT NOT NULL CHECK (currency IN ('USD', 'CUP')),
	image_path TEXT NOT NULL DEFAULT '',
	min_stock  BIGINT NOT NULL DEFAULT 5 CHECK (min_stock >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS sales (
	id               BIGSERIAL PRIMARY KEY,
	product_id       BIGINT NOT NULL,
	quantity         BIGINT NOT NULL CHECK (quantity >= 1),
	total            NUMERIC(14,2) NOT NULL,
	sold_at          TIMESTAMPTZ NOT NULL,
	customer_name    TEXT NOT NULL DEFAULT '',
	customer_id      TEXT NOT NULL DEFAULT '',
	customer_address TEXT NOT NULL DEFAULT '',
	seller_id        BIGINT NOT NULL REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales (sold_at);

CREATE TABLE IF NOT EXISTS configuration (
	id            SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	exchange_rate NUMERIC(10,4) NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate crea las tablas si no existen y ejecuta el bootstrap del primer
// arranque: admin por defecto cuando no hay usuarios y tipo de cambio inicial
// cuando falta la fila de configuración. Es un chequeo idempotente, no un
// seed repetible.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg config.BootstrapConfig) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}

	if err := ensureDefaultAdmin(NewUserRepository(pool), cfg); err != nil {
		return err
	}

	rate := decimal.NewFromFloat(cfg.ExchangeRate)
	_, err := pool.Exec(ctx,
		`INSERT INTO configuration (id, exchange_rate) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`,
		rate,
	)
	if err != nil {
		return fmt.Errorf("crear configuración inicial: %w", err)
	}
	return nil
}

// ensureDefaultAdmin crea la cuenta admin por defecto cuando todavía no hay
// ningún usuario registrado. La contraseña se persiste hasheada con bcrypt.
func ensureDefaultAdmin(users repository.UserRepository, cfg config.BootstrapConfig) error {
	n, err := users.Count()
	if err != nil {
		return fmt.Errorf("contar usuarios: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashear password admin: %w", err)
	}
	admin := &entity.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		return fmt.Errorf("crear admin por defecto: %w", err)
	}
	return nil
}
