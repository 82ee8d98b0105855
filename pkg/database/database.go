package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Conn is the subset of *pgxpool.Pool that Bootstrap needs. pgxmock pools
// satisfy it too.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS usuarios(
		id SERIAL PRIMARY KEY,
		usuario TEXT UNIQUE NOT NULL,
		clave TEXT NOT NULL,
		nombre TEXT NOT NULL,
		rol TEXT NOT NULL DEFAULT 'usuario',
		estado TEXT DEFAULT 'activo',
		fecha_creacion TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categorias(
		id SERIAL PRIMARY KEY,
		nombre TEXT UNIQUE NOT NULL,
		descripcion TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS productos(
		id SERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		categoria_id INTEGER REFERENCES categorias(id),
		descripcion TEXT,
		precio REAL DEFAULT 0,
		sku TEXT UNIQUE,
		estado TEXT DEFAULT 'activo',
		fecha_creacion TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stock(
		id SERIAL PRIMARY KEY,
		producto_id INTEGER NOT NULL REFERENCES productos(id),
		cantidad INTEGER DEFAULT 0,
		ubicacion TEXT,
		cantidad_minima INTEGER DEFAULT 10,
		fecha_actualizacion TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventario(
		id SERIAL PRIMARY KEY,
		stock_id INTEGER NOT NULL REFERENCES stock(id),
		ubicacion TEXT,
		cantidad INTEGER,
		observaciones TEXT,
		ultima_revision TIMESTAMPTZ DEFAULT NOW()
	)`,
	// movimientos carries no FK on stock_id: it is an audit log and keeps
	// its rows after the referenced stock line is deleted.
	`CREATE TABLE IF NOT EXISTS movimientos(
		id SERIAL PRIMARY KEY,
		stock_id INTEGER NOT NULL,
		tipo TEXT,
		cantidad INTEGER,
		usuario_id INTEGER REFERENCES usuarios(id),
		descripcion TEXT,
		fecha TIMESTAMPTZ DEFAULT NOW()
	)`,
}

// Herrajes is seeded first on an empty database so it takes id 1, the
// default category assigned to products created implicitly through the
// stock API.
var defaultCategorias = []string{"Herrajes", "Tuberías", "Eléctrico", "Herramientas", "Pinturas"}

const (
	defaultAdminUser  = "admin"
	defaultAdminClave = "admin123"
)

// Bootstrap creates the schema and seed data when the usuarios table does
// not exist yet. Existing tables are left untouched; there is no migration
// support. Seeding is idempotent.
func Bootstrap(ctx context.Context, conn Conn, logger *zap.Logger) error {
	var exists bool
	err := conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'usuarios' AND table_schema = current_schema())`,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}

	if exists {
		logger.Debug("schema already present, skipping bootstrap")
		return nil
	}

	logger.Info("creating schema and seed data")

	for _, stmt := range schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminClave), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO usuarios (usuario, clave, nombre, rol)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (usuario) DO NOTHING`,
		defaultAdminUser, string(hash), "Administrador", "admin",
	)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	for _, nombre := range defaultCategorias {
		_, err := conn.Exec(ctx,
			`INSERT INTO categorias (nombre) VALUES ($1) ON CONFLICT (nombre) DO NOTHING`,
			nombre,
		)
		if err != nil {
			return fmt.Errorf("seed categoria %q: %w", nombre, err)
		}
	}

	logger.Info("database bootstrapped",
		zap.String("admin", defaultAdminUser),
		zap.Int("categorias", len(defaultCategorias)))

	return nil
}
