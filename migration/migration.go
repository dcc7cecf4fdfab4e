package migration

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:embed schema.sql
var schema string

// Migrate creates missing tables. The DSN must allow multiple statements.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type seedUser struct {
	username     string
	password     string
	role         constant.Role
	warehouseIDs string
}

var seedUsers = []seedUser{
	{username: "admin", password: "admin123", role: constant.RoleAdmin, warehouseIDs: "1,2"},
	{username: "op_a", password: "op123", role: constant.RoleOperator, warehouseIDs: "1"},
	{username: "op_b", password: "op123", role: constant.RoleOperator, warehouseIDs: "2"},
}

const (
	insertWarehouses = `INSERT INTO warehouses (id, name) VALUES (1, 'WH-A'), (2, 'WH-B')`
	insertLocations  = `INSERT INTO locations (warehouse_id, code, name) VALUES (1, 'A-01', 'Zone A 01'), (2, 'B-01', 'Zone B 01')`
	insertUser       = `INSERT INTO users (username, password_hash, role, warehouse_ids) VALUES (?, ?, ?, ?)`
	insertProducts   = `INSERT INTO products (sku, name, category, unit, created_at) VALUES
(?, 'Sample product 1', 'default', 'pcs', ?), (?, 'Sample product 2', 'default', 'pcs', ?), (?, 'Sample product 3', 'default', 'pcs', ?)`
	insertBalances = `INSERT INTO inventory (warehouse_id, product_id, available_qty, locked_qty, warning_threshold, updated_at)
SELECT ?, id, ?, 0, ?, ? FROM products`
)

// Seed fills each empty reference table with demo data. Tables that already hold rows are left alone,
// so running it on every start is safe.
func Seed(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	steps := []struct {
		table string
		run   func() error
	}{
		{"warehouses", func() error { return exec(ctx, tx, insertWarehouses) }},
		{"locations", func() error { return exec(ctx, tx, insertLocations) }},
		{"users", func() error { return seedUserRows(ctx, tx) }},
		{"products", func() error {
			return exec(ctx, tx, insertProducts, "SKU-001", now, "SKU-002", now, "SKU-003", now)
		}},
		{"inventory", func() error {
			if err := exec(ctx, tx, insertBalances, 1, 50, 10, now); err != nil {
				return err
			}
			return exec(ctx, tx, insertBalances, 2, 20, 5, now)
		}},
	}

	for _, step := range steps {
		var n int64
		if err := tx.GetContext(ctx, &n, "SELECT COUNT(*) FROM "+step.table); err != nil {
			return fmt.Errorf("count %s: %w", step.table, err)
		}
		if n > 0 {
			continue
		}
		if err := step.run(); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
		logger.Info("seeded table", zap.String("table", step.table))
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func seedUserRows(ctx context.Context, tx *sqlx.Tx) error {
	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := exec(ctx, tx, insertUser, u.username, string(hash), u.role, u.warehouseIDs); err != nil {
			return err
		}
	}
	return nil
}

func exec(ctx context.Context, tx *sqlx.Tx, query string, args ...any) error {
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
