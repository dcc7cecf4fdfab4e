package warehouse

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/model"
)

type WarehouseRepository interface {
	ListWarehouses(ctx context.Context, ids []uint64) ([]model.Warehouse, error)
	GetWarehouseByID(ctx context.Context, id uint64) (*model.Warehouse, error)
	ListLocations(ctx context.Context, warehouseIDs []uint64) ([]model.Location, error)
	GetLocationByID(ctx context.Context, id uint64) (*model.Location, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

const (
	listWarehouses  = `SELECT id, name FROM warehouses`
	getWarehouse    = `SELECT id, name FROM warehouses WHERE id = ?`
	listLocations   = `SELECT id, warehouse_id, code, COALESCE(name, '') AS name FROM locations`
	getLocationByID = `SELECT id, warehouse_id, code, COALESCE(name, '') AS name FROM locations WHERE id = ?`
)

// ListWarehouses returns all warehouses, or only ids when ids is non-nil.
func (r *SQL) ListWarehouses(ctx context.Context, ids []uint64) ([]model.Warehouse, error) {
	out := make([]model.Warehouse, 0)
	if ids == nil {
		err := r.conn.SelectContext(ctx, &out, listWarehouses+" ORDER BY id")
		return out, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(listWarehouses+" WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, err
	}
	err = r.conn.SelectContext(ctx, &out, r.conn.Rebind(q), args...)
	return out, err
}

func (r *SQL) GetWarehouseByID(ctx context.Context, id uint64) (*model.Warehouse, error) {
	var w model.Warehouse
	if err := r.conn.GetContext(ctx, &w, getWarehouse, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *SQL) ListLocations(ctx context.Context, warehouseIDs []uint64) ([]model.Location, error) {
	out := make([]model.Location, 0)
	if warehouseIDs == nil {
		err := r.conn.SelectContext(ctx, &out, listLocations+" ORDER BY id")
		return out, err
	}
	if len(warehouseIDs) == 0 {
		return out, nil
	}
	q, args, err := sqlx.In(listLocations+" WHERE warehouse_id IN (?) ORDER BY id", warehouseIDs)
	if err != nil {
		return nil, err
	}
	err = r.conn.SelectContext(ctx, &out, r.conn.Rebind(q), args...)
	return out, err
}

func (r *SQL) GetLocationByID(ctx context.Context, id uint64) (*model.Location, error) {
	var l model.Location
	if err := r.conn.GetContext(ctx, &l, getLocationByID, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
