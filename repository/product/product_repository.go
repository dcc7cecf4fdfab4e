package product

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	"github.com/muhammadheryan/wms/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Product, error)
	GetBySKU(ctx context.Context, sku string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	errDuplicateEntry uint16 = 1062
	errRowReferenced  uint16 = 1451
)

// sortable columns; anything else falls back to id.
var orderColumns = map[string]string{
	"id":         "id",
	"sku":        "sku",
	"name":       "name",
	"category":   "category",
	"created_at": "created_at",
}

const (
	productColumns     = `id, sku, name, COALESCE(category, '') AS category, COALESCE(unit, '') AS unit, COALESCE(image_url, '') AS image_url, created_at`
	getProductByID     = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	getProductsBySKU   = `SELECT ` + productColumns + ` FROM products WHERE sku = ? ORDER BY id LIMIT 2`
	insertProductQuery = `INSERT INTO products (sku, name, category, unit, image_url, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	updateProductQuery = `UPDATE products SET name = ?, category = ?, unit = ?, image_url = ? WHERE id = ?`
	deleteProductQuery = `DELETE FROM products WHERE id = ?`
)

func OrderColumn(orderBy string) string {
	if col, ok := orderColumns[strings.ToLower(orderBy)]; ok {
		return col
	}
	return "id"
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.Product, int64, error) {
	where := " WHERE true"
	args := make([]any, 0, 3)
	if filter.Query != "" {
		where += " AND (name LIKE ? OR sku LIKE ?)"
		like := "%" + escapeLike(filter.Query) + "%"
		args = append(args, like, like)
	}
	if filter.Category != "" {
		where += " AND category = ?"
		args = append(args, filter.Category)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM products"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productColumns + " FROM products" + where + " ORDER BY " + OrderColumn(filter.OrderBy) + " LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	items := make([]model.Product, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := s.conn.GetContext(ctx, &p, getProductByID, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetBySKU resolves a product by SKU. More than one match is rejected rather than guessed.
func (s *SQL) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	rows := make([]model.Product, 0, 2)
	if err := s.conn.SelectContext(ctx, &rows, getProductsBySKU, sku); err != nil {
		return nil, err
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return &rows[0], nil
	default:
		return nil, errors.SetCustomError(constant.ErrSKUAmbiguous)
	}
}

func (s *SQL) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	res, err := s.conn.ExecContext(ctx, insertProductQuery, p.SKU, p.Name, p.Category, p.Unit, p.ImageURL, p.CreatedAt)
	if err != nil {
		var me *mysql.MySQLError
		if stderrors.As(err, &me) && me.Number == errDuplicateEntry {
			return nil, errors.SetCustomError(constant.ErrSKUExists)
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = uint64(id)
	return p, nil
}

func (s *SQL) Update(ctx context.Context, p *model.Product) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery, p.Name, p.Category, p.Unit, p.ImageURL, p.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	res, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	if err != nil {
		var me *mysql.MySQLError
		if stderrors.As(err, &me) && me.Number == errRowReferenced {
			return errors.SetCustomError(constant.ErrProductInUse)
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
