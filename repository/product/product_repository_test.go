package product

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/model"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "sku", "name", "category", "unit", "image_url", "created_at"}

func newMockRepo(t *testing.T) (ProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewProductRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestGetBySKU(t *testing.T) {
	now := time.Now()

	t.Run("single match", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM products WHERE sku = \?`).
			WithArgs("SKU-001").
			WillReturnRows(sqlmock.NewRows(productCols).AddRow(1, "SKU-001", "Widget", "default", "pcs", "", now))

		p, err := repo.GetBySKU(context.Background(), "SKU-001")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), p.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match returns nil", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM products WHERE sku = \?`).
			WithArgs("SKU-404").
			WillReturnRows(sqlmock.NewRows(productCols))

		p, err := repo.GetBySKU(context.Background(), "SKU-404")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("duplicate sku is rejected as ambiguous", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT .* FROM products WHERE sku = \?`).
			WithArgs("SKU-001").
			WillReturnRows(sqlmock.NewRows(productCols).
				AddRow(1, "SKU-001", "Widget", "", "", "", now).
				AddRow(7, "SKU-001", "Widget copy", "", "", "", now))

		p, err := repo.GetBySKU(context.Background(), "SKU-001")
		assert.Nil(t, p)
		assert.True(t, cerr.Is(err, constant.ErrSKUAmbiguous))
	})
}

func TestCreate_DuplicateSKU(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO products`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'SKU-001' for key 'uk_products_sku'"})

	_, err := repo.Create(context.Background(), &model.Product{SKU: "SKU-001", Name: "Widget"})
	assert.True(t, cerr.Is(err, constant.ErrSKUExists))
}

func TestList_ParameterizedFilter(t *testing.T) {
	repo, mock := newMockRepo(t)
	injected := "x' OR '1'='1"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE true AND \(name LIKE \? OR sku LIKE \?\)`).
		WithArgs("%"+injected+"%", "%"+injected+"%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY id LIMIT \? OFFSET \?`).
		WithArgs("%"+injected+"%", "%"+injected+"%", 20, 0).
		WillReturnRows(sqlmock.NewRows(productCols))

	items, total, err := repo.List(context.Background(), &model.ProductFilter{
		Query:    injected,
		OrderBy:  "password_hash; DROP TABLE products",
		Page:     1,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderColumn(t *testing.T) {
	assert.Equal(t, "name", OrderColumn("NAME"))
	assert.Equal(t, "id", OrderColumn("unknown"))
}
