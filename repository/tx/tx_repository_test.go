package tx

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	cerr "github.com/muhammadheryan/wms/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLockError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantConflict bool
	}{
		{name: "lock wait timeout", err: &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, wantConflict: true},
		{name: "deadlock", err: &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}, wantConflict: true},
		{name: "duplicate key is not a conflict", err: &mysql.MySQLError{Number: 1062}, wantConflict: false},
		{name: "plain error", err: errors.New("boom"), wantConflict: false},
		{name: "nil", err: nil, wantConflict: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapLockError(tt.err)
			assert.Equal(t, tt.wantConflict, cerr.Is(got, constant.ErrConflict))
			if !tt.wantConflict {
				assert.Equal(t, tt.err, got)
			}
		})
	}
}

func TestTxRepository_CommitDeadlockIsConflict(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewTxRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(&mysql.MySQLError{Number: 1213})

	tx, err := repo.BeginTx(context.Background())
	require.NoError(t, err)

	err = repo.CommitTx(tx)
	assert.True(t, cerr.Is(err, constant.ErrConflict))

	// already finished, rollback is a no-op
	assert.NoError(t, repo.RollbackTx(tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
