package tx

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/wms/constant"
	"github.com/muhammadheryan/wms/utils/errors"
)

// MySQL server errors that mean the statement lost a lock race and can be retried.
const (
	errLockWaitTimeout uint16 = 1205
	errDeadlock        uint16 = 1213
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

// BeginTx opens a READ COMMITTED transaction; callers take row locks explicitly.
func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return MapLockError(tx.Commit())
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	err := tx.Rollback()
	if stderrors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return err
}

// MapLockError turns lock wait timeouts and deadlocks into ErrConflict.
func MapLockError(err error) error {
	if IsLockConflict(err) {
		return errors.SetCustomError(constant.ErrConflict)
	}
	return err
}

func IsLockConflict(err error) bool {
	var me *mysql.MySQLError
	if !stderrors.As(err, &me) {
		return false
	}
	return me.Number == errLockWaitTimeout || me.Number == errDeadlock
}
