package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type contextKey int

const (
	transactionKey contextKey = iota
)

var errTxNotStarted = errors.New("transaction hasn't started yet")

// Tx is a gorm transaction carried in a context. The id only tags the log
// lines of the transaction: sqlite has no server side transaction id, so one
// is generated for both dialects.
type Tx struct {
	txId string
	tx   *gorm.DB
	log  *zap.SugaredLogger
}

// Commit commits the transaction of ctx, if any, and returns a context without it.
func Commit(ctx context.Context) (context.Context, error) {
	return endTransaction(ctx, (*Tx).Commit)
}

// Rollback rolls back the transaction of ctx, if any, and returns a context without it.
func Rollback(ctx context.Context) (context.Context, error) {
	return endTransaction(ctx, (*Tx).Rollback)
}

func endTransaction(ctx context.Context, end func(*Tx) error) (context.Context, error) {
	tx, ok := ctx.Value(transactionKey).(*Tx)
	if !ok {
		return ctx, nil
	}
	return context.WithValue(ctx, transactionKey, nil), end(tx)
}

func FromContext(ctx context.Context) *gorm.DB {
	if tx, found := ctx.Value(transactionKey).(*Tx); found {
		if dbTx, err := tx.Db(); err == nil {
			return dbTx
		}
	}
	return nil
}

func newTransactionContext(ctx context.Context, db *gorm.DB) (context.Context, error) {
	// nested calls join the transaction already in the context
	if _, found := ctx.Value(transactionKey).(*Tx); found {
		return ctx, nil
	}

	tx, err := newTransaction(db.Session(&gorm.Session{Context: ctx}))
	if err != nil {
		return ctx, err
	}

	return context.WithValue(ctx, transactionKey, tx), nil
}

func newTransaction(db *gorm.DB) (*Tx, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	id := uuid.NewString()
	return &Tx{
		txId: id,
		tx:   tx,
		log:  zap.S().Named("store").With("tx", id),
	}, nil
}

func (t *Tx) Db() (*gorm.DB, error) {
	if t.tx != nil {
		return t.tx, nil
	}
	return nil, errTxNotStarted
}

func (t *Tx) Commit() error {
	return t.finish("commit", func(db *gorm.DB) *gorm.DB { return db.Commit() })
}

func (t *Tx) Rollback() error {
	return t.finish("rollback", func(db *gorm.DB) *gorm.DB { return db.Rollback() })
}

// finish ends the transaction once; later calls fail with errTxNotStarted.
func (t *Tx) finish(action string, end func(*gorm.DB) *gorm.DB) error {
	if t.tx == nil {
		return errTxNotStarted
	}

	if err := end(t.tx).Error; err != nil {
		t.log.Errorw("failed to "+action+" transaction", "error", err)
		return err
	}
	t.tx = nil
	t.log.Debugf("transaction %s done", action)
	return nil
}

func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}
