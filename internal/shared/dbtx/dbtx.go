// Package dbtx lets gorm repositories join a transaction opened with
// database/sql, so services keep a single BeginTx/Commit per unit of work.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a session of db bound to ctx and, when tx is non-nil,
// executing every statement on tx.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}
