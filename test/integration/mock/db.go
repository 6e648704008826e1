// Package mock provides in-memory test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-ai/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database migrated to the API schema.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database, migrating all models on first
// use. Scenarios call Reset between runs instead of reopening.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every scenario on the same in-memory store.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	d := &Db{
		DbConn: dbConn,
		models: []any{
			&model.UserModel{},
			&model.TransactionModel{},
			&model.GoalModel{},
		},
	}

	if err := dbConn.AutoMigrate(d.models...); err != nil {
		panic("failed to migrate database: " + err.Error())
	}

	return d
}

// Reset removes every row so scenarios start from an empty ledger.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for %T: %w", m, err)
		}
	}
	return nil
}
