// Package testdb opens throwaway in-memory databases carrying the escrow
// schema.
package testdb

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-escrow-service/internal/infrastructure/postgres"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	// одно соединение: sqlite не любит параллельных писателей
	return open(t, dsn, 1)
}

// OpenConcurrent opens a file-backed database that serves several
// connections at once, so transactions really interleave. Writers queue on
// the sqlite write lock instead of failing with SQLITE_BUSY.
func OpenConcurrent(t testing.TB, conns int) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "escrow.db") +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)&_txlock=immediate"
	return open(t, dsn, conns)
}

func open(t testing.TB, dsn string, conns int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
