package database

import (
	"context"
	"database/sql/driver"
	"fmt"

	"github.com/jackaholy/Cheminv2.0/internal/textnorm"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

// FoldNameFunc is the SQLite scalar function applying textnorm.FoldName.
// SQLite's own LOWER only folds ASCII and REPLACE only sees one character.
const FoldNameFunc = "cheminv_fold_name"

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
	if err := sqlite.RegisterDeterministicScalarFunction(FoldNameFunc, 1, foldName); err != nil {
		panic(fmt.Sprintf("register %s: %v", FoldNameFunc, err))
	}
}

func foldName(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return textnorm.FoldName(v), nil
	case []byte:
		return textnorm.FoldName(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument %T", FoldNameFunc, v)
	}
}

// NewSQLite opens a single-connection SQLite handle. A single connection keeps
// ":memory:" databases alive and visible across queries.
func NewSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return db, nil
}
