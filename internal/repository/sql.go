package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// insertReturningID runs an INSERT and reports the generated id. PostgreSQL
// has no LastInsertId so the statement is extended with RETURNING there.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	if db.DriverName() == "postgres" || db.DriverName() == "pgx" {
		var id int64
		if err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// execAffected runs a statement and reports how many rows it touched.
func execAffected(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}
