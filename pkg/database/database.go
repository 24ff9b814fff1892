package database

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/noah-isme/course-enrollment-api/pkg/config"
)

// Open returns the shared store handle for the configured driver and verifies
// it with a ping.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	return db, nil
}

// DSN renders the driver specific data source name.
func DSN(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		mc.DBName = cfg.Name
		// RowsAffected must count matched rows, not changed rows.
		mc.ClientFoundRows = true
		return mc.FormatDSN(), nil
	case config.DriverPostgres:
		pairs := []struct{ key, value string }{
			{"host", cfg.Host},
			{"port", strconv.Itoa(cfg.Port)},
			{"user", cfg.User},
			{"password", cfg.Password},
			{"dbname", cfg.Name},
			{"sslmode", cfg.SSLMode},
		}
		parts := make([]string, 0, len(pairs))
		for _, p := range pairs {
			parts = append(parts, p.key+"="+quotePQ(p.value))
		}
		return strings.Join(parts, " "), nil
	case config.DriverSQLite:
		if cfg.Path == "" {
			return "", fmt.Errorf("sqlite3 requires DB_PATH")
		}
		return cfg.Path, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

var pqEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quotePQ renders a lib/pq key=value value. Empty values and values with
// spaces must be quoted or the next pair is read as the value.
func quotePQ(v string) string {
	return "'" + pqEscaper.Replace(v) + "'"
}
