package persistence

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

//go:embed migrations
var embedMigrations embed.FS

// goose keeps its settings in package globals
var migrateLock sync.Mutex

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Persistence stores preferences in a SQL database
type Persistence struct {
	dbConn *sql.DB // underlying persistence connection
	driver string  // database/sql driver name
}

// Open connects to the database and applies pending migrations
func Open(ctx context.Context, driver, dsn string) (*Persistence, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	dbConn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY on concurrent updates
		dbConn.SetMaxOpenConns(1)
	}

	if err := dbConn.PingContext(ctx); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	p := New(dbConn, driver)
	if err := p.Migrate(ctx); err != nil {
		dbConn.Close()
		return nil, err
	}

	return p, nil
}

func New(dbConn *sql.DB, driver string) *Persistence {
	return &Persistence{
		dbConn: dbConn,
		driver: driver,
	}
}

// Migrate applies the embedded migrations for the driver's dialect
func (p *Persistence) Migrate(ctx context.Context) error {
	migrateLock.Lock()
	defer migrateLock.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetTableName("schema_migrations")
	goose.SetLogger(gooseLogger{})

	dialect, dir := "sqlite3", "migrations/sqlite"
	if p.driver == DriverPostgres {
		dialect, dir = "postgres", "migrations/postgres"
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := goose.UpContext(ctx, p.dbConn, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	return nil
}

// Get implements storage.Preferences.
func (p *Persistence) Get(ctx context.Context, key string) (string, bool, error) {
	getQuery := fmt.Sprintf(`SELECT value
				 FROM preferences
				 WHERE name=%s`, p.placeholder(1))

	var value string

	err := p.dbConn.QueryRowContext(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}

	return value, true, nil
}

// Set implements storage.Preferences.
func (p *Persistence) Set(ctx context.Context, key, value string) error {
	setQuery := fmt.Sprintf(`INSERT INTO preferences (name, value, updated_at)
				 VALUES (%s, %s, %s)
				 ON CONFLICT (name) DO UPDATE
				 SET value=excluded.value, updated_at=excluded.updated_at`,
		p.placeholder(1), p.placeholder(2), p.placeholder(3))

	if _, err := p.dbConn.ExecContext(ctx, setQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}

	return nil
}

// Close implements storage.Preferences.
func (p *Persistence) Close() error {
	return p.dbConn.Close()
}

func (p *Persistence) placeholder(n int) string {
	if p.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}

	return "?"
}

// gooseLogger routes migration output through zerolog
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Fatal().Msgf(format, v...)
}

func (gooseLogger) Printf(format string, v ...interface{}) {
	log.Debug().Msgf(format, v...)
}
