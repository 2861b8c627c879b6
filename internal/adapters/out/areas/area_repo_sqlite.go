package areas

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Ensure compile-time conformance
var _ ports.AreaRepository = (*SQLiteAreaRepository)(nil)

// SQLiteAreaRepository is a SQLite backed implementation (WAL mode).
type SQLiteAreaRepository struct {
	*sqlStore
	cfg config.RepositorySqliteConfig
}

// NewSQLiteAreaRepository opens (and, on bootstrap, initializes) the SQLite database file.
func NewSQLiteAreaRepository(cfg config.RepositorySqliteConfig, bootstrap bool) (*SQLiteAreaRepository, error) {
	if cfg.DbFilePath == "" {
		return nil, fmt.Errorf("invalid SQLite config: db_file_path is required")
	}
	if bootstrap && cfg.CreateDbDir {
		dir := filepath.Dir(cfg.DbFilePath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("cannot create sqlite dir %s: %w", dir, err)
		}
	}
	writersWait := fmt.Sprintf("%d", cfg.WriteTimeout.Milliseconds())
	dsn := cfg.DbFilePath +
		"?_pragma=journal_mode(WAL)" + // many readers, one writer
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(" + writersWait + ")" + // writers wait instead of erroring
		"&_pragma=foreign_keys(ON)" // cascades rely on it

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	repo := &SQLiteAreaRepository{
		sqlStore: &sqlStore{db: db, dialect: SQLDialectSQLite, queryTimeout: cfg.QueryTimeout},
		cfg:      cfg,
	}

	if bootstrap {
		if err := repo.initSchema(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if err := repo.HealthCheck(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (s *SQLiteAreaRepository) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS project (
			id                 INTEGER PRIMARY KEY,
			name               TEXT    NOT NULL,
			description        TEXT,
			owner_user_id      INTEGER NOT NULL,
			entity_version     INTEGER NOT NULL DEFAULT 1,
			entity_create_date TEXT    NOT NULL,
			entity_modify_date TEXT    NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS device (
			id                 INTEGER PRIMARY KEY,
			device_name        TEXT    NOT NULL,
			description        TEXT,
			project_id         INTEGER NOT NULL REFERENCES project(id) ON DELETE CASCADE,
			entity_version     INTEGER NOT NULL DEFAULT 1,
			entity_create_date TEXT    NOT NULL,
			entity_modify_date TEXT    NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS area (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			name               TEXT    NOT NULL,
			description        TEXT,
			map_x              REAL,
			map_y              REAL,
			map_z              REAL,
			map_icon           TEXT,
			area_view_type     TEXT    NOT NULL DEFAULT 'IMAGE',
			area_configuration TEXT,
			image_path         TEXT,
			parent_area_id     INTEGER REFERENCES area(id) ON DELETE CASCADE,
			project_id         INTEGER NOT NULL REFERENCES project(id) ON DELETE CASCADE,
			entity_version     INTEGER NOT NULL DEFAULT 1,
			entity_create_date TEXT    NOT NULL,
			entity_modify_date TEXT    NOT NULL
		);`,

		// NULL parents compare equal through COALESCE, so root names are unique per project.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_area_key ON area(project_id, COALESCE(parent_area_id, 0), name);`,
		`CREATE INDEX IF NOT EXISTS idx_area_parent ON area(parent_area_id);`,

		`CREATE TABLE IF NOT EXISTS area_device (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			area_id   INTEGER NOT NULL REFERENCES area(id) ON DELETE CASCADE,
			device_id INTEGER NOT NULL REFERENCES device(id) ON DELETE CASCADE,
			UNIQUE (area_id, device_id)
		);`,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, q := range stmts {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteAreaRepository) HealthCheck(ctx context.Context) error {
	return pingWithTimeout(ctx, s.db, time.Second)
}

func (s *SQLiteAreaRepository) GetInfo(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const q = `SELECT sqlite_version(), datetime('now')`
	var ver, now string
	if err := s.db.QueryRowContext(ctx, q).Scan(&ver, &now); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to SQLite (%s) version: '%s', database time: '%s'", s.cfg.DbFilePath, ver, now), nil
}

func (s *SQLiteAreaRepository) Close() error {
	return s.db.Close()
}
