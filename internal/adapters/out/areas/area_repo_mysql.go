package areas

import (
	"area-api/internal/app/config"
	"area-api/internal/app/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQLAreaRepository is a MySQL (InnoDB) backed implementation of ports.AreaRepository.
type MySQLAreaRepository struct {
	*sqlStore
}

// Enforce compile-time conformance to the interface
var _ ports.AreaRepository = (*MySQLAreaRepository)(nil)

// NewMySQLAreaRepository opens a connection pool and, on bootstrap, creates the schema.
func NewMySQLAreaRepository(cfg config.RepositoryMySqlConfig, bootstrap bool) (*MySQLAreaRepository, error) {
	if cfg.Host == "" || cfg.Port == 0 || cfg.Database == "" || cfg.User == "" {
		return nil, errors.New("invalid MySQL config: host/port/database/user are required")
	}

	dsn, err := mysqlDSN(cfg)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	repo := &MySQLAreaRepository{
		sqlStore: &sqlStore{db: db, dialect: SQLDialectMySQL, queryTimeout: cfg.QueryTimeout},
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

func mysqlDSN(cfg config.RepositoryMySqlConfig) (string, error) {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Collation = "utf8mb4_unicode_ci"
	if !cfg.IgnoreSSL {
		if cfg.SSLCaPath == "" {
			mc.TLSConfig = "true"
		} else {
			name, err := registerMySQLTLSFromCA(cfg.SSLCaPath)
			if err != nil {
				return "", fmt.Errorf("failed to register TLS config: %w", err)
			}
			mc.TLSConfig = name
		}
	}
	return mc.FormatDSN(), nil
}

func (s *MySQLAreaRepository) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS project (
			id                 BIGINT        NOT NULL,
			name               VARCHAR(255)  NOT NULL,
			description        TEXT          NULL,
			owner_user_id      BIGINT        NOT NULL,
			entity_version     BIGINT        NOT NULL DEFAULT 1,
			entity_create_date DATETIME(6)   NOT NULL,
			entity_modify_date DATETIME(6)   NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,

		`CREATE TABLE IF NOT EXISTS device (
			id                 BIGINT        NOT NULL,
			device_name        VARCHAR(255)  NOT NULL,
			description        TEXT          NULL,
			project_id         BIGINT        NOT NULL,
			entity_version     BIGINT        NOT NULL DEFAULT 1,
			entity_create_date DATETIME(6)   NOT NULL,
			entity_modify_date DATETIME(6)   NOT NULL,
			PRIMARY KEY (id),
			CONSTRAINT device_project_fk
				FOREIGN KEY (project_id) REFERENCES project (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,

		// parent_key folds NULL parents to 0 so the unique key also covers root areas.
		`CREATE TABLE IF NOT EXISTS area (
			id                 BIGINT        NOT NULL AUTO_INCREMENT,
			name               VARCHAR(255)  COLLATE utf8mb4_bin NOT NULL,
			description        TEXT          NULL,
			map_x              DOUBLE        NULL,
			map_y              DOUBLE        NULL,
			map_z              DOUBLE        NULL,
			map_icon           VARCHAR(255)  NULL,
			area_view_type     VARCHAR(16)   NOT NULL DEFAULT 'IMAGE',
			area_configuration MEDIUMTEXT    NULL,
			image_path         VARCHAR(1024) NULL,
			parent_area_id     BIGINT        NULL,
			parent_key         BIGINT        AS (COALESCE(parent_area_id, 0)) STORED,
			project_id         BIGINT        NOT NULL,
			entity_version     BIGINT        NOT NULL DEFAULT 1,
			entity_create_date DATETIME(6)   NOT NULL,
			entity_modify_date DATETIME(6)   NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY area_key_uq (project_id, parent_key, name),
			KEY area_parent_idx (parent_area_id),
			CONSTRAINT area_parent_fk
				FOREIGN KEY (parent_area_id) REFERENCES area (id) ON DELETE CASCADE,
			CONSTRAINT area_project_fk
				FOREIGN KEY (project_id) REFERENCES project (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,

		`CREATE TABLE IF NOT EXISTS area_device (
			id        BIGINT NOT NULL AUTO_INCREMENT,
			area_id   BIGINT NOT NULL,
			device_id BIGINT NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY area_device_uq (area_id, device_id),
			CONSTRAINT area_device_area_fk
				FOREIGN KEY (area_id) REFERENCES area (id) ON DELETE CASCADE,
			CONSTRAINT area_device_device_fk
				FOREIGN KEY (device_id) REFERENCES device (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	}

	// DDL commits implicitly in MySQL, so statements run one by one.
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *MySQLAreaRepository) HealthCheck(ctx context.Context) error {
	if err := pingWithTimeout(ctx, s.db, time.Second); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}
	return nil
}

func (s *MySQLAreaRepository) GetInfo(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var ver, now string
	if err := s.db.QueryRowContext(ctx, `SELECT version(), DATE_FORMAT(now(), '%Y-%m-%d %H:%i:%s')`).Scan(&ver, &now); err != nil {
		return "", err
	}
	return fmt.Sprintf("Connected to MySQL version: '%s', database time: '%s'", ver, now), nil
}

func (s *MySQLAreaRepository) Close() error {
	return s.db.Close()
}
