package areas

import (
	"area-api/internal/app/ports"
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

type SQLDialect string

const (
	SQLDialectMySQL  SQLDialect = "mysql"
	SQLDialectSQLite SQLDialect = "sqlite"
)

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func int64OrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func nullInt64ToPtr(ni sql.NullInt64) *int64 {
	if ni.Valid {
		return &ni.Int64
	}
	return nil
}

// timeArg converts t to what the dialect stores: DATETIME(6) for MySQL, RFC3339 text for SQLite.
func timeArg(dialect SQLDialect, t time.Time) any {
	if dialect == SQLDialectMySQL {
		return t.UTC()
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func newTimeDest(dialect SQLDialect) any {
	if dialect == SQLDialectMySQL {
		return new(time.Time)
	}
	return new(string)
}

func timeFromDest(dest any) (time.Time, error) {
	switch v := dest.(type) {
	case *time.Time:
		return v.UTC(), nil
	case *string:
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(*v))
		if err != nil {
			return time.Time{}, fmt.Errorf("parse stored time %q: %w", *v, err)
		}
		return t.UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time destination %T", dest)
	}
}

// pingWithTimeout verifies the DB is reachable.
func pingWithTimeout(ctx context.Context, db *sql.DB, d time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return db.PingContext(ctx)
}

// inClause returns "(?,?,...)" with one placeholder per id and the matching args.
func inClause(ids []int64) (string, []any) {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return "(" + strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",") + ")", args
}

func scanProject(scan func(dest ...any) error, dialect SQLDialect) (ports.Project, error) {
	res := ports.Project{}
	var description sql.NullString
	created, modified := newTimeDest(dialect), newTimeDest(dialect)
	if err := scan(&res.ID, &res.Name, &description, &res.OwnerUserID, &res.EntityVersion, created, modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, ports.ErrNotFound
		}
		return res, err
	}
	res.Description = nullStringToPtr(description)
	var err error
	if res.EntityCreateDate, err = timeFromDest(created); err != nil {
		return res, err
	}
	if res.EntityModifyDate, err = timeFromDest(modified); err != nil {
		return res, err
	}
	return res, nil
}

func scanDevice(scan func(dest ...any) error, dialect SQLDialect) (ports.Device, error) {
	res := ports.Device{}
	var description sql.NullString
	created, modified := newTimeDest(dialect), newTimeDest(dialect)
	if err := scan(&res.ID, &res.DeviceName, &description, &res.ProjectID, &res.EntityVersion, created, modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, ports.ErrNotFound
		}
		return res, err
	}
	res.Description = nullStringToPtr(description)
	var err error
	if res.EntityCreateDate, err = timeFromDest(created); err != nil {
		return res, err
	}
	if res.EntityModifyDate, err = timeFromDest(modified); err != nil {
		return res, err
	}
	return res, nil
}

// scanArea maps a single row selected with areaColumns into a ports.Area.
func scanArea(scan func(dest ...any) error, dialect SQLDialect) (ports.Area, error) {
	res := ports.Area{}
	var (
		description, icon, configuration, imagePath sql.NullString
		mapX, mapY, mapZ                            sql.NullFloat64
		parent                                      sql.NullInt64
		viewType                                    string
	)
	created, modified := newTimeDest(dialect), newTimeDest(dialect)
	if err := scan(&res.ID, &res.Name, &description, &mapX, &mapY, &mapZ, &icon, &viewType,
		&configuration, &imagePath, &parent, &res.ProjectID, &res.EntityVersion, created, modified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, ports.ErrNotFound
		}
		return res, err
	}
	res.Description = nullStringToPtr(description)
	res.AreaConfiguration = nullStringToPtr(configuration)
	res.ImagePath = nullStringToPtr(imagePath)
	res.ParentAreaID = nullInt64ToPtr(parent)
	res.AreaViewType = ports.AreaViewType(viewType)
	if mapX.Valid || mapY.Valid || mapZ.Valid || icon.Valid {
		res.MapInfo = &ports.MapInfo{X: mapX.Float64, Y: mapY.Float64, Z: mapZ.Float64, Icon: icon.String}
	}
	var err error
	if res.EntityCreateDate, err = timeFromDest(created); err != nil {
		return res, err
	}
	if res.EntityModifyDate, err = timeFromDest(modified); err != nil {
		return res, err
	}
	return res, nil
}

func mapInfoArgs(mi *ports.MapInfo) (x, y, z, icon any) {
	if mi == nil {
		return nil, nil, nil, nil
	}
	return mi.X, mi.Y, mi.Z, mi.Icon
}

func isDuplicateSQLite(err error) bool {
	if err == nil {
		return false
	}
	// modernc.org/sqlite returns messages like: "UNIQUE constraint failed: area.project_id, ..."
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "constraint failed: primary key")
}

func isForeignKeySQLite(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func mysqlErrorNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

func isDuplicateMySQL(err error) bool {
	return err != nil && mysqlErrorNumber(err) == 1062
}

// isForeignKeyMySQL matches ER_NO_REFERENCED_ROW_2 (a referenced parent row is missing).
func isForeignKeyMySQL(err error) bool {
	return err != nil && mysqlErrorNumber(err) == 1452
}

// registerMySQLTLSFromCA registers a custom TLS config using a CA file or directory (PEM).
// Returns the registered TLS profile name to be used via `tls=<name>` in DSN.
func registerMySQLTLSFromCA(caPath string) (string, error) {
	certPool := x509.NewCertPool()

	fi, err := os.Stat(caPath)
	if err != nil {
		return "", fmt.Errorf("stat CA path: %w", err)
	}

	loadFile := func(p string) error {
		pemBytes, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read CA file %s: %w", p, err)
		}
		if ok := certPool.AppendCertsFromPEM(pemBytes); !ok {
			return fmt.Errorf("no valid certs in %s", p)
		}
		return nil
	}

	if fi.IsDir() {
		entries, err := os.ReadDir(caPath)
		if err != nil {
			return "", fmt.Errorf("read CA dir: %w", err)
		}
		found := false
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(name, ".pem") || strings.HasSuffix(name, ".crt") || strings.HasSuffix(name, ".cert") {
				if err := loadFile(filepath.Join(caPath, name)); err != nil {
					return "", err
				}
				found = true
			}
		}
		if !found {
			return "", fmt.Errorf("no PEM files found in %s", caPath)
		}
	} else if err := loadFile(caPath); err != nil {
		return "", err
	}

	const tlsName = "area-api-mysql-custom"
	if err := mysql.RegisterTLSConfig(tlsName, &tls.Config{
		RootCAs:    certPool,
		MinVersion: tls.VersionTLS12,
	}); err != nil {
		return "", fmt.Errorf("register mysql tls config: %w", err)
	}
	return tlsName, nil
}
