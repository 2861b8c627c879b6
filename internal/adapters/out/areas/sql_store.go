package areas

import (
	"area-api/internal/app/ports"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	projectColumns = `id, name, description, owner_user_id, entity_version, entity_create_date, entity_modify_date`
	deviceColumns  = `id, device_name, description, project_id, entity_version, entity_create_date, entity_modify_date`
	areaColumns    = `id, name, description, map_x, map_y, map_z, map_icon, area_view_type,
		area_configuration, image_path, parent_area_id, project_id, entity_version, entity_create_date, entity_modify_date`
	areaDeviceColumns = `id, area_id, device_id`
)

// sqlStore holds the queries shared by the SQLite and MySQL repositories.
// Both drivers accept '?' placeholders and LIMIT/OFFSET.
type sqlStore struct {
	db           *sql.DB
	dialect      SQLDialect
	queryTimeout time.Duration
}

func (s *sqlStore) isDuplicate(err error) bool {
	if s.dialect == SQLDialectMySQL {
		return isDuplicateMySQL(err)
	}
	return isDuplicateSQLite(err)
}

func (s *sqlStore) isMissingReference(err error) bool {
	if s.dialect == SQLDialectMySQL {
		return isForeignKeyMySQL(err)
	}
	return isForeignKeySQLite(err)
}

// writeError translates constraint violations into port errors.
func (s *sqlStore) writeError(what string, err error) error {
	switch {
	case s.isDuplicate(err):
		return fmt.Errorf("%s: %w", what, ports.ErrAlreadyExists)
	case s.isMissingReference(err):
		return fmt.Errorf("%s: referenced entity: %w", what, ports.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func (s *sqlStore) now() time.Time {
	// MySQL DATETIME(6) keeps microseconds only.
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *sqlStore) execAffecting(ctx context.Context, q string, args ...any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// -------- Projects --------

func (s *sqlStore) ListProjects(ctx context.Context) ([]ports.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM project ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := make([]ports.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows.Scan, s.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *sqlStore) GetProject(ctx context.Context, id int64) (ports.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM project WHERE id = ?`, id)
	return scanProject(row.Scan, s.dialect)
}

func (s *sqlStore) AddProject(ctx context.Context, project ports.Project) (ports.Project, error) {
	now := s.now()
	project.EntityVersion = 1
	project.EntityCreateDate, project.EntityModifyDate = now, now
	_, err := s.execAffecting(ctx,
		`INSERT INTO project (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		project.ID, project.Name, stringOrNil(project.Description), project.OwnerUserID,
		project.EntityVersion, timeArg(s.dialect, now), timeArg(s.dialect, now))
	if err != nil {
		return ports.Project{}, s.writeError(fmt.Sprintf("add project %d", project.ID), err)
	}
	return project, nil
}

func (s *sqlStore) UpdateProject(ctx context.Context, project ports.Project) (ports.Project, error) {
	project.EntityModifyDate = s.now()
	n, err := s.execAffecting(ctx,
		`UPDATE project SET name = ?, description = ?, owner_user_id = ?, entity_version = ?, entity_modify_date = ? WHERE id = ?`,
		project.Name, stringOrNil(project.Description), project.OwnerUserID, project.EntityVersion,
		timeArg(s.dialect, project.EntityModifyDate), project.ID)
	if err != nil {
		return ports.Project{}, s.writeError(fmt.Sprintf("update project %d", project.ID), err)
	}
	if n == 0 {
		return ports.Project{}, fmt.Errorf("project %d: %w", project.ID, ports.ErrNotFound)
	}
	return project, nil
}

func (s *sqlStore) DeleteProject(ctx context.Context, id int64) error {
	n, err := s.execAffecting(ctx, `DELETE FROM project WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("project %d: %w", id, ports.ErrNotFound)
	}
	return nil
}

// -------- Devices --------

func (s *sqlStore) listDevices(ctx context.Context, q string, args ...any) ([]ports.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := make([]ports.Device, 0)
	for rows.Next() {
		d, err := scanDevice(rows.Scan, s.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *sqlStore) ListDevices(ctx context.Context) ([]ports.Device, error) {
	return s.listDevices(ctx, `SELECT `+deviceColumns+` FROM device ORDER BY id`)
}

func (s *sqlStore) ListProjectDevices(ctx context.Context, projectID int64) ([]ports.Device, error) {
	return s.listDevices(ctx, `SELECT `+deviceColumns+` FROM device WHERE project_id = ? ORDER BY id`, projectID)
}

func (s *sqlStore) GetDevice(ctx context.Context, id int64) (ports.Device, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	row := s.db.QueryRowContext(ctx, `SELECT `+deviceColumns+` FROM device WHERE id = ?`, id)
	return scanDevice(row.Scan, s.dialect)
}

func (s *sqlStore) AddDevice(ctx context.Context, device ports.Device) (ports.Device, error) {
	now := s.now()
	device.EntityVersion = 1
	device.EntityCreateDate, device.EntityModifyDate = now, now
	_, err := s.execAffecting(ctx,
		`INSERT INTO device (`+deviceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		device.ID, device.DeviceName, stringOrNil(device.Description), device.ProjectID,
		device.EntityVersion, timeArg(s.dialect, now), timeArg(s.dialect, now))
	if err != nil {
		return ports.Device{}, s.writeError(fmt.Sprintf("add device %d", device.ID), err)
	}
	return device, nil
}

func (s *sqlStore) UpdateDevice(ctx context.Context, device ports.Device) (ports.Device, error) {
	device.EntityModifyDate = s.now()
	n, err := s.execAffecting(ctx,
		`UPDATE device SET device_name = ?, description = ?, project_id = ?, entity_version = ?, entity_modify_date = ? WHERE id = ?`,
		device.DeviceName, stringOrNil(device.Description), device.ProjectID, device.EntityVersion,
		timeArg(s.dialect, device.EntityModifyDate), device.ID)
	if err != nil {
		return ports.Device{}, s.writeError(fmt.Sprintf("update device %d", device.ID), err)
	}
	if n == 0 {
		return ports.Device{}, fmt.Errorf("device %d: %w", device.ID, ports.ErrNotFound)
	}
	return device, nil
}

func (s *sqlStore) DeleteDevice(ctx context.Context, id int64) error {
	n, err := s.execAffecting(ctx, `DELETE FROM device WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete device %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("device %d: %w", id, ports.ErrNotFound)
	}
	return nil
}

// -------- Areas --------

// areaWhere renders the WHERE clause of q; ok is false when q can match nothing.
func areaWhere(q ports.AreaQuery) (where string, args []any, ok bool) {
	if q.AllProjects {
		return "", nil, true
	}
	if len(q.ProjectIDs) == 0 {
		return "", nil, false
	}
	in, args := inClause(q.ProjectIDs)
	return " WHERE project_id IN " + in, args, true
}

func (s *sqlStore) queryAreas(ctx context.Context, q string, args ...any) ([]ports.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := make([]ports.Area, 0)
	for rows.Next() {
		a, err := scanArea(rows.Scan, s.dialect)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *sqlStore) ListAreas(ctx context.Context, q ports.AreaQuery) ([]ports.Area, error) {
	where, args, ok := areaWhere(q)
	if !ok {
		return []ports.Area{}, nil
	}
	query := `SELECT ` + areaColumns + ` FROM area` + where + ` ORDER BY id`
	if q.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, q.Limit, q.Offset)
	}
	return s.queryAreas(ctx, query, args...)
}

func (s *sqlStore) CountAreas(ctx context.Context, q ports.AreaQuery) (int, error) {
	where, args, ok := areaWhere(q)
	if !ok {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM area`+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *sqlStore) ListChildAreas(ctx context.Context, parentID int64) ([]ports.Area, error) {
	return s.queryAreas(ctx, `SELECT `+areaColumns+` FROM area WHERE parent_area_id = ? ORDER BY id`, parentID)
}

func (s *sqlStore) GetArea(ctx context.Context, id int64) (ports.Area, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	row := s.db.QueryRowContext(ctx, `SELECT `+areaColumns+` FROM area WHERE id = ?`, id)
	return scanArea(row.Scan, s.dialect)
}

func (s *sqlStore) FindAreaByKey(ctx context.Context, projectID int64, parentID *int64, name string) (ports.Area, error) {
	var parentKey int64
	if parentID != nil {
		parentKey = *parentID
	}
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	row := s.db.QueryRowContext(ctx,
		`SELECT `+areaColumns+` FROM area WHERE project_id = ? AND COALESCE(parent_area_id, 0) = ? AND name = ?`,
		projectID, parentKey, name)
	return scanArea(row.Scan, s.dialect)
}

func (s *sqlStore) AddArea(ctx context.Context, area ports.Area) (ports.Area, error) {
	now := s.now()
	area.EntityVersion = 1
	area.EntityCreateDate, area.EntityModifyDate = now, now
	x, y, z, icon := mapInfoArgs(area.MapInfo)

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO area (name, description, map_x, map_y, map_z, map_icon, area_view_type,
			area_configuration, image_path, parent_area_id, project_id, entity_version, entity_create_date, entity_modify_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		area.Name, stringOrNil(area.Description), x, y, z, icon, string(area.AreaViewType),
		stringOrNil(area.AreaConfiguration), stringOrNil(area.ImagePath), int64OrNil(area.ParentAreaID),
		area.ProjectID, area.EntityVersion, timeArg(s.dialect, now), timeArg(s.dialect, now))
	if err != nil {
		return ports.Area{}, s.writeError(fmt.Sprintf("add area %q", area.Name), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return ports.Area{}, fmt.Errorf("add area %q: last insert id: %w", area.Name, err)
	}
	area.ID = id
	return area, nil
}

func (s *sqlStore) UpdateArea(ctx context.Context, area ports.Area, expectedVersion int64) (ports.Area, error) {
	area.EntityModifyDate = s.now()
	x, y, z, icon := mapInfoArgs(area.MapInfo)
	n, err := s.execAffecting(ctx,
		`UPDATE area SET name = ?, description = ?, map_x = ?, map_y = ?, map_z = ?, map_icon = ?, area_view_type = ?,
			area_configuration = ?, image_path = ?, parent_area_id = ?, project_id = ?, entity_version = ?, entity_modify_date = ?
		WHERE id = ? AND entity_version = ?`,
		area.Name, stringOrNil(area.Description), x, y, z, icon, string(area.AreaViewType),
		stringOrNil(area.AreaConfiguration), stringOrNil(area.ImagePath), int64OrNil(area.ParentAreaID),
		area.ProjectID, area.EntityVersion, timeArg(s.dialect, area.EntityModifyDate),
		area.ID, expectedVersion)
	if err != nil {
		return ports.Area{}, s.writeError(fmt.Sprintf("update area %d", area.ID), err)
	}
	if n == 0 {
		if _, err := s.GetArea(ctx, area.ID); err != nil {
			return ports.Area{}, fmt.Errorf("area %d: %w", area.ID, err)
		}
		return ports.Area{}, fmt.Errorf("area %d version %d: %w", area.ID, expectedVersion, ports.ErrConflict)
	}
	return area, nil
}

func (s *sqlStore) DeleteArea(ctx context.Context, id int64) error {
	n, err := s.execAffecting(ctx, `DELETE FROM area WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete area %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("area %d: %w", id, ports.ErrNotFound)
	}
	return nil
}

// -------- Area devices --------

func (s *sqlStore) ListAreaDevices(ctx context.Context, areaID int64) ([]ports.AreaDevice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	rows, err := s.db.QueryContext(ctx, `SELECT `+areaDeviceColumns+` FROM area_device WHERE area_id = ? ORDER BY id`, areaID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	out := make([]ports.AreaDevice, 0)
	for rows.Next() {
		var ad ports.AreaDevice
		if err := rows.Scan(&ad.ID, &ad.AreaID, &ad.DeviceID); err != nil {
			return nil, err
		}
		out = append(out, ad)
	}
	return out, rows.Err()
}

func (s *sqlStore) GetAreaDevice(ctx context.Context, id int64) (ports.AreaDevice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	var ad ports.AreaDevice
	err := s.db.QueryRowContext(ctx, `SELECT `+areaDeviceColumns+` FROM area_device WHERE id = ?`, id).
		Scan(&ad.ID, &ad.AreaID, &ad.DeviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return ad, fmt.Errorf("area device %d: %w", id, ports.ErrNotFound)
	}
	return ad, err
}

func (s *sqlStore) AddAreaDevice(ctx context.Context, ad ports.AreaDevice) (ports.AreaDevice, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()
	res, err := s.db.ExecContext(ctx, `INSERT INTO area_device (area_id, device_id) VALUES (?, ?)`, ad.AreaID, ad.DeviceID)
	if err != nil {
		return ports.AreaDevice{}, s.writeError(fmt.Sprintf("add device %d to area %d", ad.DeviceID, ad.AreaID), err)
	}
	if ad.ID, err = res.LastInsertId(); err != nil {
		return ports.AreaDevice{}, err
	}
	return ad, nil
}

func (s *sqlStore) DeleteAreaDevice(ctx context.Context, id int64) error {
	n, err := s.execAffecting(ctx, `DELETE FROM area_device WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete area device %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("area device %d: %w", id, ports.ErrNotFound)
	}
	return nil
}
