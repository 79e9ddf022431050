package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"terea-store/internal/logger"
	"terea-store/internal/utils"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListDevices(ctx context.Context, page utils.Page) ([]*Device, int64, error)
	GetDevice(ctx context.Context, id int64) (*Device, error)
	CreateDevice(ctx context.Context, d *Device) (int64, error)
	UpdateDevice(ctx context.Context, id int64, d *Device) error
	DeleteDevice(ctx context.Context, id int64) error

	ListHeatedDevices(ctx context.Context, page utils.Page) ([]*HeatedDevice, int64, error)
	GetHeatedDevice(ctx context.Context, id int64) (*HeatedDevice, error)
	CreateHeatedDevice(ctx context.Context, d *HeatedDevice) (int64, error)
	UpdateHeatedDevice(ctx context.Context, id int64, d *HeatedDevice) error
	DeleteHeatedDevice(ctx context.Context, id int64) error

	ListSticks(ctx context.Context, page utils.Page) ([]*Stick, int64, error)
	GetStick(ctx context.Context, id int64) (*Stick, error)
	CreateStick(ctx context.Context, s *Stick) (int64, error)
	UpdateStick(ctx context.Context, id int64, s *Stick) error
	DeleteStick(ctx context.Context, id int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const foreignKeyViolation = "23503"

type rowScanner interface {
	Scan(dest ...any) error
}

// table describes how one product line is stored.
type table struct {
	name          string
	categoryTable string
	extraColumns  []string
}

var (
	devicesTable = table{
		name:          "devices",
		categoryTable: "device_categories",
		extraColumns:  []string{"color"},
	}
	heatedDevicesTable = table{
		name:          "heated_devices",
		categoryTable: "heated_device_categories",
		extraColumns:  []string{"model", "color", "is_exclusive", "sale_price"},
	}
	sticksTable = table{
		name:          "sticks",
		categoryTable: "stick_categories",
		extraColumns:  []string{"pack_image", "pack_price", "has_capsule", "flavors", "country", "brand", "strength"},
	}
)

var baseColumns = []string{
	"name", "description", "image", "price", "in_stock", "is_new", "is_hit", "ref", "type", "category_id",
}

func (t table) selectSQL() string {
	cols := make([]string, 0, len(t.extraColumns)+12)
	cols = append(cols, "p.id")
	for _, c := range baseColumns {
		cols = append(cols, "p."+c)
	}
	cols = append(cols, "c.name")
	for _, c := range t.extraColumns {
		cols = append(cols, "p."+c)
	}
	return "SELECT " + strings.Join(cols, ", ") +
		" FROM " + t.name + " p JOIN " + t.categoryTable + " c ON c.id = p.category_id"
}

func (t table) writeColumns() []string {
	return append(append([]string{}, baseColumns...), t.extraColumns...)
}

func (t table) insertSQL() string {
	cols := t.writeColumns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return "INSERT INTO " + t.name + " (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.Join(placeholders, ", ") + ") RETURNING id"
}

func (t table) updateSQL() string {
	cols := t.writeColumns()
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return "UPDATE " + t.name + " SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE id = $%d", len(cols)+1)
}

func baseDest(b *Base) []any {
	return []any{
		&b.ID, &b.Name, &b.Description, &b.Image, &b.Price, &b.InStock, &b.IsNew, &b.IsHit,
		&b.Ref, &b.Type, &b.CategoryID, &b.Category.Name,
	}
}

func baseArgs(b *Base) []any {
	return []any{
		b.Name, b.Description, b.Image, b.Price, b.InStock, b.IsNew, b.IsHit, b.Ref, b.Type, b.CategoryID,
	}
}

func scanDevice(row rowScanner) (*Device, error) {
	var d Device
	dest := append(baseDest(&d.Base), &d.Color)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	d.Category.ID = d.CategoryID
	return &d, nil
}

func scanHeatedDevice(row rowScanner) (*HeatedDevice, error) {
	var d HeatedDevice
	dest := append(baseDest(&d.Base), &d.Model, &d.Color, &d.IsExclusive, &d.SalePrice)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	d.Category.ID = d.CategoryID
	return &d, nil
}

func scanStick(row rowScanner) (*Stick, error) {
	var s Stick
	dest := append(baseDest(&s.Base),
		&s.PackImage, &s.PackPrice, &s.HasCapsule, pq.Array(&s.Flavors), &s.Country, &s.Brand, &s.Strength,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	s.Category.ID = s.CategoryID
	return &s, nil
}

func listRows[T any](
	ctx context.Context,
	db *sql.DB,
	t table,
	page utils.Page,
	scan func(rowScanner) (*T, error),
) ([]*T, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("table", t.name),
		zap.Int("skip", page.Skip),
		zap.Int("limit", page.Limit),
	)

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.name).Scan(&total); err != nil {
		log.Error("DB count failed", zap.Error(err))
		return nil, 0, err
	}

	rows, err := db.QueryContext(ctx,
		t.selectSQL()+" ORDER BY p.id DESC LIMIT $1 OFFSET $2",
		page.Limit, page.Skip,
	)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]*T, 0, page.Limit)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, 0, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, 0, err
	}

	log.Debug("products listed", zap.Int("count", len(items)), zap.Int64("total", total))
	return items, total, nil
}

func getRow[T any](ctx context.Context, db *sql.DB, t table, id int64, scan func(rowScanner) (*T, error)) (*T, error) {
	item, err := scan(db.QueryRowContext(ctx, t.selectSQL()+" WHERE p.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load product",
			zap.String("table", t.name),
			zap.Int64("id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return item, nil
}

func (r *repository) insert(ctx context.Context, t table, args []any) (int64, error) {
	var id int64
	if err := r.db.QueryRowContext(ctx, t.insertSQL(), args...).Scan(&id); err != nil {
		return 0, mapWriteError(ctx, t, err)
	}
	return id, nil
}

func (r *repository) update(ctx context.Context, t table, id int64, args []any) error {
	res, err := r.db.ExecContext(ctx, t.updateSQL(), append(args, id)...)
	if err != nil {
		return mapWriteError(ctx, t, err)
	}
	return expectOneRow(res)
}

func (r *repository) delete(ctx context.Context, t table, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.String("table", t.name), zap.Error(err))
		return err
	}
	return expectOneRow(res)
}

func mapWriteError(ctx context.Context, t table, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return ErrUnknownCategory
	}
	logger.FromCtx(ctx).Error("failed to write product", zap.String("table", t.name), zap.Error(err))
	return err
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---------- DEVICES ----------

func (r *repository) ListDevices(ctx context.Context, page utils.Page) ([]*Device, int64, error) {
	return listRows(ctx, r.db, devicesTable, page, scanDevice)
}

func (r *repository) GetDevice(ctx context.Context, id int64) (*Device, error) {
	return getRow(ctx, r.db, devicesTable, id, scanDevice)
}

func (r *repository) CreateDevice(ctx context.Context, d *Device) (int64, error) {
	return r.insert(ctx, devicesTable, append(baseArgs(&d.Base), d.Color))
}

func (r *repository) UpdateDevice(ctx context.Context, id int64, d *Device) error {
	return r.update(ctx, devicesTable, id, append(baseArgs(&d.Base), d.Color))
}

func (r *repository) DeleteDevice(ctx context.Context, id int64) error {
	return r.delete(ctx, devicesTable, id)
}

// ---------- HEATED DEVICES ----------

func heatedDeviceArgs(d *HeatedDevice) []any {
	return append(baseArgs(&d.Base), d.Model, d.Color, d.IsExclusive, d.SalePrice)
}

func (r *repository) ListHeatedDevices(ctx context.Context, page utils.Page) ([]*HeatedDevice, int64, error) {
	return listRows(ctx, r.db, heatedDevicesTable, page, scanHeatedDevice)
}

func (r *repository) GetHeatedDevice(ctx context.Context, id int64) (*HeatedDevice, error) {
	return getRow(ctx, r.db, heatedDevicesTable, id, scanHeatedDevice)
}

func (r *repository) CreateHeatedDevice(ctx context.Context, d *HeatedDevice) (int64, error) {
	return r.insert(ctx, heatedDevicesTable, heatedDeviceArgs(d))
}

func (r *repository) UpdateHeatedDevice(ctx context.Context, id int64, d *HeatedDevice) error {
	return r.update(ctx, heatedDevicesTable, id, heatedDeviceArgs(d))
}

func (r *repository) DeleteHeatedDevice(ctx context.Context, id int64) error {
	return r.delete(ctx, heatedDevicesTable, id)
}

// ---------- STICKS ----------

func stickArgs(s *Stick) []any {
	return append(baseArgs(&s.Base),
		s.PackImage, s.PackPrice, s.HasCapsule, pq.Array(s.Flavors), s.Country, s.Brand, s.Strength,
	)
}

func (r *repository) ListSticks(ctx context.Context, page utils.Page) ([]*Stick, int64, error) {
	return listRows(ctx, r.db, sticksTable, page, scanStick)
}

func (r *repository) GetStick(ctx context.Context, id int64) (*Stick, error) {
	return getRow(ctx, r.db, sticksTable, id, scanStick)
}

func (r *repository) CreateStick(ctx context.Context, s *Stick) (int64, error) {
	return r.insert(ctx, sticksTable, stickArgs(s))
}

func (r *repository) UpdateStick(ctx context.Context, id int64, s *Stick) error {
	return r.update(ctx, sticksTable, id, stickArgs(s))
}

func (r *repository) DeleteStick(ctx context.Context, id int64) error {
	return r.delete(ctx, sticksTable, id)
}
