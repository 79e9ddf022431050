package product

import (
	"context"
	"fmt"
	"terea-store/internal/logger"
	"terea-store/internal/metrics"
	"terea-store/internal/utils"
	"terea-store/internal/validation"

	"go.uber.org/zap"
)

// catalogPage is the window used when the whole catalog is requested at once.
var catalogPage = utils.Page{Skip: 0, Limit: utils.MaxLimit}

type Service interface {
	GetCatalog(ctx context.Context) (*Catalog, error)

	ListDevices(ctx context.Context, page utils.Page) ([]*Device, int64, error)
	GetDevice(ctx context.Context, id int64) (*Device, error)
	CreateDevice(ctx context.Context, input DeviceInput) (*Device, error)
	UpdateDevice(ctx context.Context, id int64, input DeviceInput) (*Device, error)
	DeleteDevice(ctx context.Context, id int64) error

	ListHeatedDevices(ctx context.Context, page utils.Page) ([]*HeatedDevice, int64, error)
	GetHeatedDevice(ctx context.Context, id int64) (*HeatedDevice, error)
	CreateHeatedDevice(ctx context.Context, input HeatedDeviceInput) (*HeatedDevice, error)
	UpdateHeatedDevice(ctx context.Context, id int64, input HeatedDeviceInput) (*HeatedDevice, error)
	DeleteHeatedDevice(ctx context.Context, id int64) error

	ListSticks(ctx context.Context, page utils.Page) ([]*Stick, int64, error)
	GetStick(ctx context.Context, id int64) (*Stick, error)
	CreateStick(ctx context.Context, input StickInput) (*Stick, error)
	UpdateStick(ctx context.Context, id int64, input StickInput) (*Stick, error)
	DeleteStick(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validPage(page utils.Page) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func validInput(input any) error {
	if err := validation.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (s *service) GetCatalog(ctx context.Context) (*Catalog, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetCatalog"),
	)
	timer := metrics.StartTimer()

	devices, _, err := s.repo.ListDevices(ctx, catalogPage)
	if err != nil {
		log.Error("failed to list devices", zap.Error(err))
		return nil, err
	}

	heated, _, err := s.repo.ListHeatedDevices(ctx, catalogPage)
	if err != nil {
		log.Error("failed to list heated devices", zap.Error(err))
		return nil, err
	}

	sticks, _, err := s.repo.ListSticks(ctx, catalogPage)
	if err != nil {
		log.Error("failed to list sticks", zap.Error(err))
		return nil, err
	}

	log.Info("catalog loaded",
		zap.Int("devices", len(devices)),
		zap.Int("heated_devices", len(heated)),
		zap.Int("sticks", len(sticks)),
		zap.Duration("duration", timer.Duration()),
	)

	return &Catalog{Devices: devices, HeatedDevices: heated, Sticks: sticks}, nil
}

// ---------- DEVICES ----------

func (s *service) ListDevices(ctx context.Context, page utils.Page) ([]*Device, int64, error) {
	if err := validPage(page); err != nil {
		return nil, 0, err
	}
	return s.repo.ListDevices(ctx, page)
}

func (s *service) GetDevice(ctx context.Context, id int64) (*Device, error) {
	return s.repo.GetDevice(ctx, id)
}

func (s *service) CreateDevice(ctx context.Context, input DeviceInput) (*Device, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateDevice(ctx, input.ToDevice())
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("device created", zap.String("layer", "service"), zap.Int64("id", id))
	return s.repo.GetDevice(ctx, id)
}

func (s *service) UpdateDevice(ctx context.Context, id int64, input DeviceInput) (*Device, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDevice(ctx, id, input.ToDevice()); err != nil {
		return nil, err
	}
	return s.repo.GetDevice(ctx, id)
}

func (s *service) DeleteDevice(ctx context.Context, id int64) error {
	return s.repo.DeleteDevice(ctx, id)
}

// ---------- HEATED DEVICES ----------

func (s *service) ListHeatedDevices(ctx context.Context, page utils.Page) ([]*HeatedDevice, int64, error) {
	if err := validPage(page); err != nil {
		return nil, 0, err
	}
	return s.repo.ListHeatedDevices(ctx, page)
}

func (s *service) GetHeatedDevice(ctx context.Context, id int64) (*HeatedDevice, error) {
	return s.repo.GetHeatedDevice(ctx, id)
}

func (s *service) CreateHeatedDevice(ctx context.Context, input HeatedDeviceInput) (*HeatedDevice, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateHeatedDevice(ctx, input.ToHeatedDevice())
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("heated device created", zap.String("layer", "service"), zap.Int64("id", id))
	return s.repo.GetHeatedDevice(ctx, id)
}

func (s *service) UpdateHeatedDevice(ctx context.Context, id int64, input HeatedDeviceInput) (*HeatedDevice, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateHeatedDevice(ctx, id, input.ToHeatedDevice()); err != nil {
		return nil, err
	}
	return s.repo.GetHeatedDevice(ctx, id)
}

func (s *service) DeleteHeatedDevice(ctx context.Context, id int64) error {
	return s.repo.DeleteHeatedDevice(ctx, id)
}

// ---------- STICKS ----------

func (s *service) ListSticks(ctx context.Context, page utils.Page) ([]*Stick, int64, error) {
	if err := validPage(page); err != nil {
		return nil, 0, err
	}
	return s.repo.ListSticks(ctx, page)
}

func (s *service) GetStick(ctx context.Context, id int64) (*Stick, error) {
	return s.repo.GetStick(ctx, id)
}

func (s *service) CreateStick(ctx context.Context, input StickInput) (*Stick, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateStick(ctx, input.ToStick())
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("stick created", zap.String("layer", "service"), zap.Int64("id", id))
	return s.repo.GetStick(ctx, id)
}

func (s *service) UpdateStick(ctx context.Context, id int64, input StickInput) (*Stick, error) {
	if err := validInput(input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStick(ctx, id, input.ToStick()); err != nil {
		return nil, err
	}
	return s.repo.GetStick(ctx, id)
}

func (s *service) DeleteStick(ctx context.Context, id int64) error {
	return s.repo.DeleteStick(ctx, id)
}
