package handler

import (
	"context"
	"terea-store/internal/category"
	"terea-store/internal/metrics"
	"terea-store/internal/order"
	"terea-store/internal/product"
	"terea-store/internal/user"
	"terea-store/internal/utils"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetCatalog(ctx context.Context) (*product.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Catalog), args.Error(1)
}

func (m *MockProductService) ListDevices(ctx context.Context, page utils.Page) ([]*product.Device, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*product.Device), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) GetDevice(ctx context.Context, id int64) (*product.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Device), args.Error(1)
}

func (m *MockProductService) CreateDevice(ctx context.Context, input product.DeviceInput) (*product.Device, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Device), args.Error(1)
}

func (m *MockProductService) UpdateDevice(ctx context.Context, id int64, input product.DeviceInput) (*product.Device, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Device), args.Error(1)
}

func (m *MockProductService) DeleteDevice(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) ListHeatedDevices(ctx context.Context, page utils.Page) ([]*product.HeatedDevice, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*product.HeatedDevice), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) GetHeatedDevice(ctx context.Context, id int64) (*product.HeatedDevice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.HeatedDevice), args.Error(1)
}

func (m *MockProductService) CreateHeatedDevice(ctx context.Context, input product.HeatedDeviceInput) (*product.HeatedDevice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.HeatedDevice), args.Error(1)
}

func (m *MockProductService) UpdateHeatedDevice(ctx context.Context, id int64, input product.HeatedDeviceInput) (*product.HeatedDevice, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.HeatedDevice), args.Error(1)
}

func (m *MockProductService) DeleteHeatedDevice(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductService) ListSticks(ctx context.Context, page utils.Page) ([]*product.Stick, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*product.Stick), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) GetStick(ctx context.Context, id int64) (*product.Stick, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Stick), args.Error(1)
}

func (m *MockProductService) CreateStick(ctx context.Context, input product.StickInput) (*product.Stick, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Stick), args.Error(1)
}

func (m *MockProductService) UpdateStick(ctx context.Context, id int64, input product.StickInput) (*product.Stick, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Stick), args.Error(1)
}

func (m *MockProductService) DeleteStick(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, line category.Line, page utils.Page) ([]*category.Category, int64, error) {
	args := m.Called(ctx, line, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*category.Category), args.Get(1).(int64), args.Error(2)
}

func (m *MockCategoryService) Get(ctx context.Context, line category.Line, id int64) (*category.Category, error) {
	args := m.Called(ctx, line, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, line category.Line, input category.Input) (*category.Category, error) {
	args := m.Called(ctx, line, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, line category.Line, id int64, input category.Input) (*category.Category, error) {
	args := m.Called(ctx, line, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, line category.Line, id int64) error {
	return m.Called(ctx, line, id).Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, input order.CreateOrderInput) (*order.Order, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, page utils.Page) ([]*order.Order, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, id int64, input order.UpdateOrderInput) (*order.Order, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderService) ListItems(ctx context.Context, orderID int64) ([]order.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.OrderItem), args.Error(1)
}

func (m *MockOrderService) GetItem(ctx context.Context, id int64) (*order.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.OrderItem), args.Error(1)
}

func (m *MockOrderService) Stats() metrics.OrderSnapshot {
	return m.Called().Get(0).(metrics.OrderSnapshot)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, username, password string) (string, *user.AdminUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.AdminUser), args.Error(2)
}

func (m *MockUserService) Authenticate(ctx context.Context, token string) (*user.AdminUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AdminUser), args.Error(1)
}

func (m *MockUserService) CreateAdmin(ctx context.Context, username, password string) (*user.AdminUser, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.AdminUser), args.Error(1)
}

func (m *MockUserService) TokenTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}
