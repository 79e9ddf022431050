package order

import (
	"context"
	"errors"
	"strings"
	"terea-store/internal/metrics"
	"terea-store/internal/utils"
	"terea-store/internal/validation"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateOrderTx(ctx context.Context, o *Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockRepository) GetOrderByID(ctx context.Context, id int64) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListOrders(ctx context.Context, page utils.Page) ([]*Order, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) UpdateOrder(ctx context.Context, id int64, in UpdateOrderInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockRepository) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) GetItem(ctx context.Context, id int64) (*OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderItem), args.Error(1)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func boolPtr(b bool) *bool { return &b }

func validInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName: "Ivan",
		PhoneNumber:  "+79991234567",
		IsDelivery:   boolPtr(false),
		Items: []CreateOrderItemInput{
			{ProductName: "Iluma", Quantity: 1, Price: decPtr("9000.00")},
			{ProductName: "Terea", Quantity: 2, Price: decPtr("7000.00")},
		},
	}
}

// --- Tests ---

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		stats := &metrics.OrderStats{}
		svc := NewService(mockRepo, stats)

		mockRepo.On("CreateOrderTx", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				o := args.Get(1).(*Order)
				o.ID = 1
				o.IsFirstOrder = true
			}).
			Return(nil)

		o, err := svc.CreateOrder(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
		assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(23000)))
		assert.Len(t, o.Items, 2)

		snap := svc.Stats()
		assert.Equal(t, uint64(1), snap.Created)
		assert.Equal(t, uint64(1), snap.FirstOrders)
		mockRepo.AssertExpectations(t)
	})

	t.Run("TrimsNameAndPhone", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		in := validInput()
		in.CustomerName = "  Ivan  "
		in.PhoneNumber = " +79991234567 "

		mockRepo.On("CreateOrderTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.CustomerName == "Ivan" && o.PhoneNumber == "+79991234567"
		})).Return(nil)

		_, err := svc.CreateOrder(ctx, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("TrimsProductName", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		in := validInput()
		in.Items[0].ProductName = "  Iluma  "

		mockRepo.On("CreateOrderTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.Items[0].ProductName == "Iluma"
		})).Return(nil)

		_, err := svc.CreateOrder(ctx, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("KeepsDeliveryFlag", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		in := validInput()
		in.IsDelivery = boolPtr(true)
		in.City = utils.StrPtr("Moscow")

		mockRepo.On("CreateOrderTx", ctx, mock.MatchedBy(func(o *Order) bool {
			return o.IsDelivery
		})).Return(nil)

		_, err := svc.CreateOrder(ctx, in)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("ValidationRejectedBeforeStore", func(t *testing.T) {
		cases := map[string]func(in *CreateOrderInput){
			"empty name":            func(in *CreateOrderInput) { in.CustomerName = "" },
			"short phone":           func(in *CreateOrderInput) { in.PhoneNumber = "123" },
			"long name":             func(in *CreateOrderInput) { in.CustomerName = strings.Repeat("a", 257) },
			"zero quantity":         func(in *CreateOrderInput) { in.Items[0].Quantity = 0 },
			"negative price":        func(in *CreateOrderInput) { in.Items[1].Price = decPtr("-1") },
			"long address":          func(in *CreateOrderInput) { in.Address = utils.StrPtr(strings.Repeat("a", 1001)) },
			"blank product name":    func(in *CreateOrderInput) { in.Items[0].ProductName = "   " },
			"missing price":         func(in *CreateOrderInput) { in.Items[1].Price = nil },
			"missing delivery flag": func(in *CreateOrderInput) { in.IsDelivery = nil },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				mockRepo := new(MockRepository)
				stats := &metrics.OrderStats{}
				svc := NewService(mockRepo, stats)

				in := validInput()
				mutate(&in)

				_, err := svc.CreateOrder(ctx, in)
				assert.ErrorIs(t, err, ErrInvalidOrder)

				_, ok := validation.Details(err)
				assert.True(t, ok)
				assert.Equal(t, uint64(1), stats.Rejected.Load())
				mockRepo.AssertNotCalled(t, "CreateOrderTx", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("MissingFieldsReportedByPath", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		in := validInput()
		in.IsDelivery = nil
		in.Items[0].Price = nil
		in.Items[1].ProductName = " "

		_, err := svc.CreateOrder(ctx, in)
		require.ErrorIs(t, err, ErrInvalidOrder)

		details, ok := validation.Details(err)
		require.True(t, ok)
		assert.Equal(t, "is required", details["is_delivery"])
		assert.Equal(t, "is required", details["ordered_items[0].price_at_time_of_order"])
		assert.Equal(t, "is required", details["ordered_items[1].product_name"])
		mockRepo.AssertNotCalled(t, "CreateOrderTx", mock.Anything, mock.Anything)
	})

	t.Run("ValidationDetailsPointAtItem", func(t *testing.T) {
		svc := NewService(new(MockRepository), nil)

		in := validInput()
		in.Items[1].Quantity = -3

		_, err := svc.CreateOrder(ctx, in)
		details, ok := validation.Details(err)
		require.True(t, ok)
		assert.Contains(t, details, "ordered_items[1].quantity")
	})

	t.Run("StoreFailureIsCreateFailed", func(t *testing.T) {
		mockRepo := new(MockRepository)
		stats := &metrics.OrderStats{}
		svc := NewService(mockRepo, stats)

		mockRepo.On("CreateOrderTx", ctx, mock.Anything).Return(errors.New("insert order: boom"))

		_, err := svc.CreateOrder(ctx, validInput())
		assert.ErrorIs(t, err, ErrCreateFailed)
		assert.NotContains(t, err.Error(), "boom")
		assert.Equal(t, uint64(1), stats.Failed.Load())
		assert.Equal(t, uint64(0), stats.Created.Load())
	})
}

// TestService_CreateOrder_FirstOrderSequence drives the real repository
// against a mocked database for two consecutive orders from one phone.
func TestService_CreateOrder_FirstOrderSequence(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stats := &metrics.OrderStats{}
	svc := NewService(NewRepository(db), stats)
	ctx := context.Background()
	now := time.Now()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("+79991234567").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("Ivan", "+79991234567", false, nil, nil, decimal.NewFromInt(23000), true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	dbMock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(1), "Iluma", 1, decimal.NewFromInt(9000)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	dbMock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(1), "Terea", 2, decimal.NewFromInt(7000)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	dbMock.ExpectCommit()

	first, err := svc.CreateOrder(ctx, validInput())
	require.NoError(t, err)
	assert.True(t, first.IsFirstOrder)
	assert.Equal(t, "23000", first.TotalAmount.String())
	assert.Equal(t, []int64{1, 2}, []int64{first.Items[0].ID, first.Items[1].ID})

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("+79991234567").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	dbMock.ExpectQuery(`INSERT INTO orders`).
		WithArgs("Ivan", "+79991234567", false, nil, nil, decimal.NewFromInt(100), false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, now))
	dbMock.ExpectQuery(`INSERT INTO order_items`).
		WithArgs(int64(2), "Terea", 1, decimal.NewFromInt(100)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	dbMock.ExpectCommit()

	second, err := svc.CreateOrder(ctx, CreateOrderInput{
		CustomerName: "Ivan",
		PhoneNumber:  "+79991234567",
		IsDelivery:   boolPtr(false),
		Items: []CreateOrderItemInput{
			{ProductName: "Terea", Quantity: 1, Price: decPtr("100")},
		},
	})
	require.NoError(t, err)
	assert.False(t, second.IsFirstOrder)
	assert.True(t, second.TotalAmount.Equal(decimal.NewFromInt(100)))

	snap := stats.Snapshot()
	assert.Equal(t, uint64(2), snap.Created)
	assert.Equal(t, uint64(1), snap.FirstOrders)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_CreateOrder_RollbackOnItemFailure(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db), nil)

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(`SELECT EXISTS`).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	dbMock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
	dbMock.ExpectQuery(`INSERT INTO order_items`).
		WillReturnError(errors.New("value too long"))
	dbMock.ExpectRollback()

	_, err = svc.CreateOrder(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrCreateFailed)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_ListOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)
		page := utils.DefaultPage()

		mockRepo.On("ListOrders", ctx, page).Return([]*Order{{ID: 2}, {ID: 1}}, int64(2), nil)

		res, total, err := svc.ListOrders(ctx, page)
		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, int64(2), total)
	})

	t.Run("BadPage", func(t *testing.T) {
		svc := NewService(new(MockRepository), nil)
		_, _, err := svc.ListOrders(ctx, utils.Page{Skip: 0, Limit: 1001})
		assert.ErrorIs(t, err, ErrInvalidOrder)
		assert.ErrorIs(t, err, utils.ErrInvalidPage)
	})
}

func TestService_UpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)

		mockRepo.On("UpdateOrder", ctx, int64(5), UpdateOrderInput{CustomerName: utils.StrPtr("Anna")}).Return(nil)
		mockRepo.On("GetOrderByID", ctx, int64(5)).Return(&Order{ID: 5, CustomerName: "Anna"}, nil)

		o, err := svc.UpdateOrder(ctx, 5, UpdateOrderInput{CustomerName: utils.StrPtr(" Anna ")})
		require.NoError(t, err)
		assert.Equal(t, "Anna", o.CustomerName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		svc := NewService(new(MockRepository), nil)
		_, err := svc.UpdateOrder(ctx, 5, UpdateOrderInput{})
		assert.ErrorIs(t, err, ErrInvalidOrder)
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("InvalidPhone", func(t *testing.T) {
		svc := NewService(new(MockRepository), nil)
		_, err := svc.UpdateOrder(ctx, 5, UpdateOrderInput{PhoneNumber: utils.StrPtr("12")})
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, nil)
		delivery := false

		mockRepo.On("UpdateOrder", ctx, int64(9), UpdateOrderInput{IsDelivery: &delivery}).Return(ErrOrderNotFound)

		_, err := svc.UpdateOrder(ctx, 9, UpdateOrderInput{IsDelivery: &delivery})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("DeleteOrder", ctx, int64(1)).Return(nil)
	mockRepo.On("DeleteOrder", ctx, int64(2)).Return(ErrOrderNotFound)

	assert.NoError(t, svc.DeleteOrder(ctx, 1))
	assert.ErrorIs(t, svc.DeleteOrder(ctx, 2), ErrOrderNotFound)
}

func TestService_Items(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, nil)

	mockRepo.On("GetOrderByID", ctx, int64(5)).
		Return(&Order{ID: 5, Items: []OrderItem{{ID: 1, OrderID: 5}}}, nil)
	mockRepo.On("GetOrderByID", ctx, int64(6)).Return(nil, ErrOrderNotFound)
	mockRepo.On("GetItem", ctx, int64(1)).Return(&OrderItem{ID: 1, OrderID: 5}, nil)

	items, err := svc.ListItems(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListItems(ctx, 6)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	it, err := svc.GetItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), it.OrderID)
}
