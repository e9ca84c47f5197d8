package order_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/coffee"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/member"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/order"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	service    *order.OrderService
	memberRepo *member.MemberRepository
	member     *model.Member
	americano  *model.Coffee
	latte      *model.Coffee
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	memberRepo := member.NewMemberRepository()
	coffeeRepo := coffee.NewCoffeeRepository()

	m := model.NewMember("order@example.com", "주문자", "010-3333-4444")
	require.NoError(t, memberRepo.Create(ctx, db, m))

	americano := model.NewCoffee("ame", "아메리카노", "Americano", 2500)
	require.NoError(t, coffeeRepo.Create(ctx, db, americano))
	latte := model.NewCoffee("LAT", "카페라떼", "Cafe Latte", 3500)
	require.NoError(t, coffeeRepo.Create(ctx, db, latte))

	return &fixture{
		db:         db,
		service:    order.NewOrderService(db, order.NewOrderRepository(), memberRepo, coffeeRepo),
		memberRepo: memberRepo,
		member:     m,
		americano:  americano,
		latte:      latte,
	}
}

func (f *fixture) stampCount(t *testing.T) int {
	t.Helper()

	m, err := f.memberRepo.FindByID(context.Background(), f.db, f.member.ID)
	require.NoError(t, err)
	return m.Stamp.StampCount
}

func TestCreateOrder_AccruesStampsAndPersistsLineItems(t *testing.T) {
	// Given: stamp 0
	f := setupFixture(t)

	// When: 3 by id + 2 by code
	resp, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID: f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{
			{CoffeeID: f.americano.ID, Quantity: 3},
			{CoffeeCode: "lat", Quantity: 2},
		},
	})

	// Then
	require.NoError(t, err)
	assert.NotZero(t, resp.OrderID)
	assert.Equal(t, model.OrderConfirm, resp.OrderStatus)
	assert.Equal(t, 5, resp.TotalQuantity)
	require.Len(t, resp.OrderCoffees, 2)
	assert.Equal(t, f.americano.ID, resp.OrderCoffees[0].CoffeeID)
	assert.Equal(t, "아메리카노", resp.OrderCoffees[0].KorName)
	assert.Equal(t, f.latte.ID, resp.OrderCoffees[1].CoffeeID)
	assert.Equal(t, "LAT", resp.OrderCoffees[1].CoffeeCode)
	assert.NotZero(t, resp.OrderCoffees[0].OrderCoffeeID)

	assert.Equal(t, 5, f.stampCount(t))
	assert.Equal(t, int64(1), testutil.CountRows(t, f.db, &model.Order{}))
	assert.Equal(t, int64(2), testutil.CountRows(t, f.db, &model.OrderCoffee{}))
	// 커피 행은 주문 저장 시 변경되지 않음
	assert.Equal(t, int64(2), testutil.CountRows(t, f.db, &model.Coffee{}))

	// When: second order accrues on top
	_, err = f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.latte.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.stampCount(t))
}

func TestCreateOrder_CodeAndIDMustAgree(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, CoffeeCode: "LAT", Quantity: 1}},
	})
	assert.ErrorIs(t, err, coffee.ErrCoffeeNotFound)

	resp, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.latte.ID, CoffeeCode: "lat", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, f.latte.ID, resp.OrderCoffees[0].CoffeeID)
}

func TestCreateOrder_UnknownMember(t *testing.T) {
	// Given
	f := setupFixture(t)

	// When
	_, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID + 100,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, Quantity: 2}},
	})

	// Then
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.Equal(t, 0, f.stampCount(t))
	assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &model.Order{}))
}

func TestCreateOrder_UnknownCoffeeRollsBack(t *testing.T) {
	testCases := []struct {
		name  string
		items func(f *fixture) []order.OrderCoffeeRequest
	}{
		{
			name: "Unknown id after a valid line",
			items: func(f *fixture) []order.OrderCoffeeRequest {
				return []order.OrderCoffeeRequest{
					{CoffeeID: f.americano.ID, Quantity: 2},
					{CoffeeID: 9999, Quantity: 1},
				}
			},
		},
		{
			name: "Unknown code",
			items: func(f *fixture) []order.OrderCoffeeRequest {
				return []order.OrderCoffeeRequest{{CoffeeCode: "ZZZ", Quantity: 1}}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			f := setupFixture(t)

			// When
			_, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
				MemberID:     f.member.ID,
				OrderCoffees: tc.items(f),
			})

			// Then: no stamp, no order rows
			assert.ErrorIs(t, err, coffee.ErrCoffeeNotFound)
			assert.Equal(t, 0, f.stampCount(t))
			assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &model.Order{}))
			assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &model.OrderCoffee{}))
		})
	}
}

func TestCreateOrder_UnknownCodeIsCoffeeNotFound(t *testing.T) {
	// Given
	f := setupFixture(t)

	// When: well-formed code that no coffee carries
	_, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeCode: "mch", Quantity: 1}},
	})

	// Then: reported as COFFEE_NOT_FOUND, never as a code conflict
	require.Error(t, err)
	assert.ErrorIs(t, err, coffee.ErrCoffeeNotFound)
	assert.False(t, errors.Is(err, coffee.ErrCoffeeCodeExists))
	assert.Equal(t, 0, f.stampCount(t))
}

func TestCreateOrder_InvalidQuantityRollsBack(t *testing.T) {
	testCases := []struct {
		name       string
		quantities []int
	}{
		{name: "Sum overflows int", quantities: []int{math.MaxInt, 2}},
		{name: "Above line cap", quantities: []int{order.MaxQuantity + 1}},
		{name: "Zero", quantities: []int{0}},
		{name: "Negative after a valid line", quantities: []int{3, -3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			f := setupFixture(t)
			items := make([]order.OrderCoffeeRequest, 0, len(tc.quantities))
			for _, q := range tc.quantities {
				items = append(items, order.OrderCoffeeRequest{CoffeeID: f.americano.ID, Quantity: q})
			}

			// When
			_, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
				MemberID:     f.member.ID,
				OrderCoffees: items,
			})

			// Then: stamps untouched, nothing persisted
			assert.ErrorIs(t, err, order.ErrOrderInvalidQuantity)
			assert.Equal(t, 0, f.stampCount(t))
			assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &model.Order{}))
			assert.Equal(t, int64(0), testutil.CountRows(t, f.db, &model.OrderCoffee{}))
		})
	}
}

func TestCreateOrder_MaxQuantityAccepted(t *testing.T) {
	f := setupFixture(t)

	resp, err := f.service.CreateOrder(context.Background(), &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, Quantity: order.MaxQuantity}},
	})

	require.NoError(t, err)
	assert.Equal(t, order.MaxQuantity, resp.TotalQuantity)
	assert.Equal(t, order.MaxQuantity, f.stampCount(t))
}

// cancelledTotal reads the cancelled-orders counter from the application registry
func cancelledTotal(t *testing.T) float64 {
	t.Helper()

	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == "coffee_order_orders_cancelled_total" {
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestUpdateOrder_CancelMetricCountsCommittedChangesOnly(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateOrder(ctx, &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	cancel := model.OrderCancel
	before := cancelledTotal(t)

	// When: the status write fails and the tx rolls back
	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		tx.AddError(errors.New("disk full"))
	}))
	_, err = f.service.UpdateOrder(ctx, created.OrderID, &order.UpdateOrderRequest{OrderStatus: &cancel})

	// Then
	require.Error(t, err)
	assert.Equal(t, before, cancelledTotal(t))
	found, err := f.service.FindOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirm, found.OrderStatus)

	// When: committed cancel, then a repeat with the same status
	require.NoError(t, f.db.Callback().Update().Remove("test:fail_update"))
	_, err = f.service.UpdateOrder(ctx, created.OrderID, &order.UpdateOrderRequest{OrderStatus: &cancel})
	require.NoError(t, err)
	_, err = f.service.UpdateOrder(ctx, created.OrderID, &order.UpdateOrderRequest{OrderStatus: &cancel})
	require.NoError(t, err)

	// Then: counted once
	assert.Equal(t, before+1, cancelledTotal(t))
}

func TestUpdateOrder_Status(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateOrder(ctx, &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	// When: nil status
	resp, err := f.service.UpdateOrder(ctx, created.OrderID, &order.UpdateOrderRequest{})

	// Then: unchanged
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirm, resp.OrderStatus)

	// When
	complete := model.OrderComplete
	resp, err = f.service.UpdateOrder(ctx, created.OrderID, &order.UpdateOrderRequest{OrderStatus: &complete})

	// Then
	require.NoError(t, err)
	assert.Equal(t, model.OrderComplete, resp.OrderStatus)
	assert.Len(t, resp.OrderCoffees, 1)

	found, err := f.service.FindOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderComplete, found.OrderStatus)
}

func TestUpdateOrder_NotFound(t *testing.T) {
	f := setupFixture(t)

	_, err := f.service.UpdateOrder(context.Background(), 77, &order.UpdateOrderRequest{})

	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestDeleteOrder_CancelsAndKeepsStamps(t *testing.T) {
	// Given
	f := setupFixture(t)
	ctx := context.Background()
	created, err := f.service.CreateOrder(ctx, &order.CreateOrderRequest{
		MemberID:     f.member.ID,
		OrderCoffees: []order.OrderCoffeeRequest{{CoffeeID: f.americano.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	// When
	require.NoError(t, f.service.DeleteOrder(ctx, created.OrderID))
	// 이미 취소된 주문도 성공
	require.NoError(t, f.service.DeleteOrder(ctx, created.OrderID))

	// Then
	found, err := f.service.FindOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancel, found.OrderStatus)
	assert.Equal(t, 4, f.stampCount(t))
	assert.Equal(t, int64(1), testutil.CountRows(t, f.db, &model.Order{}))
}

func TestDeleteOrder_NotFound(t *testing.T) {
	f := setupFixture(t)

	err := f.service.DeleteOrder(context.Background(), 1)

	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
