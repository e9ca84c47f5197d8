package model_test

import (
	"testing"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoffee_UpperCasesCode(t *testing.T) {
	coffee := model.NewCoffee(" ame ", "아메리카노", "Americano", 2500)

	assert.Equal(t, "AME", coffee.CoffeeCode)
	assert.Equal(t, model.CoffeeOnSale, coffee.CoffeeStatus)
}

func TestNewMember_StartsActiveWithEmptyStamp(t *testing.T) {
	member := model.NewMember("hgd@gmail.com", "홍길동", "010-1111-2222")

	assert.Equal(t, model.MemberActive, member.MemberStatus)
	assert.Equal(t, 0, member.Stamp.StampCount)
}

func TestOrder_AddOrderCoffeeAndTotalQuantity(t *testing.T) {
	order := model.NewOrder(7)
	americano := &model.Coffee{ID: 1, CoffeeCode: "AME", Price: 2500}
	latte := &model.Coffee{ID: 2, CoffeeCode: "CFL", Price: 3000}

	order.AddOrderCoffee(americano, 3)
	order.AddOrderCoffee(latte, 2)

	require.Len(t, order.OrderCoffees, 2)
	assert.Equal(t, model.OrderConfirm, order.OrderStatus)
	assert.Equal(t, uint32(1), order.OrderCoffees[0].CoffeeID)
	assert.Equal(t, "CFL", order.OrderCoffees[1].Coffee.CoffeeCode)
	assert.Equal(t, 5, order.TotalQuantity())
}

func TestStatusDescription(t *testing.T) {
	assert.Equal(t, "판매중지", model.CoffeeSoldOut.Description())
	assert.Equal(t, "탈퇴 상태", model.MemberQuit.Description())
	assert.Equal(t, "주문 취소", model.OrderCancel.Description())
	assert.Equal(t, "UNKNOWN", model.OrderStatus("UNKNOWN").Description())
}
