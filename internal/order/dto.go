package order

import (
	"time"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
)

type CreateOrderRequest struct {
	MemberID     uint32               `json:"memberId" binding:"required,min=1"`
	OrderCoffees []OrderCoffeeRequest `json:"orderCoffees" binding:"required,min=1,max=50,dive"`
}

// MaxQuantity caps a single line item so the stamp total of one order stays small and positive
const MaxQuantity = 1000

// OrderCoffeeRequest identifies the coffee by id, by code, or by both (they must agree)
type OrderCoffeeRequest struct {
	CoffeeID   uint32 `json:"coffeeId" binding:"required_without=CoffeeCode"`
	CoffeeCode string `json:"coffeeCode" binding:"omitempty,coffeecode"`
	Quantity   int    `json:"quantity" binding:"required,min=1,max=1000"`
}

type UpdateOrderRequest struct {
	OrderStatus *model.OrderStatus `json:"orderStatus" binding:"omitempty,oneof=ORDER_REQUEST ORDER_CONFIRM ORDER_COMPLETE ORDER_CANCEL"`
}

type OrderResponse struct {
	OrderID           uint32                `json:"orderId"`
	MemberID          uint32                `json:"memberId"`
	OrderStatus       model.OrderStatus     `json:"orderStatus"`
	StatusDescription string                `json:"orderStatusDescription"`
	TotalQuantity     int                   `json:"totalQuantity"`
	OrderCoffees      []OrderCoffeeResponse `json:"orderCoffees"`
	CreatedAt         time.Time             `json:"createdAt"`
}

type OrderCoffeeResponse struct {
	OrderCoffeeID uint32 `json:"orderCoffeeId"`
	CoffeeID      uint32 `json:"coffeeId"`
	CoffeeCode    string `json:"coffeeCode"`
	KorName       string `json:"korName"`
	EngName       string `json:"engName"`
	Price         int    `json:"price"`
	Quantity      int    `json:"quantity"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	orderCoffees := make([]OrderCoffeeResponse, 0, len(o.OrderCoffees))
	for _, oc := range o.OrderCoffees {
		orderCoffees = append(orderCoffees, OrderCoffeeResponse{
			OrderCoffeeID: oc.ID,
			CoffeeID:      oc.CoffeeID,
			CoffeeCode:    oc.Coffee.CoffeeCode,
			KorName:       oc.Coffee.KorName,
			EngName:       oc.Coffee.EngName,
			Price:         oc.Coffee.Price,
			Quantity:      oc.Quantity,
		})
	}

	return OrderResponse{
		OrderID:           o.ID,
		MemberID:          o.MemberID,
		OrderStatus:       o.OrderStatus,
		StatusDescription: o.OrderStatus.Description(),
		TotalQuantity:     o.TotalQuantity(),
		OrderCoffees:      orderCoffees,
		CreatedAt:         o.CreatedAt,
	}
}

func NewOrderResponses(orders []model.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, NewOrderResponse(&orders[i]))
	}
	return responses
}
