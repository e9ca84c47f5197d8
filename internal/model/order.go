package model

type OrderStatus string

const (
	OrderRequest  OrderStatus = "ORDER_REQUEST"
	OrderConfirm  OrderStatus = "ORDER_CONFIRM"
	OrderComplete OrderStatus = "ORDER_COMPLETE"
	OrderCancel   OrderStatus = "ORDER_CANCEL" // soft delete
)

func (s OrderStatus) Description() string {
	switch s {
	case OrderRequest:
		return "주문 요청"
	case OrderConfirm:
		return "주문 확정"
	case OrderComplete:
		return "주문 처리 완료"
	case OrderCancel:
		return "주문 취소"
	default:
		return string(s)
	}
}

// Order is the aggregate root. Line items are owned by composition; OrderID on the child row
// is only the foreign key column.
type Order struct {
	ID          uint32      `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID    uint32      `gorm:"column:member_id;not null;index:idx_orders_member"`
	OrderStatus OrderStatus `gorm:"column:order_status;type:VARCHAR2(20);not null"`

	OrderCoffees []OrderCoffee `gorm:"foreignKey:OrderID"`

	BaseEntity
}

// "order"는 예약어이므로 복수형 사용
func (*Order) TableName() string {
	return "orders"
}

func NewOrder(memberID uint32) *Order {
	return &Order{
		MemberID:    memberID,
		OrderStatus: OrderConfirm,
	}
}

// AddOrderCoffee appends a line item that references an already persisted coffee
func (o *Order) AddOrderCoffee(coffee *Coffee, quantity int) {
	o.OrderCoffees = append(o.OrderCoffees, OrderCoffee{
		CoffeeID: coffee.ID,
		Quantity: quantity,
		Coffee:   *coffee,
	})
}

// TotalQuantity is the number of stamps the order earns
func (o *Order) TotalQuantity() int {
	total := 0
	for _, oc := range o.OrderCoffees {
		total += oc.Quantity
	}
	return total
}

type OrderCoffee struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID  uint32 `gorm:"column:order_id;not null;index:idx_order_coffee_order"`
	CoffeeID uint32 `gorm:"column:coffee_id;not null;index:idx_order_coffee_coffee"`
	Quantity int    `gorm:"column:quantity;not null"`

	Coffee Coffee `gorm:"foreignKey:CoffeeID"`

	BaseEntity
}

func (*OrderCoffee) TableName() string {
	return "order_coffee"
}
