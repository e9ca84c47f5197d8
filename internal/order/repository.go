package order

import (
	"context"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberStore is the member side of the order workflow. *member.MemberRepository satisfies it.
type MemberStore interface {
	FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error)
	AddStamp(ctx context.Context, db *gorm.DB, memberID uint32, count int) error
}

// CoffeeFinder resolves line items. *coffee.CoffeeRepository satisfies it.
type CoffeeFinder interface {
	FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Coffee, error)
	FindByCode(ctx context.Context, db *gorm.DB, coffeeCode string) (*model.Coffee, error)
}

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create inserts the order then each line item. Referenced coffees are never written.
func (r *OrderRepository) Create(ctx context.Context, db *gorm.DB, order *model.Order) error {
	db = db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(order).Error; err != nil {
		return err
	}

	for i := range order.OrderCoffees {
		order.OrderCoffees[i].OrderID = order.ID
		if err := db.Omit(clause.Associations).Create(&order.OrderCoffees[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Save updates order columns only
func (r *OrderRepository) Save(ctx context.Context, db *gorm.DB, order *model.Order) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(order).Error
}

func (r *OrderRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Order, error) {
	var order model.Order
	err := db.WithContext(ctx).
		Scopes(preloadOrderCoffees).
		Where("id = ?", ID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindPage(ctx context.Context, db *gorm.DB, page pagination.Request) ([]model.Order, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := db.WithContext(ctx).
		Scopes(preloadOrderCoffees, pagination.Paginate(page)).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// 라인 아이템은 주문 순서(id ASC) 유지
func preloadOrderCoffees(db *gorm.DB) *gorm.DB {
	return db.
		Preload("OrderCoffees", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("OrderCoffees.Coffee")
}
