package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/coffee"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/member"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/metrics"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"gorm.io/gorm"
)

type OrderService struct {
	db              *gorm.DB
	orderRepository *OrderRepository
	memberStore     MemberStore
	coffeeFinder    CoffeeFinder
}

func NewOrderService(db *gorm.DB, orderRepository *OrderRepository, memberStore MemberStore, coffeeFinder CoffeeFinder) *OrderService {
	return &OrderService{
		db:              db,
		orderRepository: orderRepository,
		memberStore:     memberStore,
		coffeeFinder:    coffeeFinder,
	}
}

// CreateOrder resolves the member and every coffee, accrues one stamp per cup and stores the
// order with its line items. All of it commits or none of it does.
func (s *OrderService) CreateOrder(ctx context.Context, request *CreateOrderRequest) (*OrderResponse, error) {
	ctx = logger.With(ctx, "member_id", request.MemberID)
	log := logger.FromContext(ctx)
	var order *model.Order

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// 1. 회원 확인
		orderMember, err := s.memberStore.FindByID(ctx, tx, request.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("Order rejected - member not found")
				return fmt.Errorf("memberID=%d %w", request.MemberID, member.ErrMemberNotFound)
			}
			return fmt.Errorf("find member: %w", err)
		}

		// 2. 라인 아이템마다 실제 커피로 치환
		newOrder := model.NewOrder(orderMember.ID)
		for _, item := range request.OrderCoffees {
			if item.Quantity < 1 || item.Quantity > MaxQuantity {
				log.Warn("Order rejected - invalid quantity", "quantity", item.Quantity)
				return fmt.Errorf("quantity=%d %w", item.Quantity, ErrOrderInvalidQuantity)
			}
			found, err := s.resolveCoffee(ctx, tx, item)
			if err != nil {
				return err
			}
			newOrder.AddOrderCoffee(found, item.Quantity)
		}

		// 3. 스탬프 적립 (잔 수만큼)
		addStamp := newOrder.TotalQuantity()
		if addStamp <= 0 {
			return fmt.Errorf("total quantity=%d %w", addStamp, ErrOrderInvalidQuantity)
		}
		if err := s.memberStore.AddStamp(ctx, tx, orderMember.ID, addStamp); err != nil {
			return fmt.Errorf("add stamp memberID=%d: %w", orderMember.ID, err)
		}

		// 4. 주문 저장
		if err := s.orderRepository.Create(ctx, tx, newOrder); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		order = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderCreated(order.TotalQuantity())
	log.Info("Order created",
		"order_id", order.ID,
		"items", len(order.OrderCoffees),
		"stamps_added", order.TotalQuantity(),
	)

	resp := NewOrderResponse(order)
	return &resp, nil
}

// resolveCoffee looks the coffee up by code first (when given) and then by id.
// A code and id that point at different coffees is treated as not found.
func (s *OrderService) resolveCoffee(ctx context.Context, tx *gorm.DB, item OrderCoffeeRequest) (*model.Coffee, error) {
	coffeeID := item.CoffeeID

	if item.CoffeeCode != "" {
		code := model.NormalizeCoffeeCode(item.CoffeeCode)
		byCode, err := s.coffeeFinder.FindByCode(ctx, tx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("coffeeCode=%s %w", code, coffee.ErrCoffeeNotFound)
			}
			return nil, fmt.Errorf("find coffee by code: %w", err)
		}
		if coffeeID != 0 && coffeeID != byCode.ID {
			return nil, fmt.Errorf("coffeeCode=%s does not match coffeeID=%d %w", code, coffeeID, coffee.ErrCoffeeNotFound)
		}
		coffeeID = byCode.ID
	}

	found, err := s.coffeeFinder.FindByID(ctx, tx, coffeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("coffeeID=%d %w", coffeeID, coffee.ErrCoffeeNotFound)
		}
		return nil, fmt.Errorf("find coffee: %w", err)
	}
	return found, nil
}

// UpdateOrder changes only the status; a nil status leaves the order untouched
func (s *OrderService) UpdateOrder(ctx context.Context, orderID uint32, request *UpdateOrderRequest) (*OrderResponse, error) {
	var order *model.Order
	cancelled := false

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findVerifiedOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}

		if request.OrderStatus != nil && *request.OrderStatus != found.OrderStatus {
			found.OrderStatus = *request.OrderStatus
			if err := s.orderRepository.Save(ctx, tx, found); err != nil {
				return fmt.Errorf("update order: %w", err)
			}
			cancelled = found.OrderStatus == model.OrderCancel
		}
		order = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 커밋된 취소만 집계
	if cancelled {
		metrics.RecordOrderCancelled()
	}

	resp := NewOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) FindOrder(ctx context.Context, orderID uint32) (*OrderResponse, error) {
	order, err := s.findVerifiedOrder(ctx, s.db, orderID)
	if err != nil {
		return nil, err
	}

	resp := NewOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) FindOrders(ctx context.Context, page pagination.Request) (*response.MultiResponse[OrderResponse], error) {
	orders, total, err := s.orderRepository.FindPage(ctx, s.db, page)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	resp := response.Multi(NewOrderResponses(orders), pagination.NewInfo(page, total))
	return &resp, nil
}

// DeleteOrder cancels the order. Accrued stamps stay with the member.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uint32) error {
	cancelled := false

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		order, err := s.findVerifiedOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if order.OrderStatus == model.OrderCancel {
			return nil
		}

		order.OrderStatus = model.OrderCancel
		if err := s.orderRepository.Save(ctx, tx, order); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}
		cancelled = true
		return nil
	})
	if err != nil {
		return err
	}

	if cancelled {
		metrics.RecordOrderCancelled()
		logger.FromContext(ctx).Info("Order cancelled", "order_id", orderID)
	}
	return nil
}

func (s *OrderService) findVerifiedOrder(ctx context.Context, db *gorm.DB, orderID uint32) (*model.Order, error) {
	order, err := s.orderRepository.FindByID(ctx, db, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("주문을 찾을 수 없습니다 orderID=%d %w", orderID, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("주문 조회 실패: %w", err)
	}
	return order, nil
}
