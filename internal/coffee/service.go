package coffee

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/response"
	"gorm.io/gorm"
)

type CoffeeService struct {
	db               *gorm.DB
	coffeeRepository *CoffeeRepository
}

func NewCoffeeService(db *gorm.DB, coffeeRepository *CoffeeRepository) *CoffeeService {
	return &CoffeeService{
		db:               db,
		coffeeRepository: coffeeRepository,
	}
}

func (s *CoffeeService) CreateCoffee(ctx context.Context, request *CreateCoffeeRequest) (*CoffeeResponse, error) {
	log := logger.FromContext(ctx)
	coffee := model.NewCoffee(request.CoffeeCode, request.KorName, request.EngName, request.Price)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		// 대문자로 변환된 코드 기준으로 중복 확인
		exists, err := s.coffeeRepository.IsExistCode(ctx, tx, coffee.CoffeeCode)
		if err != nil {
			return fmt.Errorf("check coffee code: %w", err)
		}
		if exists {
			log.Warn("Coffee code already exists", "coffee_code", coffee.CoffeeCode)
			return fmt.Errorf("coffeeCode=%s %w", coffee.CoffeeCode, ErrCoffeeCodeExists)
		}

		if err := s.coffeeRepository.Create(ctx, tx, coffee); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("coffeeCode=%s %w", coffee.CoffeeCode, ErrCoffeeCodeExists)
			}
			return fmt.Errorf("create coffee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Coffee created", "coffee_id", coffee.ID, "coffee_code", coffee.CoffeeCode)
	resp := NewCoffeeResponse(coffee)
	return &resp, nil
}

func (s *CoffeeService) UpdateCoffee(ctx context.Context, coffeeID uint32, request *UpdateCoffeeRequest) (*CoffeeResponse, error) {
	var coffee *model.Coffee

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		found, err := s.findVerifiedCoffee(ctx, tx, coffeeID)
		if err != nil {
			return err
		}

		if request.KorName != nil {
			found.KorName = *request.KorName
		}
		if request.EngName != nil {
			found.EngName = *request.EngName
		}
		if request.Price != nil {
			found.Price = *request.Price
		}
		if request.CoffeeStatus != nil {
			found.CoffeeStatus = *request.CoffeeStatus
		}

		if err := s.coffeeRepository.Save(ctx, tx, found); err != nil {
			return fmt.Errorf("update coffee: %w", err)
		}
		coffee = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := NewCoffeeResponse(coffee)
	return &resp, nil
}

func (s *CoffeeService) FindCoffee(ctx context.Context, coffeeID uint32) (*CoffeeResponse, error) {
	coffee, err := s.findVerifiedCoffee(ctx, s.db, coffeeID)
	if err != nil {
		return nil, err
	}

	resp := NewCoffeeResponse(coffee)
	return &resp, nil
}

func (s *CoffeeService) FindCoffees(ctx context.Context, page pagination.Request) (*response.MultiResponse[CoffeeResponse], error) {
	coffees, total, err := s.coffeeRepository.FindPage(ctx, s.db, page)
	if err != nil {
		return nil, fmt.Errorf("find coffees: %w", err)
	}

	resp := response.Multi(NewCoffeeResponses(coffees), pagination.NewInfo(page, total))
	return &resp, nil
}

// DeleteCoffee marks the coffee sold out; the row is kept
func (s *CoffeeService) DeleteCoffee(ctx context.Context, coffeeID uint32) error {
	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		coffee, err := s.findVerifiedCoffee(ctx, tx, coffeeID)
		if err != nil {
			return err
		}

		coffee.CoffeeStatus = model.CoffeeSoldOut
		if err := s.coffeeRepository.Save(ctx, tx, coffee); err != nil {
			return fmt.Errorf("delete coffee: %w", err)
		}

		logger.FromContext(ctx).Info("Coffee sold out", "coffee_id", coffeeID)
		return nil
	})
}

func (s *CoffeeService) findVerifiedCoffee(ctx context.Context, db *gorm.DB, coffeeID uint32) (*model.Coffee, error) {
	coffee, err := s.coffeeRepository.FindByID(ctx, db, coffeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("커피를 찾을 수 없습니다 coffeeID=%d %w", coffeeID, ErrCoffeeNotFound)
		}
		return nil, fmt.Errorf("커피 조회 실패: %w", err)
	}
	return coffee, nil
}
