package coffee

import (
	"context"

	"github.com/changhyeonkim/coffee-order/go-api-server/internal/model"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"gorm.io/gorm"
)

type CoffeeRepository struct{}

func NewCoffeeRepository() *CoffeeRepository {
	return &CoffeeRepository{}
}

func (r *CoffeeRepository) IsExistCode(ctx context.Context, db *gorm.DB, coffeeCode string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Coffee{}).
		Where("coffee_code = ?", coffeeCode).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CoffeeRepository) Create(ctx context.Context, db *gorm.DB, coffee *model.Coffee) error {
	return db.WithContext(ctx).Create(coffee).Error
}

func (r *CoffeeRepository) Save(ctx context.Context, db *gorm.DB, coffee *model.Coffee) error {
	return db.WithContext(ctx).Save(coffee).Error
}

func (r *CoffeeRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Coffee, error) {
	var coffee model.Coffee
	err := db.WithContext(ctx).Where("id = ?", ID).First(&coffee).Error
	if err != nil {
		return nil, err
	}
	return &coffee, nil
}

func (r *CoffeeRepository) FindByCode(ctx context.Context, db *gorm.DB, coffeeCode string) (*model.Coffee, error) {
	var coffee model.Coffee
	err := db.WithContext(ctx).Where("coffee_code = ?", coffeeCode).First(&coffee).Error
	if err != nil {
		return nil, err
	}
	return &coffee, nil
}

// FindPage returns one page ordered by id descending and the total row count
func (r *CoffeeRepository) FindPage(ctx context.Context, db *gorm.DB, page pagination.Request) ([]model.Coffee, int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&model.Coffee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var coffees []model.Coffee
	err := db.WithContext(ctx).
		Scopes(pagination.Paginate(page)).
		Find(&coffees).Error
	if err != nil {
		return nil, 0, err
	}

	return coffees, total, nil
}
