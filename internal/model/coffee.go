package model

import "strings"

type CoffeeStatus string

const (
	CoffeeOnSale  CoffeeStatus = "COFFEE_ON_SALE"
	CoffeeSoldOut CoffeeStatus = "COFFEE_SOLD_OUT" // soft delete
)

// Description returns the label shown to clients
func (s CoffeeStatus) Description() string {
	switch s {
	case CoffeeOnSale:
		return "판매중"
	case CoffeeSoldOut:
		return "판매중지"
	default:
		return string(s)
	}
}

// Coffee is a catalog item. CoffeeCode is stored upper-cased and never changes after creation.
type Coffee struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	CoffeeCode   string       `gorm:"column:coffee_code;type:VARCHAR2(3);not null;uniqueIndex:idx_coffee_code"` // 커피 코드 (unique)
	KorName      string       `gorm:"column:kor_name;type:VARCHAR2(100);not null"`
	EngName      string       `gorm:"column:eng_name;type:VARCHAR2(100);not null"`
	Price        int          `gorm:"column:price;not null"`
	CoffeeStatus CoffeeStatus `gorm:"column:coffee_status;type:VARCHAR2(20);not null"`

	BaseEntity
}

func (*Coffee) TableName() string {
	return "coffee"
}

func NewCoffee(coffeeCode, korName, engName string, price int) *Coffee {
	return &Coffee{
		CoffeeCode:   NormalizeCoffeeCode(coffeeCode),
		KorName:      korName,
		EngName:      engName,
		Price:        price,
		CoffeeStatus: CoffeeOnSale,
	}
}

// NormalizeCoffeeCode makes code lookups case-insensitive
func NormalizeCoffeeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
