package coffee

import "github.com/changhyeonkim/coffee-order/go-api-server/internal/model"

type CreateCoffeeRequest struct {
	CoffeeCode string `json:"coffeeCode" binding:"required,coffeecode"`
	KorName    string `json:"korName" binding:"required,max=100"`
	EngName    string `json:"engName" binding:"required,engname,max=100"`
	Price      int    `json:"price" binding:"required,min=100,max=50000"`
}

// UpdateCoffeeRequest: nil 필드는 기존 값 유지. 커피 코드는 수정 불가
type UpdateCoffeeRequest struct {
	KorName      *string             `json:"korName" binding:"omitempty,min=1,max=100"`
	EngName      *string             `json:"engName" binding:"omitempty,engname,max=100"`
	Price        *int                `json:"price" binding:"omitempty,min=100,max=50000"`
	CoffeeStatus *model.CoffeeStatus `json:"coffeeStatus" binding:"omitempty,oneof=COFFEE_ON_SALE COFFEE_SOLD_OUT"`
}

type CoffeeResponse struct {
	CoffeeID          uint32             `json:"coffeeId"`
	CoffeeCode        string             `json:"coffeeCode"`
	KorName           string             `json:"korName"`
	EngName           string             `json:"engName"`
	Price             int                `json:"price"`
	CoffeeStatus      model.CoffeeStatus `json:"coffeeStatus"`
	StatusDescription string             `json:"coffeeStatusDescription"`
}

func NewCoffeeResponse(c *model.Coffee) CoffeeResponse {
	return CoffeeResponse{
		CoffeeID:          c.ID,
		CoffeeCode:        c.CoffeeCode,
		KorName:           c.KorName,
		EngName:           c.EngName,
		Price:             c.Price,
		CoffeeStatus:      c.CoffeeStatus,
		StatusDescription: c.CoffeeStatus.Description(),
	}
}

func NewCoffeeResponses(coffees []model.Coffee) []CoffeeResponse {
	responses := make([]CoffeeResponse, 0, len(coffees))
	for i := range coffees {
		responses = append(responses, NewCoffeeResponse(&coffees[i]))
	}
	return responses
}
