package coffee

import (
	"net/http"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
)

const (
	coffeeNotFound   = "COFFEE_NOT_FOUND"   // errInfo
	coffeeCodeExists = "COFFEE_CODE_EXISTS" // errInfo
)

var (
	ErrCoffeeNotFound   = sharedError.NewDomainError(coffeeNotFound)
	ErrCoffeeCodeExists = sharedError.NewDomainError(coffeeCodeExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(coffeeNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "COFFEE-001",
		Message: "커피 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(coffeeCodeExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "COFFEE-002",
		Message: "이미 등록된 커피 코드입니다.",
	})
}
