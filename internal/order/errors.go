package order

import (
	"net/http"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
)

const (
	orderNotFound        = "ORDER_NOT_FOUND"        // errInfo
	orderInvalidQuantity = "ORDER_INVALID_QUANTITY" // errInfo
)

var (
	ErrOrderNotFound        = sharedError.NewDomainError(orderNotFound)
	ErrOrderInvalidQuantity = sharedError.NewDomainError(orderInvalidQuantity)
)

func init() {
	sharedError.RegisterDomainErrorResponse(orderNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ORDER-001",
		Message: "주문 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(orderInvalidQuantity, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ORDER-002",
		Message: "주문 수량이 올바르지 않습니다.",
	})
}
