package member

import (
	"net/http"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
)

const (
	memberExists   = "MEMBER_EXISTS"    // errInfo
	memberNotFound = "MEMBER_NOT_FOUND" // errInfo
)

var (
	ErrMemberExists   = sharedError.NewDomainError(memberExists)
	ErrMemberNotFound = sharedError.NewDomainError(memberNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBER-001",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-002",
		Message: "이미 가입된 회원입니다.",
	})
}
