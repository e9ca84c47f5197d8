package validator

import (
	"errors"
	"fmt"
	"reflect"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목을 입력해 주세요."
	case "email":
		return "이메일 형식이 올바르지 않습니다."
	case "min":
		if isNumeric(fe) {
			return fmt.Sprintf("'%s' 값은 %s 이상이어야 합니다.", fe.Field(), fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("'%s' 항목은 최소 %s개 이상이어야 합니다.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("최소 %s자 이상이어야 합니다.", fe.Param())
	case "max":
		if isNumeric(fe) {
			return fmt.Sprintf("'%s' 값은 %s 이하여야 합니다.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("최대 %s자까지 입력 가능합니다.", fe.Param())
	case "phone":
		return "휴대폰 번호 형식이 올바르지 않습니다. (010-XXXX-XXXX)"
	case "coffeecode":
		return "커피 코드는 영문 3글자여야 합니다."
	case "engname":
		return "영문 이름은 알파벳과 단어 사이 공백 하나만 허용됩니다."
	case "oneof":
		return fmt.Sprintf("'%s' 필드는 다음 값 중 하나여야 합니다: %s", fe.Field(), fe.Param())
	case "required_without":
		return fmt.Sprintf("'%s' 또는 '%s' 중 하나는 입력해야 합니다.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' 필드가 올바르지 않습니다.", fe.Field())
	}
}

func isNumeric(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
