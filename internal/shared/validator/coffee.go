package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// 커피 코드: 영문 3글자 (대소문자 무관, 저장 시 대문자로 변환)
	coffeeCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

	// 영문 이름: 단어 사이 공백 하나만 허용 (e.g. "Cafe Latte")
	engNameRegex = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
)

func ValidateCoffeeCode(fl validator.FieldLevel) bool {
	return coffeeCodeRegex.MatchString(fl.Field().String())
}

func ValidateEngName(fl validator.FieldLevel) bool {
	return engNameRegex.MatchString(fl.Field().String())
}
