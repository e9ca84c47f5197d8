package validator_test

import (
	"testing"

	sharedValidator "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/validator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phone   string `validate:"phone"`
	Code    string `validate:"coffeecode"`
	EngName string `validate:"engname"`
	Price   int    `validate:"min=100,max=50000"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, v.RegisterValidation("phone", sharedValidator.ValidatePhone))
	require.NoError(t, v.RegisterValidation("coffeecode", sharedValidator.ValidateCoffeeCode))
	require.NoError(t, v.RegisterValidation("engname", sharedValidator.ValidateEngName))
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate(t)

	valid := sample{Phone: "010-1234-5678", Code: "ame", EngName: "Cafe Latte", Price: 2500}
	assert.NoError(t, v.Struct(valid))

	testCases := []struct {
		name   string
		mutate func(s *sample)
		tag    string
	}{
		{name: "phone without hyphen", mutate: func(s *sample) { s.Phone = "01012345678" }, tag: "phone"},
		{name: "coffee code too long", mutate: func(s *sample) { s.Code = "AMER" }, tag: "coffeecode"},
		{name: "coffee code with digits", mutate: func(s *sample) { s.Code = "A1C" }, tag: "coffeecode"},
		{name: "eng name double space", mutate: func(s *sample) { s.EngName = "Cafe  Latte" }, tag: "engname"},
		{name: "eng name korean", mutate: func(s *sample) { s.EngName = "카페라떼" }, tag: "engname"},
		{name: "price too low", mutate: func(s *sample) { s.Price = 99 }, tag: "min"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.mutate(&s)

			err := v.Struct(s)
			require.Error(t, err)

			resp, ok := sharedValidator.ToErrorResponse(err)
			require.True(t, ok)
			assert.Equal(t, "ERROR-001", resp.Code)
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, tc.tag, err.(validator.ValidationErrors)[0].Tag())
		})
	}
}
