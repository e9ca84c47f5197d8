package error_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/stretchr/testify/assert"
)

const testNotFound = "TEST_NOT_FOUND"

var errTestNotFound = sharedError.NewDomainError(testNotFound)

func init() {
	sharedError.RegisterDomainErrorResponse(testNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "TEST-001",
		Message: "not found",
	})
}

func TestResolveDomainError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("lookup id=3: %w", errTestNotFound)

	resp, ok := sharedError.ResolveDomainError(err)

	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "TEST-001", resp.Code)
	assert.True(t, errors.Is(err, errTestNotFound))
}

func TestResolveDomainError_Unregistered(t *testing.T) {
	_, ok := sharedError.ResolveDomainError(sharedError.NewDomainError("UNREGISTERED"))
	assert.False(t, ok)

	_, ok = sharedError.ResolveDomainError(nil)
	assert.False(t, ok)
}

func TestResolveOrInternal(t *testing.T) {
	assert.Equal(t, sharedError.InternalServerError, sharedError.ResolveOrInternal(errors.New("boom")))
	assert.Equal(t, "TEST-001", sharedError.ResolveOrInternal(errTestNotFound).Code)
}
