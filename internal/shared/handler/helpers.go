package handler

import (
	"net/http"

	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// IDParam binds the positive resource id in paths like /coffees/:id
type IDParam struct {
	ID uint32 `uri:"id" binding:"required,min=1"`
}

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateCoffeeRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return respondBindError(c, c.ShouldBindJSON(obj))
}

// BindID parses the :id path parameter, rejecting zero, negative and non-numeric values
func BindID(c *gin.Context) (uint32, bool) {
	var param IDParam
	if !respondBindError(c, c.ShouldBindUri(&param)) {
		return 0, false
	}
	return param.ID, true
}

// BindPage parses ?page=&size= before anything touches the store
func BindPage(c *gin.Context) (pagination.Request, bool) {
	var req pagination.Request
	if !respondBindError(c, c.ShouldBindQuery(&req)) {
		return pagination.Request{}, false
	}
	return req, true
}

func respondBindError(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	// Add error to context for middleware logging
	c.Error(err)

	// Check if it's a validation error
	if resp, ok := validator.ToErrorResponse(err); ok {
		c.JSON(http.StatusBadRequest, resp)
	} else {
		// JSON parsing error or other binding errors
		c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
	}
	return false
}

// RespondError sends an error response with logging
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondServiceError maps a service error to its registered response, or 500.
//
//	if err != nil {
//	    handler.RespondServiceError(c, err)
//	    return
//	}
func RespondServiceError(c *gin.Context, err error) {
	RespondError(c, err, sharedError.ResolveOrInternal(err))
}
