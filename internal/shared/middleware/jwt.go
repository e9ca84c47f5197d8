package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/coffee-order/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
	forbiddenRole = "FORBIDDEN_ROLE"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
	ErrForbiddenRole = sharedError.NewDomainError(forbiddenRole)
)

func init() {
	for _, errInfo := range []string{missingToken, invalidToken, expiredToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.Unauthenticated)
	}

	sharedError.RegisterDomainErrorResponse(forbiddenRole, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "AUTH-001",
		Message: "권한이 없습니다.",
	})
}

// JWT authenticates staff requests. Only tokens carrying one of the given roles pass.
func JWT(tokenManager token.Manager, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Step 1: 토큰 추출
		raw, err := extractToken(c)
		if err != nil {
			logAuthFailure(c, "extract_token", err)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(raw)
		if err != nil {
			logAuthFailure(c, "validate_token", err)
			handleJWTError(c, mapTokenError(err))
			return
		}

		// Step 3: 권한 확인
		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			logAuthFailure(c, "check_role", ErrForbiddenRole)
			handleJWTError(c, ErrForbiddenRole)
			return
		}

		c.Set(sharedContext.StaffIDKey, claims.StaffID)
		c.Set(sharedContext.StaffRoleKey, claims.Role)
		c.Next()
	}
}

func logAuthFailure(c *gin.Context, step string, err error) {
	slog.Warn("JWT 인증 실패",
		"step", step,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
	)
}

func handleJWTError(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.Unauthenticated
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
