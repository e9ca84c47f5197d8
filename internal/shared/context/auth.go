package context

import (
	"github.com/gin-gonic/gin"
)

// Context keys for storing staff authentication information
const (
	StaffIDKey   = "staff_id"
	StaffRoleKey = "staff_role"
)

// GetStaffID returns the authenticated staff id set by the JWT middleware
func GetStaffID(c *gin.Context) (string, bool) {
	staffID, exists := c.Get(StaffIDKey)
	if !exists {
		return "", false
	}

	id, ok := staffID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func GetStaffRole(c *gin.Context) string {
	return c.GetString(StaffRoleKey)
}
