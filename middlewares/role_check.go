package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
)

// RequireRoles membatasi akses ke role tertentu. Admin selalu lolos.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		userRole, ok := roleInterface.(string)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("invalid role format"))
			c.Abort()
			return
		}

		if userRole != models.RoleAdmin && !allowed[userRole] {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%s access required", rolesLabel(roles)))
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly -> shortcut untuk endpoint administrasi
func AdminOnly() gin.HandlerFunc {
	return RequireRoles()
}

func rolesLabel(roles []string) string {
	if len(roles) == 0 {
		return "admin"
	}
	label := roles[0]
	for _, role := range roles[1:] {
		label += "/" + role
	}
	return label
}
