package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-hrledger/internal/shared/contextutil"
	"go-hrledger/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// identity is the claim set the identity provider stamps on its tokens.
// Issuance lives outside this service; only validation happens here.
type identity struct {
	UserID     string
	EmployeeID string
	Role       string
	Department string
}

// AuthMiddleware validates the bearer token and exposes the identity
// claims on the gin context and the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			code, message := "INVALID_TOKEN", "Token is invalid"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code, message = "TOKEN_EXPIRED", "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		id, ok := identityFromClaims(token.Claims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		c.Set("user_id", id.UserID)
		c.Set("employee_id", id.EmployeeID)
		c.Set("role", id.Role)
		c.Set("department", id.Department)

		ctx := contextutil.WithActorID(c.Request.Context(), id.EmployeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func identityFromClaims(claims jwt.Claims) (identity, bool) {
	mapClaims, ok := claims.(jwt.MapClaims)
	if !ok {
		return identity{}, false
	}

	userID, _ := mapClaims["user_id"].(string)
	employeeID, _ := mapClaims["employee_id"].(string)
	if userID == "" || employeeID == "" {
		return identity{}, false
	}

	role, _ := mapClaims["role"].(string)
	department, _ := mapClaims["department"].(string)

	return identity{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role,
		Department: department,
	}, true
}
