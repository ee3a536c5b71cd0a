package middlewares

import (
	"encoding/base64"
	"net/http"
	"strings"

	"easattend.com/easattend/security"
	"easattend.com/easattend/web/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const IdentityKey = "identity"

func parseJwt(tokenStr string, jwtSecret []byte) (*security.IdentityClaims, error) {
	claims := &security.IdentityClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authentication checks for a valid Bearer token and stores the caller's
// identity on the context.
func Authentication(base64Secret string) gin.HandlerFunc {
	jwtSecret, err := base64.StdEncoding.DecodeString(base64Secret)

	return func(c *gin.Context) {
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse("invalid signing secret"))
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parseJwt(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(IdentityKey, &claims.Identity)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated caller is an admin.
// Must run after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("admin only"))
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the authenticated caller, or nil outside an
// authenticated group.
func CurrentIdentity(c *gin.Context) *security.Identity {
	value, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*security.Identity)
	return identity
}
