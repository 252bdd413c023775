package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akulinin/todo-backend/internal/app/auth/dto"
	"github.com/akulinin/todo-backend/internal/app/auth/service"
	"github.com/akulinin/todo-backend/internal/domain/model"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the bearer token to a user before any protected
// handler runs. Every failure mode (missing header, bad signature,
// expiry, wrong token type, deleted subject) answers with the same
// generic 401; the distinction stays in the service's logs.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}

		user, err := auth.Validate(c.Request.Context(), dto.ValidateDTO{AccessToken: token})
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) model.User {
	u, _ := c.Get(currentUserKey)
	user, _ := u.(model.User)
	return user
}
