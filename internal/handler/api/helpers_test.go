//go:build unit

package api_test

import (
	"court-slot-engine/internal/domain/user"

	"github.com/gin-gonic/gin"
)

type testCase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// fakeAuth authenticates any request that carries an Authorization header as actor.
func fakeAuth(actor user.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		c.Set("user_id", actor.ID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

