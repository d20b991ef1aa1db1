package controllers

import (
	"github.com/centavo-app/backend/internal/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller holds the handles the handlers work with. Both are injected so
// that tests can run every handler against their own database and secret.
type Controller struct {
	db     *gorm.DB
	tokens *auth.TokenAuthority
}

func NewController(db *gorm.DB, tokens *auth.TokenAuthority) Controller {
	return Controller{db: db, tokens: tokens}
}

// userID returns the verified caller identity set by the auth middleware.
func userID(c *gin.Context) uint {
	return c.GetUint(auth.UserIDKey)
}
