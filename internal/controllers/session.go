package controllers

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type Credentials struct {
	Email    string `json:"email" binding:"required" example:"ana@example.com"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"` // Bearer token for the Authorization header
}

// RegisterSessionRoutes registers the unauthenticated routes for account
// creation and login with the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// @Summary		Register
// @Description	Creates a new user and returns a bearer token for it
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		201			{object}	TokenResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		Credentials	true	"Email and password"
// @Router			/api/register [post]
func (co Controller) Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := models.CreateUser(co.db, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	token, err := co.tokens.Sign(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// @Summary		Log in
// @Description	Returns a bearer token for an existing user
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			credentials	body		Credentials	true	"Email and password"
// @Router			/api/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := models.UserByLogin(co.db, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	token, err := co.tokens.Sign(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
