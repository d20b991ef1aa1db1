package controllers

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the name-scoped expense routes with the
// RouterGroup that is passed. These are the routes the dashboard uses: it
// knows profiles by name, not by ID.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup, authenticated gin.HandlerFunc) {
	r.OPTIONS("/:profile", httputil.OptionsGetPost)

	r.Use(authenticated)
	r.GET("/:profile", co.GetTransactions)
	r.POST("/:profile", co.CreateTransaction)
}

// @Summary		List transactions
// @Description	Returns the expenses of the named profile, optionally filtered to one month
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		500		{object}	httpError
// @Param			profile	path		string	true	"Profile name"
// @Param			month	query		string	false	"Month prefix in YYYY-MM format"
// @Router			/api/transactions/{profile} [get]
func (co Controller) GetTransactions(c *gin.Context) {
	// A name that matches no profile yields an empty list rather than an
	// error. The dashboard requests transactions before the profile has
	// been written to for the first time.
	expenses, err := models.ExpensesNamed(co.db, userID(c), c.Param("profile"), c.Query("month"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create transaction
// @Description	Records an expense against the named profile
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			profile	path		string					true	"Profile name"
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/api/transactions/{profile} [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable models.ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense, err := models.CreateExpenseNamed(co.db, userID(c), c.Param("profile"), editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}
