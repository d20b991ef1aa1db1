package controllers

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"` // List of expenses
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"` // Data for the expense
}

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
//
// As with budgets, the id parameter is the profile ID for GET and POST and
// the expense ID for PUT and DELETE.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup, authenticated gin.HandlerFunc) {
	r.OPTIONS("/:id", httputil.OptionsGetPostPutDelete)

	r.Use(authenticated)
	r.GET("/:id", co.GetExpenses)
	r.POST("/:id", co.CreateExpense)
	r.PUT("/:id", co.UpdateExpense)
	r.DELETE("/:id", co.DeleteExpense)
}

// @Summary		List expenses
// @Description	Returns all expenses of a profile
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the profile"
// @Router			/api/expenses/{id} [get]
func (co Controller) GetExpenses(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expenses, err := models.Expenses(co.db, userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Records an expense against a profile
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint					true	"ID of the profile"
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [post]
func (co Controller) CreateExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable models.ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense, err := models.CreateExpense(co.db, userID(c), id, editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		Update expense
// @Description	Replaces all fields of an expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint					true	"ID of the expense"
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable models.ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense, err := models.ExpenseOwnedBy(co.db, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = expense.Update(co.db, editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Repeating the call succeeds without effect.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the expense"
// @Router			/api/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteExpense(co.db, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
