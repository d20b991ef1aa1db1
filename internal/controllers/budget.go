package controllers

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type BudgetListResponse struct {
	Data []models.Budget `json:"data"` // List of budget categories
}

type BudgetResponse struct {
	Data models.Budget `json:"data"` // Data for the budget category
}

type BudgetEditable struct {
	Category string `json:"category" example:"Moradia"`
	Percent  int    `json:"percent" example:"30"`
}

// RegisterBudgetRoutes registers the routes for budget categories with the
// RouterGroup that is passed.
//
// The id parameter is the profile ID for GET and POST and the budget ID for
// PUT and DELETE. The web client has relied on this shape since the first
// release, so it stays.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup, authenticated gin.HandlerFunc) {
	r.OPTIONS("/:id", httputil.OptionsGetPostPutDelete)

	r.Use(authenticated)
	r.GET("/:id", co.GetBudgets)
	r.POST("/:id", co.CreateBudget)
	r.PUT("/:id", co.UpdateBudget)
	r.DELETE("/:id", co.DeleteBudget)
}

// @Summary		List budget categories
// @Description	Returns all budget categories of a profile
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the profile"
// @Router			/api/budgets/{id} [get]
func (co Controller) GetBudgets(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budgets, err := models.Budgets(co.db, userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// @Summary		Create budget category
// @Description	Adds a budget category to a profile
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the profile"
// @Param			budget	body		BudgetEditable	true	"Budget category"
// @Router			/api/budgets/{id} [post]
func (co Controller) CreateBudget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := models.CreateBudget(co.db, userID(c), id, editable.Category, editable.Percent)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: budget})
}

// @Summary		Update budget category
// @Description	Replaces the label and percentage of a budget category
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		403		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		uint			true	"ID of the budget category"
// @Param			budget	body		BudgetEditable	true	"Budget category"
// @Router			/api/budgets/{id} [put]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := models.BudgetOwnedBy(co.db, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = budget.Update(co.db, editable.Category, editable.Percent)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}

// @Summary		Delete budget category
// @Description	Deletes a budget category. Repeating the call succeeds without effect.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint	true	"ID of the budget category"
// @Router			/api/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteBudget(co.db, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
