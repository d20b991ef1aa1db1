package controllers

import (
	"net/http"

	"github.com/centavo-app/backend/internal/httputil"
	"github.com/centavo-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileListResponse struct {
	Data []models.Profile `json:"data"` // List of profiles
}

type ProfileResponse struct {
	Data models.Profile `json:"data"` // Data for the profile
}

type ProfileEditable struct {
	Name   string              `json:"name" binding:"required" example:"Casa"`
	Income decimal.NullDecimal `json:"income" swaggertype:"number"`
}

type IncomeEditable struct {
	Income decimal.NullDecimal `json:"income" swaggertype:"number"`
}

type CategorySet struct {
	Categories []models.BudgetItem `json:"categories"` // Full replacement category set
}

// RegisterProfileRoutes registers the routes for profiles with the
// RouterGroup that is passed. OPTIONS stays reachable without a token,
// everything registered after the middleware does not.
func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup, authenticated gin.HandlerFunc) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.OPTIONS("/:profileId/income", httputil.OptionsPut)
	r.OPTIONS("/:profileId/categories", httputil.OptionsPut)

	r.Use(authenticated)

	// Root group
	{
		r.GET("", co.GetProfiles)
		r.POST("", co.CreateProfile)
	}

	// Profile with ID
	{
		r.PUT("/:profileId/income", co.UpdateProfileIncome)
		r.PUT("/:profileId/categories", co.ReplaceProfileCategories)
	}
}

// RegisterProfileResolveRoutes registers the route resolving a profile by
// name. It lives under its own prefix so that the name segment cannot
// collide with profile IDs.
func (co Controller) RegisterProfileResolveRoutes(r *gin.RouterGroup, authenticated gin.HandlerFunc) {
	r.OPTIONS("/:name", httputil.OptionsGet)

	r.Use(authenticated)
	r.GET("/:name", co.ResolveProfile)
}

// @Summary		List profiles
// @Description	Returns the profiles of the authenticated user
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Failure		500	{object}	httpError
// @Router			/api/profiles [get]
func (co Controller) GetProfiles(c *gin.Context) {
	profiles, err := models.Profiles(co.db, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileListResponse{Data: profiles})
}

// @Summary		Create profile
// @Description	Creates a new profile for the authenticated user
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProfileResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/api/profiles [post]
func (co Controller) CreateProfile(c *gin.Context) {
	var editable ProfileEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	profile, err := models.CreateProfile(co.db, userID(c), editable.Name, editable.Income)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ProfileResponse{Data: profile})
}

// @Summary		Resolve profile by name
// @Description	Returns the profile with the name, creating it on first access
// @Tags			Profiles
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			name	path		string	true	"Profile name"
// @Router			/api/profile/{name} [get]
func (co Controller) ResolveProfile(c *gin.Context) {
	profile, err := models.ResolveProfileName(co.db, userID(c), c.Param("name"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: profile})
}

// @Summary		Update income
// @Description	Sets the income of a profile
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProfileResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			profileId	path		uint			true	"ID of the profile"
// @Param			income		body		IncomeEditable	true	"Income"
// @Router			/api/profiles/{profileId}/income [put]
func (co Controller) UpdateProfileIncome(c *gin.Context) {
	id, err := httputil.ParseID(c, "profileId")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable IncomeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	profile, err := models.ProfileOwnedBy(co.db, id, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = profile.UpdateIncome(co.db, editable.Income)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: profile})
}

// @Summary		Replace categories
// @Description	Atomically replaces the full budget category set of a profile
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	httpError
// @Failure		403			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			profileId	path		uint		true	"ID of the profile"
// @Param			categories	body		CategorySet	true	"Replacement category set"
// @Router			/api/profiles/{profileId}/categories [put]
func (co Controller) ReplaceProfileCategories(c *gin.Context) {
	id, err := httputil.ParseID(c, "profileId")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var set CategorySet
	err = httputil.BindData(c, &set)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budgets, err := models.ReplaceBudgets(co.db, userID(c), id, set.Categories)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}
