package v1

import (
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func (co Controller) OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := co.findGoal(uri.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable

	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	if err := editable.validate(); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	goal, err := co.Store.SaveGoal(editable.model())
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: &goal})
}

// @Summary		Get goals
// @Description	Returns a list of savings goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals, err := co.Store.GetGoals()
	if err != nil {
		c.JSON(status(err), GoalListResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: goals})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	goal, err := co.findGoal(uri.ID)
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalUpdateRequest	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	var request GoalUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	if err := request.validate(); err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	goal, err := co.Store.UpdateGoal(uri.ID, request.model())
	if err != nil {
		c.JSON(status(err), GoalResponse{Error: errorString(err)})
		return
	}

	if goal == nil {
		c.JSON(status(errNoResource), GoalResponse{Error: errorString(errNoResource)})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goals, err := co.Store.GetGoals()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	remaining := slices.DeleteFunc(slices.Clone(goals), func(goal ledger.Goal) bool {
		return goal.ID == uri.ID
	})

	if len(remaining) == len(goals) {
		c.JSON(status(errNoResource), httpError{Error: errNoResource.Error()})
		return
	}

	if err := co.Store.ReplaceGoals(remaining); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (co Controller) findGoal(id string) (*ledger.Goal, error) {
	goals, err := co.Store.GetGoals()
	if err != nil {
		return nil, err
	}

	for i := range goals {
		if goals[i].ID == id {
			return &goals[i], nil
		}
	}

	return nil, errNoResource
}
