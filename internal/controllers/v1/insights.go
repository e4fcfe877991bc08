package v1

import (
	"net/http"
	"time"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

type Insights struct {
	BudgetAlerts []ledger.Alert        `json:"budgetAlerts"` // Budget limit alerts for the current month
	Goals        []ledger.GoalProgress `json:"goals"`        // Progress towards every savings goal
	Spending     []ledger.Alert        `json:"spending"`     // Observations about overall spending
}

type InsightsResponse struct {
	Data  *Insights `json:"data"`                                                  // The insights
	Error *string   `json:"error" example:"unexpected error on the storage layer"` // The error, if any occurred
}

func (co Controller) RegisterInsightsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsInsights)
	r.GET("", co.GetInsights)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/insights [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns budget alerts for the current month, progress for all goals and spending observations
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	InsightsResponse
// @Failure		500	{object}	InsightsResponse
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	now := time.Now()

	alerts, err := co.Store.BudgetAlerts(now)
	if err != nil {
		c.JSON(status(err), InsightsResponse{Error: errorString(err)})
		return
	}

	goals, err := co.Store.GoalProgressAll(now)
	if err != nil {
		c.JSON(status(err), InsightsResponse{Error: errorString(err)})
		return
	}

	spending, err := co.Store.SpendingInsights()
	if err != nil {
		c.JSON(status(err), InsightsResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, InsightsResponse{Data: &Insights{
		BudgetAlerts: alerts,
		Goals:        goals,
		Spending:     spending,
	}})
}
