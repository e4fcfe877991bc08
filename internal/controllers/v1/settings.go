package v1

import (
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

type SettingsResponse struct {
	Data  *ledger.Settings `json:"data"`                                                   // The settings record
	Error *string          `json:"error" example:"unexpected error on the storage layer"`  // The error, if any occurred
}

func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSettings)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func (co Controller) OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the user preferences, falling back to the defaults when none are stored
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := co.Store.GetSettings()
	if err != nil {
		c.JSON(status(err), SettingsResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the user preferences. Only values to be updated need to be specified. The budgetLimits map replaces the stored map as a whole.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		ledger.SettingsUpdate	true	"Settings"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	var update ledger.SettingsUpdate
	if err := httputil.BindData(c, &update); err != nil {
		c.JSON(status(err), SettingsResponse{Error: errorString(err)})
		return
	}

	settings, err := co.Store.UpdateSettings(update)
	if err != nil {
		c.JSON(status(err), SettingsResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
