package healthz

import (
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/storage"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"database is closed"`
}

func RegisterRoutes(r *gin.RouterGroup, pinger storage.Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(pinger))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(pinger storage.Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := pinger.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
