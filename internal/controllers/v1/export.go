package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

func (co Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsImport)
	r.POST("", co.PostImport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export & Import
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export & Import
// @Success		204
// @Router			/v1/import [options]
func (co Controller) OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export all data
// @Description	Returns a portable document with all transactions, categories, goals and settings. The response body is accepted as-is by the import endpoint.
// @Tags			Export & Import
// @Produce		json
// @Success		200	{object}	ledger.ExportDocument
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	document, err := co.Store.ExportData()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="finance-backup-%s.json"`, time.Now().Format("2006-01-02")))
	c.JSON(http.StatusOK, document)
}

// @Summary		Import data
// @Description	Replaces the stored collections with the ones present in the uploaded document. Collections missing from the document are left untouched.
// @Tags			Export & Import
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			document	body	ledger.ExportDocument	true	"A document produced by the export endpoint"
// @Router			/v1/import [post]
func (co Controller) PostImport(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrRequestBodyEmpty.Error()})
		return
	}

	if err := co.Store.ImportData(data); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
