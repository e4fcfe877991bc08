package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MonthListResponse struct {
	Data  map[int]ledger.MonthlyAmounts `json:"data"`                                      // Monthly income, expense and savings keyed by month number
	Error *string                       `json:"error" example:"the year must be a number"` // The error, if any occurred
}

type Total struct {
	Type  ledger.TransactionType `json:"type" example:"expense"` // The transaction type that was summed
	Total decimal.Decimal        `json:"total" example:"1412.50"` // Sum over all matching transactions
}

type TotalResponse struct {
	Data  *Total  `json:"data"`                                                           // The total
	Error *string `json:"error" example:"the type parameter must be \"income\" or \"expense\""` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  []ledger.BreakdownEntry `json:"data"`                                            // Per-category sums in category definition order
	Error *string                 `json:"error" example:"dates must be specified as YYYY-MM-DD"` // The error, if any occurred
}

func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonths)
	r.GET("", co.GetMonths)
}

func (co Controller) RegisterTotalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsTotals)
	r.GET("", co.GetTotals)
}

func (co Controller) RegisterBreakdownRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBreakdown)
	r.GET("", co.GetBreakdown)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/totals [options]
func (co Controller) OptionsTotals(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/breakdown [options]
func (co Controller) OptionsBreakdown(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly data
// @Description	Returns income, expense and savings for every month of a year. All twelve months are always present.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		500		{object}	MonthListResponse
// @Param			year	query		int	false	"The year to report on. Defaults to the current year."
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	year := time.Now().Year()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(status(errYearInvalid), MonthListResponse{Error: errorString(errYearInvalid)})
			return
		}
		year = parsed
	}

	months, err := co.Store.GetMonthlyData(year)
	if err != nil {
		c.JSON(status(err), MonthListResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: months})
}

// @Summary		Get totals
// @Description	Returns the sum over all transactions of a type, optionally restricted to a date range
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	TotalResponse
// @Failure		400	{object}	TotalResponse
// @Failure		500	{object}	TotalResponse
// @Param			type	query	string	true	"The transaction type to sum"
// @Param			from	query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			until	query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Router			/v1/totals [get]
func (co Controller) GetTotals(c *gin.Context) {
	transactionType := ledger.TransactionType(c.Query("type"))
	if !transactionType.Valid() {
		c.JSON(status(errTypeParamMissing), TotalResponse{Error: errorString(errTypeParamMissing)})
		return
	}

	dateRange, err := parseRange(c.Query("from"), c.Query("until"))
	if err != nil {
		c.JSON(status(err), TotalResponse{Error: errorString(err)})
		return
	}

	total, err := co.Store.GetTotalsByType(transactionType, dateRange)
	if err != nil {
		c.JSON(status(err), TotalResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, TotalResponse{Data: &Total{Type: transactionType, Total: total}})
}

// @Summary		Get category breakdown
// @Description	Returns per-category sums and counts for a transaction type, optionally restricted to a date range. Transactions whose category no longer exists are not part of the breakdown.
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	BreakdownResponse
// @Failure		400	{object}	BreakdownResponse
// @Failure		500	{object}	BreakdownResponse
// @Param			type	query	string	true	"The transaction type to break down"
// @Param			from	query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			until	query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Router			/v1/breakdown [get]
func (co Controller) GetBreakdown(c *gin.Context) {
	transactionType := ledger.TransactionType(c.Query("type"))
	if !transactionType.Valid() {
		c.JSON(status(errTypeParamMissing), BreakdownResponse{Error: errorString(errTypeParamMissing)})
		return
	}

	dateRange, err := parseRange(c.Query("from"), c.Query("until"))
	if err != nil {
		c.JSON(status(err), BreakdownResponse{Error: errorString(err)})
		return
	}

	breakdown, err := co.Store.GetCategoryBreakdown(transactionType, dateRange)
	if err != nil {
		c.JSON(status(err), BreakdownResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: breakdown})
}
