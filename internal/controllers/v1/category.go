package v1

import (
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsCategories)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get categories
// @Description	Returns the income and expense categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoriesResponse
// @Failure		500	{object}	CategoriesResponse
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.Store.GetCategories()
	if err != nil {
		c.JSON(status(err), CategoriesResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Data: &categories})
}

// @Summary		Create category
// @Description	Creates a new custom category for the specified transaction type
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			category	body		CategoryCreateRequest	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var request CategoryCreateRequest

	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), CategoryResponse{Error: errorString(err)})
		return
	}

	if err := request.validate(); err != nil {
		c.JSON(status(err), CategoryResponse{Error: errorString(err)})
		return
	}

	category, err := co.Store.AddCategory(request.Type, request.model())
	if err != nil {
		c.JSON(status(err), CategoryResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Data: &category})
}
