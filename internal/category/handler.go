package category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(c *gin.Context) {
	var filter *string
	if f := c.Query("filter"); f != "" {
		filter = &f
	}
	limit := queryInt32(c, "limit")
	page := queryInt32(c, "page")

	categories, total, err := h.svc.GetCategories(c.Request.Context(), filter, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
		"total":   total,
	})
}

// GetCategory handles GET /api/categories/:id.
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid category id",
		})
		return
	}

	cat, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Category not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get category",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cat,
	})
}

// CreateCategory handles POST /api/categories.
func (h *Handler) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	cat, err := h.svc.AddCategory(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Category name is required",
			})
		case errors.Is(err, ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Category name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to create category",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    cat,
	})
}

func queryInt32(c *gin.Context, key string) *int32 {
	if v := c.Query(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			n32 := int32(n)
			return &n32
		}
	}
	return nil
}
