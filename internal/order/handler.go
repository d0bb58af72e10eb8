package order

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc    Service
	appEnv string
}

func NewHandler(svc Service, appEnv string) *Handler {
	return &Handler{svc: svc, appEnv: appEnv}
}

// CreateOrder handles POST /api/orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	receipt, err := h.svc.SubmitOrder(c.Request.Context(), sub)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"data":    receipt,
	})
}

// GetOrder handles GET /api/orders/:orderId.
func (h *Handler) GetOrder(c *gin.Context) {
	receipt, err := h.svc.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Order not found",
			})
			return
		}
		h.writeInternalError(c, "Failed to get order", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    receipt,
	})
}

// writeSubmitError maps the pipeline/persistence error taxonomy onto the
// HTTP envelope. Every rejection carries field-attributed detail.
func (h *Handler) writeSubmitError(c *gin.Context, err error) {
	var (
		custErr *CustomerValidationError
		prodErr *ProductValidationError
		sumErr  *SummaryValidationError
	)

	switch {
	case errors.Is(err, ErrEmptyOrder):
		h.writeValidationError(c, "Order validation failed", []FieldError{
			{Field: "products", Message: "At least one product is required"},
		})

	case errors.As(err, &custErr):
		fields := make([]FieldError, 0, len(custErr.Errors))
		for _, fe := range custErr.Errors {
			fields = append(fields, FieldError{Field: "customer." + fe.Field, Message: fe.Message})
		}
		h.writeValidationError(c, "Order validation failed", fields)

	case errors.As(err, &prodErr):
		fields := make([]FieldError, 0, len(prodErr.Errors))
		for _, fe := range prodErr.Errors {
			fields = append(fields, FieldError{
				Field:   fmt.Sprintf("products[%d].%s", prodErr.Position-1, fe.Field),
				Message: fe.Message,
			})
		}
		h.writeValidationError(c, "Order validation failed", fields)

	case errors.As(err, &sumErr):
		fields := make([]FieldError, 0, len(sumErr.Mismatches))
		for _, m := range sumErr.Mismatches {
			fields = append(fields, FieldError{Field: "orderSummary", Message: m})
		}
		h.writeValidationError(c, "Order validation failed", fields)

	case errors.Is(err, ErrDuplicateOrderID):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Order ID already exists. Please try again.",
			"error":   "Duplicate order ID",
		})

	default:
		h.writeInternalError(c, "Failed to create order", err)
	}
}

func (h *Handler) writeValidationError(c *gin.Context, message string, fields []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"errors":  fields,
	})
}

// writeInternalError suppresses storage detail outside development mode.
func (h *Handler) writeInternalError(c *gin.Context, message string, err error) {
	detail := "Internal server error"
	if h.appEnv == "development" {
		detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   detail,
	})
}
