package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zomio-storefront/internal/domain"
	checkoutsvc "zomio-storefront/internal/service/checkout"
)

type checkoutRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Area          string `json:"area"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type checkoutResponse struct {
	OrderID string `json:"orderId"`
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethod is required"})
			return
		}

		info := domain.CustomerInfo{
			Name:    req.Name,
			Phone:   req.Phone,
			Address: req.Address,
			Area:    req.Area,
		}
		orderID, err := deps.CheckoutSvc.Submit(c.Request.Context(), info, domain.PaymentMethod(req.PaymentMethod))
		if err != nil {
			var verr *checkoutsvc.ValidationError
			switch {
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			case errors.Is(err, checkoutsvc.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			default:
				// The cart is left intact on failure so the customer can
				// simply retry.
				c.JSON(http.StatusInternalServerError, gin.H{"error": "there was an error processing your order, please try again"})
			}
			return
		}

		c.JSON(http.StatusCreated, checkoutResponse{OrderID: orderID})
	}
}

func getOrderHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := deps.OrderSvc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
