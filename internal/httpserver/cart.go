package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zomio-storefront/internal/domain"
)

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalPrice int64             `json:"totalPrice"`
	TotalItems int               `json:"totalItems"`
}

func buildCartResponse(c *gin.Context, deps Deps) (*cartResponse, error) {
	ctx := c.Request.Context()
	items, err := deps.CartSvc.Items(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	totalPrice, err := deps.CartSvc.TotalPrice(ctx)
	if err != nil {
		return nil, err
	}
	totalItems, err := deps.CartSvc.TotalItems(ctx)
	if err != nil {
		return nil, err
	}
	return &cartResponse{Items: items, TotalPrice: totalPrice, TotalItems: totalItems}, nil
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := buildCartResponse(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read cart"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

type addCartItemRequest struct {
	ProductID    string `json:"productId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	SelectedSize string `json:"selectedSize"`
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and quantity are required"})
			return
		}

		product, err := deps.CatalogSvc.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get product"})
			return
		}

		if _, err := deps.CartSvc.Add(c.Request.Context(), *product, req.Quantity, req.SelectedSize); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := buildCartResponse(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read cart"})
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
			return
		}
		if err := deps.CartSvc.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update cart"})
			return
		}
		resp, err := buildCartResponse(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read cart"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func removeCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.CartSvc.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update cart"})
			return
		}
		resp, err := buildCartResponse(c, deps)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "read cart"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.CartSvc.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
