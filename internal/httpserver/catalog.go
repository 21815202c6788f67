package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zomio-storefront/internal/domain"
)

type areasResponse struct {
	Areas       []string `json:"areas"`
	DefaultArea string   `json:"defaultArea"`
}

func areasHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, areasResponse{Areas: deps.Areas, DefaultArea: deps.DefaultArea})
	}
}

type productListResponse struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

// listProductsHandler answers the storefront browse queries. One primary
// selector applies (q, then category, then featured); an area constraint
// composes on top of any of them.
func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if deps.CatalogSvc.Loading() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog is still loading"})
			return
		}
		if deps.CatalogSvc.Err() != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}

		var (
			products []domain.Product
			err      error
		)
		switch {
		case c.Query("q") != "":
			products, err = deps.CatalogSvc.Search(ctx, c.Query("q"))
		case c.Query("category") != "":
			products, err = deps.CatalogSvc.ByCategory(ctx, c.Query("category"))
		case c.Query("featured") == "true":
			products, err = deps.CatalogSvc.Featured(ctx)
		default:
			products, err = deps.CatalogSvc.List(ctx)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list products"})
			return
		}

		if area := c.Query("area"); area != "" {
			filtered := make([]domain.Product, 0, len(products))
			for _, p := range products {
				if p.AvailableIn(area) {
					filtered = append(filtered, p)
				}
			}
			products = filtered
		}

		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, productListResponse{Count: len(products), Results: products})
	}
}

func getProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := deps.CatalogSvc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
