package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"zomio-storefront/internal/domain"
	authsvc "zomio-storefront/internal/service/auth"
)

const sessionName = "zomio-admin"

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func loginHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		identity, err := deps.AuthSvc.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login"})
			return
		}

		session, _ := deps.Sessions.Get(c.Request, sessionName)
		session.Values["authenticated"] = true
		session.Values["username"] = identity.Username
		session.Values["role"] = string(identity.Role)
		session.Options.Path = "/"
		if err := session.Save(c.Request, c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save session"})
			return
		}

		c.JSON(http.StatusOK, identity)
	}
}

func logoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.AuthSvc.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout"})
			return
		}
		session, _ := deps.Sessions.Get(c.Request, sessionName)
		session.Values = map[interface{}]interface{}{}
		session.Options.MaxAge = -1
		_ = session.Save(c.Request, c.Writer)
		c.Status(http.StatusNoContent)
	}
}

// requireAdmin gates the back-office routes on an authenticated session
// cookie.
func requireAdmin(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := deps.Sessions.Get(c.Request, sessionName)
		auth, ok := session.Values["authenticated"].(bool)
		if !ok || !auth {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

type orderListResponse struct {
	Count   int            `json:"count"`
	Results []domain.Order `json:"results"`
}

// adminOrdersHandler lists orders, optionally narrowed by status and area.
func adminOrdersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var (
			orders []domain.Order
			err    error
		)
		status := c.Query("status")
		area := c.Query("area")
		switch {
		case status != "":
			if !domain.OrderStatus(status).Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
				return
			}
			orders, err = deps.OrderSvc.ByStatus(ctx, domain.OrderStatus(status))
		case area != "":
			orders, err = deps.OrderSvc.ByArea(ctx, area)
		default:
			orders, err = deps.OrderSvc.All(ctx)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list orders"})
			return
		}

		if status != "" && area != "" {
			filtered := make([]domain.Order, 0, len(orders))
			for _, o := range orders {
				if o.CustomerInfo.Area == area {
					filtered = append(filtered, o)
				}
			}
			orders = filtered
		}

		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orderListResponse{Count: len(orders), Results: orders})
	}
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateOrderStatusHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		id := c.Param("id")
		err := deps.OrderSvc.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, domain.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "status transition not allowed"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "update status"})
			}
			return
		}

		order, err := deps.OrderSvc.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func updatePaymentStatusHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		id := c.Param("id")
		err := deps.OrderSvc.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		order, err := deps.OrderSvc.Get(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type statsResponse struct {
	TotalRevenue int64          `json:"totalRevenue"`
	TotalOrders  int            `json:"totalOrders"`
	ByStatus     map[string]int `json:"byStatus"`
}

// adminStatsHandler powers the back-office dashboard tiles.
func adminStatsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		revenue, err := deps.OrderSvc.TotalRevenue(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats"})
			return
		}
		orders, err := deps.OrderSvc.All(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats"})
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[string(o.Status)]++
		}
		c.JSON(http.StatusOK, statsResponse{
			TotalRevenue: revenue,
			TotalOrders:  len(orders),
			ByStatus:     byStatus,
		})
	}
}
