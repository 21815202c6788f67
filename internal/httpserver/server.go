package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	authsvc "zomio-storefront/internal/service/auth"
	cartsvc "zomio-storefront/internal/service/cart"
	catalogsvc "zomio-storefront/internal/service/catalog"
	checkoutsvc "zomio-storefront/internal/service/checkout"
	ordersvc "zomio-storefront/internal/service/order"
)

// Deps bundles the stores and services the handlers read from and mutate.
type Deps struct {
	CatalogSvc  *catalogsvc.Service
	CartSvc     *cartsvc.Service
	OrderSvc    *ordersvc.Service
	CheckoutSvc *checkoutsvc.Service
	AuthSvc     *authsvc.Service
	Areas       []string
	DefaultArea string
	Sessions    *sessions.CookieStore
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the storefront and admin routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router := buildRouter(logger, deps)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyHandler reports readiness once the catalog fetch has resolved
// without error; until then the storefront has nothing to sell.
func readyHandler(catalog *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch {
		case catalog == nil:
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "catalog not configured"})
		case catalog.Loading():
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		case catalog.Err() != nil:
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "catalog fetch failed"})
		default:
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		}
	}
}
