package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"zomio-storefront/internal/config"
	"zomio-storefront/internal/httpserver"
	cartrepo "zomio-storefront/internal/repository/cart"
	catalogrepo "zomio-storefront/internal/repository/catalog"
	orderrepo "zomio-storefront/internal/repository/order"
	"zomio-storefront/internal/seed"
	authsvc "zomio-storefront/internal/service/auth"
	cartsvc "zomio-storefront/internal/service/cart"
	catalogsvc "zomio-storefront/internal/service/catalog"
	checkoutsvc "zomio-storefront/internal/service/checkout"
	ordersvc "zomio-storefront/internal/service/order"
	"zomio-storefront/internal/sheets"
	"zomio-storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	var kv storage.KV
	if cfg.StatePath != "" {
		kv = storage.NewFile(cfg.StatePath, logger)
	} else {
		kv = storage.NewMemory()
	}

	var source catalogrepo.Source
	if cfg.CatalogPath != "" {
		source = catalogrepo.NewFileSource(cfg.CatalogPath)
	} else {
		source = catalogrepo.NewStaticSource(seed.Products())
	}

	catalogRepo := catalogrepo.NewMemory(logger)
	catalogService := catalogsvc.New(catalogRepo, source, logger)
	if err := catalogService.Fetch(context.Background()); err != nil {
		// The storefront stays up in its error state; /readyz reports it
		// and a restart is the retry path.
		logger.Printf("catalog fetch failed: %v", err)
	}

	cartRepo := cartrepo.NewMemory(kv, logger)
	cartService := cartsvc.New(cartRepo)

	initialProducts, _ := catalogRepo.List(context.Background())
	orderRepo := orderrepo.NewMemory(seed.Orders(initialProducts), logger)
	orderService := ordersvc.New(orderRepo, logger)

	var forwarder checkoutsvc.Forwarder
	if cfg.SheetURL != "" {
		forwarder = sheets.NewClient(cfg.SheetURL, cfg.SheetTimeout)
	} else {
		logger.Printf("SHEET_URL not set, order forwarding disabled")
	}
	checkoutService := checkoutsvc.New(cartService, orderService, forwarder, seed.Areas, logger)

	authService := authsvc.New(seed.AdminUsers(), kv, logger)

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionKey))
	sessionStore.Options.HttpOnly = true

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		CheckoutSvc: checkoutService,
		AuthSvc:     authService,
		Areas:       seed.Areas,
		DefaultArea: seed.DefaultArea,
		Sessions:    sessionStore,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
