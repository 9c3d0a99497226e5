package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aura/internal/cart"
	"aura/internal/config"
	"aura/internal/email"
	"aura/internal/favorites"
	httpapi "aura/internal/http"
	"aura/internal/repository"
	"aura/internal/service"
	"aura/internal/storage"

	_ "aura/docs"
)

func main() {
	cfg := config.Load()

	var (
		products repository.ProductRepository
		orders   repository.OrderRepository
	)
	if cfg.MongoURI != "" {
		client, err := repository.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("mongo connect: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}()
		db := client.Database(cfg.MongoDB)
		products = repository.NewMongoProducts(db)
		orders = repository.NewMongoOrders(db)
		log.Printf("connected to mongo, database %q", cfg.MongoDB)
	} else {
		store := repository.NewMemoryStore()
		products = store
		orders = repository.NewMemoryOrders(store)
		log.Println("MONGO_URI not set: running on the in-memory store")
	}

	var mailer email.Mailer
	if cfg.EmailJS.ServiceID != "" {
		mailer = email.NewClient(cfg.EmailJS)
	} else {
		mailer = email.NewLogMailer(log.New(os.Stderr, "email: ", log.LstdFlags))
		log.Println("EMAILJS_SERVICE_ID not set: notifications go to the log")
	}

	var images storage.ImageStore
	if cfg.CloudinaryURL != "" {
		cld, err := storage.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("cloudinary init: %v", err)
		}
		images = cld
	} else {
		images = storage.Placeholder{}
		log.Println("CLOUDINARY_URL not set: uploads resolve to a placeholder image")
	}

	carts := cart.NewStore()
	favs := favorites.NewRegistry()
	checkoutLog := log.New(os.Stderr, "checkout: ", log.LstdFlags)

	srv := httpapi.NewServer(httpapi.Deps{
		Catalog:   service.NewCatalogService(products),
		Orders:    service.NewOrderService(orders),
		Customers: service.NewCustomerService(orders),
		Checkout:  service.NewCheckoutService(carts, orders, mailer, checkoutLog),
		Contact:   service.NewContactService(mailer),
		Carts:     carts,
		Favorites: favs,
		Images:    images,
		Auth: httpapi.AuthConfig{
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
			JWTSecret:     cfg.JWTSecret,
		},
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
