package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/olopa-labs/olopa/internal/auth"
	"github.com/olopa-labs/olopa/internal/config"
	"github.com/olopa-labs/olopa/internal/contracts"
	"github.com/olopa-labs/olopa/internal/db"
	appmw "github.com/olopa-labs/olopa/internal/middleware"
	"github.com/olopa-labs/olopa/internal/store/memory"
	"github.com/olopa-labs/olopa/internal/store/postgres"
	"github.com/olopa-labs/olopa/internal/user"
)

// marketStore is everything the handlers need from a backend.
type marketStore interface {
	auth.UserStore
	contracts.Store
}

func main() {
	cfg := config.Load()

	var st marketStore
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to connect to database: %v", err)
		}
		st = postgres.New(pool)
	} else {
		log.Println("No database configured, using in-memory store")
		st = memory.New()
	}

	authHandler := &auth.Handler{Users: st, JWTSecret: []byte(cfg.JWTSecret)}
	userHandler := &user.Handler{Users: st}
	contractHandler := &contracts.Handler{Contracts: st}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Health
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	// Auth routes with per-IP rate limiting to protect register/login from abuse
	authGroup := e.Group("/api/users")
	authGroup.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(20)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Public profile
	e.GET("/api/users/:id", userHandler.PublicProfile)

	// Authenticated user routes
	g := e.Group("/api/users")
	g.Use(appmw.JWT([]byte(cfg.JWTSecret)))
	g.GET("", authHandler.ListUsers)
	g.GET("/me", authHandler.Me)

	// Contracts
	e.POST("/api/contracts", contractHandler.Create)
	e.GET("/api/contracts", contractHandler.List)

	// Front end
	if cfg.PublicDir != "" {
		e.Static("/", cfg.PublicDir)
	}

	log.Printf("API server listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
