package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Antonio13050/im-backoffice-api/internal/cache"
	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/handlers"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/middleware"
)

// Back-office API da imobiliária: serve ao front as coleções já
// restritas ao escopo do usuário (ADMIN/GERENTE/CORRETOR), com cache,
// busca, filtros e paginação, repassando mutações à API upstream.
func main() {
	log.Println("Starting Back-office API...")

	// .env é opcional; em produção as variáveis vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Cache store: memória por padrão, Redis quando a API roda em mais
	// de uma instância
	var store cache.Store
	var redisStore *cache.RedisStore
	if cfg.Cache.Driver == "redis" {
		var err error
		redisStore, err = cache.NewRedisStore(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to initialize Redis store: %v", err)
		}
		store = redisStore
	} else {
		store = cache.NewMemoryStore()
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// Upstream client and per-entity loaders
	api := client.New(&cfg.Upstream)
	dashboardLoader := loader.NewDashboard(store, api, ttl)
	imoveisLoader := loader.NewImoveis(store, api, ttl)
	clientesLoader := loader.NewClientes(store, api, ttl)
	visitasLoader := loader.NewVisitas(store, api, ttl)
	processosLoader := loader.NewProcessos(store, api, ttl)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(dashboardLoader)
	imovelHandler := handlers.NewImovelHandler(api, imoveisLoader)
	clienteHandler := handlers.NewClienteHandler(api, clientesLoader)
	visitaHandler := handlers.NewVisitaHandler(api, visitasLoader)
	processoHandler := handlers.NewProcessoHandler(api, processosLoader)

	// Setup router
	router := setupRouter(cfg, dashboardHandler, imovelHandler, clienteHandler, visitaHandler, processoHandler)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Back-office API listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Back-office API...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Back-office API forced to shutdown: %v", err)
	}

	if redisStore != nil {
		redisStore.Close()
	}

	log.Println("Back-office API exited")
}

func setupRouter(
	cfg *config.Config,
	dashboardHandler *handlers.DashboardHandler,
	imovelHandler *handlers.ImovelHandler,
	clienteHandler *handlers.ClienteHandler,
	visitaHandler *handlers.VisitaHandler,
	processoHandler *handlers.ProcessoHandler,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "backoffice-api"})
	})

	// Protected routes (requires JWT issued by the auth backend)
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/dashboard", dashboardHandler.Get)
		protected.GET("/equipe", dashboardHandler.Equipe)

		imoveis := protected.Group("/imoveis")
		{
			imoveis.GET("", imovelHandler.List)
			imoveis.POST("", imovelHandler.Create)
			imoveis.GET("/:id", imovelHandler.GetByID)
			imoveis.PUT("/:id", imovelHandler.Update)
			imoveis.DELETE("/:id", imovelHandler.Delete)
		}

		clientes := protected.Group("/clientes")
		{
			clientes.GET("", clienteHandler.List)
			clientes.POST("", clienteHandler.Create)
			clientes.GET("/:id", clienteHandler.GetByID)
			clientes.PUT("/:id", clienteHandler.Update)
			clientes.DELETE("/:id", clienteHandler.Delete)
		}

		visitas := protected.Group("/visitas")
		{
			visitas.GET("", visitaHandler.List)
			visitas.POST("", visitaHandler.Create)
			visitas.GET("/:id", visitaHandler.GetByID)
			visitas.PUT("/:id", visitaHandler.Update)
			visitas.DELETE("/:id", visitaHandler.Delete)
		}

		processos := protected.Group("/processos")
		{
			processos.GET("", processoHandler.List)
			processos.POST("", processoHandler.Create)
			processos.GET("/:id", processoHandler.GetByID)
			processos.PUT("/:id", processoHandler.Update)
			processos.DELETE("/:id", processoHandler.Delete)
		}
	}

	return router
}
