package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"callprep/internal/auth"
	"callprep/internal/config"
	"callprep/internal/genai"
	"callprep/internal/handler"
	"callprep/internal/middleware"
	"callprep/internal/service"
	serviceModel "callprep/internal/service/model"
	"callprep/internal/variants"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"default_model", cfg.DefaultModel,
	)

	// Create the Gemini client (the only external collaborator)
	ctx := context.Background()
	geminiClient, err := genai.NewClient(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// Load the form-variant catalog; template authoring errors fail the boot
	variantRegistry, err := variants.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize variant registry: %v", err)
	}
	logger.Info("variant registry initialized", "variants", len(variantRegistry.List()))

	// Model resolver (session-cached, refreshed via the API)
	resolver := serviceModel.NewResolver(geminiClient, cfg.DefaultModel, logger)

	// Briefing pipeline
	briefingService := service.NewBriefingService(
		variantRegistry,
		resolver,
		geminiClient,
		cfg.GenerationTimeout,
		logger,
	)

	// Create handlers
	briefingHandler := handler.NewBriefingHandler(briefingService, logger)
	variantsHandler := handler.NewVariantsHandler(variantRegistry, logger)
	modelHandler := handler.NewModelHandler(resolver, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Variant catalog routes
	mux.HandleFunc("GET /api/variants", variantsHandler.ListVariants)
	mux.HandleFunc("GET /api/variants/{id}", variantsHandler.GetVariant)

	// Model resolution routes
	mux.HandleFunc("GET /api/model", modelHandler.GetModel)
	mux.HandleFunc("POST /api/model/refresh", modelHandler.RefreshModel)

	// Briefing routes
	mux.HandleFunc("POST /api/briefings", briefingHandler.Generate)
	mux.HandleFunc("POST /api/briefings/preview", briefingHandler.Preview)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	if cfg.AuthJWKSURL != "" {
		jwtVerifier, err := auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer jwtVerifier.Close()
		httpHandler = middleware.Auth(jwtVerifier)(httpHandler)
	} else {
		if cfg.Environment == "prod" {
			log.Fatalf("AUTH_JWKS_URL is required in prod")
		}
		logger.Warn("AUTH_JWKS_URL not set: auth disabled (dev only)")
	}
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.RequestID()(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     httpHandler,
		ReadTimeout: 15 * time.Second,
		// Generation calls can run up to the configured timeout; leave
		// headroom for response writing
		WriteTimeout: cfg.GenerationTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
