package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "mpesa_c2b/docs" // swag generated
	"mpesa_c2b/internal/adapter/http/handlers"
	"mpesa_c2b/internal/adapter/persistence/repository"
	"mpesa_c2b/internal/domain/entities"
	"mpesa_c2b/internal/infrastructure/config"
	"mpesa_c2b/internal/infrastructure/database"
	"mpesa_c2b/internal/infrastructure/payments"
	"mpesa_c2b/internal/usecase"
	"mpesa_c2b/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg config.AppConfig) error {
	gateway, err := buildGateway(ctx, cfg)
	if err != nil {
		return err
	}

	paymentHandler := handlers.NewC2BPaymentHandler(usecase.NewC2BPaymentUseCase(gateway))
	router := NewRouter(paymentHandler)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           withCORS(router, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %d...", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Printf("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(paymentHandler *handlers.C2BPaymentHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func buildGateway(ctx context.Context, cfg config.AppConfig) (interfaces.IPaymentGateway, error) {
	if cfg.MockMode {
		return newGateway(ctx, cfg, nil)
	}
	provider, err := buildCredentialsProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newGateway(ctx, cfg, provider)
}

// newGateway loads credentials once and fails fast when any are missing.
// provider may be nil in mock mode.
func newGateway(ctx context.Context, cfg config.AppConfig, provider interfaces.ICredentialsProvider) (interfaces.IPaymentGateway, error) {
	opts := []payments.Option{
		payments.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		payments.WithBreakerSettings(payments.BreakerSettings{
			MaxConsecutiveFailures: cfg.BreakerMaxFailures,
			OpenTimeout:            cfg.BreakerOpenTimeout,
		}),
		payments.WithMockMode(cfg.MockMode),
	}

	var creds entities.Credentials
	if !cfg.MockMode {
		if provider == nil {
			return nil, usecase.ErrPaymentGatewayNotConfigured
		}
		loaded, err := provider.Load(ctx, cfg.Environment)
		if err != nil {
			log.Printf("[c2b][routes] credentials load failed environment=%s err=%v", cfg.Environment, err)
			return nil, err
		}
		creds = loaded
	}

	gateway, err := payments.NewMPesaGateway(creds, opts...)
	if err != nil {
		return nil, err
	}
	return gateway, nil
}

func buildCredentialsProvider(ctx context.Context, cfg config.AppConfig) (interfaces.ICredentialsProvider, error) {
	switch cfg.CredentialsSource {
	case config.CredentialsSourceDynamoDB:
		ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewCredentialsDynamoRepository(ddb, cfg.DynamoDB.CredentialsTable), nil
	case config.CredentialsSourceEnv, "":
		return config.NewEnvCredentialsProvider(), nil
	default:
		return nil, config.ErrUnknownCredentialsSource
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(handlers.RequestID())
}

func withCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", handlers.RequestIDHeader},
		ExposedHeaders: []string{handlers.RequestIDHeader},
	}).Handler(h)
}
