package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/brightwash/booking-service/docs" // This will be auto-generated
	"github.com/brightwash/booking-service/internal/adapter/http/handlers"
	"github.com/brightwash/booking-service/internal/adapter/http/middleware"
	repository2 "github.com/brightwash/booking-service/internal/adapter/persistence/repository"
	"github.com/brightwash/booking-service/internal/infrastructure/database"
	"github.com/brightwash/booking-service/internal/infrastructure/notification"
	"github.com/brightwash/booking-service/internal/infrastructure/payments"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	notifier := notification.NewSlackNotifierFromEnv()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, paymentGateway)
	quoteLogUseCase := usecase.NewQuoteLogUseCase(quoteRepo)
	metricsUseCase := usecase.NewMetricsUseCase(quoteRepo, bookingRepo)

	catalogHandler := handlers.NewCatalogHandler()
	quoteHandler := handlers.NewQuoteHandler()
	flowHandler := handlers.NewFlowHandler(bookingUseCase, quoteLogUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	metricsHandler := handlers.NewMetricsHandler(metricsUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.Authenticate())
	v1.Use(middleware.RateLimit())
	addPingRoutes(v1)
	addBookingRoutes(v1, catalogHandler, quoteHandler, flowHandler, bookingHandler, paymentHandler, metricsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = []string{origins}
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
