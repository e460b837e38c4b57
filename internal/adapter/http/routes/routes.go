package routes

import (
	"log"
	"strconv"

	_ "boatworks/docs" // This will be auto-generated
	"boatworks/internal/adapter/http/handlers"
	"boatworks/internal/adapter/http/middleware"
	repository2 "boatworks/internal/adapter/persistence/repository"
	"boatworks/internal/infrastructure/audit"
	"boatworks/internal/infrastructure/authz"
	"boatworks/internal/infrastructure/bom"
	"boatworks/internal/infrastructure/database"
	"boatworks/internal/infrastructure/library"
	"boatworks/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	metrics := middleware.NewMetrics()
	setMiddlewares(metrics)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(metrics)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(metrics *middleware.Metrics) {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	auditLogger := audit.NewLogger()
	authorizer := authz.NewEnvAuthorizer()
	bomGenerator := bom.NewGenerator()
	pinningService := library.NewPinningService(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteUseCase, bomGenerator, pinningService, auditLogger)
	configurationUseCase := usecase.NewConfigurationUseCase(projectRepo, auditLogger)
	amendmentUseCase := usecase.NewAmendmentUseCase(projectRepo, authorizer, auditLogger)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	configurationHandler := handlers.NewConfigurationHandler(configurationUseCase)
	amendmentHandler := handlers.NewAmendmentHandler(amendmentUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, metrics, projectHandler, configurationHandler, amendmentHandler)
	addQuoteRoutes(v1, quoteHandler)
}

func setMiddlewares(metrics *middleware.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Instrument())
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
