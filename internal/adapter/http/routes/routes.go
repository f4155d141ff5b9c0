package routes

import (
	"log"
	"os"
	"strconv"

	_ "aluguel_carros/docs" // This will be auto-generated
	"aluguel_carros/internal/adapter/http/handlers"
	repository2 "aluguel_carros/internal/adapter/persistence/repository"
	"aluguel_carros/internal/domain/lifecycle"
	"aluguel_carros/internal/infrastructure/database"
	"aluguel_carros/internal/infrastructure/ids"
	"aluguel_carros/internal/infrastructure/locking"
	"aluguel_carros/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

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

	orderRepo := repository2.NewRentalOrderDynamoRepository(ddb)
	contractRepo := repository2.NewCreditContractDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	agentRepo := repository2.NewAgentDynamoRepository(ddb)

	idGen := ids.NewUUIDGenerator()
	vehicleLock := locking.NewVehicleLock()
	policy := orderPolicyFromEnv()

	orderUseCase := usecase.NewRentalOrderUseCase(orderRepo, vehicleRepo, customerRepo, agentRepo, policy, vehicleLock, idGen)
	contractUseCase := usecase.NewCreditContractUseCase(contractRepo, orderRepo, agentRepo, idGen)

	orderHandler := handlers.NewRentalOrderHandler(orderUseCase)
	contractHandler := handlers.NewCreditContractHandler(contractUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRentalRoutes(v1, orderHandler, contractHandler)
}

// orderPolicyFromEnv selects the lifecycle profile. ORDER_LIFECYCLE=review
// enables the em_analise gate; anything else runs the direct profile.
func orderPolicyFromEnv() *lifecycle.OrderPolicy {
	if os.Getenv("ORDER_LIFECYCLE") == "review" {
		log.Printf("[routes] order lifecycle profile: review")
		return lifecycle.ReviewOrderPolicy()
	}
	log.Printf("[routes] order lifecycle profile: direct")
	return lifecycle.DirectOrderPolicy()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
