package main

import (
	"fmt"
	"log/slog"
	"os"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/courierrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/ticketrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		DispatchLatencyMin: goDotEnvVariable("DISPATCH_LATENCY_MIN"),
		EscalateAfterMin:   goDotEnvVariable("ESCALATE_AFTER_MIN"),
		AutoAssignEnabled:  goDotEnvVariable("AUTO_ASSIGN_ENABLED"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.TicketItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&courierrepo.CourierDTO{},
		&menurepo.MenuItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateCreateKitchenTicketsCommandHandler(),
		app.CreateAdvanceTicketItemCommandHandler(),
		app.CreateAssignChefCommandHandler(),
		app.CreateReprioritizeOrderCommandHandler(),
		app.CreateEnsureDeliveryCommandHandler(),
		app.CreateAssignCourierCommandHandler(),
		app.CreateAdvanceDeliveryCommandHandler(),
		app.CreateCreateCourierCommandHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetKitchenQueueStatsQueryHandler(),
		app.CreateGetCouriersQueryHandler(),
		app.CreateGetDeliveryByOrderQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
