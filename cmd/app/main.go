package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"livraison/cmd"
	_ "livraison/docs"
	httpin "livraison/internal/adapters/in/http"
	"livraison/internal/adapters/out/postgres/deliveryrepo"
	"livraison/internal/adapters/out/postgres/incidentrepo"
	"livraison/internal/adapters/out/postgres/stockrepo"
	"livraison/internal/core/ports"
	"livraison/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	go consumeChangeFeed(app.ChangeFeed(), logger)

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBPort,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.ItemDTO{},
		&stockrepo.StockItemDTO{},
		&incidentrepo.IncidentDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

// consumeChangeFeed drains the committed-transition feed and writes each
// change to the structured log. Dashboards tail this stream today; a
// broker adapter can replace it without touching the handlers.
func consumeChangeFeed(feed ports.ChangePublisher, logger *slog.Logger) {
	changes, cancel := feed.Subscribe(context.Background())
	defer cancel()

	for change := range changes {
		logger.Info("delivery changed",
			"seq", change.Seq,
			"delivery_id", change.DeliveryID.String(),
			"reference", change.Reference,
			"from", change.From.String(),
			"to", change.To.String(),
			"actor_id", change.ActorID.String(),
			"occurred_at", change.OccurredAt,
		)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateAssignDriverCommandHandler(),
		app.CreateTransitionDeliveryCommandHandler(),
		app.CreateCreateStockItemCommandHandler(),
		app.CreateAdjustStockCommandHandler(),
		app.CreateResolveIncidentCommandHandler(),
		app.CreateGetActiveDeliveriesQueryHandler(),
		app.CreateGetDriverDeliveriesQueryHandler(),
		app.CreateGetLowStockQueryHandler(),
		app.CreateGetUnresolvedIncidentsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
