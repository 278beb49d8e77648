package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"forwarding/cmd"
	"forwarding/internal/adapters/out/postgres/addressrepo"
	"forwarding/internal/adapters/out/postgres/categoryrepo"
	"forwarding/internal/adapters/out/postgres/counterrepo"
	"forwarding/internal/adapters/out/postgres/hubrepo"
	"forwarding/internal/adapters/out/postgres/invoicerepo"
	"forwarding/internal/adapters/out/postgres/parcelrepo"
	"forwarding/internal/adapters/out/postgres/paymentrepo"
	"forwarding/internal/adapters/out/postgres/userdir"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = migrateSchema(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func migrateSchema(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&addressrepo.AddressDTO{},
		&hubrepo.HubDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.HistoryDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.ItemDTO{},
		&paymentrepo.PaymentDTO{},
		&counterrepo.CounterDTO{},
		&userdir.UserDTO{},
		&categoryrepo.CategoryDTO{},
	)
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
