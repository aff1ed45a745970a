package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mbc-dev/ai-analytics/internal/config"
	"github.com/mbc-dev/ai-analytics/internal/domain/fiber/handler"
	"github.com/mbc-dev/ai-analytics/internal/middleware"
	"github.com/mbc-dev/ai-analytics/internal/model"
	"github.com/mbc-dev/ai-analytics/internal/repository"
	"github.com/mbc-dev/ai-analytics/internal/service"
	"github.com/mbc-dev/ai-analytics/internal/usecase"
	"github.com/mbc-dev/ai-analytics/internal/util"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:      appConfig.Name,
		ErrorHandler: util.FiberErrorHandler,
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	feedbackRepo := repository.NewFeedbackRepository(db)
	backend := service.NewBackendService(config.LoadBackendConfig().BaseURL)
	sentiment := service.NewSentimentService()

	analyticsUC := usecase.NewAnalyticsUsecase(backend)
	predictionUC := usecase.NewPredictionUsecase(backend)
	sentimentUC := usecase.NewSentimentUsecase(feedbackRepo, sentiment)

	h := handler.NewAnalyticsHandler(analyticsUC, predictionUC, sentimentUC)
	h.RegisterRoutes(app)

	log.Println("Server running on", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.FeedbackSentiment{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
