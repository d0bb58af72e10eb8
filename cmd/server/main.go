package main

import (
	"context"
	"database/sql"
	"time"

	"gomart-be/internal/category"
	"gomart-be/internal/config"
	"gomart-be/internal/db"
	"gomart-be/internal/logger"
	"gomart-be/internal/metrics"
	"gomart-be/internal/order"
	"gomart-be/internal/product"
	"gomart-be/internal/router"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect catalog DB", zap.Error(err))
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mongoClient, err := db.NewMongo(ctx, cfg)
	if err != nil {
		logger.L().Fatal("failed to connect mongo", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	orderDB := mongoClient.Database(cfg.MongoDB)
	if err := order.NewRepository(orderDB).EnsureIndexes(ctx); err != nil {
		logger.L().Fatal("failed to ensure order indexes", zap.Error(err))
	}

	engine := newServer(cfg, database, orderDB)

	logger.L().Info("🚀 server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	if err := engine.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func newServer(cfg *config.Config, database *sql.DB, orderDB *mongo.Database) *gin.Engine {
	stats := metrics.NewOrderStats()

	orderSvc := order.NewService(order.NewRepository(orderDB), stats)
	orderHandler := order.NewHandler(orderSvc, cfg.AppEnv)

	categorySvc := category.NewService(category.NewRepository(database))
	categoryHandler := category.NewHandler(categorySvc)

	productSvc := product.NewService(product.NewRepository(database))
	productHandler := product.NewHandler(productSvc)

	engine := router.NewEngine()
	router.RegisterRoutes(engine, orderHandler, categoryHandler, productHandler, stats)
	return engine
}
