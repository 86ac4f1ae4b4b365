package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huyndao/mazegen/api"
	api_i "github.com/huyndao/mazegen/api/i"
	mazeapi "github.com/huyndao/mazegen/api/maze"
	"github.com/huyndao/mazegen/config"
	"github.com/huyndao/mazegen/infrastruture/logger"
	"github.com/huyndao/mazegen/infrastruture/store"
	"github.com/huyndao/mazegen/service"
	"github.com/huyndao/mazegen/service/i"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	mazeStore      i.MazeStore
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeStore() {
	var err error
	mazeStore, err = store.NewRedisMazeStore(redisClient, config.Envs.MazeTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze store initialized")
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(mazeStore, serviceLogger, &service.Options{
		MaxWidth:  config.Envs.MaxWidth,
		MaxHeight: config.Envs.MaxHeight,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(config.Envs.GinMode)

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initMazeStore()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
