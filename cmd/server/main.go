package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"

	"github.com/manojku9/Never-Have-I-Ever/catalog"
	"github.com/manojku9/Never-Have-I-Ever/config"
	"github.com/manojku9/Never-Have-I-Ever/game"
	"github.com/manojku9/Never-Have-I-Ever/migrations"
	"github.com/manojku9/Never-Have-I-Ever/session"
	"github.com/manojku9/Never-Have-I-Ever/storage"
)

// Rooms nobody has touched for idleRoomTTL are dissolved, notifying any
// members still connected.
const (
	idleRoomTTL       = time.Hour
	idleSweepInterval = 10 * time.Minute
)

func createServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := config.Load()

	var logger *slog.Logger
	if cfg.Development() {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	slog.SetDefault(logger)

	var (
		catalogStore catalog.Store
		sessionRepo  session.Repo
		dbConnected  bool
	)
	if cfg.PostgresURL != "" {
		if err := migrations.Migrate(cfg.PostgresURL); err != nil {
			log.Fatal(err)
		}
		pgRepo, err := storage.NewPostgresRepo(context.Background(), cfg.PostgresURL)
		if err != nil {
			log.Fatal(err)
		}
		catalogStore = pgRepo
		sessionRepo = pgRepo
		dbConnected = true
		logger.Info("postgres connected")
	} else {
		catalogStore = catalog.NewMemory(catalog.Seed())
		sessionRepo = session.NewMemoryRepo()
		logger.Warn("POSTGRES_URL not set, using in-memory catalog and sessions")
	}

	directory := game.NewDirectory()
	hub := game.NewHub(directory, logger)
	registry := game.NewRegistry(catalogStore, hub, directory)
	coordinator := game.NewCoordinator(registry, directory, hub, logger)
	gameHandler := game.NewHandler(coordinator, registry, hub, logger)

	go func() {
		ticker := time.NewTicker(idleSweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			if n := registry.PruneIdle(idleRoomTTL); n > 0 {
				logger.Info("pruned idle rooms", "count", n)
			}
		}
	}()

	sessionHandler := session.NewHandler(session.NewService(sessionRepo, catalogStore))
	questionHandler := catalog.NewHandler(catalogStore)

	r := createServer(cfg.AllowedOrigins)

	r.GET("/api/health", func(ctx *gin.Context) {
		db := "disconnected"
		if dbConnected {
			db = "connected"
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "Server is running",
			"database": db,
		})
	})

	r.GET("/ws", gameHandler.WebsocketHandler)

	{
		rooms := r.Group("/api/rooms")
		rooms.GET("/:roomCode", gameHandler.GetRoomHandler)
		rooms.POST("/create", gameHandler.CreateRoomHandler)
		rooms.DELETE("/:roomCode", gameHandler.DeleteRoomHandler)
	}

	questionHandler.RegisterRoutes(r.Group("/api/questions"))
	sessionHandler.RegisterRoutes(r.Group("/api/game"))

	logger.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
