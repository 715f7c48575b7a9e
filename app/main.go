package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"game-api/internal/routes"
	"game-api/pkg/config"
	"game-api/pkg/database/postgresql"
	"game-api/pkg/embedding"
	apperrors "game-api/pkg/errors"
	"game-api/pkg/filestorage"
	"game-api/pkg/llm"
	applogger "game-api/pkg/logger"
	applmw "game-api/pkg/middleware"
	"game-api/pkg/service"
	"game-api/pkg/utils"
	"game-api/pkg/validation"
)

func main() {
	e := echo.New()
	e.HideBanner = true
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recuperado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(applmw.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{echo.HeaderContentDisposition},
	}))

	e.JSONSerializer = utils.JSONSerializer{}
	e.Validator = validation.New()

	assetsDir, err := filepath.Abs(cfg.Server.AssetsDir)
	if err != nil {
		logger.Fatal("no se pudo resolver el directorio de assets", zap.Error(err))
	}
	if err := os.MkdirAll(filepath.Join(assetsDir, "cvs"), 0o755); err != nil {
		logger.Fatal("no se pudo crear el directorio de CVs", zap.Error(err))
	}
	e.Static("/assets", assetsDir)
	fileStorage, err := filestorage.NewLocalFileStorage(assetsDir, "/assets")
	if err != nil {
		logger.Fatal("no se pudo crear el almacenamiento de archivos", zap.Error(err))
	}

	ctx := context.Background()

	dbConn, err := postgresql.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("no se pudo conectar a PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()
	if cfg.Postgres.AutoMigrate {
		if err := postgresql.Migrate(ctx, dbConn, "up"); err != nil {
			logger.Fatal("error al aplicar las migraciones", zap.Error(err))
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis no disponible, la caché de jerarquía queda desactivada",
			zap.String("address", cfg.Redis.Address), zap.Error(err))
		_ = redisClient.Close()
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	completer, err := llm.New(ctx, cfg.LLM, logger)
	if err != nil {
		logger.Fatal("error al configurar el proveedor LLM", zap.Error(err))
	}
	embedder, err := embedding.NewGenAIEngine(ctx, cfg.Embedding.GenAIKey, cfg.Embedding.Model)
	if err != nil {
		logger.Fatal("error al configurar el motor de embeddings", zap.Error(err))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL, logger)

	if err := routes.InitRouter(e, routes.Dependencies{
		DB:          dbConn,
		Redis:       redisClient,
		JWT:         jwtSvc,
		Completer:   completer,
		Embedder:    embedder,
		FileStorage: fileStorage,
		Config:      cfg,
		Logger:      logger,
	}); err != nil {
		logger.Fatal("error al inicializar las rutas", zap.Error(err))
	}

	go func() {
		logger.Info("servidor iniciado", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error al iniciar el servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("error al detener el servidor", zap.Error(err))
	}
}
