// Package container wires the dependency graph: config, infrastructure,
// repositories, services, handlers, strictly in that order.
package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/unignoramus11/lumen/internal/config"
	authHandler "github.com/unignoramus11/lumen/internal/domains/auth/handler"
	authService "github.com/unignoramus11/lumen/internal/domains/auth/service"
	"github.com/unignoramus11/lumen/internal/domains/content"
	contentHandler "github.com/unignoramus11/lumen/internal/domains/content/handler"
	"github.com/unignoramus11/lumen/internal/domains/edition"
	editionHandler "github.com/unignoramus11/lumen/internal/domains/edition/handler"
	editionRepo "github.com/unignoramus11/lumen/internal/domains/edition/repository"
	editionService "github.com/unignoramus11/lumen/internal/domains/edition/service"
	infraCache "github.com/unignoramus11/lumen/internal/infrastructure/cache"
	"github.com/unignoramus11/lumen/internal/infrastructure/database"
	"github.com/unignoramus11/lumen/internal/infrastructure/storage"
	"github.com/unignoramus11/lumen/pkg/cache"
	"github.com/unignoramus11/lumen/pkg/jwt"
	"github.com/unignoramus11/lumen/pkg/logger"
)

type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	ContentService content.Service
	EditionRepo    edition.Repository
	EditionService edition.Service
	AuthService    authService.AuthService

	AuthHandler    *authHandler.AuthHandler
	EditionHandler *editionHandler.EditionHandler
	ContentHandler *contentHandler.ContentHandler
}

// NewContainer builds the full dependency graph. A database failure is
// fatal; a Redis failure is logged and the app runs without read caching.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	logger.Info("configuration loaded", map[string]interface{}{"environment": cfg.App.Environment})

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		logger.Warn("redis unavailable, continuing without cache", err)
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	c.ContentService = content.NewHTTPService(&http.Client{}, cfg.Content.FetchTimeout)
	c.EditionRepo = editionRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.EditionService = editionService.NewEditionService(
		c.EditionRepo,
		c.ContentService,
		storage.NewImageCompressor(),
		cfg.App.PublicBaseURL,
	)
	c.AuthService = authService.NewAuthService(cfg.Admin, c.JWTManager)

	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.EditionHandler = editionHandler.NewEditionHandler(c.EditionService)
	c.ContentHandler = contentHandler.NewContentHandler(c.ContentService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("closing redis", err)
		}
	}
}
