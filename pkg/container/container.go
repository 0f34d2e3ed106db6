// Package container wires the application's dependency graph: config,
// infrastructure, services, handlers. Everything here is a singleton for the
// process lifetime; per-request state lives in unit-of-work scopes.
package container

import (
	"context"
	"fmt"
	"time"

	"blogarchive-backend/internal/config"
	"blogarchive-backend/internal/domains/archive"
	"blogarchive-backend/internal/domains/archive/provider"
	"blogarchive-backend/internal/domains/article"
	"blogarchive-backend/internal/domains/auth"
	"blogarchive-backend/internal/domains/category"
	"blogarchive-backend/internal/domains/contact"
	"blogarchive-backend/internal/domains/image"
	"blogarchive-backend/internal/domains/spotlight"
	infraCache "blogarchive-backend/internal/infrastructure/cache"
	"blogarchive-backend/internal/infrastructure/database"
	"blogarchive-backend/internal/infrastructure/queue"
	"blogarchive-backend/internal/repository"
	"blogarchive-backend/pkg/cache"
	"blogarchive-backend/pkg/jwt"
	"blogarchive-backend/pkg/logger"
)

type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Queue      *queue.Client
	JWTManager *jwt.Manager

	ArticleService   article.Service
	CategoryService  category.Service
	ImageService     image.Service
	ContactService   contact.Service
	SpotlightService spotlight.Service
	AuthService      auth.Service

	MovieService    archive.Service[*archive.Movie]
	BookService     archive.Service[*archive.Book]
	GameService     archive.Service[*archive.Game]
	AnimeService    archive.Service[*archive.Anime]
	MusicService    archive.Service[*archive.Music]
	TvSeriesService archive.Service[*archive.TvSeries]
	QuoteService    archive.Service[*archive.Quote]
	TtrpgService    archive.Service[*archive.Ttrpg]

	ArticleHandler   *article.Handler
	CategoryHandler  *category.Handler
	ImageHandler     *image.Handler
	ContactHandler   *contact.Handler
	SpotlightHandler *spotlight.Handler
	AuthHandler      *auth.Handler

	MovieHandler    *archive.Handler[*archive.Movie]
	BookHandler     *archive.Handler[*archive.Book]
	GameHandler     *archive.Handler[*archive.Game]
	AnimeHandler    *archive.Handler[*archive.Anime]
	MusicHandler    *archive.Handler[*archive.Music]
	TvSeriesHandler *archive.Handler[*archive.TvSeries]
	QuoteHandler    *archive.Handler[*archive.Quote]
	TtrpgHandler    *archive.Handler[*archive.Ttrpg]
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = redisCache

	c.Queue = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initServices() {
	scope := repository.PgScope(c.DB.Pool)

	articleSvc := article.NewService(scope)
	c.ArticleService = articleSvc
	c.CategoryService = category.NewService(scope, articleSvc.RelinkCategory)
	c.ImageService = image.NewService(scope)
	c.ContactService = contact.NewService(scope, c.Queue)

	factory := provider.NewFactory(provider.Locals(c.DB.Pool)...)
	c.SpotlightService = spotlight.NewService(factory, c.Cache)

	c.AuthService = auth.NewService(c.Config.Admin.Email, c.Config.Admin.PasswordHash, c.JWTManager)

	c.MovieService = archive.NewService(scope, archive.MovieMapping(), "movie")
	c.BookService = archive.NewService(scope, archive.BookMapping(), "book")
	c.GameService = archive.NewService(scope, archive.GameMapping(), "game")
	c.AnimeService = archive.NewService(scope, archive.AnimeMapping(), "anime")
	c.MusicService = archive.NewService(scope, archive.MusicMapping(), "music")
	c.TvSeriesService = archive.NewService(scope, archive.TvSeriesMapping(), "tv series")
	c.QuoteService = archive.NewService(scope, archive.QuoteMapping(), "quote")
	c.TtrpgService = archive.NewService(scope, archive.TtrpgMapping(), "ttrpg")
}

func (c *Container) initHandlers() {
	c.ArticleHandler = article.NewHandler(c.ArticleService)
	c.CategoryHandler = category.NewHandler(c.CategoryService)
	c.ImageHandler = image.NewHandler(c.ImageService)
	c.ContactHandler = contact.NewHandler(c.ContactService)
	c.SpotlightHandler = spotlight.NewHandler(c.SpotlightService)
	c.AuthHandler = auth.NewHandler(c.AuthService)

	c.MovieHandler = archive.NewHandler(c.MovieService, archive.MovieMapping().New, "movie")
	c.BookHandler = archive.NewHandler(c.BookService, archive.BookMapping().New, "book")
	c.GameHandler = archive.NewHandler(c.GameService, archive.GameMapping().New, "game")
	c.AnimeHandler = archive.NewHandler(c.AnimeService, archive.AnimeMapping().New, "anime")
	c.MusicHandler = archive.NewHandler(c.MusicService, archive.MusicMapping().New, "music")
	c.TvSeriesHandler = archive.NewHandler(c.TvSeriesService, archive.TvSeriesMapping().New, "tv series")
	c.QuoteHandler = archive.NewHandler(c.QuoteService, archive.QuoteMapping().New, "quote")
	c.TtrpgHandler = archive.NewHandler(c.TtrpgService, archive.TtrpgMapping().New, "ttrpg")
}

// EnsureDefaults seeds required rows, currently only the default category.
func (c *Container) EnsureDefaults(ctx context.Context) error {
	if _, err := c.CategoryService.EnsureDefault(ctx); err != nil {
		return fmt.Errorf("ensure default category: %w", err)
	}
	return nil
}

func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("close queue client", err)
		}
	}
	if closer, ok := c.Cache.(interface{ Close() error }); ok && closer != nil {
		if err := closer.Close(); err != nil {
			logger.Error("close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
