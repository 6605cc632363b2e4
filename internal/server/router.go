package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/docs"
	"github.com/snnyvrz/library-api/internal/handler"
	"github.com/snnyvrz/library-api/internal/metrics"
	"github.com/snnyvrz/library-api/internal/middleware"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/service"
	"github.com/snnyvrz/library-api/internal/validation"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Options struct {
	DB        *gorm.DB
	Logger    zerolog.Logger
	Metrics   *metrics.Metrics
	StartTime time.Time
	Version   string
}

// NewRouter wires repositories, services and handlers onto a fresh engine.
// Recovery sits inside ErrorHandler so recovered panics are rendered as
// envelopes.
func NewRouter(opts Options) *gin.Engine {
	validation.Setup()

	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}

	e := gin.New()
	e.HandleMethodNotAllowed = true
	_ = e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(
		middleware.RequestLogger(opts.Logger),
		opts.Metrics.Middleware(),
		handler.ErrorHandler(),
		middleware.Recovery(),
	)
	e.NoRoute(handler.NoRoute)
	e.NoMethod(handler.NoMethod)

	authorRepo := repository.NewGormAuthorRepository(opts.DB)
	bookRepo := repository.NewGormBookRepository(opts.DB)

	authorHandler := handler.NewAuthorHandler(service.NewAuthorService(authorRepo))
	bookHandler := handler.NewBookHandler(service.NewBookService(bookRepo, authorRepo))
	healthHandler := handler.NewHealthHandler(opts.DB, opts.StartTime, opts.Version)

	healthHandler.RegisterRoutes(e)
	e.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Version = opts.Version
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := e.Group("")
	{
		authorHandler.RegisterRoutes(api)
		bookHandler.RegisterRoutes(api)
	}

	return e
}
