package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/auth"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
	"github.com/thatcatcamp/themebuilder/internal/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger      *slog.Logger
	Limiter     *middleware.RateLimiter
	Blocklist   []string
	BehindProxy bool
}

// NewRouter wires every route onto a fresh gin engine
func NewRouter(opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())

	// Only trust X-Forwarded-For when a proxy sits in front
	if !opts.BehindProxy {
		r.SetTrustedProxies(nil)
	}

	// System routes
	r.GET("/health", HealthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Pages
	r.GET("/", BuilderPageHandler)
	r.GET("/t/:share", SharedThemeHandler)
	r.GET("/theme.css", ThemeCSSHandler)

	api := r.Group("/api")
	{
		api.GET("/theme", ThemeAPIHandler)
		api.GET("/theme/contrast", ContrastAPIHandler)
		api.GET("/presets", PresetsAPIHandler)
		api.GET("/themes", ListThemesHandler)
		api.GET("/themes/:name", GetThemeHandler)

		// Library writes
		write := api.Group("/themes")
		write.Use(middleware.IPFilterMiddleware(opts.Blocklist))
		if opts.Limiter != nil {
			write.Use(middleware.RateLimitMiddleware(opts.Limiter))
		}
		write.Use(auth.RequireToken(auth.ScopeWrite))
		{
			write.POST("", CreateThemeHandler)
			write.PUT("/:name", UpdateThemeHandler)
			write.DELETE("/:name", DeleteThemeHandler)
		}
	}

	return r
}
