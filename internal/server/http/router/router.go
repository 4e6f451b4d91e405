package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/server/http/handlers"
	"github.com/polkiloo/foodbridge/internal/server/http/middleware"
)

// Observability is the metrics surface the router needs.
type Observability interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// Params groups router dependencies.
type Params struct {
	fx.In

	Facade  handlers.FoodBridgeFacade
	Config  *config.Config
	Logger  *slog.Logger
	Metrics Observability
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Instrument(p.Metrics))
	engine.Use(cors.New(corsConfig(p.Config.CORSAllowOrigins)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	engine.Use(middleware.Authenticate(p.Facade))

	cookie := middleware.CookieOptions{TTL: p.Config.TokenTTL, Secure: p.Config.Production()}
	authHandler := handlers.NewAuthHandler(p.Facade, cookie)
	donorHandler := handlers.NewDonorHandler(p.Facade)
	ngoHandler := handlers.NewNGOHandler(p.Facade)
	systemHandler := handlers.NewSystemHandler(p.Facade)
	limiter := middleware.NewRateLimiter(p.Config.RateLimitRPS, p.Config.RateLimitBurst)

	engine.GET("/", authHandler.Home)
	engine.POST("/registrationUser", authHandler.Register)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", authHandler.Logout)

	engine.POST("/donate/money", donorHandler.DonateMoney)
	engine.POST("/donate/food", donorHandler.DonateFood)
	engine.GET("/donations", donorHandler.Donations)
	engine.GET("/donationsNGO", ngoHandler.Board)

	limited := engine.Group("")
	limited.Use(limiter.Limit())
	limited.POST("/redeem", donorHandler.Redeem)
	limited.POST("/accept-donation", ngoHandler.Accept)
	limited.POST("/complete-donation", ngoHandler.Complete)

	engine.POST("/api/chatbot", systemHandler.Chat)
	engine.GET("/healthz", systemHandler.Health)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
