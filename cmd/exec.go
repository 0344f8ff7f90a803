package cmd

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	pubnub "github.com/pubnub/go"
	"github.com/redis/go-redis/v9"

	"cricketsync/config"
	"cricketsync/internal/handlers"
	"cricketsync/internal/services"
	_ "cricketsync/migrations"
	"cricketsync/monitoring"
	"cricketsync/security"
	"cricketsync/utils"
)

func Start() error {
	app := pocketbase.New()

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize Redis
	redisClient := utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
	defer redisClient.Close()

	// Initialize PubNub when keys are configured
	var pn *pubnub.PubNub
	if cfg.PubNubPublishKey != "" && cfg.PubNubSubscribeKey != "" {
		pnConfig := pubnub.NewConfig()
		pnConfig.PublishKey = cfg.PubNubPublishKey
		pnConfig.SubscribeKey = cfg.PubNubSubscribeKey
		pnConfig.SecretKey = cfg.PubNubSecretKey

		pn = pubnub.NewPubNub(pnConfig)
	} else {
		slog.Info("pubnub keys not configured, realtime updates disabled")
	}

	// Initialize services
	inventoryService := services.NewInventoryService(app, redisClient)
	notifyService := services.NewNotifyService(pn)
	bookingService := services.NewBookingService(app, inventoryService, notifyService, cfg.StoreTimeout)
	rankingService := services.NewRankingService(app)
	rosterService := services.NewRosterService(app)

	// Initialize handlers
	matchHandler := handlers.NewMatchHandler(app, inventoryService)
	bookingHandler := handlers.NewBookingHandler(app, bookingService)
	teamHandler := handlers.NewTeamHandler(app, rankingService, cfg)
	playerHandler := handlers.NewPlayerHandler(app, rosterService)

	rateLimiter := security.NewRateLimiter(redisClient, cfg.BookingRateLimit, cfg.BookingRateWindow)

	// Enable migrations
	migratecmd.MustRegister(app, app.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// Start metrics collection
	if cfg.EnableMetrics {
		monitoring.NewMonitor(redisClient, cfg.MetricsInterval)
	}

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		go syncAvailabilityToRedis(app, redisClient)

		// Public endpoints
		e.Router.GET("/api/matches", matchHandler.ListMatches)
		e.Router.GET("/api/matches/{matchId}/availability", matchHandler.GetAvailability)
		e.Router.GET("/api/teams", teamHandler.ListRankings)
		e.Router.GET("/api/players", playerHandler.ListPlayers)
		e.Router.POST("/api/tickets/book", bookingHandler.BookTicket).
			BindFunc(rateLimiter.BookingRateLimit())

		// Admin endpoints; the superuser gate is the single authorization
		// check, the services themselves trust their callers.
		admin := e.Router.Group("/api/admin")
		admin.Bind(apis.RequireSuperuserAuth())
		admin.POST("/matches", matchHandler.CreateMatch)
		admin.DELETE("/matches/{matchId}", matchHandler.DeleteMatch)
		admin.GET("/tickets", bookingHandler.ListTickets)
		admin.POST("/teams", teamHandler.CreateTeam)
		admin.POST("/teams/{name}/wins", teamHandler.RecordWin)
		admin.POST("/teams/{name}/losses", teamHandler.RecordLoss)
		admin.PUT("/teams/{name}/points", teamHandler.SetPoints)
		admin.PUT("/teams/{name}/net-run-rate", teamHandler.SetNetRunRate)
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.DELETE("/players/{playerId}", playerHandler.DeletePlayer)

		// Metrics
		if cfg.EnableMetrics {
			e.Router.GET("/metrics", func(e *core.RequestEvent) error {
				promhttp.Handler().ServeHTTP(e.Response, e.Request)
				return nil
			})
		}

		// Health check
		e.Router.GET("/health", func(e *core.RequestEvent) error {
			if err := utils.RedisHealthCheck(redisClient); err != nil {
				return e.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
			}
			return e.JSON(http.StatusOK, map[string]string{"status": "healthy"})
		})

		log.Println("Server routes registered")

		return e.Next()
	})

	return app.Start()
}

// syncAvailabilityToRedis seeds the availability cache from the store on
// startup so the monitor and the availability endpoint see fresh counts.
func syncAvailabilityToRedis(app core.App, redisClient *redis.Client) {
	ctx := context.Background()

	records, err := app.FindRecordsByFilter("matches", "id != ''", "", 0, 0)
	if err != nil {
		slog.Error("sync availability to redis", "error", err)
		return
	}

	for _, record := range records {
		redisClient.SAdd(ctx, "active_matches", record.Id)
		redisClient.Set(ctx, "match:avail:"+record.Id, record.GetInt("available_seats"), 0)
	}

	slog.Info("availability cache synced", "matches", len(records))
}
