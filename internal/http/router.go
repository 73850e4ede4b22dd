package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/fahimahmed420/CampusPilot-server/internal/auth"
	"github.com/fahimahmed420/CampusPilot-server/internal/config"
	"github.com/fahimahmed420/CampusPilot-server/internal/http/handlers"
	"github.com/fahimahmed420/CampusPilot-server/internal/http/middlewares"
	"github.com/fahimahmed420/CampusPilot-server/internal/observability"
	"github.com/fahimahmed420/CampusPilot-server/internal/repo/mongodb"
	"github.com/fahimahmed420/CampusPilot-server/internal/store"
)

func NewRouter(log *slog.Logger, st *store.Store, verifier auth.Verifier, cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(otelgin.Middleware("campuspilot-api"))

	reg := prometheus.NewRegistry()
	prom := observability.NewProm(reg)

	r.Use(prom.GinHandleMiddleware())
	r.Use(middlewares.MaxBodyBytes(1 << 20))
	r.Use(middlewares.RequireJSON())

	// health + metrics stay outside the auth gate
	ping := func() error {
		ctx, cancel := config.WithTimeout(2 * time.Second)
		defer cancel()

		return st.Ping(ctx)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// wire up repositories
	usersRepo := mongodb.NewUsersRepo(st, prom)
	transactionsRepo := mongodb.NewTransactionsRepo(st, prom)
	classesRepo := mongodb.NewClassesRepo(st, prom)
	scoresRepo := mongodb.NewScoresRepo(st, prom)
	tasksRepo := mongodb.NewTasksRepo(st, prom)

	// wire up handlers
	usersHandler := handlers.NewUsersHandler(usersRepo)
	transactionsHandler := handlers.NewTransactionsHandler(transactionsRepo)
	classesHandler := handlers.NewClassesHandler(classesRepo)
	scoresHandler := handlers.NewScoresHandler(scoresRepo)
	tasksHandler := handlers.NewTasksHandler(tasksRepo)

	authMW := middlewares.NewAuthMiddleware(verifier)
	limiter := middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)

	// every resource route requires a verified bearer token
	api := r.Group("/api")
	api.Use(authMW.RequireAuth())
	api.Use(limiter.RateLimiterMiddleware(middlewares.KeyBySubjectOrIP))

	users := api.Group("/users")
	users.POST("", usersHandler.CreateUser)
	users.GET("", usersHandler.ListUsers)
	users.GET("/:id", usersHandler.GetUserByID)
	users.GET("/uid/:uid", usersHandler.GetUserByUID)

	transactions := api.Group("/transactions")
	transactions.POST("", transactionsHandler.CreateTransaction)
	transactions.GET("/:uid", transactionsHandler.ListTransactions)

	classes := api.Group("/classes")
	classes.POST("", classesHandler.CreateClass)
	classes.GET("", classesHandler.ListClasses)

	scores := api.Group("/scores")
	scores.POST("", scoresHandler.RecordScore)
	scores.GET("/:uid", scoresHandler.GetScores)

	tasks := api.Group("/tasks")
	tasks.POST("", tasksHandler.CreateTask)
	tasks.GET("", tasksHandler.ListTasks)
	tasks.PATCH("/:id", tasksHandler.UpdateTask)
	tasks.DELETE("/:id", tasksHandler.DeleteTask)

	return r
}
