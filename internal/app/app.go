package app

import (
	"codingclass_backend/internal/config"
	"codingclass_backend/internal/controller"
	"codingclass_backend/internal/repository"
	"codingclass_backend/internal/service"
	"codingclass_backend/pkg/configwatcher"
	"codingclass_backend/pkg/database"
	"codingclass_backend/pkg/logger"
	"codingclass_backend/pkg/monitoring"
	"codingclass_backend/pkg/security"
	"codingclass_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	group    *repository.GroupRepository
	problem  *repository.ProblemRepository
	workbook *repository.WorkbookRepository
	solve    *repository.SolveRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	group    *service.GroupService
	problem  *service.ProblemService
	workbook *service.WorkbookService
	solve    *service.SolveService
	grading  *service.GradingService
	imports  *service.ImportService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	group    *controller.GroupController
	problem  *controller.ProblemController
	workbook *controller.WorkbookController
	solve    *controller.SolveController
	grading  *controller.GradingController
	imports  *controller.ImportController
	upload   *controller.UploadController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		group:    repository.NewGroupRepository(db),
		problem:  repository.NewProblemRepository(db),
		workbook: repository.NewWorkbookRepository(db),
		solve:    repository.NewSolveRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.group = service.NewGroupService(repos.group)
	s.problem = service.NewProblemService(repos.problem, repos.group, rdb)
	s.workbook = service.NewWorkbookService(repos.workbook, repos.group)
	s.solve = service.NewSolveService(repos.solve, repos.problem)
	s.solve.Enricher = service.NewRepoSolveEnricher(repos.solve, rdb)
	s.grading = service.NewGradingService(repos.solve, repos.problem, repos.group)
	s.imports = service.NewImportService(s.problem, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.user),
		user:     controller.NewUserController(s.user),
		group:    controller.NewGroupController(s.group),
		problem:  controller.NewProblemController(s.problem),
		workbook: controller.NewWorkbookController(s.workbook),
		solve:    controller.NewSolveController(s.solve),
		grading:  controller.NewGradingController(s.grading),
		imports:  controller.NewImportController(s.imports),
		upload:   controller.NewUploadController(s.storage),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("codingclass-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(reloaded interface{}) {
		if c, ok := reloaded.(*config.Config); ok {
			for _, cb := range app.configCallbacks {
				cb(c)
			}
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
