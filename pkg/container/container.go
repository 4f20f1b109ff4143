package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"blogicum-backend/internal/config"
	infraCache "blogicum-backend/internal/infrastructure/cache"
	"blogicum-backend/internal/infrastructure/database"
	"blogicum-backend/internal/infrastructure/queue"
	"blogicum-backend/internal/shared/feedcache"
	"blogicum-backend/pkg/cache"
	"blogicum-backend/pkg/jwt"

	categoryHandler "blogicum-backend/internal/domains/category/handler"
	categoryRepo "blogicum-backend/internal/domains/category/repository"
	categoryService "blogicum-backend/internal/domains/category/service"
	commentHandler "blogicum-backend/internal/domains/comment/handler"
	commentRepo "blogicum-backend/internal/domains/comment/repository"
	commentService "blogicum-backend/internal/domains/comment/service"
	locationHandler "blogicum-backend/internal/domains/location/handler"
	locationRepo "blogicum-backend/internal/domains/location/repository"
	locationService "blogicum-backend/internal/domains/location/service"
	postHandler "blogicum-backend/internal/domains/post/handler"
	postRepo "blogicum-backend/internal/domains/post/repository"
	postService "blogicum-backend/internal/domains/post/service"
	userHandler "blogicum-backend/internal/domains/user/handler"
	userRepo "blogicum-backend/internal/domains/user/repository"
	userService "blogicum-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Feeds       *feedcache.FeedCache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	Publisher   *queue.PublicationScheduler

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	UserRepo     userRepo.UserRepository
	CategoryRepo categoryRepo.CategoryRepository
	LocationRepo locationRepo.LocationRepository
	PostRepo     postRepo.PostRepository
	CommentRepo  commentRepo.CommentRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	UserService     userService.ServiceInterface
	CategoryService categoryService.ServiceInterface
	LocationService locationService.ServiceInterface
	PostService     postService.ServiceInterface
	CommentService  commentService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	LocationHandler *locationHandler.LocationHandler
	PostHandler     *postHandler.PostHandler
	CommentHandler  *commentHandler.CommentHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (DB, Cache, Queue client)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE + QUEUE CLIENT
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		// Redis failure không critical: feed cache chỉ miss, hẹn giờ chỉ log warning
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	c.Cache = redisCache
	c.Feeds = feedcache.New(redisCache, cfg.Feed.CacheTTL)
	c.AsynqClient = asynq.NewClient(RedisClientOpt(cfg.Redis))
	c.Publisher = queue.NewPublicationScheduler(c.AsynqClient)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL())

	// ========================================
	// STEP 4-6: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	log.Println("⚙️  Initializing services...")
	c.initServices()

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// RedisClientOpt dùng chung cho asynq client, server và scheduler
func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(pool)
	c.LocationRepo = locationRepo.NewPostgresLocationRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.LocationService = locationService.NewLocationService(c.LocationRepo)

	// Post đọc comments trực tiếp từ repository; comment service hỏi post
	// service xem post có đọc được không. Không có vòng phụ thuộc.
	c.PostService = postService.NewPostService(
		c.PostRepo,
		c.UserService,
		c.CategoryService,
		c.LocationService,
		c.CommentRepo,
		c.Feeds,
		c.Publisher,
	)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostService, c.Feeds)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.LocationHandler = locationHandler.NewLocationHandler(c.LocationService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close asynq client: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
