// Package provider wires repositories and services into one container the
// router and handlers pull their dependencies from.
package provider

import (
	"github.com/delipedidos/api/internal/cache"
	"github.com/delipedidos/api/internal/config"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"
	"github.com/delipedidos/api/internal/service"
	"github.com/delipedidos/api/internal/storage"
)

// Container is the dependency injection container.
type Container struct {
	Config *config.Config

	// Repositories
	AdminRepo      repository.AdminRepository
	CategoryRepo   repository.CategoryRepository
	ProductRepo    repository.ProductRepository
	PromoRepo      repository.PromoRepository
	BranchRepo     repository.BranchRepository
	SiteConfigRepo repository.SiteConfigRepository
	OrderRepo      repository.OrderRepository
	OrderEventRepo repository.OrderEventRepository
	OrderNoteRepo  repository.OrderNoteRepository

	// Services
	AuthService       *service.AuthService
	CategoryService   *service.CategoryService
	ProductService    *service.ProductService
	PromoService      *service.PromoService
	BranchService     *service.BranchService
	SiteConfigService *service.SiteConfigService
	OrderService      *service.OrderService
	UploadService     *service.UploadService

	StorageClient *storage.Client
}

// NewContainer builds the container on top of the initialized database.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.PromoRepo = repository.NewPromoRepository(db)
	c.BranchRepo = repository.NewBranchRepository(db)
	c.SiteConfigRepo = repository.NewSiteConfigRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.OrderEventRepo = repository.NewOrderEventRepository(db)
	c.OrderNoteRepo = repository.NewOrderNoteRepository(db)
}

func (c *Container) initServices() {
	c.StorageClient = storage.NewClient(&c.Config.Storage)
	if !c.StorageClient.Enabled() {
		logger.Warnw("provider_storage_disabled", "reason", "missing url, service key or bucket")
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.PromoService = service.NewPromoService(c.PromoRepo)
	c.BranchService = service.NewBranchService(c.BranchRepo)
	c.SiteConfigService = service.NewSiteConfigService(c.SiteConfigRepo)
	c.OrderService = service.NewOrderService(
		models.DB,
		c.OrderRepo,
		c.OrderEventRepo,
		c.OrderNoteRepo,
		c.BranchRepo,
		c.SiteConfigService,
	)
	c.UploadService = service.NewUploadService(c.Config, c.StorageClient)
}
