package router

import (
	"github.com/shopwish/shopwish-api/internal/application"
	"github.com/shopwish/shopwish-api/internal/container"
	pginfra "github.com/shopwish/shopwish-api/internal/infrastructure/postgres"
	handlers "github.com/shopwish/shopwish-api/internal/interface/http"
	"github.com/shopwish/shopwish-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module with the registry.
// Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)
	wishlistRepo := pginfra.NewWishlistRepository(pool)
	orderRepo := pginfra.NewOrderRepository(pool)

	mail := application.NewMailer(container.GetRabbitPub(), cfg.MailSendEnabled, logger)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetGoogleVerifier(), cfg.AdminEmail, logger, mail)
	catalogSvc := application.NewCatalogService(productRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESProductsIndex, logger)
	wishlistSvc := application.NewWishlistService(wishlistRepo)
	orderSvc := application.NewOrderService(orderRepo, userRepo, logger, mail)

	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewCatalogModule(handlers.NewProductHandler(catalogSvc, logger)))
	r.Add(modules.NewWishlistModule(handlers.NewWishlistHandler(wishlistSvc, logger), jwt))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(catalogSvc, orderSvc, logger), jwt, userRepo))
}
