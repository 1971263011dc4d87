package router

import (
	"time"

	"jubbisoft/config"
	"jubbisoft/internal/domain"
	"jubbisoft/internal/handler"
	"jubbisoft/internal/middleware"
	"jubbisoft/internal/repository"
	"jubbisoft/internal/service"
	"jubbisoft/pkg/cloudinary"
	"jubbisoft/pkg/notice"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) (*gin.Engine, *service.TreasuryService) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	stores := repository.NewStores(db)
	txManager := repository.NewTxManager(db)
	noticeClient := notice.NewClient(cfg.Notice.BaseURL, cfg.Notice.Timeout)

	// Services
	walletSvc := service.NewWalletService(stores, txManager)
	loyaltySvc := service.NewLoyaltyService(stores)
	treasurySvc := service.NewTreasuryService(stores, txManager, walletSvc)
	userSvc := service.NewUserService(stores, txManager, walletSvc, loyaltySvc)
	gameSvc := service.NewGameService(stores, txManager, walletSvc, loyaltySvc, noticeClient, cfg.Server.PublicURL)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, userSvc)
	userHandler := handler.NewUserHandler(userSvc)
	gameHandler := handler.NewGameHandler(gameSvc, cloud)
	walletHandler := handler.NewWalletHandler(walletSvc)
	transactionHandler := handler.NewTransactionHandler(stores.Transactions)
	treasuryHandler := handler.NewTreasuryHandler(treasurySvc)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltySvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.RequireRole(domain.RoleAdmin)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// Storefront
		api.GET("/games", gameHandler.ListAvailable)
		api.GET("/games/:id", gameHandler.Get)

		authed := api.Group("")
		authed.Use(authMw)
		{
			authed.POST("/games", gameHandler.Create)
			authed.PUT("/games/:id", gameHandler.Edit)
			authed.PATCH("/games/:id/availability", gameHandler.ToggleAvailability)
			authed.DELETE("/games/:id", gameHandler.Delete)
			authed.POST("/games/:id/purchase", gameHandler.Purchase)
			authed.POST("/games/cover", gameHandler.UploadCover)

			authed.GET("/me/profile", userHandler.GetProfile)
			authed.PATCH("/me/profile", userHandler.EditProfile)
			authed.GET("/me/library", gameHandler.MyLibrary)
			authed.GET("/me/published", gameHandler.MyPublished)
			authed.GET("/me/wallet", walletHandler.GetBalance)
			authed.POST("/me/wallet/top-up", treasuryHandler.TopUp)
			authed.GET("/me/transactions", transactionHandler.ListMine)
			authed.GET("/transactions/:id", transactionHandler.Get)
			authed.GET("/me/loyalty", loyaltyHandler.GetMine)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/users", userHandler.ListAll)
			admin.PATCH("/users/:id/status", userHandler.SwitchStatus)
			admin.PATCH("/users/:id/role", userHandler.SwitchRole)
			admin.GET("/games", gameHandler.ListAll)
			admin.PATCH("/wallets/:id/status", walletHandler.SwitchStatus)
			admin.GET("/treasury", treasuryHandler.Get)
		}
	}

	return r, treasurySvc
}
