package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go-coffee-store/internal/handler"
	"go-coffee-store/internal/middleware"
	"go-coffee-store/internal/model"
	"go-coffee-store/internal/repository"
	"go-coffee-store/internal/service"
	"go-coffee-store/internal/ws"
	"go-coffee-store/pkg/database"
	applog "go-coffee-store/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	appLogger := applog.New(os.Getenv("APP_ENV"))

	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{}, &model.Privilege{}, &model.Role{},
		&model.Category{}, &model.Product{}, &model.Variant{}, &model.ProductImage{},
		&model.Review{}, &model.Slide{}, &model.FAQCategory{}, &model.FAQ{},
		&model.Setting{}, &model.Cart{}, &model.CartItem{}, &model.StockMovement{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	seedDefaults(db)

	wsHub := ws.NewHub()
	go wsHub.Run()

	// Repositories
	productRepo := repository.NewProductRepo(db)
	variantRepo := repository.NewVariantRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	slideRepo := repository.NewSlideRepo(db)
	faqRepo := repository.NewFAQRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	cartRepo := repository.NewCartRepo(db)
	movementRepo := repository.NewStockMovementRepo(db)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	// Services
	catalogService := service.NewCatalogService(productRepo, categoryRepo, appLogger)
	productService := service.NewProductService(productRepo, variantRepo, categoryRepo, movementRepo, db, wsHub, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, productRepo, appLogger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, wsHub, appLogger)
	contentService := service.NewContentService(slideRepo, faqRepo, settingRepo)
	cartService := service.NewCartService(cartRepo, variantRepo, productRepo)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, reviewRepo, variantRepo, movementRepo)
	authService := service.NewAuthService(userRepo, roleRepo, wsHub)
	userService := service.NewUserService(userRepo, privilegeRepo, roleRepo)

	// Handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, reviewService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	contentHandler := handler.NewContentHandler(contentService)
	cartHandler := handler.NewCartHandler(cartService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo, privilegeRepo)

	app := fiber.New(fiber.Config{
		AppName: "Coffee Store API v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/heartbeat", middleware.RequireAuth(userRepo), authHandler.Heartbeat)

	cat := api.Group("/catalog")
	cat.Get("/products", catalogHandler.SearchProducts)
	cat.Get("/products/sku/:sku", catalogHandler.GetProductBySKU)
	cat.Get("/products/:id", catalogHandler.GetProduct)
	cat.Get("/products/:id/reviews", catalogHandler.ProductReviews)
	cat.Post("/products/:id/reviews", reviewHandler.SubmitReview)
	cat.Get("/featured", catalogHandler.FeaturedProducts)
	cat.Get("/categories", catalogHandler.ListCategories)
	cat.Get("/categories/:slug", catalogHandler.GetCategoryBySlug)

	content := api.Group("/content")
	content.Get("/slides", contentHandler.ActiveSlides)
	content.Get("/faqs", contentHandler.ActiveFAQs)
	content.Get("/faq-categories", contentHandler.FAQCategories)
	content.Get("/settings", contentHandler.PublicSettings)

	// ============ AUTHENTICATED ROUTES ============
	cart := api.Group("/cart", middleware.RequireAuth(userRepo))
	cart.Get("/", cartHandler.GetCart)
	cart.Delete("/", cartHandler.ClearCart)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(userRepo))

	admin.Get("/dashboard", middleware.RequirePrivilege("dashboard:view"), dashboardHandler.GetStats)

	admin.Get("/products", productHandler.ListProducts)
	admin.Post("/products", middleware.RequirePrivilege("product:create"), productHandler.CreateProduct)
	admin.Put("/products/:id", middleware.RequirePrivilege("product:update"), productHandler.UpdateProduct)
	admin.Delete("/products/:id", middleware.RequirePrivilege("product:delete"), productHandler.DeleteProduct)
	admin.Post("/products/:id/toggle-active", middleware.RequirePrivilege("product:update"), productHandler.ToggleActive)
	admin.Post("/products/:id/toggle-featured", middleware.RequirePrivilege("product:update"), productHandler.ToggleFeatured)
	admin.Post("/products/:id/variants", middleware.RequirePrivilege("product:update"), productHandler.CreateVariant)
	admin.Put("/variants/:id", middleware.RequirePrivilege("product:update"), productHandler.UpdateVariant)
	admin.Delete("/variants/:id", middleware.RequirePrivilege("product:delete"), productHandler.DeleteVariant)
	admin.Post("/variants/:id/adjust-stock", middleware.RequirePrivilege("stock:adjust"), productHandler.AdjustStock)

	admin.Get("/categories", categoryHandler.ListCategories)
	admin.Get("/categories/:id", categoryHandler.GetCategory)
	admin.Post("/categories", middleware.RequirePrivilege("category:create"), categoryHandler.CreateCategory)
	admin.Put("/categories/:id", middleware.RequirePrivilege("category:update"), categoryHandler.UpdateCategory)
	admin.Delete("/categories/:id", middleware.RequirePrivilege("category:delete"), categoryHandler.DeleteCategory)

	admin.Get("/reviews/pending", middleware.RequirePrivilege("review:moderate"), reviewHandler.PendingReviews)
	admin.Post("/reviews/:id/approve", middleware.RequirePrivilege("review:moderate"), reviewHandler.ApproveReview)
	admin.Post("/reviews/:id/reject", middleware.RequirePrivilege("review:moderate"), reviewHandler.RejectReview)
	admin.Post("/reviews/:id/toggle-featured", middleware.RequirePrivilege("review:moderate"), reviewHandler.ToggleFeatured)

	admin.Get("/slides", middleware.RequirePrivilege("slide:manage"), contentHandler.AllSlides)
	admin.Post("/slides", middleware.RequirePrivilege("slide:manage"), contentHandler.CreateSlide)
	admin.Put("/slides/:id", middleware.RequirePrivilege("slide:manage"), contentHandler.UpdateSlide)
	admin.Delete("/slides/:id", middleware.RequirePrivilege("slide:manage"), contentHandler.DeleteSlide)

	admin.Get("/faqs", middleware.RequirePrivilege("faq:manage"), contentHandler.AllFAQs)
	admin.Post("/faqs", middleware.RequirePrivilege("faq:manage"), contentHandler.CreateFAQ)
	admin.Put("/faqs/:id", middleware.RequirePrivilege("faq:manage"), contentHandler.UpdateFAQ)
	admin.Delete("/faqs/:id", middleware.RequirePrivilege("faq:manage"), contentHandler.DeleteFAQ)
	admin.Post("/faq-categories", middleware.RequirePrivilege("faq:manage"), contentHandler.CreateFAQCategory)

	admin.Get("/settings", middleware.RequirePrivilege("setting:manage"), contentHandler.AllSettings)
	admin.Put("/settings/:key", middleware.RequirePrivilege("setting:manage"), contentHandler.UpdateSetting)

	admin.Get("/users", middleware.RequirePrivilege("user:view"), userHandler.GetUsers)
	admin.Get("/users/:id", middleware.RequirePrivilege("user:view"), userHandler.GetUser)
	admin.Post("/users", middleware.RequirePrivilege("user:create"), userHandler.CreateUser)
	admin.Put("/users/:id", middleware.RequirePrivilege("user:update"), userHandler.UpdateUser)
	admin.Delete("/users/:id", middleware.RequirePrivilege("user:delete"), userHandler.DeleteUser)
	admin.Put("/users/:id/privileges", middleware.RequirePrivilege("user:update_privilege"), userHandler.UpdateUserPrivileges)

	admin.Get("/roles", roleHandler.GetRoles)
	admin.Get("/privileges", roleHandler.GetPrivileges)

	// WebSocket Route (admin live events)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	appLogger.Info("Server exited")
}

// seedDefaults creates privileges, roles, the key/value settings, and the
// initial admin account on first boot.
func seedDefaults(db *gorm.DB) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)
	settingRepo := repository.NewSettingRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}
	if err := settingRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed settings: %v", err)
	}

	allPrivileges, _ := privilegeRepo.FindAll()

	// ADMIN gets everything.
	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err == nil && len(adminRole.Privileges) == 0 {
		db.Model(&adminRole).Association("Privileges").Replace(allPrivileges)
		log.Println("ADMIN role assigned all privileges")
	}

	// STAFF runs the shop day to day but cannot manage accounts.
	staffRole, err := roleRepo.FindByCode(model.RoleStaff)
	if err == nil && len(staffRole.Privileges) == 0 {
		staffPrivileges := []model.Privilege{}
		for _, p := range allPrivileges {
			if strings.HasPrefix(p.Code, "user:") {
				continue
			}
			staffPrivileges = append(staffPrivileges, p)
		}
		db.Model(&staffRole).Association("Privileges").Replace(staffPrivileges)
		log.Println("STAFF role assigned store privileges")
	}

	// CUSTOMER holds no admin privileges; the role only marks the account type.

	if _, err := userRepo.FindByEmail("admin@example.com"); err != nil {
		adminRole, _ := roleRepo.FindByCode(model.RoleAdmin)

		admin := &model.User{
			Email:      "admin@example.com",
			FullName:   "Store Administrator",
			RoleID:     &adminRole.ID,
			IsActive:   true,
			Privileges: adminRole.Privileges,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@example.com / admin123 (ADMIN)")
		}
	}
}
