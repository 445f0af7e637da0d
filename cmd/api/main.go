package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"genshin-trade-center/internal/handler"
	"genshin-trade-center/internal/middleware"
	"genshin-trade-center/internal/model"
	"genshin-trade-center/internal/repository"
	"genshin-trade-center/internal/service"
	"genshin-trade-center/internal/ws"
	"genshin-trade-center/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Role{}, &model.User{}, &model.Weapon{},
		&model.CharacterArchetype{}, &model.Product{}, &model.Resource{})

	// 3. Seed default roles, admin user and a starter catalog
	seedRolesAdminAndCatalog(db)

	// 4. Setup WebSocket Hub (market activity feed)
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	productRepo := repository.NewProductRepo(db)
	weaponRepo := repository.NewWeaponRepo(db)
	archetypeRepo := repository.NewArchetypeRepo(db)
	resourceRepo := repository.NewResourceRepo(db)

	authService := service.NewAuthService(userRepo, roleRepo)
	listingService := service.NewListingService(productRepo, archetypeRepo, weaponRepo, db, wsHub)
	resourceService := service.NewResourceService(resourceRepo, userRepo, db, wsHub)
	catalogService := service.NewCatalogService(weaponRepo, archetypeRepo)
	marketService := service.NewMarketService(productRepo, resourceRepo)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	marketHandler := handler.NewMarketHandler(marketService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Genshin Trade Center v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Character listings
	protected.Get("/characters", listingHandler.ListCharacters)
	protected.Get("/characters/mine", listingHandler.MyCharacters)
	protected.Post("/characters", listingHandler.CreateCharacter)
	protected.Put("/characters/:id", listingHandler.UpdateCharacter)
	protected.Delete("/characters/:id", listingHandler.DeleteListing)
	protected.Post("/characters/:id/buy", listingHandler.BuyListing)

	// Item listings
	protected.Get("/items", listingHandler.ListItems)
	protected.Get("/items/mine", listingHandler.MyItems)
	protected.Post("/items", listingHandler.CreateItem)
	protected.Put("/items/:id", listingHandler.UpdateItem)
	protected.Delete("/items/:id", listingHandler.DeleteListing)
	protected.Post("/items/:id/buy", listingHandler.BuyListing)

	// Resources (everyone trades, only admins shape the list)
	protected.Get("/resources", resourceHandler.ListResources)
	protected.Post("/resources", middleware.RequireRole(model.RoleAdmin), resourceHandler.CreateResource)
	protected.Put("/resources/:id", middleware.RequireRole(model.RoleAdmin), resourceHandler.UpdateResource)
	protected.Delete("/resources/:id", middleware.RequireRole(model.RoleAdmin), resourceHandler.DeleteResource)
	protected.Post("/resources/:id/sell", resourceHandler.Sell)
	protected.Post("/resources/:id/sell-stop", resourceHandler.SellStop)
	protected.Post("/resources/:id/buy", resourceHandler.Buy)

	// Catalog (reads populate listing forms, writes are admin only)
	protected.Get("/weapons", catalogHandler.ListWeapons)
	protected.Get("/weapons/:id", catalogHandler.GetWeapon)
	protected.Post("/weapons", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateWeapon)
	protected.Put("/weapons/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateWeapon)
	protected.Delete("/weapons/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteWeapon)

	protected.Get("/archetypes", catalogHandler.ListArchetypes)
	protected.Get("/archetypes/:id", catalogHandler.GetArchetype)
	protected.Post("/archetypes", middleware.RequireRole(model.RoleAdmin), catalogHandler.CreateArchetype)
	protected.Put("/archetypes/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.UpdateArchetype)
	protected.Delete("/archetypes/:id", middleware.RequireRole(model.RoleAdmin), catalogHandler.DeleteArchetype)

	// Market stats
	protected.Get("/market/stats", marketHandler.GetMarketStats)

	// User directory (admin view)
	protected.Get("/users", middleware.RequireRole(model.RoleAdmin), func(c *fiber.Ctx) error {
		users, err := userRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
		}
		responses := make([]model.UserResponse, len(users))
		for i := range users {
			responses[i] = users[i].ToResponse()
		}
		return c.JSON(responses)
	})

	// WebSocket Route (market activity feed)
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
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesAdminAndCatalog creates default roles, the admin account and a
// small starter catalog if they don't exist
func seedRolesAdminAndCatalog(db *gorm.DB) {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 1. Seed roles first
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 2. Create default admin user with ADMIN role
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	if _, err := userRepo.FindByEmail(adminEmail); err != nil {
		adminRole, _ := roleRepo.FindByCode(model.RoleAdmin)

		admin := &model.User{
			Username: "market_admin",
			Email:    adminEmail,
			IsActive: true,
		}
		if adminRole != nil {
			admin.RoleID = &adminRole.ID
		}

		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminPassword == "" {
			adminPassword = "admin123"
		}
		if err := admin.SetPassword(adminPassword); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Printf("✅ Admin user created: %s (ADMIN)", adminEmail)
		}
	}

	// 3. Starter catalog so listing forms have types to offer
	var weaponCount int64
	db.Model(&model.Weapon{}).Count(&weaponCount)
	if weaponCount == 0 {
		starters := []model.Weapon{
			{Name: "Dull Blade", MainStat: model.StatATK, WeaponType: model.WeaponSword,
				Description: "A battered practice sword issued to new recruits.", Quality: 1},
			{Name: "Wolf's Gravestone", MainStat: model.StatATK, WeaponType: model.WeaponClaymore,
				Description: "A longsword once wielded by a wolf-raised warrior.", Quality: 5},
			{Name: "Amos' Bow", MainStat: model.StatATK, WeaponType: model.WeaponBow,
				Description: "A bow as old as the walls of the ancient city.", Quality: 5},
		}
		for _, w := range starters {
			if err := db.Create(&w).Error; err != nil {
				log.Printf("Warning: Failed to seed weapon %q: %v", w.Name, err)
			}
		}
	}

	var archetypeCount int64
	db.Model(&model.CharacterArchetype{}).Count(&archetypeCount)
	if archetypeCount == 0 {
		starters := []model.CharacterArchetype{
			{Name: "Diluc", Quality: 5, WeaponType: model.WeaponClaymore, VisionType: model.VisionPyro},
			{Name: "Barbara", Quality: 4, WeaponType: model.WeaponCatalyst, VisionType: model.VisionHydro},
			{Name: "Fischl", Quality: 4, WeaponType: model.WeaponBow, VisionType: model.VisionElectro},
		}
		for _, a := range starters {
			if err := db.Create(&a).Error; err != nil {
				log.Printf("Warning: Failed to seed archetype %q: %v", a.Name, err)
			}
		}
	}
}
