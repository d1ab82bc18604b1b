package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"almanara_backend/internals/configs"
	"almanara_backend/internals/features/catalog/store"
	"almanara_backend/internals/features/catalog/store/gormstore"
	"almanara_backend/internals/features/catalog/store/memory"
	certificateService "almanara_backend/internals/features/certificates/service"
	paymentService "almanara_backend/internals/features/payments/service"
	streamingService "almanara_backend/internals/features/streaming/service"
	middlewares "almanara_backend/internals/middlewares"
	routes "almanara_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🗄️ Store katalog: Postgres bila DATABASE_URL tersedia, kalau tidak mock in-memory
	var st store.CatalogStore
	var gormDB *gorm.DB
	if dsn := configs.GetEnv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ Failed to connect database: %v", err)
		}
		if err := gormstore.AutoMigrate(db); err != nil {
			log.Fatalf("❌ Failed to migrate catalog tables: %v", err)
		}
		gormDB = db
		st = gormstore.New(db)
		log.Println("✅ Catalog store: PostgreSQL")
	} else {
		st = memory.Open()
		log.Println("⚠️ DATABASE_URL not set — catalog store: in-memory mock")
	}

	// ✅ MIDTRANS
	paymentService.InitMidtrans(configs.MidtransServerKey)

	generator := certificateService.NewGeneratorFromConfig()
	backend := streamingService.NewBackendClient(configs.BackendBaseURL)

	// ✅ Routes (termasuk /health anti-cold start)
	routes.SetupRoutes(app, st, generator, backend)

	// 📂 File sertifikat hasil generate dilayani statis
	app.Static("/public/certificates", configs.CertOutputDir)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if gormDB != nil {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
