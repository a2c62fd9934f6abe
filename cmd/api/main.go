package main

import (
	"context"
	"log"
	"os"
	"time"

	"pandapos/internal/assistant"
	"pandapos/internal/catalog"
	"pandapos/internal/db"
	"pandapos/internal/pos"
	"pandapos/internal/reports"
	"pandapos/internal/storage"
	"pandapos/internal/transaction"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	menu := r.Group("/menu")
	{
		menu.GET("/sides", catalogHandler.Sides)
		menu.GET("/entrees", catalogHandler.Entrees)
		menu.GET("/appetizers", catalogHandler.Appetizers)
	}

	// ───────────────────────── POS ─────────────────────────
	txStore := transaction.NewPostgresStore(pgDB, r2Client)
	sessions := pos.NewRegistry(txStore)
	posHandler := pos.NewHandler(sessions, catalogService)

	posGroup := r.Group("/pos/sessions")
	{
		posGroup.POST("", posHandler.CreateSession)
		posGroup.GET("/:id", posHandler.GetState)
		posGroup.DELETE("/:id", posHandler.CloseSession)
		posGroup.POST("/:id/size", posHandler.SelectSize)
		posGroup.POST("/:id/items", posHandler.AddItem)
		posGroup.POST("/:id/submit", posHandler.SubmitOrder)
		posGroup.POST("/:id/reset", posHandler.ResetOrder)
		posGroup.POST("/:id/finish", posHandler.FinishTransaction)
	}

	// ───────────────────────── REPORTS ─────────────────────────
	reportRepo := reports.NewPostgresRepository(pgDB)
	reportService := reports.NewService(reportRepo)
	reportHandler := reports.NewHandler(reportService)

	r.GET("/reports/sales-history", reportHandler.SalesHistory)

	// ───────────────────────── ASSISTANT ─────────────────────────
	assistantHandler := assistant.NewHandler(assistant.NewOpenAIClient())

	r.POST("/assistant/chat", assistantHandler.Chat)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
