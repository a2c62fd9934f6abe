package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// FOODS
	// -------------------------------
	foodsTableSQL := `
		CREATE TABLE IF NOT EXISTS foods (
			food_id SERIAL PRIMARY KEY,
			food_name VARCHAR(255) UNIQUE NOT NULL,
			type VARCHAR(50) NOT NULL,
			quantity INT NOT NULL DEFAULT 0,
			calories INT NOT NULL DEFAULT 0,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			premium BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, foodsTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// TRANSACTIONS
	// -------------------------------
	transactionsTableSQL := `
		CREATE TABLE IF NOT EXISTS transactions (
			transaction_id UUID PRIMARY KEY,
			employee_id VARCHAR(255) NOT NULL,
			orders JSONB NOT NULL,
			total_price NUMERIC(10, 2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, transactionsTableSQL); err != nil {
		return err
	}

	if err := seedFoods(db); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}

// seedFoods inserts the standing menu once; reruns are no-ops.
func seedFoods(db *pgxpool.Pool) error {
	type seed struct {
		name     string
		category string
		calories int
		premium  bool
	}

	seeds := []seed{
		{"White Steamed Rice", "side", 380, false},
		{"Fried Rice", "side", 520, false},
		{"Chow Mein", "side", 510, false},
		{"Super Greens", "side", 90, false},

		{"The Original Orange Chicken", "entree", 490, false},
		{"Beyond The Original Orange Chicken", "entree", 440, true},
		{"Beijing Beef", "entree", 480, false},
		{"Black Pepper Sirloin Steak", "entree", 180, true},
		{"Honey Walnut Shrimp", "entree", 360, true},
		{"Grilled Teriyaki Chicken", "entree", 275, false},
		{"Broccoli Beef", "entree", 150, false},
		{"Kung Pao Chicken", "entree", 290, false},
		{"Honey Sesame Chicken Breast", "entree", 340, false},
		{"Mushroom Chicken", "entree", 220, false},
		{"SweetFire Chicken Breast", "entree", 360, false},
		{"String Bean Chicken Breast", "entree", 210, false},

		{"Chicken Egg Roll", "appetizer", 200, false},
		{"Veggie Spring Roll", "appetizer", 240, false},
		{"Cream Cheese Rangoon", "appetizer", 190, false},
		{"Apple Pie Roll", "appetizer", 150, false},
	}

	ctx := context.Background()
	for _, s := range seeds {
		_, err := db.Exec(ctx, `
			INSERT INTO foods (food_name, type, quantity, calories, available, premium)
			VALUES ($1, $2, 100, $3, TRUE, $4)
			ON CONFLICT (food_name) DO NOTHING
		`, s.name, s.category, s.calories, s.premium)
		if err != nil {
			return err
		}
	}

	return nil
}
