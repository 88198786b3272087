package config

import (
	"log"
	"os"

	"lezzet-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "lezzet_super_secret_2024"))

// Load reads .env (if present) and re-resolves env-backed settings.
// Call before InitDB.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "lezzet_super_secret_2024"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	if err := OpenDB(getEnv("DB_PATH", "lezzet.db")); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected and migrated")
}

// OpenDB opens the sqlite database at dsn and migrates the schema.
// Tests pass ":memory:".
func OpenDB(dsn string) error {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.CourierRequest{},
		&models.Review{},
		&models.Complaint{},
	); err != nil {
		return err
	}
	DB = db
	return nil
}
