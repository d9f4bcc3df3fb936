package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB

	ListenAddr string
	JWTSecret  string
	PageSize   int
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env (when present), opens the database connection pool and
// verifies it with a ping.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "spp")
	sslmode := getenv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection to %s:%s/%s: %v", host, port, dbname, err)
	}
	log.Println("Database connected successfully")

	pageSize := 10
	if v, err := strconv.Atoi(getenv("PAGE_SIZE", "10")); err == nil && v > 0 {
		pageSize = v
	}

	AppConfig = &Config{
		DB:         db,
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		JWTSecret:  getenv("JWT_SECRET", "spp-tuition-secret-key"),
		PageSize:   pageSize,
	}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
