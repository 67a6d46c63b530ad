package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
}

type DBConfig struct {
	// DSN is the Postgres connection string. No default: the process
	// must fail fast at startup when it is absent.
	DSN string
}

type CORSConfig struct {
	Origin string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
		},
		DB: DBConfig{
			DSN: os.Getenv("DATABASE_URL"),
		},
		CORS: CORSConfig{
			Origin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
