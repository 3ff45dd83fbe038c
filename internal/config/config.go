package config

import (
	"log"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	DataFile          string
	UploadsDir        string
	PublicDir         string
	PublicBaseURL     string
	FailOpenReads     bool
	SwaggerHost       string
}

// Load builds Config from environment with sensible defaults. The admin
// credential is held only as a bcrypt hash: either ADMIN_PASSWORD_HASH is set
// directly, or the plaintext ADMIN_PASSWORD is hashed once here and discarded.
func Load() *Config {
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if hash == "" {
		plain := getEnv("ADMIN_PASSWORD", "password123")
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		hash = string(hashed)
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "3000"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: hash,
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		DataFile:          getEnv("DATA_FILE", "data/db.json"),
		UploadsDir:        getEnv("UPLOADS_DIR", "data/uploads"),
		PublicDir:         os.Getenv("PUBLIC_DIR"),
		PublicBaseURL:     getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),
		FailOpenReads:     getEnvBool("STORE_FAIL_OPEN", true),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
