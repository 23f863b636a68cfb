package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dbUser := strings.TrimSpace(os.Getenv("DB_USER"))
	if dbUser == "" {
		dbUser = "root"
	}
	dbHost := strings.TrimSpace(os.Getenv("DB_HOST"))
	if dbHost == "" {
		dbHost = "127.0.0.1:3306"
	}
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if dbName == "" {
		dbName = "frotalog"
	}

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		DBUser:    dbUser,
		DBPass:    os.Getenv("DB_PASS"),
		DBHost:    dbHost,
		DBName:    dbName,
		JWTSecret: string(JWTSecret()),
	}
}

// JWTSecret returns the token signing key for handlers and middleware.
func JWTSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}
	return []byte(secret)
}
