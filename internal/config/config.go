package config

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/pem"
	"os"
	"time"

	"github.com/Keyroamos/hunt/internal/constants"
	"github.com/Keyroamos/hunt/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Config holds all application configuration, including secrets.
type Config struct {
	AppName            string
	AppPort            string
	AppURL             string
	FrontendURL        string
	DBUrl              string
	TokenExpiry        time.Duration
	RefreshTokenExpiry time.Duration
	RSAPrivateKey      *rsa.PrivateKey
	RSAPublicKey       *rsa.PublicKey
	PaystackSecretKey  string
	PaystackBaseURL    string
	SendGridAPIKey     string
	SendGridFromEmail  string
	SendGridSandbox    bool
	StaticDir          string
	SeedAdminEmail     string
	SeedAdminPassword  string
}

// LoadConfig reads the environment (optionally seeded from a .env file)
// and returns a *Config. Missing required values are fatal.
func LoadConfig() *Config {
	// .env is a local-dev convenience; in deployment the vars come from
	// the environment directly.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on environment")
	}

	cfg := &Config{
		AppName:            getEnvOr("APP_NAME", "hunt"),
		AppPort:            mustGetEnv("APP_PORT"),
		AppURL:             mustGetEnv("APP_URL"),
		FrontendURL:        mustGetEnv("FRONTEND_URL"),
		DBUrl:              mustGetEnv("DB_URL"),
		TokenExpiry:        constants.DefaultTokenExpiry,
		RefreshTokenExpiry: constants.DefaultRefreshTokenExpiry,
		PaystackSecretKey:  mustGetEnv("PAYSTACK_SECRET_KEY"),
		PaystackBaseURL:    os.Getenv("PAYSTACK_BASE_URL"),
		SendGridAPIKey:     mustGetEnv("SENDGRID_API_KEY"),
		SendGridFromEmail:  mustGetEnv("SENDGRID_FROM_EMAIL"),
		SendGridSandbox:    os.Getenv("SENDGRID_SANDBOX_MODE") == "true",
		StaticDir:          getEnvOr("STATIC_DIR", "./static"),
		SeedAdminEmail:     os.Getenv("SEED_ADMIN_EMAIL"),
		SeedAdminPassword:  os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	cfg.RSAPrivateKey = loadRSAPrivateKey("RSA_PRIVATE_KEY_BASE64")
	cfg.RSAPublicKey = loadRSAPublicKey("RSA_PUBLIC_KEY_BASE64")

	return cfg
}

func mustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		utils.Logger.Fatalf("%s env var is missing", key)
	}
	return v
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadRSAPrivateKey(key string) *rsa.PrivateKey {
	keyPEM := decodeBase64Env(key)
	priv, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}
	return priv
}

func loadRSAPublicKey(key string) *rsa.PublicKey {
	keyPEM := decodeBase64Env(key)
	pub, err := jwt.ParseRSAPublicKeyFromPEM(keyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}
	return pub
}

func decodeBase64Env(key string) []byte {
	encoded := mustGetEnv(key)
	keyPEM, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("Failed to decode %s from base64", key)
	}
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		utils.Logger.Fatalf("Failed to decode PEM block for %s", key)
	}
	return keyPEM
}
