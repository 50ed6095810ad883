package app

import (
	"os"
	"strconv"
	"time"

	"neb-hris/internal/mailer"
	"neb-hris/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config is the externalized configuration surface, read from the
// environment once at startup.
type Config struct {
	CompanyName       string
	CompanyLocation   string
	LogoPath          string
	PayslipBaseFolder string
	UploadDir         string
	CORSAllowedOrigin string
	SMTP              mailer.Config
}

func LoadConfig() Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	return Config{
		CompanyName:       getEnv("COMPANY_NAME", "Nebulytix Technologies"),
		CompanyLocation:   getEnv("COMPANY_LOCATION", "PSR Prime Towers, Gachibowli, Hyderabad 500032"),
		LogoPath:          os.Getenv("COMPANY_LOGO_PATH"),
		PayslipBaseFolder: getEnv("PAYSLIP_BASE_FOLDER", "storage/payslips"),
		UploadDir:         getEnv("UPLOAD_DIR", "storage/uploads"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		SMTP: mailer.Config{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "no-reply@nebulytix.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func BuildApp(router *gin.Engine) error {
	cfg := LoadConfig()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		zap.L().Warn("redis unavailable, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		zap.L().Info("redis connection established")
	}

	allowAll := cfg.CORSAllowedOrigin == "*"
	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Client-Type", "X-Request-ID"},
		AllowCredentials: !allowAll,
		MaxAge:           12 * time.Hour,
	}
	if !allowAll {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowedOrigin}
	}
	router.Use(cors.New(corsCfg))

	return registerModules(router, sqlDB, gormDB, redisClient, cfg)
}
