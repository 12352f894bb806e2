// File: cmd/service/service.go
// @title        FindMyStuff API
// @version      1.0
// @description  失物招領平台的後端 API 文件
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"find-my-stuff/internal/cache"
	"find-my-stuff/internal/database"
	"find-my-stuff/internal/router"
	"find-my-stuff/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "find-my-stuff/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newMailer       = func(host string, port int, username, password, from string) service.Mailer {
		return &service.SMTPMailer{Host: host, Port: port, Username: username, Password: password, From: from}
	}
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return fmt.Errorf("無效的 REDIS_DB: %v", err)
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	if os.Getenv("SESSION_SECRET") == "" {
		return fmt.Errorf("環境變數 SESSION_SECRET 未設定")
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		return fmt.Errorf("環境變數 SMTP_HOST 未設定")
	}
	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 {
			return fmt.Errorf("無效的 SMTP_PORT: %v", err)
		}
		smtpPort = p
	}
	smtpFrom := os.Getenv("SMTP_FROM")
	if smtpFrom == "" {
		return fmt.Errorf("環境變數 SMTP_FROM 未設定")
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	mailer := newMailer(smtpHost, smtpPort, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), smtpFrom)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, mailer)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":8080")
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
