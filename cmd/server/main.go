package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (level, format, output)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// mainThread khởi tạo và chạy Fiber server trên main thread
func mainThread() {
	app := InitFiberApp()

	address := global.ServerConfig.Address
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server...")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	// Khởi tạo logger trước mọi thứ khác
	initLogger()

	// Khởi tạo các biến toàn cục (config, validator, Mongo, Firebase, S3)
	InitGlobal()

	// Đăng ký database và các collection vào registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định (seed admin)
	InitDefaultData()

	// Chạy Fiber server
	mainThread()
}
