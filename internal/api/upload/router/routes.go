// Package router đăng ký route upload ảnh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/paulaperez14/hardventory/internal/api/middleware"
	apirouter "github.com/paulaperez14/hardventory/internal/api/router"
	uploadhdl "github.com/paulaperez14/hardventory/internal/api/upload/handler"
)

// Register đăng ký route presign upload lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload handler: %w", err)
	}
	presignMiddleware := middleware.AuthMiddleware("Upload.Insert")
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/presign", []fiber.Handler{presignMiddleware}, uploadHandler.HandlePresign)
	return nil
}
