package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
)

// SystemHandler xử lý các endpoint hệ thống (health check)
type SystemHandler struct{}

// NewSystemHandler tạo mới SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{}, nil
}

// HandleHealth kiểm tra trạng thái server và kết nối MongoDB
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	dbStatus := "ok"
	if global.MongoDB_Session != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := global.MongoDB_Session.Ping(ctx, nil); err != nil {
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "not initialized"
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UnixMilli(),
	})
}
