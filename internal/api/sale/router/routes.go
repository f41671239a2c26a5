// Package router đăng ký các route thuộc domain bán hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	salehdl "github.com/paulaperez14/hardventory/internal/api/sale/handler"
	apirouter "github.com/paulaperez14/hardventory/internal/api/router"
)

// Register đăng ký các route đơn bán hàng lên v1.
// Dùng AppendOnlyConfig: đơn đã chốt là chứng từ bất biến, không có update/delete.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	saleHandler, err := salehdl.NewSaleHandler()
	if err != nil {
		return fmt.Errorf("failed to create sale handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/sale", saleHandler, apirouter.AppendOnlyConfig, "Sale")
	return nil
}
