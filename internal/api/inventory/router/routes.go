// Package router đăng ký các route thuộc domain inventory: phiếu nhập kho.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inventoryhdl "github.com/paulaperez14/hardventory/internal/api/inventory/handler"
	apirouter "github.com/paulaperez14/hardventory/internal/api/router"
)

// Register đăng ký các route phiếu nhập kho lên v1.
// Dùng AppendOnlyConfig: phiếu nhập là chứng từ bất biến, không có update/delete.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	receiptHandler, err := inventoryhdl.NewGoodsReceiptHandler()
	if err != nil {
		return fmt.Errorf("failed to create goods receipt handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/goods-receipt", receiptHandler, apirouter.AppendOnlyConfig, "GoodsReceipt")
	return nil
}
