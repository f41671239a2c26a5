// Package router đăng ký các route thuộc domain catalog: sản phẩm, danh mục, nhà cung cấp.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "github.com/paulaperez14/hardventory/internal/api/catalog/handler"
	"github.com/paulaperez14/hardventory/internal/api/middleware"
	apirouter "github.com/paulaperez14/hardventory/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig, "Product")
	lowStockMiddleware := middleware.AuthMiddleware("Product.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/low-stock", []fiber.Handler{lowStockMiddleware}, productHandler.HandleFindLowStock)

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig, "Category")

	supplierHandler, err := cataloghdl.NewSupplierHandler()
	if err != nil {
		return fmt.Errorf("failed to create supplier handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/supplier", supplierHandler, apirouter.ReadWriteConfig, "Supplier")

	return nil
}
