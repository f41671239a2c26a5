// Package router đăng ký các route thuộc domain báo cáo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/paulaperez14/hardventory/internal/api/middleware"
	reporthdl "github.com/paulaperez14/hardventory/internal/api/report/handler"
	apirouter "github.com/paulaperez14/hardventory/internal/api/router"
)

// Register đăng ký các route báo cáo lên v1 (chỉ admin có permission Report.Read).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %w", err)
	}
	reportMiddleware := middleware.AuthMiddleware("Report.Read")
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/sales", []fiber.Handler{reportMiddleware}, reportHandler.HandleSalesReport)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/sales/pdf", []fiber.Handler{reportMiddleware}, reportHandler.HandleSalesReportPDF)
	return nil
}
