// Package reporthdl xử lý các request báo cáo.
package reporthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	reportsvc "github.com/paulaperez14/hardventory/internal/api/report/service"
	"github.com/paulaperez14/hardventory/internal/common"
)

// ReportHandler xử lý các request báo cáo bán hàng
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// HandleSalesReport trả về báo cáo bán hàng trong khoảng ngày (query: from, to)
func (h *ReportHandler) HandleSalesReport(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		report, err := h.reportService.SalesByDateRange(c.Context(), c.Query("from"), c.Query("to"))
		basehdl.HandleResponse(c, report, err)
		return nil
	})
}

// HandleSalesReportPDF xuất báo cáo bán hàng thành file PDF
func (h *ReportHandler) HandleSalesReportPDF(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		report, err := h.reportService.SalesByDateRange(c.Context(), c.Query("from"), c.Query("to"))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		pdfBytes, err := reportsvc.RenderSalesPDF(report)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				"Lỗi khi tạo file PDF báo cáo",
				common.StatusInternalServerError,
				err.Error(),
			))
			return nil
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="reporte-ventas-%s-%s.pdf"`, report.From, report.To))
		return c.Status(common.StatusOK).Send(pdfBytes)
	})
}
