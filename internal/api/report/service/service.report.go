// Package reportsvc - service báo cáo bán hàng.
package reportsvc

import (
	"context"
	"fmt"
	"time"

	salemodels "github.com/paulaperez14/hardventory/internal/api/sale/models"
	salesvc "github.com/paulaperez14/hardventory/internal/api/sale/service"
	"github.com/paulaperez14/hardventory/internal/common"
)

// dateLayout định dạng ngày trong query string của báo cáo
const dateLayout = "2006-01-02"

// SalesReport kết quả báo cáo bán hàng trong một khoảng ngày
type SalesReport struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	SaleCount  int               `json:"saleCount"`
	ItemCount  int64             `json:"itemCount"`
	GrandTotal float64           `json:"grandTotal"`
	Sales      []salemodels.Sale `json:"sales"`
}

// ReportService là cấu trúc chứa các phương thức báo cáo
type ReportService struct {
	saleService *salesvc.SaleService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	saleService, err := salesvc.NewSaleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sale service: %v", err)
	}
	return &ReportService{saleService: saleService}, nil
}

// ParseDateRange chuyển cặp ngày "YYYY-MM-DD" thành khoảng Unix milli.
// Ngày kết thúc được nới tới 23:59:59.999 để bao trọn cả ngày đó.
func ParseDateRange(fromStr, toStr string) (int64, int64, error) {
	if fromStr == "" || toStr == "" {
		return 0, 0, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số from/to (định dạng YYYY-MM-DD)", common.StatusBadRequest, nil)
	}

	from, err := time.Parse(dateLayout, fromStr)
	if err != nil {
		return 0, 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Tham số from '%s' không đúng định dạng YYYY-MM-DD", fromStr), common.StatusBadRequest, nil)
	}
	to, err := time.Parse(dateLayout, toStr)
	if err != nil {
		return 0, 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Tham số to '%s' không đúng định dạng YYYY-MM-DD", toStr), common.StatusBadRequest, nil)
	}
	if to.Before(from) {
		return 0, 0, common.NewError(common.ErrCodeValidationInput, "Ngày kết thúc phải không sớm hơn ngày bắt đầu", common.StatusBadRequest, nil)
	}

	// Nới ngày kết thúc tới cuối ngày (23:59:59.999)
	toEnd := to.Add(24*time.Hour - time.Millisecond)
	return from.UnixMilli(), toEnd.UnixMilli(), nil
}

// SalesByDateRange lập báo cáo bán hàng trong khoảng ngày [from, to]
func (s *ReportService) SalesByDateRange(ctx context.Context, fromStr, toStr string) (*SalesReport, error) {
	from, to, err := ParseDateRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleService.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		From:  fromStr,
		To:    toStr,
		Sales: sales,
	}
	for _, sale := range sales {
		report.SaleCount++
		report.GrandTotal += sale.GrandTotal
		for _, item := range sale.Items {
			report.ItemCount += item.Quantity
		}
	}
	return report, nil
}
