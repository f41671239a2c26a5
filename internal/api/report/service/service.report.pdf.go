package reportsvc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderSalesPDF xuất báo cáo bán hàng thành PDF dạng bảng.
// PDF được trả về dưới dạng bytes để stream cho client, không lưu lại.
func RenderSalesPDF(report *SalesReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reporte de Ventas", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Reporte de Ventas")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s - %s", report.From, report.To))
	pdf.Ln(10)

	// Header bảng
	colWidths := []float64{40, 45, 25, 40}
	headers := []string{"Fecha", "Vendedor", "Articulos", "Total"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, sale := range report.Sales {
		saleDate := time.UnixMilli(sale.SaleDate).Format("2006-01-02 15:04")
		var itemCount int64
		for _, item := range sale.Items {
			itemCount += item.Quantity
		}
		pdf.CellFormat(colWidths[0], 7, saleDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 7, sale.SellerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 7, fmt.Sprintf("%d", itemCount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[3], 7, fmt.Sprintf("%.2f", sale.GrandTotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Dòng tổng kết
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colWidths[0]+colWidths[1], 8, fmt.Sprintf("Total (%d ventas)", report.SaleCount), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%d", report.ItemCount), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%.2f", report.GrandTotal), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
