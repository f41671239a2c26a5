// Package inventorydto chứa các DTO đầu vào cho domain inventory.
package inventorydto

// GoodsReceiptCreateInput đầu vào đăng ký phiếu nhập kho
type GoodsReceiptCreateInput struct {
	ProductID        string `json:"productId" validate:"required"`
	SupplierID       string `json:"supplierId"`
	QuantityReceived int64  `json:"quantityReceived" validate:"required,gt=0"`
	InvoiceNumber    string `json:"invoiceNumber" validate:"omitempty,no_xss"`
	ReceiptDate      int64  `json:"receiptDate"` // Unix milli, 0 → dùng thời điểm hiện tại
}
