// Package inventorymodels chứa model phiếu nhập kho.
package inventorymodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoodsReceipt đại diện cho một phiếu nhập kho.
// Phiếu là chứng từ bất biến: không có route update/delete.
// productName/supplierName/userName được denormalize để đọc nhanh,
// chấp nhận tên cũ khi bản ghi gốc bị đổi tên.
type GoodsReceipt struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID        primitive.ObjectID `json:"productId" bson:"productId" index:"single"` // Sản phẩm được nhập
	ProductName      string             `json:"productName" bson:"productName"`            // Tên sản phẩm tại thời điểm nhập
	SupplierID       primitive.ObjectID `json:"supplierId" bson:"supplierId,omitempty"`    // Nhà cung cấp (tùy chọn)
	SupplierName     string             `json:"supplierName" bson:"supplierName,omitempty"`
	QuantityReceived int64              `json:"quantityReceived" bson:"quantityReceived"` // Số lượng nhập (> 0)
	InvoiceNumber    string             `json:"invoiceNumber" bson:"invoiceNumber,omitempty"`
	ReceiptDate      int64              `json:"receiptDate" bson:"receiptDate" index:"single"` // Ngày chứng từ (Unix milli)
	RecordedAt       int64              `json:"recordedAt" bson:"recordedAt"`                  // Thời điểm ghi nhận vào hệ thống
	UserID           primitive.ObjectID `json:"userId" bson:"userId,omitempty"`                // Người ghi nhận
	UserName         string             `json:"userName" bson:"userName,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
