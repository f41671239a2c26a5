// Package catalogmodels chứa các model cho danh mục hàng hóa:
// sản phẩm, danh mục, nhà cung cấp.
package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultLowStockThreshold ngưỡng cảnh báo tồn kho thấp mặc định khi tạo sản phẩm
const DefaultLowStockThreshold int64 = 5

// Product đại diện cho một sản phẩm trong kho
type Product struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" index:"single"`                      // Tên sản phẩm
	Description       string             `json:"description" bson:"description,omitempty"`             // Mô tả
	Specifications    string             `json:"specifications" bson:"specifications,omitempty"`       // Thông số kỹ thuật
	Price             float64            `json:"price" bson:"price"`                                   // Giá bán
	CategoryID        primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single"`          // Danh mục
	SupplierID        primitive.ObjectID `json:"supplierId" bson:"supplierId,omitempty"`               // Nhà cung cấp (tùy chọn)
	Quantity          int64              `json:"quantity" bson:"quantity"`                             // Số lượng tồn kho (không âm)
	LowStockThreshold int64              `json:"lowStockThreshold" bson:"lowStockThreshold"`           // Ngưỡng cảnh báo tồn kho thấp
	ImageURL          string             `json:"imageUrl" bson:"imageUrl,omitempty"`                   // URL ảnh sản phẩm trên S3
	CreatedAt         int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsLowStock kiểm tra sản phẩm có đang dưới ngưỡng tồn kho thấp không.
// So sánh chặt: quantity == threshold thì CHƯA coi là thấp.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.LowStockThreshold
}

// Category đại diện cho một danh mục sản phẩm
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"` // Tên danh mục (duy nhất)
	Description string             `json:"description" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// Supplier đại diện cho một nhà cung cấp
type Supplier struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" index:"single"` // Tên nhà cung cấp
	ContactName  string             `json:"contactName" bson:"contactName,omitempty"`
	ContactEmail string             `json:"contactEmail" bson:"contactEmail,omitempty"`
	ContactPhone string             `json:"contactPhone" bson:"contactPhone,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
