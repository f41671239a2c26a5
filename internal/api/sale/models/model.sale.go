// Package salemodels chứa model đơn bán hàng và giỏ hàng.
package salemodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem là một dòng hàng trong giỏ / trong đơn bán.
// Snapshot tên và đơn giá tại thời điểm thêm vào giỏ.
type CartItem struct {
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	UnitPrice   float64            `json:"unitPrice" bson:"unitPrice"`
	Subtotal    float64            `json:"subtotal" bson:"subtotal"` // quantity × unitPrice
}

// Sale đại diện cho một đơn bán hàng đã chốt.
// Đơn là chứng từ bất biến: không có route update/delete.
type Sale struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Items      []CartItem         `json:"items" bson:"items"`
	GrandTotal float64            `json:"grandTotal" bson:"grandTotal"`
	SaleDate   int64              `json:"saleDate" bson:"saleDate" index:"single"` // Thời điểm chốt đơn (Unix milli)
	SellerID   primitive.ObjectID `json:"sellerId" bson:"sellerId,omitempty"`      // Người bán
	SellerName string             `json:"sellerName" bson:"sellerName,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
