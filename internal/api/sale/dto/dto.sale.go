// Package saledto chứa các DTO đầu vào cho domain bán hàng.
package saledto

// SaleItemInput một dòng hàng trong yêu cầu chốt đơn
type SaleItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// SaleCreateInput đầu vào chốt đơn bán hàng.
// Tên sản phẩm, đơn giá và tổng tiền được tính lại phía server,
// không tin dữ liệu client gửi lên.
type SaleCreateInput struct {
	Items []SaleItemInput `json:"items" validate:"required,dive"`
}
