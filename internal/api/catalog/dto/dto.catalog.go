// Package catalogdto chứa các DTO đầu vào cho domain catalog.
package catalogdto

// ProductCreateInput đầu vào tạo sản phẩm
type ProductCreateInput struct {
	Name              string  `json:"name" validate:"required,no_xss"`
	Description       string  `json:"description" validate:"omitempty,no_xss"`
	Specifications    string  `json:"specifications" validate:"omitempty,no_xss"`
	Price             float64 `json:"price" validate:"required,gt=0"`
	CategoryID        string  `json:"categoryId" validate:"required"`
	SupplierID        string  `json:"supplierId"`
	Quantity          int64   `json:"quantity" validate:"gte=0"`
	LowStockThreshold *int64  `json:"lowStockThreshold" validate:"omitempty,gte=0"` // nil → dùng ngưỡng mặc định
	ImageURL          string  `json:"imageUrl" validate:"omitempty,url"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm.
// Chỉ các field khác zero được đưa vào update.
type ProductUpdateInput struct {
	Name              string   `json:"name" validate:"omitempty,no_xss"`
	Description       *string  `json:"description" validate:"omitempty,no_xss"`
	Specifications    *string  `json:"specifications" validate:"omitempty,no_xss"`
	Price             *float64 `json:"price" validate:"omitempty,gt=0"`
	CategoryID        string   `json:"categoryId"`
	SupplierID        string   `json:"supplierId"`
	LowStockThreshold *int64   `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	ImageURL          *string  `json:"imageUrl" validate:"omitempty,url"`
}

// CategoryCreateInput đầu vào tạo danh mục
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục
type CategoryUpdateInput struct {
	Name        string  `json:"name" validate:"omitempty,no_xss"`
	Description *string `json:"description" validate:"omitempty,no_xss"`
}

// SupplierCreateInput đầu vào tạo nhà cung cấp
type SupplierCreateInput struct {
	Name         string `json:"name" validate:"required,no_xss"`
	ContactName  string `json:"contactName" validate:"omitempty,no_xss"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

// SupplierUpdateInput đầu vào cập nhật nhà cung cấp
type SupplierUpdateInput struct {
	Name         string  `json:"name" validate:"omitempty,no_xss"`
	ContactName  *string `json:"contactName" validate:"omitempty,no_xss"`
	ContactEmail *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
}
