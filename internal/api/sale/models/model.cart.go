package salemodels

import (
	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	"github.com/paulaperez14/hardventory/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart là giỏ hàng thuần trong bộ nhớ cho màn hình điểm bán.
// Không giữ chỗ tồn kho: các kiểm tra so sánh với snapshot sản phẩm
// được truyền vào, tồn kho thực chỉ được chốt trong Checkout.
type Cart struct {
	items []CartItem
}

// NewCart tạo giỏ hàng rỗng
func NewCart() *Cart {
	return &Cart{items: make([]CartItem, 0)}
}

// Items trả về bản sao danh sách dòng hàng hiện tại
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem thêm sản phẩm vào giỏ. Nếu sản phẩm đã có trong giỏ thì gộp dòng
// (cộng số lượng, tính lại subtotal). Số lượng gộp vượt tồn kho thì từ chối,
// giỏ giữ nguyên.
func (c *Cart) AddItem(product catalogmodels.Product, quantity int64) error {
	if quantity <= 0 {
		return common.ErrInvalidQuantity
	}

	for i, item := range c.items {
		if item.ProductID == product.ID {
			merged := item.Quantity + quantity
			if merged > product.Quantity {
				return common.ErrInsufficientStock
			}
			c.items[i].Quantity = merged
			c.items[i].Subtotal = float64(merged) * c.items[i].UnitPrice
			return nil
		}
	}

	if quantity > product.Quantity {
		return common.ErrInsufficientStock
	}
	c.items = append(c.items, CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		Subtotal:    float64(quantity) * product.Price,
	})
	return nil
}

// UpdateItemQuantity đặt lại số lượng một dòng hàng.
// quantity <= 0 xóa dòng; quantity vượt tồn kho thì từ chối, giỏ giữ nguyên.
func (c *Cart) UpdateItemQuantity(productID primitive.ObjectID, quantity int64, stock int64) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	if quantity > stock {
		return common.ErrInsufficientStock
	}
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items[i].Quantity = quantity
			c.items[i].Subtotal = float64(quantity) * item.UnitPrice
			return nil
		}
	}
	return common.ErrNotFound
}

// RemoveItem xóa dòng hàng khỏi giỏ vô điều kiện
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// GrandTotal tính lại tổng tiền từ các subtotal mỗi lần gọi
func (c *Cart) GrandTotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal
	}
	return total
}

// IsEmpty kiểm tra giỏ có rỗng không
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear xóa toàn bộ giỏ hàng
func (c *Cart) Clear() {
	c.items = c.items[:0]
}
