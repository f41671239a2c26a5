package salemodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	"github.com/paulaperez14/hardventory/internal/common"
)

func sampleProduct(name string, price float64, stock int64) catalogmodels.Product {
	return catalogmodels.Product{
		ID:       primitive.NewObjectID(),
		Name:     name,
		Price:    price,
		Quantity: stock,
	}
}

func TestCartAddItem(t *testing.T) {
	t.Run("Thêm sản phẩm mới tạo dòng hàng với subtotal đúng", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Martillo", 25000, 10)

		err := cart.AddItem(p, 2)

		assert.NoError(t, err)
		items := cart.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, p.ID, items[0].ProductID)
		assert.Equal(t, "Martillo", items[0].ProductName)
		assert.Equal(t, int64(2), items[0].Quantity)
		assert.Equal(t, 25000.0, items[0].UnitPrice)
		assert.Equal(t, 50000.0, items[0].Subtotal)
	})

	t.Run("Thêm lần hai cùng sản phẩm gộp dòng và tính lại subtotal", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Tornillo", 500, 100)

		assert.NoError(t, cart.AddItem(p, 3))
		assert.NoError(t, cart.AddItem(p, 4))

		items := cart.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, int64(7), items[0].Quantity)
		assert.Equal(t, 3500.0, items[0].Subtotal)
	})

	t.Run("Số lượng 0 hoặc âm bị từ chối", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Taladro", 150000, 5)

		assert.ErrorIs(t, cart.AddItem(p, 0), common.ErrInvalidQuantity)
		assert.ErrorIs(t, cart.AddItem(p, -1), common.ErrInvalidQuantity)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Vượt tồn kho bị từ chối ngay từ dòng đầu", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Sierra", 80000, 3)

		assert.ErrorIs(t, cart.AddItem(p, 4), common.ErrInsufficientStock)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Số lượng gộp vượt tồn kho bị từ chối, giỏ giữ nguyên", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Clavo", 100, 5)

		assert.NoError(t, cart.AddItem(p, 3))
		assert.ErrorIs(t, cart.AddItem(p, 3), common.ErrInsufficientStock)

		items := cart.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].Quantity)
		assert.Equal(t, 300.0, items[0].Subtotal)
	})

	t.Run("Mua đúng bằng tồn kho được chấp nhận", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Llave", 12000, 2)

		assert.NoError(t, cart.AddItem(p, 2))
		assert.Equal(t, int64(2), cart.Items()[0].Quantity)
	})
}

func TestCartUpdateItemQuantity(t *testing.T) {
	t.Run("Cập nhật số lượng tính lại subtotal", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Destornillador", 8000, 20)
		assert.NoError(t, cart.AddItem(p, 2))

		err := cart.UpdateItemQuantity(p.ID, 5, p.Quantity)

		assert.NoError(t, err)
		items := cart.Items()
		assert.Equal(t, int64(5), items[0].Quantity)
		assert.Equal(t, 40000.0, items[0].Subtotal)
	})

	t.Run("Số lượng 0 hoặc âm xóa dòng hàng", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Cinta", 3000, 10)
		assert.NoError(t, cart.AddItem(p, 2))

		assert.NoError(t, cart.UpdateItemQuantity(p.ID, 0, p.Quantity))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Vượt tồn kho bị từ chối, dòng giữ nguyên", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Pintura", 45000, 4)
		assert.NoError(t, cart.AddItem(p, 2))

		err := cart.UpdateItemQuantity(p.ID, 5, p.Quantity)

		assert.ErrorIs(t, err, common.ErrInsufficientStock)
		items := cart.Items()
		assert.Equal(t, int64(2), items[0].Quantity)
		assert.Equal(t, 90000.0, items[0].Subtotal)
	})

	t.Run("Cập nhật sản phẩm không có trong giỏ trả về lỗi", func(t *testing.T) {
		cart := NewCart()
		err := cart.UpdateItemQuantity(primitive.NewObjectID(), 1, 10)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestCartRemoveItem(t *testing.T) {
	t.Run("Xóa dòng hàng vô điều kiện", func(t *testing.T) {
		cart := NewCart()
		p1 := sampleProduct("Brocha", 5000, 10)
		p2 := sampleProduct("Rodillo", 9000, 10)
		assert.NoError(t, cart.AddItem(p1, 1))
		assert.NoError(t, cart.AddItem(p2, 1))

		cart.RemoveItem(p1.ID)

		items := cart.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, p2.ID, items[0].ProductID)
	})

	t.Run("Xóa sản phẩm không tồn tại không ảnh hưởng giỏ", func(t *testing.T) {
		cart := NewCart()
		p := sampleProduct("Lija", 1000, 10)
		assert.NoError(t, cart.AddItem(p, 1))

		cart.RemoveItem(primitive.NewObjectID())

		assert.Len(t, cart.Items(), 1)
	})
}

func TestCartGrandTotal(t *testing.T) {
	t.Run("Tổng tiền là tổng các subtotal", func(t *testing.T) {
		cart := NewCart()
		assert.NoError(t, cart.AddItem(sampleProduct("A", 1000, 10), 2))  // 2000
		assert.NoError(t, cart.AddItem(sampleProduct("B", 2500, 10), 3))  // 7500
		assert.NoError(t, cart.AddItem(sampleProduct("C", 10000, 10), 1)) // 10000

		assert.Equal(t, 19500.0, cart.GrandTotal())
	})

	t.Run("Giỏ rỗng tổng tiền bằng 0", func(t *testing.T) {
		assert.Equal(t, 0.0, NewCart().GrandTotal())
	})

	t.Run("Tổng tiền được tính lại sau khi cập nhật và xóa", func(t *testing.T) {
		cart := NewCart()
		p1 := sampleProduct("A", 1000, 10)
		p2 := sampleProduct("B", 2000, 10)
		assert.NoError(t, cart.AddItem(p1, 2))
		assert.NoError(t, cart.AddItem(p2, 2))
		assert.Equal(t, 6000.0, cart.GrandTotal())

		assert.NoError(t, cart.UpdateItemQuantity(p1.ID, 5, p1.Quantity))
		assert.Equal(t, 9000.0, cart.GrandTotal())

		cart.RemoveItem(p2.ID)
		assert.Equal(t, 5000.0, cart.GrandTotal())
	})
}
