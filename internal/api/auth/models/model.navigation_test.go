package authmodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func navTitles(items []NavItem) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles
}

func TestFilterNavByRole(t *testing.T) {
	t.Run("Admin thấy tất cả các mục điều hướng", func(t *testing.T) {
		items := FilterNavByRole(RoleAdmin)
		assert.Len(t, items, len(NavItems))
	})

	t.Run("Bodega thấy dashboard và nhóm quản lý kho, không thấy bán hàng/người dùng/báo cáo", func(t *testing.T) {
		items := FilterNavByRole(RoleBodega)
		titles := navTitles(items)
		assert.Equal(t, []string{"Dashboard", "Inventario"}, titles)

		var inventory NavItem
		for _, item := range items {
			if item.Title == "Inventario" {
				inventory = item
			}
		}
		subTitles := navTitles(inventory.SubItems)
		assert.Equal(t, []string{"Productos", "Categorías", "Proveedores", "Entradas de Mercancía"}, subTitles)
	})

	t.Run("Seller chỉ thấy dashboard và điểm bán", func(t *testing.T) {
		titles := navTitles(FilterNavByRole(RoleSeller))
		assert.Equal(t, []string{"Dashboard", "Punto de Venta"}, titles)
	})

	t.Run("Giữ nguyên thứ tự khai báo", func(t *testing.T) {
		items := FilterNavByRole(RoleAdmin)
		for i := 1; i < len(items); i++ {
			assert.Equal(t, NavItems[i].Title, items[i].Title)
		}
	})

	t.Run("Vai trò không hợp lệ không thấy mục nào", func(t *testing.T) {
		assert.Empty(t, FilterNavByRole(Role("ghost")))
	})

	t.Run("Vai trò rỗng không thấy mục nào", func(t *testing.T) {
		assert.Empty(t, FilterNavByRole(Role("")))
	})
}

func TestRoleHasPermission(t *testing.T) {
	t.Run("Admin có mọi permission", func(t *testing.T) {
		assert.True(t, RoleHasPermission(RoleAdmin, "User.Delete"))
		assert.True(t, RoleHasPermission(RoleAdmin, "Sale.Insert"))
		assert.True(t, RoleHasPermission(RoleAdmin, "Anything.Whatever"))
	})

	t.Run("Bodega quản lý được catalog và phiếu nhập nhưng không bán hàng", func(t *testing.T) {
		assert.True(t, RoleHasPermission(RoleBodega, "Product.Insert"))
		assert.True(t, RoleHasPermission(RoleBodega, "Supplier.Delete"))
		assert.True(t, RoleHasPermission(RoleBodega, "GoodsReceipt.Insert"))
		assert.False(t, RoleHasPermission(RoleBodega, "Sale.Insert"))
		assert.False(t, RoleHasPermission(RoleBodega, "User.Read"))
	})

	t.Run("Seller bán hàng được nhưng không sửa catalog", func(t *testing.T) {
		assert.True(t, RoleHasPermission(RoleSeller, "Sale.Insert"))
		assert.True(t, RoleHasPermission(RoleSeller, "Product.Read"))
		assert.False(t, RoleHasPermission(RoleSeller, "Product.Update"))
		assert.False(t, RoleHasPermission(RoleSeller, "GoodsReceipt.Insert"))
	})

	t.Run("Vai trò không hợp lệ không có permission nào", func(t *testing.T) {
		assert.False(t, RoleHasPermission(Role("ghost"), "Product.Read"))
	})
}

func TestRoleIsValid(t *testing.T) {
	t.Run("Các vai trò chuẩn hợp lệ", func(t *testing.T) {
		assert.True(t, RoleAdmin.IsValid())
		assert.True(t, RoleBodega.IsValid())
		assert.True(t, RoleSeller.IsValid())
	})

	t.Run("Vai trò lạ không hợp lệ", func(t *testing.T) {
		assert.False(t, Role("manager").IsValid())
		assert.False(t, Role("").IsValid())
	})
}
