package authmodels

// NavItem đại diện cho một mục điều hướng của ứng dụng.
// Mỗi mục khai báo tường minh các vai trò được thấy nó.
type NavItem struct {
	Title        string    `json:"title"`              // Tiêu đề hiển thị
	Href         string    `json:"href"`               // Đường dẫn trang
	Icon         string    `json:"icon"`               // Tên icon phía frontend
	AllowedRoles []Role    `json:"allowedRoles"`       // Các vai trò được phép truy cập
	SubItems     []NavItem `json:"subItems,omitempty"` // Các mục con (cũng được lọc theo vai trò)
}

// NavItems danh sách điều hướng đầy đủ của ứng dụng.
// Thứ tự ở đây cũng là thứ tự hiển thị trên sidebar.
var NavItems = []NavItem{
	{Title: "Dashboard", Href: "/dashboard", Icon: "LayoutDashboard", AllowedRoles: []Role{RoleAdmin, RoleBodega, RoleSeller}},
	{Title: "Punto de Venta", Href: "/dashboard/point-of-sale", Icon: "ShoppingCart", AllowedRoles: []Role{RoleAdmin, RoleSeller}},
	{Title: "Inventario", Href: "/dashboard/inventory", Icon: "Warehouse", AllowedRoles: []Role{RoleAdmin, RoleBodega}, SubItems: []NavItem{
		{Title: "Productos", Href: "/dashboard/products", Icon: "Package", AllowedRoles: []Role{RoleAdmin, RoleBodega}},
		{Title: "Categorías", Href: "/dashboard/categories", Icon: "Tags", AllowedRoles: []Role{RoleAdmin, RoleBodega}},
		{Title: "Proveedores", Href: "/dashboard/suppliers", Icon: "Truck", AllowedRoles: []Role{RoleAdmin, RoleBodega}},
		{Title: "Entradas de Mercancía", Href: "/dashboard/goods-receipts", Icon: "PackagePlus", AllowedRoles: []Role{RoleAdmin, RoleBodega}},
	}},
	{Title: "Usuarios", Href: "/dashboard/users", Icon: "Users", AllowedRoles: []Role{RoleAdmin}},
	{Title: "Reportes", Href: "/dashboard/reports", Icon: "FileText", AllowedRoles: []Role{RoleAdmin}},
}

// rolePermissions ánh xạ vai trò sang tập permission tĩnh.
// Permission đặt tên theo dạng "<Collection>.<Operation>".
var rolePermissions = map[Role]map[string]bool{
	RoleAdmin: nil, // admin có toàn quyền, kiểm tra riêng trong RoleHasPermission
	RoleBodega: {
		"Product.Read":   true,
		"Product.Insert": true,
		"Product.Update": true,
		"Product.Delete": true,

		"Category.Read":   true,
		"Category.Insert": true,
		"Category.Update": true,
		"Category.Delete": true,

		"Supplier.Read":   true,
		"Supplier.Insert": true,
		"Supplier.Update": true,
		"Supplier.Delete": true,

		"GoodsReceipt.Read":   true,
		"GoodsReceipt.Insert": true,

		"Upload.Insert": true,
	},
	RoleSeller: {
		"Product.Read":  true,
		"Category.Read": true,

		"Sale.Read":   true,
		"Sale.Insert": true,
	},
}

// RoleHasPermission kiểm tra vai trò có permission được yêu cầu không.
// Admin luôn có mọi permission.
func RoleHasPermission(role Role, permission string) bool {
	if role == RoleAdmin {
		return true
	}
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[permission]
}

// FilterNavByRole trả về danh sách điều hướng mà vai trò được phép thấy,
// giữ nguyên thứ tự khai báo. Các mục con cũng được lọc đệ quy.
func FilterNavByRole(role Role) []NavItem {
	return filterNavItems(NavItems, role)
}

func filterNavItems(items []NavItem, role Role) []NavItem {
	filtered := make([]NavItem, 0, len(items))
	for _, item := range items {
		if !roleAllowed(item.AllowedRoles, role) {
			continue
		}
		item.SubItems = filterNavItems(item.SubItems, role)
		filtered = append(filtered, item)
	}
	return filtered
}

// roleAllowed kiểm tra vai trò có trong danh sách cho phép không.
// Vai trò rỗng hoặc không hợp lệ không thấy mục nào.
func roleAllowed(allowedRoles []Role, role Role) bool {
	if !role.IsValid() {
		return false
	}
	for _, allowed := range allowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}
