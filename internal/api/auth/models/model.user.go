// Package authmodels chứa các model cho domain xác thực và phân quyền.
package authmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role đại diện cho vai trò của người dùng trong hệ thống.
// Hệ thống dùng 3 vai trò cố định: admin (toàn quyền), bodega (quản lý kho),
// seller (bán hàng tại điểm bán).
type Role string

const (
	RoleAdmin  Role = "admin"  // Quản trị viên, toàn quyền
	RoleBodega Role = "bodega" // Quản lý kho: sản phẩm, danh mục, nhà cung cấp, phiếu nhập
	RoleSeller Role = "seller" // Nhân viên bán hàng: điểm bán, giỏ hàng
)

// ValidRoles danh sách các vai trò hợp lệ
var ValidRoles = []Role{RoleAdmin, RoleBodega, RoleSeller}

// IsValid kiểm tra vai trò có hợp lệ không
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles {
		if r == valid {
			return true
		}
	}
	return false
}

// Token đại diện cho thông tin một token đăng nhập theo thiết bị
type Token struct {
	Hwid     string `json:"hwid" bson:"hwid"`         // ID thiết bị đăng nhập
	JwtToken string `json:"jwtToken" bson:"jwtToken"` // JWT token tương ứng với thiết bị
	RoleID   string `json:"roleId" bson:"roleId"`     // Vai trò tại thời điểm đăng nhập
}

// User đại diện cho thông tin người dùng trong hệ thống.
// Danh tính được xác thực qua Firebase, phiên làm việc quản lý bằng JWT nội bộ.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirebaseUID string             `json:"firebaseUid" bson:"firebaseUid" index:"unique"`        // UID từ Firebase Authentication
	Email       string             `json:"email" bson:"email,omitempty" index:"unique,sparse"`   // Email đăng nhập
	Name        string             `json:"name" bson:"name,omitempty"`                           // Tên hiển thị
	PhotoURL    string             `json:"photoUrl" bson:"photoUrl,omitempty"`                   // Ảnh đại diện (từ Firebase)
	Role        Role               `json:"role" bson:"role" index:"single"`                      // Vai trò: admin | bodega | seller
	Token       string             `json:"-" bson:"token,omitempty"`                             // Token mới nhất (cập nhật mỗi lần login)
	Tokens      []Token            `json:"-" bson:"tokens,omitempty"`                            // Danh sách token theo thiết bị
	IsBlock     bool               `json:"isBlock" bson:"isBlock"`                               // Trạng thái khóa tài khoản
	BlockNote   string             `json:"blockNote" bson:"blockNote,omitempty"`                 // Lý do khóa
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`                           // Thời gian tạo (Unix milli)
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`                           // Thời gian cập nhật (Unix milli)
}
