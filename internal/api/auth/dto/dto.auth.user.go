// Package authdto chứa các DTO đầu vào cho domain xác thực.
package authdto

// FirebaseLoginInput đầu vào đăng nhập bằng Firebase ID token.
type FirebaseLoginInput struct {
	IDToken string `json:"idToken" validate:"required"`
	Hwid    string `json:"hwid" validate:"required"`
}

// UserLogoutInput đầu vào đăng xuất người dùng.
type UserLogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// UserCreateInput đầu vào tạo người dùng (admin tạo trước tài khoản theo email).
type UserCreateInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" validate:"required,user_role"`
}

// UserUpdateInput đầu vào cập nhật người dùng (đổi vai trò, khóa/mở khóa).
type UserUpdateInput struct {
	Name string `json:"name"`
	Role string `json:"role" validate:"omitempty,user_role"`
}

// UserChangeInfoInput đầu vào thay đổi thông tin profile của chính mình.
type UserChangeInfoInput struct {
	Name string `json:"name" validate:"required"`
}

// BlockUserInput đầu vào khóa người dùng.
type BlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"required"`
}

// UnBlockUserInput đầu vào mở khóa người dùng.
type UnBlockUserInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SetRoleInput đầu vào gán vai trò cho người dùng.
type SetRoleInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,user_role"`
}
