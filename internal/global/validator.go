package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate là validator dùng chung để xác thực DTO
var Validate *validator.Validate

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("user_role", validateUserRole)
}

// validateNoXSS kiểm tra XSS trong các field chuỗi nhập từ client
func validateNoXSS(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"<iframe",
		"<object",
		"<embed",
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateUserRole kiểm tra vai trò người dùng thuộc tập hợp lệ.
// Tập vai trò chuẩn của hệ thống: admin, bodega, seller.
func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "admin", "bodega", "seller":
		return true
	}
	return false
}
