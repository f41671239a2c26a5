// Package middleware chứa các middleware xác thực và phân quyền cho Fiber.
package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[authmodels.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = newAuthManager()
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() *AuthManager {
	userCol, exists := global.RegistryCollections.Get(global.ColNames.Users)
	if !exists {
		panic("collection " + global.ColNames.Users + " chưa được đăng ký trong RegistryCollections")
	}
	return &AuthManager{
		UserCRUD: basesvc.NewBaseServiceMongo[authmodels.User](userCol),
		Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
	}
}

// findUserByToken tìm user theo token, ưu tiên cache rồi tới database.
// Token được tìm trong field "token" (token mới nhất) trước, sau đó trong
// array "tokens" (tokens theo thiết bị).
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (authmodels.User, error) {
	cacheKey := "user_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		if user, ok := cached.(authmodels.User); ok {
			return user, nil
		}
	}

	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			return authmodels.User{}, common.ErrTokenInvalid
		}
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateToken xóa cache của một token (gọi khi logout hoặc block user)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("user_token:" + token)
}

// AuthMiddleware middleware xác thực cho Fiber.
// requirePermission rỗng nghĩa là chỉ cần đăng nhập, không cần permission cụ thể.
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		token := parts[1]

		// Tìm user có token
		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("[AUTH] Token not found in database")
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		c.Locals("user_role", user.Role)

		// Nếu không yêu cầu permission cụ thể, chỉ cần xác thực là đủ
		if requirePermission == "" {
			return c.Next()
		}

		// Kiểm tra vai trò của user có permission cần thiết không (bảng phân quyền tĩnh)
		if !authmodels.RoleHasPermission(user.Role, requirePermission) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"user_email":          user.Email,
				"user_role":           user.Role,
				"required_permission": requirePermission,
				"path":                c.Path(),
			}).Warn("[AUTH] User does not have required permission")
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthRole,
				"Không có quyền truy cập. Vui lòng liên hệ quản trị viên.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		c.Locals("permission_name", requirePermission)
		return c.Next()
	}
}
