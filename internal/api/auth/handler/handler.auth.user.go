// Package authhdl xử lý các request xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/paulaperez14/hardventory/internal/api/auth/dto"
	models "github.com/paulaperez14/hardventory/internal/api/auth/models"
	authsvc "github.com/paulaperez14/hardventory/internal/api/auth/service"
	basehdl "github.com/paulaperez14/hardventory/internal/api/base/handler"
	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	"github.com/paulaperez14/hardventory/internal/common"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService.BaseServiceMongoImpl)
	baseHandler.TransformCreate = func(input *authdto.UserCreateInput) (*models.User, error) {
		role := models.Role(input.Role)
		if !role.IsValid() {
			return nil, common.ErrInvalidRole
		}
		return &models.User{
			Email: input.Email,
			Name:  input.Name,
			Role:  role,
		}, nil
	}
	baseHandler.TransformUpdate = func(input *authdto.UserUpdateInput) (*basesvc.UpdateData, error) {
		set := map[string]interface{}{}
		if input.Name != "" {
			set["name"] = input.Name
		}
		if input.Role != "" {
			role := models.Role(input.Role)
			if !role.IsValid() {
				return nil, common.ErrInvalidRole
			}
			set["role"] = role
		}
		return &basesvc.UpdateData{Set: set}, nil
	}

	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// currentUserID lấy ObjectID của user hiện tại từ context (do AuthMiddleware set)
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleLoginWithFirebase đăng nhập bằng Firebase ID token
func (h *UserHandler) HandleLoginWithFirebase(c fiber.Ctx) error {
	var input authdto.FirebaseLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.LoginWithFirebase(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// First user becomes admin: nếu chưa có admin nào, user vừa login được gán admin
	if hasAdmin, errAdmin := h.userService.HasAnyAdmin(c.Context()); errAdmin == nil && !hasAdmin {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex()}).Info("LoginWithFirebase: Tự động set user đầu tiên làm admin")
		if promoted, errSet := h.userService.SetRoleByID(c.Context(), user.ID, models.RoleAdmin); errSet != nil {
			logrus.WithError(errSet).Warn("LoginWithFirebase: Lỗi khi set admin, không fail login")
		} else {
			promoted.Token = user.Token
			user = promoted
		}
	}

	h.HandleResponse(c, fiber.Map{
		"user":  sanitizeUser(*user),
		"token": user.Token,
		"nav":   models.FilterNavByRole(user.Role),
	}, nil)
	return nil
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserLogoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.Logout(c.Context(), objID, &input)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile lấy thông tin profile của người dùng hiện tại
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.BaseServiceMongoImpl.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitizeUser(user), nil)
	return nil
}

// HandleUpdateProfile cập nhật thông tin profile của người dùng hiện tại
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserChangeInfoInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"name": input.Name}}
	updatedUser, err := h.userService.BaseServiceMongoImpl.UpdateById(c.Context(), objID, update)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitizeUser(updatedUser), nil)
	return nil
}

// HandleGetNav trả về danh sách điều hướng theo vai trò của user hiện tại
func (h *UserHandler) HandleGetNav(c fiber.Ctx) error {
	role, ok := c.Locals("user_role").(models.Role)
	if !ok {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	h.HandleResponse(c, models.FilterNavByRole(role), nil)
	return nil
}

// HandleSetRole gán vai trò cho người dùng theo email (chỉ admin)
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.SetRoleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.SetRole(c.Context(), input.Email, models.Role(input.Role))
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitizeUser(*user), nil)
	return nil
}

// HandleBlockUser khóa người dùng theo email (chỉ admin)
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.BlockUser(c.Context(), input.Email, input.Note)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitizeUser(*user), nil)
	return nil
}

// HandleUnBlockUser mở khóa người dùng theo email (chỉ admin)
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.UnBlockUser(c.Context(), input.Email)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitizeUser(*user), nil)
	return nil
}

// sanitizeUser loại bỏ các field nhạy cảm trước khi trả về client
func sanitizeUser(user models.User) models.User {
	user.Token = ""
	user.Tokens = nil
	return user
}
