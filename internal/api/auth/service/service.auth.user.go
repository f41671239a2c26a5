// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/paulaperez14/hardventory/internal/api/auth/dto"
	models "github.com/paulaperez14/hardventory/internal/api/auth/models"
	basesvc "github.com/paulaperez14/hardventory/internal/api/base/service"
	"github.com/paulaperez14/hardventory/internal/common"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// LoginWithFirebase đăng nhập bằng Firebase ID token.
// Flow: verify token → lấy thông tin user từ Firebase → tìm/tạo user trong
// database → kiểm tra block → phát hành JWT phiên làm việc theo thiết bị.
func (s *UserService) LoginWithFirebase(ctx context.Context, input *authdto.FirebaseLoginInput) (*models.User, error) {
	token, err := utility.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		logrus.WithError(err).Error("LoginWithFirebase: Lỗi verify Firebase ID token")
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Token không hợp lệ", common.StatusUnauthorized, err)
	}

	firebaseUser, err := utility.GetUserByUID(ctx, token.UID)
	if err != nil {
		logrus.WithFields(logrus.Fields{"firebase_uid": token.UID, "error": err.Error()}).Error("LoginWithFirebase: Lỗi lấy thông tin user từ Firebase")
		return nil, err
	}

	// Tìm user đã tồn tại theo email (tài khoản có thể được admin tạo trước)
	var existingUser *models.User
	if firebaseUser.Email != "" {
		emailFilter := bson.M{"email": firebaseUser.Email}
		if emailUser, emailErr := s.BaseServiceMongoImpl.FindOne(ctx, emailFilter, nil); emailErr == nil {
			existingUser = &emailUser
		} else if !errors.Is(emailErr, common.ErrNotFound) {
			logrus.WithError(emailErr).Error("LoginWithFirebase: Lỗi khi tìm user theo email")
			return nil, emailErr
		}
	}

	// Email đã gắn với một Firebase UID khác thì từ chối
	if existingUser != nil && existingUser.FirebaseUID != "" && existingUser.FirebaseUID != token.UID {
		logrus.WithFields(logrus.Fields{
			"existing_firebase_uid": existingUser.FirebaseUID,
			"new_firebase_uid":      token.UID,
		}).Warn("LoginWithFirebase: Conflict")
		return nil, common.NewError(
			common.ErrCodeAuthCredentials,
			fmt.Sprintf("Email '%s' đã được sử dụng bởi tài khoản khác.", firebaseUser.Email),
			common.StatusConflict,
			nil,
		)
	}

	updateData := &basesvc.UpdateData{Set: make(map[string]interface{})}
	updateData.Set["firebaseUid"] = token.UID
	if firebaseUser.DisplayName != "" {
		updateData.Set["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		updateData.Set["photoUrl"] = firebaseUser.PhotoURL
	}
	if firebaseUser.Email != "" {
		updateData.Set["email"] = firebaseUser.Email
	}
	// Vai trò mặc định khi tạo mới là seller; admin đổi vai trò sau.
	// Nếu user đã tồn tại (admin tạo trước), giữ nguyên role hiện tại.
	if existingUser == nil || existingUser.Role == "" {
		updateData.Set["role"] = models.RoleSeller
	}

	var filter bson.M
	if existingUser != nil {
		filter = bson.M{"_id": existingUser.ID}
	} else {
		filter = bson.M{"firebaseUid": token.UID}
	}

	user, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"filter": filter, "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi gọi Upsert")
		if errors.Is(err, common.ErrDuplicate) {
			// Race giữa hai lần login đầu tiên, thử tìm lại theo firebaseUid
			firebaseFilter := bson.M{"firebaseUid": token.UID}
			if found, findErr := s.BaseServiceMongoImpl.FindOne(ctx, firebaseFilter, nil); findErr == nil {
				user = found
			} else {
				logrus.WithError(findErr).Error("LoginWithFirebase: Không tìm thấy user sau lỗi duplicate")
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if user.IsBlock {
		return nil, common.ErrUserBlocked
	}

	// Phát hành JWT phiên làm việc
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: tokenMap["token"], RoleID: string(user.Role)})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	tokenUpdateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, tokenUpdateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("LoginWithFirebase: Lỗi khi cập nhật token vào user")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("LoginWithFirebase: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": newTokens,
			"token":  "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// HasAnyAdmin kiểm tra hệ thống đã có admin nào chưa
func (s *UserService) HasAnyAdmin(ctx context.Context) (bool, error) {
	return s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"role": models.RoleAdmin})
}

// SetRole gán vai trò cho người dùng theo email
func (s *UserService) SetRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	if !role.IsValid() {
		return nil, common.ErrInvalidRole
	}
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetRoleByID gán vai trò cho người dùng theo ID (dùng cho first-user-becomes-admin)
func (s *UserService) SetRoleByID(ctx context.Context, userID primitive.ObjectID, role models.Role) (*models.User, error) {
	if !role.IsValid() {
		return nil, common.ErrInvalidRole
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// BlockUser khóa người dùng theo email kèm ghi chú lý do
func (s *UserService) BlockUser(ctx context.Context, email string, note string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   true,
			"blockNote": note,
			"token":     "",
			"tokens":    []models.Token{},
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UnBlockUser mở khóa người dùng theo email
func (s *UserService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set:   map[string]interface{}{"isBlock": false},
		Unset: map[string]interface{}{"blockNote": ""},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
