package utility

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/paulaperez14/hardventory/internal/common"
)

// CreateToken tạo JWT phiên đăng nhập cho người dùng.
// Token chứa userId cùng time/randomNumber để mỗi lần đăng nhập sinh token khác nhau.
func CreateToken(secret string, userID string, t string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         t,
		"randomNumber": randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return map[string]string{"token": tokenString}, nil
}

// ParseToken parse và verify JWT phiên đăng nhập, trả về userId trong claims.
func ParseToken(secret string, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", common.ErrTokenInvalid
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", common.ErrTokenInvalid
	}
	return userID, nil
}
