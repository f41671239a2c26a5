package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
)

// permissionMiddleware mô phỏng gate permission cho một vai trò cố định,
// đếm số lần được gọi để kiểm tra middleware gắn đúng route.
func permissionMiddleware(role authmodels.Role, permission string, calls *int) fiber.Handler {
	return func(c fiber.Ctx) error {
		*calls++
		if !authmodels.RoleHasPermission(role, permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "error"})
		}
		return c.Next()
	}
}

func okHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success"})
}

func TestRegisterRouteWithMiddleware(t *testing.T) {
	t.Run("Middleware của route này không chạy cho route khác cùng prefix", func(t *testing.T) {
		app := fiber.New()
		var insertCalls, readCalls int

		// Seller chỉ có Product.Read: insert phải bị chặn, read phải đi qua
		insertMW := permissionMiddleware(authmodels.RoleSeller, "Product.Insert", &insertCalls)
		readMW := permissionMiddleware(authmodels.RoleSeller, "Product.Read", &readCalls)
		RegisterRouteWithMiddleware(app, "/product", "POST", "/insert-one", []fiber.Handler{insertMW}, okHandler)
		RegisterRouteWithMiddleware(app, "/product", "GET", "/find", []fiber.Handler{readMW}, okHandler)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/product/find", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 0, insertCalls, "Middleware insert không được chạy cho route read")
		assert.Equal(t, 1, readCalls)
	})

	t.Run("Middleware vẫn chặn đúng route của nó", func(t *testing.T) {
		app := fiber.New()
		var insertCalls int

		insertMW := permissionMiddleware(authmodels.RoleSeller, "Product.Insert", &insertCalls)
		RegisterRouteWithMiddleware(app, "/product", "POST", "/insert-one", []fiber.Handler{insertMW}, okHandler)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/product/insert-one", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, 1, insertCalls)
	})

	t.Run("Vai trò đủ quyền đi qua middleware tới handler", func(t *testing.T) {
		app := fiber.New()
		var insertCalls int

		insertMW := permissionMiddleware(authmodels.RoleBodega, "Product.Insert", &insertCalls)
		RegisterRouteWithMiddleware(app, "/product", "POST", "/insert-one", []fiber.Handler{insertMW}, okHandler)

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/product/insert-one", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, insertCalls)
	})
}
