// Package global chứa các biến toàn cục dùng chung cho toàn bộ ứng dụng:
// cấu hình server, phiên kết nối MongoDB, validator và các registry.
package global

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paulaperez14/hardventory/config"
	"github.com/paulaperez14/hardventory/internal/registry"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users         string // Tên collection cho người dùng
	Products      string // Tên collection cho sản phẩm
	Categories    string // Tên collection cho danh mục sản phẩm
	Suppliers     string // Tên collection cho nhà cung cấp
	GoodsReceipts string // Tên collection cho phiếu nhập kho
	Sales         string // Tên collection cho đơn bán hàng
}

// Các biến toàn cục
var MongoDB_Session *mongo.Client                      // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                 // Cấu hình của server
var ColNames CollectionName = *new(CollectionName)     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
