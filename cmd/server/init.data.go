package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
	authsvc "github.com/paulaperez14/hardventory/internal/api/auth/service"
	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	catalogsvc "github.com/paulaperez14/hardventory/internal/api/catalog/service"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// InitDefaultData khởi tạo dữ liệu mặc định: user admin từ FIREBASE_ADMIN_UID.
// Nếu không cấu hình, user đầu tiên đăng nhập sẽ tự động trở thành admin
// (xử lý trong login handler).
func InitDefaultData() {
	log := logger.GetAppLogger()

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Seed dữ liệu catalog mẫu khi chạy ở chế độ init
	if global.ServerConfig.InitMode {
		if err := seedSampleCatalog(ctx); err != nil {
			log.Warnf("Failed to seed sample catalog data: %v", err)
		}
	}

	hasAdmin, err := userService.HasAnyAdmin(ctx)
	if err != nil {
		log.Warnf("Failed to check for existing admin: %v", err)
		return
	}
	if hasAdmin {
		log.Info("Admin user already exists, skipping default data init")
		return
	}

	adminUID := global.ServerConfig.FirebaseAdminUID
	if adminUID == "" {
		log.Info("FIREBASE_ADMIN_UID not set, user đầu tiên đăng nhập sẽ trở thành admin")
		return
	}

	// User phải đã tồn tại trong Firebase Authentication
	firebaseUser, err := utility.GetUserByUID(ctx, adminUID)
	if err != nil {
		log.Warnf("Failed to fetch admin user from Firebase (UID %s): %v", adminUID, err)
		log.Info("User đầu tiên đăng nhập sẽ trở thành admin")
		return
	}

	data := bson.M{
		"firebaseUid": adminUID,
		"role":        authmodels.RoleAdmin,
	}
	if firebaseUser.Email != "" {
		data["email"] = firebaseUser.Email
	}
	if firebaseUser.DisplayName != "" {
		data["name"] = firebaseUser.DisplayName
	}
	if firebaseUser.PhotoURL != "" {
		data["photoUrl"] = firebaseUser.PhotoURL
	}

	if _, err := userService.Upsert(ctx, bson.M{"firebaseUid": adminUID}, data); err != nil {
		log.Warnf("Failed to initialize admin user: %v", err)
		return
	}
	log.Infof("Admin user initialized from Firebase UID %s", adminUID)
}

// seedSampleCatalog tạo danh mục, nhà cung cấp và sản phẩm mẫu cho cửa hàng
// vật liệu/ferretería. Chỉ seed khi collection categories còn trống để tránh
// nhân bản dữ liệu giữa các lần khởi động.
func seedSampleCatalog(ctx context.Context) error {
	log := logger.GetAppLogger()

	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return err
	}
	supplierService, err := catalogsvc.NewSupplierService()
	if err != nil {
		return err
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return err
	}

	hasCategories, err := categoryService.DocumentExists(ctx, bson.M{})
	if err != nil {
		return err
	}
	if hasCategories {
		log.Info("Catalog already has data, skipping sample seed")
		return nil
	}

	categories := []catalogmodels.Category{
		{Name: "Herramientas", Description: "Herramientas manuales y eléctricas"},
		{Name: "Plomería", Description: "Tuberías, llaves y accesorios"},
		{Name: "Electricidad", Description: "Cables, interruptores y material eléctrico"},
	}
	categoryIDs := make(map[string]catalogmodels.Category, len(categories))
	for _, category := range categories {
		created, err := categoryService.InsertOne(ctx, category)
		if err != nil {
			return err
		}
		categoryIDs[created.Name] = created
	}

	supplier, err := supplierService.InsertOne(ctx, catalogmodels.Supplier{
		Name:         "Distribuidora Central",
		ContactName:  "Carlos Medina",
		ContactEmail: "ventas@distribuidoracentral.example",
		ContactPhone: "+57 300 000 0000",
	})
	if err != nil {
		return err
	}

	products := []catalogmodels.Product{
		{
			Name:              "Martillo de uña 16oz",
			Description:       "Mango de fibra de vidrio",
			Price:             12.5,
			CategoryID:        categoryIDs["Herramientas"].ID,
			SupplierID:        supplier.ID,
			Quantity:          24,
			LowStockThreshold: catalogmodels.DefaultLowStockThreshold,
		},
		{
			Name:              "Llave de paso 1/2\"",
			Description:       "Bronce, rosca NPT",
			Price:             6.9,
			CategoryID:        categoryIDs["Plomería"].ID,
			SupplierID:        supplier.ID,
			Quantity:          40,
			LowStockThreshold: 10,
		},
		{
			Name:              "Cable THHN 12 AWG (metro)",
			Specifications:    "600V, cobre",
			Price:             0.8,
			CategoryID:        categoryIDs["Electricidad"].ID,
			SupplierID:        supplier.ID,
			Quantity:          500,
			LowStockThreshold: 100,
		},
	}
	for _, product := range products {
		if _, err := productService.InsertOne(ctx, product); err != nil {
			return err
		}
	}

	log.Infof("Seeded sample catalog: %d categories, 1 supplier, %d products", len(categories), len(products))
	return nil
}
