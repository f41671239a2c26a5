package main

import (
	"context"
	"time"

	"github.com/paulaperez14/hardventory/config"
	authmodels "github.com/paulaperez14/hardventory/internal/api/auth/models"
	catalogmodels "github.com/paulaperez14/hardventory/internal/api/catalog/models"
	inventorymodels "github.com/paulaperez14/hardventory/internal/api/inventory/models"
	salemodels "github.com/paulaperez14/hardventory/internal/api/sale/models"
	"github.com/paulaperez14/hardventory/internal/database"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
	"github.com/paulaperez14/hardventory/internal/utility"
)

// InitGlobal khởi tạo các biến toàn cục theo đúng thứ tự phụ thuộc:
// tên collection → validator → config → MongoDB → Firebase → S3.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
	initFirebase()
	initS3()
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Users = "users"
	global.ColNames.Products = "products"
	global.ColNames.Categories = "categories"
	global.ColNames.Suppliers = "suppliers"
	global.ColNames.GoodsReceipts = "goods_receipts"
	global.ColNames.Sales = "sales"
	logger.GetAppLogger().Info("Initialized collection names")
}

// initValidator khởi tạo validator toàn cục với các custom rule
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

// initConfig đọc cấu hình server từ env
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logger.GetAppLogger().Fatal("Failed to load server configuration")
	}
	logger.GetAppLogger().Info("Initialized server configuration")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo database/collections tồn tại
// và tạo index theo struct tag của model.
func initDatabase_MongoDB() {
	log := logger.GetAppLogger()

	client, err := database.GetInstance(global.ServerConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client

	if err := database.EnsureDatabaseAndCollections(client); err != nil {
		log.Fatalf("Failed to ensure database and collections: %v", err)
	}

	// Tạo index cho từng collection theo tag `index` của model
	db := client.Database(global.ServerConfig.MongoDB_DBName)
	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.ColNames.Users, authmodels.User{}},
		{global.ColNames.Products, catalogmodels.Product{}},
		{global.ColNames.Categories, catalogmodels.Category{}},
		{global.ColNames.Suppliers, catalogmodels.Supplier{}},
		{global.ColNames.GoodsReceipts, inventorymodels.GoodsReceipt{}},
		{global.ColNames.Sales, salemodels.Sale{}},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, target := range indexTargets {
		if err := database.CreateIndexes(ctx, db.Collection(target.colName), target.model); err != nil {
			log.Warnf("Failed to create indexes for collection %s: %v", target.colName, err)
		}
	}

	log.Info("Initialized MongoDB")
}

// initFirebase khởi tạo Firebase Admin SDK để verify ID token khi đăng nhập.
// Nếu thiếu cấu hình thì bỏ qua: server vẫn chạy nhưng login sẽ thất bại.
func initFirebase() {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	if cfg.FirebaseCredentialsPath == "" {
		log.Warn("FIREBASE_CREDENTIALS_PATH not set, Firebase authentication disabled")
		return
	}

	if err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath); err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	log.Info("Initialized Firebase Admin SDK")
}

// initS3 khởi tạo AWS S3 client cho presigned upload ảnh sản phẩm.
// Nếu thiếu cấu hình thì bỏ qua: các route upload sẽ trả lỗi cấu hình.
func initS3() {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	if cfg.S3_Region == "" || cfg.S3_Bucket == "" {
		log.Warn("S3 not configured (missing AWS_REGION or S3_BUCKET_NAME), image upload disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := utility.InitS3(ctx, cfg.S3_Region); err != nil {
		log.Warnf("Failed to initialize S3 client: %v", err)
		return
	}
	log.Info("Initialized S3 client")
}
