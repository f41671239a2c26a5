package main

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/paulaperez14/hardventory/config"
	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
)

// InitRegistry đăng ký database và các collection vào registry toàn cục.
// Các service lấy collection qua registry thay vì giữ tham chiếu trực tiếp.
func InitRegistry() {
	log := logger.GetAppLogger()

	if err := initCollections(global.MongoDB_Session, global.ServerConfig); err != nil {
		log.Fatalf("Failed to initialize collections: %v", err)
	}
	log.Info("Initialized collection registry")
}

// initCollections đăng ký database chính và từng collection theo ColNames
func initCollections(client *mongo.Client, cfg *config.Configuration) error {
	log := logger.GetAppLogger()

	db := client.Database(cfg.MongoDB_DBName)
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		return err
	}

	colNames := []string{
		global.ColNames.Users,
		global.ColNames.Products,
		global.ColNames.Categories,
		global.ColNames.Suppliers,
		global.ColNames.GoodsReceipts,
		global.ColNames.Sales,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			log.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			log.Infof("Collection %s registered successfully", name)
		} else {
			log.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}
