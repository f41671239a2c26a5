package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/paulaperez14/hardventory/internal/global"
	"github.com/paulaperez14/hardventory/internal/logger"
)

// EnsureDatabaseAndCollections đảm bảo rằng database và các collection cần thiết tồn tại.
// Nếu collection không tồn tại, nó sẽ được tạo ra.
func EnsureDatabaseAndCollections(client *mongo.Client) error {
	dbName := global.ServerConfig.MongoDB_DBName

	// Context tổng 30 giây để duyệt tất cả collections
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	// Lấy danh sách tên collection từ bảng ColNames
	collections := []string{}
	v := reflect.ValueOf(global.ColNames)
	for i := 0; i < v.NumField(); i++ {
		collections = append(collections, v.Field(i).String())
	}

	collList, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	existing := make(map[string]bool, len(collList))
	for _, name := range collList {
		existing[name] = true
	}

	for _, collectionName := range collections {
		if existing[collectionName] {
			continue
		}
		logger.GetAppLogger().Infof("Collection %s chưa tồn tại, tạo mới.", collectionName)
		if err := db.CreateCollection(ctx, collectionName); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
		}
	}

	logger.GetAppLogger().Infof("Database and collections are ensured in database: %s", dbName)
	return nil
}

// CreateIndexes tạo index cho collection dựa trên struct tag `index` của model.
// Hỗ trợ: index:"single" (index thường), index:"unique", index:"unique,sparse".
// Tên field lấy từ bson tag.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var indexModels []mongo.IndexModel
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		indexTag := field.Tag.Get("index")
		if indexTag == "" {
			continue
		}

		bsonName := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonName == "" || bsonName == "-" {
			continue
		}

		opts := options.Index()
		for _, part := range strings.Split(indexTag, ",") {
			switch strings.TrimSpace(part) {
			case "unique":
				opts.SetUnique(true)
			case "sparse":
				opts.SetSparse(true)
			}
		}

		indexModels = append(indexModels, mongo.IndexModel{
			Keys:    bson.D{{Key: bsonName, Value: 1}},
			Options: opts,
		})
	}

	if len(indexModels) == 0 {
		return nil
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexModels); err != nil {
		logger.GetAppLogger().WithError(err).Errorf("Failed to create indexes for collection %s", collection.Name())
		return err
	}
	return nil
}
