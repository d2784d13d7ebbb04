package postgres

import (
	"log"

	"github.com/sokonova/sokonova-fulfillment-service/internal/config"
	"github.com/sokonova/sokonova-fulfillment-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.FulfillmentConfig) *gorm.DB {
	dsn := cfg.FulfillmentDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.SellerProfileModel{},
		&models.ProductModel{},
		&models.OrderItemModel{},
		&models.DisputeModel{},
		&models.NotificationModel{},
		&models.PaymentModel{},
	)

	return db
}
