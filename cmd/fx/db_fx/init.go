package db_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"easytrip/internal/infra"
	"easytrip/internal/models/db_models"
	"easytrip/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewItineraryRepository)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	if err := db.AutoMigrate(&db_models.ItineraryRecord{}); err != nil {
		log.Fatalf("Failed to migrate itinerary schema: %v", err)
	}
	return db
}
