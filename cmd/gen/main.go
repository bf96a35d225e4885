package main

import (
	"geofence/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the tables this service owns.
func main() {
	models := []any{
		model.GeofenceRegionModel{},
		model.UserLocationModel{},
		model.ProximityNotificationModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
