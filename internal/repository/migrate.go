package repository

import "gorm.io/gorm"

// AutoMigrate keeps the schema current. It runs over the persistence models,
// not the domain structs, so their index and unique-index tags are created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&resourceModel{},
		&bookingModel{},
		&requestModel{},
	)
}
