package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	rentalpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental"
	rentalrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/rental/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Vehicle{},
		&entity.VehicleModel{},
		&entity.Driver{},
		&entity.CapabilityGrant{},
		&entity.Rental{},
	))
	return db
}

func newTestService(t *testing.T) (rentalpkg.Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewRentalService(rentalrepo.NewGormRentalRepo(db)), db
}

func seedModel(t *testing.T, db *gorm.DB, brand, color string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	v := entity.Vehicle{ID: uuid.New(), Brand: brand}
	require.NoError(t, db.Create(&v).Error)
	m := entity.VehicleModel{ID: uuid.New(), VehicleID: v.ID, Color: color, ConstructionYear: 2020, Transmission: "manual"}
	require.NoError(t, db.Create(&m).Error)
	return v.ID, m.ID
}

func seedGrant(t *testing.T, db *gorm.DB, name string, vehicleID, modelID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&entity.CapabilityGrant{
		ID: uuid.New(), DriverName: name, VehicleID: vehicleID, ModelID: modelID,
	}).Error)
}

func seedRental(t *testing.T, db *gorm.DB, email, driver string, vehicleID, modelID uuid.UUID, day string) uuid.UUID {
	t.Helper()
	date, err := entity.ParseDay(day)
	require.NoError(t, err)
	r := entity.Rental{
		ID:          uuid.New(),
		RentDate:    date,
		ClientEmail: email,
		DriverName:  driver,
		VehicleID:   vehicleID,
		ModelID:     modelID,
	}
	require.NoError(t, db.Create(&r).Error)
	return r.ID
}

func TestIsModelFree(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota", "red")
	seedRental(t, db, "jane@example.com", "Alice", vehicleID, modelID, "2026-09-10")

	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)
	free, err := svc.IsModelFree(ctx, vehicleID, modelID, day)
	require.NoError(t, err)
	assert.False(t, free)

	next, err := entity.ParseDay("2026-09-11")
	require.NoError(t, err)
	free, err = svc.IsModelFree(ctx, vehicleID, modelID, next)
	require.NoError(t, err)
	assert.True(t, free)
}

func TestListFreeModels_RequiresFreeQualifiedDriver(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	vehicleA, modelA := seedModel(t, db, "Toyota", "red")
	vehicleB, modelB := seedModel(t, db, "Honda", "blue")
	vehicleC, modelC := seedModel(t, db, "Mazda", "grey")

	// Alice is the only driver for A and B; Bob covers C
	seedGrant(t, db, "Alice", vehicleA, modelA)
	seedGrant(t, db, "Alice", vehicleB, modelB)
	seedGrant(t, db, "Bob", vehicleC, modelC)

	seedRental(t, db, "jane@example.com", "Alice", vehicleA, modelA, "2026-09-10")

	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)
	list, err := svc.ListFreeModels(ctx, day)
	require.NoError(t, err)

	// model A is booked; model B is idle but its only driver is gone for the
	// day, so only model C is genuinely bookable
	require.Len(t, list, 1)
	assert.Equal(t, modelC, list[0].ModelID)
	assert.Equal(t, "Mazda", list[0].Brand)

	next, err := entity.ParseDay("2026-09-11")
	require.NoError(t, err)
	list, err = svc.ListFreeModels(ctx, next)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestListFreeModels_SkipsModelWithoutGrants(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedModel(t, db, "Toyota", "red")

	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)
	list, err := svc.ListFreeModels(ctx, day)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListClientRentals(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota", "red")

	first := seedRental(t, db, "jane@example.com", "Alice", vehicleID, modelID, "2026-09-10")
	second := seedRental(t, db, "jane@example.com", "Bob", vehicleID, modelID, "2026-09-12")
	seedRental(t, db, "john@example.com", "Alice", vehicleID, modelID, "2026-09-11")

	list, err := svc.ListClientRentals(ctx, "jane@example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// newest first
	assert.Equal(t, second, list[0].RentalID)
	assert.Equal(t, first, list[1].RentalID)
	assert.Equal(t, "Toyota", list[0].Brand)
	assert.Equal(t, "red", list[0].Color)
	assert.Equal(t, "Bob", list[0].DriverName)
}
