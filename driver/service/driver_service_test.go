package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	driverpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver"
	driverrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver/repository"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	fleetrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet/repository"
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
		&entity.Review{},
	))
	return db
}

func newTestService(t *testing.T) (driverpkg.Service, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewDriverService(driverrepo.NewGormDriverRepo(db), fleetrepo.NewGormFleetRepo(db)), db
}

func seedModel(t *testing.T, db *gorm.DB, brand string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	v := entity.Vehicle{ID: uuid.New(), Brand: brand}
	require.NoError(t, db.Create(&v).Error)
	m := entity.VehicleModel{ID: uuid.New(), VehicleID: v.ID, Color: "red", ConstructionYear: 2021, Transmission: "manual"}
	require.NoError(t, db.Create(&m).Error)
	return v.ID, m.ID
}

func TestRegisterDriver_DuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Main", HouseNumber: "1", City: "Athens"})
	require.NoError(t, err)

	_, err = svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Other", HouseNumber: "2", City: "Patras"})
	assert.ErrorIs(t, err, driverpkg.ErrDriverExists)
}

func TestDeclareCapability_Idempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota")

	_, err := svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Main", HouseNumber: "1", City: "Athens"})
	require.NoError(t, err)

	require.NoError(t, svc.DeclareCapability(ctx, "Alice", vehicleID, modelID))
	require.NoError(t, svc.DeclareCapability(ctx, "Alice", vehicleID, modelID))

	var count int64
	require.NoError(t, db.Model(&entity.CapabilityGrant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	names, err := svc.QualifiedDrivers(ctx, vehicleID, modelID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, names)
}

func TestDeclareCapability_UnknownReferences(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota")

	err := svc.DeclareCapability(ctx, "Ghost", vehicleID, modelID)
	assert.ErrorIs(t, err, driverpkg.ErrDriverNotFound)

	_, err = svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Main", HouseNumber: "1", City: "Athens"})
	require.NoError(t, err)

	err = svc.DeclareCapability(ctx, "Alice", vehicleID, uuid.New())
	assert.Error(t, err)
}

func TestRemoveDriver_BlockedByUpcomingRental(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota")

	_, err := svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Main", HouseNumber: "1", City: "Athens"})
	require.NoError(t, err)

	rental := entity.Rental{
		ID:          uuid.New(),
		RentDate:    entity.Day(time.Now().Add(48 * time.Hour)),
		ClientEmail: "jane@example.com",
		DriverName:  "Alice",
		VehicleID:   vehicleID,
		ModelID:     modelID,
	}
	require.NoError(t, db.Create(&rental).Error)

	_, err = svc.RemoveDriver(ctx, "Alice")
	assert.ErrorIs(t, err, driverpkg.ErrHasActiveRentals)

	var count int64
	require.NoError(t, db.Model(&entity.Driver{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveDriver_CascadesHistory(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	vehicleID, modelID := seedModel(t, db, "Toyota")

	_, err := svc.RegisterDriver(ctx, driverpkg.RegisterDriverRequest{Name: "Alice", Road: "Main", HouseNumber: "1", City: "Athens"})
	require.NoError(t, err)
	require.NoError(t, svc.DeclareCapability(ctx, "Alice", vehicleID, modelID))

	past := []time.Time{
		entity.Day(time.Now().Add(-72 * time.Hour)),
		entity.Day(time.Now().Add(-48 * time.Hour)),
	}
	for _, day := range past {
		require.NoError(t, db.Create(&entity.Rental{
			ID:          uuid.New(),
			RentDate:    day,
			ClientEmail: "jane@example.com",
			DriverName:  "Alice",
			VehicleID:   vehicleID,
			ModelID:     modelID,
		}).Error)
	}
	require.NoError(t, db.Create(&entity.Review{
		ID:          uuid.New(),
		DriverName:  "Alice",
		ClientEmail: "jane@example.com",
		Message:     "smooth ride",
		Rating:      5,
	}).Error)

	result, err := svc.RemoveDriver(ctx, "Alice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.ReviewsDeleted)
	assert.EqualValues(t, 1, result.GrantsDeleted)
	assert.EqualValues(t, 2, result.RentalsDeleted)

	for _, model := range []interface{}{&entity.Driver{}, &entity.CapabilityGrant{}, &entity.Rental{}, &entity.Review{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	}

	_, err = svc.RemoveDriver(ctx, "Alice")
	assert.ErrorIs(t, err, driverpkg.ErrDriverNotFound)
}
