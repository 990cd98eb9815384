package allocation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation"
	allocationrepo "github.com/DoSomethingGreat07/Online-taxi-rental-service/allocation/repository"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=busy_timeout(5000)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one shared in-memory database per test; a single connection keeps
	// concurrent transactions from tripping over sqlite's write lock
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&entity.Vehicle{},
		&entity.VehicleModel{},
		&entity.Driver{},
		&entity.CapabilityGrant{},
		&entity.Rental{},
	))
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedModel(t *testing.T, db *gorm.DB, brand, color string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	v := entity.Vehicle{ID: uuid.New(), Brand: brand}
	require.NoError(t, db.Create(&v).Error)
	m := entity.VehicleModel{
		ID:               uuid.New(),
		VehicleID:        v.ID,
		Color:            color,
		ConstructionYear: 2022,
		Transmission:     "automatic",
	}
	require.NoError(t, db.Create(&m).Error)
	return v.ID, m.ID
}

func seedDriver(t *testing.T, db *gorm.DB, name string, vehicleID, modelID uuid.UUID) {
	t.Helper()
	d := entity.Driver{ID: uuid.New(), Name: name, Road: gofakeit.Street(), HouseNumber: "12", City: gofakeit.City()}
	require.NoError(t, db.Create(&d).Error)
	g := entity.CapabilityGrant{ID: uuid.New(), DriverName: name, VehicleID: vehicleID, ModelID: modelID}
	require.NoError(t, db.Create(&g).Error)
}

func grantDriver(t *testing.T, db *gorm.DB, name string, vehicleID, modelID uuid.UUID) {
	t.Helper()
	g := entity.CapabilityGrant{ID: uuid.New(), DriverName: name, VehicleID: vehicleID, ModelID: modelID}
	require.NoError(t, db.Create(&g).Error)
}

func TestBookRent_AssignsLowestDriverName(t *testing.T) {
	db := openTestDB(t)
	vehicleID, modelID := seedModel(t, db, "Toyota", "red")
	seedDriver(t, db, "Charlie", vehicleID, modelID)
	seedDriver(t, db, "Alice", vehicleID, modelID)
	seedDriver(t, db, "Bob", vehicleID, modelID)

	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)

	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)

	booked, err := engine.BookRent(context.Background(), "jane@example.com", vehicleID, modelID, day)
	require.NoError(t, err)
	assert.Equal(t, "Alice", booked.DriverName)
	assert.True(t, booked.RentDate.Equal(day))

	var count int64
	require.NoError(t, db.Model(&entity.Rental{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBookRent_UnknownModel(t *testing.T) {
	db := openTestDB(t)
	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)

	_, err := engine.BookRent(context.Background(), "jane@example.com", uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, allocation.ErrModelNotFound)
}

func TestBookRent_ModelTakenForTheDay(t *testing.T) {
	db := openTestDB(t)
	vehicleID, modelID := seedModel(t, db, "Toyota", "red")
	seedDriver(t, db, "Alice", vehicleID, modelID)
	seedDriver(t, db, "Bob", vehicleID, modelID)

	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)

	_, err = engine.BookRent(context.Background(), "jane@example.com", vehicleID, modelID, day)
	require.NoError(t, err)

	// second driver is free, but the model itself is booked for that day
	_, err = engine.BookRent(context.Background(), "john@example.com", vehicleID, modelID, day)
	assert.ErrorIs(t, err, allocation.ErrModelUnavailable)

	next, err := entity.ParseDay("2026-09-11")
	require.NoError(t, err)
	booked, err := engine.BookRent(context.Background(), "john@example.com", vehicleID, modelID, next)
	require.NoError(t, err)
	assert.Equal(t, "Alice", booked.DriverName)
}

func TestBookRent_SoleDriverSharedAcrossModels(t *testing.T) {
	db := openTestDB(t)
	vehicleA, modelA := seedModel(t, db, "Toyota", "red")
	vehicleB, modelB := seedModel(t, db, "Honda", "blue")
	seedDriver(t, db, "Alice", vehicleA, modelA)
	grantDriver(t, db, "Alice", vehicleB, modelB)

	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)

	booked, err := engine.BookRent(context.Background(), "jane@example.com", vehicleA, modelA, day)
	require.NoError(t, err)
	assert.Equal(t, "Alice", booked.DriverName)

	// Alice is the only driver for both models; she is gone for the day
	_, err = engine.BookRent(context.Background(), "john@example.com", vehicleB, modelB, day)
	assert.ErrorIs(t, err, allocation.ErrNoDriverAvailable)

	next, err := entity.ParseDay("2026-09-11")
	require.NoError(t, err)
	_, err = engine.BookRent(context.Background(), "john@example.com", vehicleB, modelB, next)
	assert.NoError(t, err)
}

func TestBookRent_SkipsBusyDriver(t *testing.T) {
	db := openTestDB(t)
	vehicleA, modelA := seedModel(t, db, "Toyota", "red")
	vehicleB, modelB := seedModel(t, db, "Honda", "blue")
	seedDriver(t, db, "Alice", vehicleA, modelA)
	seedDriver(t, db, "Bob", vehicleB, modelB)
	grantDriver(t, db, "Alice", vehicleB, modelB)

	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)

	_, err = engine.BookRent(context.Background(), "jane@example.com", vehicleA, modelA, day)
	require.NoError(t, err)

	// Alice would win by name order but drives model A that day
	booked, err := engine.BookRent(context.Background(), "john@example.com", vehicleB, modelB, day)
	require.NoError(t, err)
	assert.Equal(t, "Bob", booked.DriverName)
}

func TestBookRent_ConcurrentRequestsBookOnce(t *testing.T) {
	db := openTestDB(t)
	vehicleID, modelID := seedModel(t, db, "Toyota", "red")
	seedDriver(t, db, "Alice", vehicleID, modelID)
	seedDriver(t, db, "Bob", vehicleID, modelID)
	seedDriver(t, db, "Carol", vehicleID, modelID)

	engine := allocation.New(allocationrepo.NewGormAllocationRepo(db), nil)
	day, err := entity.ParseDay("2026-09-10")
	require.NoError(t, err)

	const n = 8
	results := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, results[i] = engine.BookRent(context.Background(), gofakeit.Email(), vehicleID, modelID, day)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		if !assert.ErrorIs(t, err, allocation.ErrModelUnavailable) {
			t.Logf("unexpected booking error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&entity.Rental{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
