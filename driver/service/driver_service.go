package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	driverpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/driver"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	"github.com/DoSomethingGreat07/Online-taxi-rental-service/fleet"
)

// driverService implements driver.Service.
type driverService struct {
	repo  driverpkg.Repository
	fleet fleet.Repository
}

// NewDriverService constructs a driver.Service. The fleet repository is used
// to validate vehicle/model references on capability declarations.
func NewDriverService(repo driverpkg.Repository, fleetRepo fleet.Repository) driverpkg.Service {
	return &driverService{repo: repo, fleet: fleetRepo}
}

func (s *driverService) RegisterDriver(ctx context.Context, req driverpkg.RegisterDriverRequest) (*entity.Driver, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("driver name required")
	}
	d := &entity.Driver{
		ID:          uuid.New(),
		Name:        name,
		Road:        strings.TrimSpace(req.Road),
		HouseNumber: strings.TrimSpace(req.HouseNumber),
		City:        strings.TrimSpace(req.City),
	}
	return s.repo.StoreDriver(ctx, d)
}

func (s *driverService) GetDriver(ctx context.Context, name string) (*entity.Driver, error) {
	return s.repo.GetDriverByName(ctx, strings.TrimSpace(name))
}

func (s *driverService) UpdateAddress(ctx context.Context, name, road, houseNumber, city string) error {
	return s.repo.UpdateAddress(ctx, strings.TrimSpace(name), strings.TrimSpace(road), strings.TrimSpace(houseNumber), strings.TrimSpace(city))
}

func (s *driverService) DeclareCapability(ctx context.Context, driverName string, vehicleID, modelID uuid.UUID) error {
	driverName = strings.TrimSpace(driverName)
	if _, err := s.repo.GetDriverByName(ctx, driverName); err != nil {
		return err
	}
	if _, err := s.fleet.GetModel(ctx, vehicleID, modelID); err != nil {
		return err
	}
	g := &entity.CapabilityGrant{
		ID:         uuid.New(),
		DriverName: driverName,
		VehicleID:  vehicleID,
		ModelID:    modelID,
	}
	return s.repo.StoreGrant(ctx, g)
}

func (s *driverService) QualifiedDrivers(ctx context.Context, vehicleID, modelID uuid.UUID) ([]string, error) {
	return s.repo.QualifiedDrivers(ctx, vehicleID, modelID)
}

func (s *driverService) RemoveDriver(ctx context.Context, name string) (*driverpkg.RemovalResult, error) {
	today := entity.Day(time.Now())
	return s.repo.RemoveDriver(ctx, strings.TrimSpace(name), today)
}
