package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DoSomethingGreat07/Online-taxi-rental-service/entity"
	managerpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/manager"
)

// managerService implements manager.Service.
type managerService struct {
	repo managerpkg.Repository
}

func NewManagerService(repo managerpkg.Repository) managerpkg.Service {
	return &managerService{repo: repo}
}

func (s *managerService) RegisterManager(ctx context.Context, req managerpkg.RegisterManagerRequest) (*entity.Manager, error) {
	ssn := strings.TrimSpace(req.SSN)
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if ssn == "" || name == "" || email == "" {
		return nil, errors.New("ssn, name and email required")
	}
	m := &entity.Manager{SSN: ssn, Name: name, Email: email}
	return s.repo.StoreManager(ctx, m)
}

func (s *managerService) GetManager(ctx context.Context, ssn string) (*entity.Manager, error) {
	return s.repo.GetManagerBySSN(ctx, strings.TrimSpace(ssn))
}

func (s *managerService) TopClients(ctx context.Context, k int) ([]managerpkg.ClientRentalCount, error) {
	if k <= 0 {
		k = 10
	}
	return s.repo.TopClients(ctx, k)
}

func (s *managerService) ModelRentCounts(ctx context.Context) ([]managerpkg.ModelRentCount, error) {
	return s.repo.ModelRentCounts(ctx)
}

func (s *managerService) DriverStats(ctx context.Context) ([]managerpkg.DriverStat, error) {
	return s.repo.DriverStats(ctx)
}

func (s *managerService) ClientsByCityPair(ctx context.Context, clientCity, driverCity string) ([]managerpkg.ClientInfo, error) {
	return s.repo.ClientsByCityPair(ctx, strings.TrimSpace(clientCity), strings.TrimSpace(driverCity))
}
