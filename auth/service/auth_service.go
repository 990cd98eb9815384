package service

import (
	"context"
	"os"
	"strings"
	"time"

	authpkg "github.com/DoSomethingGreat07/Online-taxi-rental-service/auth"
)

const tokenTTL = 24 * time.Hour

// authService implements auth.Service.
type authService struct {
	repo authpkg.Repository
}

func NewAuthService(repo authpkg.Repository) authpkg.Service {
	return &authService{repo: repo}
}

func (s *authService) LoginManager(ctx context.Context, ssn string) (*authpkg.Principal, error) {
	m, err := s.repo.GetManagerBySSN(ctx, strings.TrimSpace(ssn))
	if err != nil {
		return nil, err
	}
	return issue(&authpkg.Principal{ID: m.SSN, Role: authpkg.RoleManager, Name: m.Name})
}

func (s *authService) LoginDriver(ctx context.Context, name string) (*authpkg.Principal, error) {
	d, err := s.repo.GetDriverByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	return issue(&authpkg.Principal{ID: d.Name, Role: authpkg.RoleDriver, Name: d.Name})
}

func (s *authService) LoginClient(ctx context.Context, email string) (*authpkg.Principal, error) {
	c, err := s.repo.GetClientByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	return issue(&authpkg.Principal{ID: c.Email, Role: authpkg.RoleClient, Name: c.Name})
}

func issue(p *authpkg.Principal) (*authpkg.Principal, error) {
	token, err := authpkg.SignJWT(jwtSecret(), p, tokenTTL)
	if err != nil {
		return nil, err
	}
	p.Token = token
	return p, nil
}

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change-me"
	}
	return secret
}
