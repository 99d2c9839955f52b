package auth

import (
	"context"
	"errors"
	"strings"

	"workshophub/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	customers CustomerStore
	admins    AdminStore
	jwt       TokenIssuer
}

func NewService(customers CustomerStore, admins AdminStore, jwt TokenIssuer) *Service {
	return &Service{
		customers: customers,
		admins:    admins,
		jwt:       jwt,
	}
}

func (s *Service) RegisterCustomer(ctx context.Context, req RegisterRequest) (*CustomerAuthResponse, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.customers.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(customer.ID, string(domain.RoleCustomer))
	if err != nil {
		return nil, err
	}

	return &CustomerAuthResponse{
		Token: token,
		User:  CustomerPublic{ID: customer.ID, Name: customer.Name, Email: customer.Email},
	}, nil
}

func (s *Service) LoginCustomer(ctx context.Context, req LoginRequest) (*CustomerAuthResponse, error) {
	customer, err := s.customers.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(customer.ID, string(domain.RoleCustomer))
	if err != nil {
		return nil, err
	}

	return &CustomerAuthResponse{
		Token: token,
		User:  CustomerPublic{ID: customer.ID, Name: customer.Name, Email: customer.Email},
	}, nil
}

func (s *Service) LoginAdmin(ctx context.Context, req LoginRequest) (*AdminAuthResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID, string(domain.RoleAdmin))
	if err != nil {
		return nil, err
	}

	return &AdminAuthResponse{Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
