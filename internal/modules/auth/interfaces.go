package auth

import (
	"context"

	"workshophub/internal/domain"
)

// CustomerStore — only the methods the auth service uses.
type CustomerStore interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type TokenIssuer interface {
	GenerateToken(userID string, role string) (string, error)
}
