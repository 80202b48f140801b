package accounts

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateProfile(ctx context.Context, id string, displayName, photoURL *string) (*models.Account, error)
	UpdateEmail(ctx context.Context, id, email string) (*models.Account, error)
	SetPassword(ctx context.Context, id string, salt, verifier []byte) error
	SetEmailVerified(ctx context.Context, id, email string) error
	TouchLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
