package federated

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

type Repository interface {
	Find(ctx context.Context, provider, subject string) (*models.FederatedIdentity, error)
	Link(ctx context.Context, fi *models.FederatedIdentity) error
	ListByAccount(ctx context.Context, accountID string) ([]models.FederatedIdentity, error)
}
