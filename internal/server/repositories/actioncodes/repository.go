package actioncodes

import (
	"context"

	"github.com/dmitrijs2005/esgportal/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, code *models.ActionCode) error
	// Take redeems code for purpose. A code is usable once.
	Take(ctx context.Context, code, purpose string) (*models.ActionCode, error)
	// DeleteByAccount voids every pending code of purpose for the account.
	DeleteByAccount(ctx context.Context, accountID, purpose string) error
}
