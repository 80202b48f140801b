package profiles

import "context"

// Store is keyed read/write/update/delete access to profile records.
//
// Get of an absent record returns common.ErrorNotFound; any other error means
// the store could not be reached. Create fails with common.ErrorAlreadyExists
// when a record exists. Timestamps are assigned by the store's clock.
type Store interface {
	Get(ctx context.Context, uid string) (*Record, error)
	Create(ctx context.Context, rec *Record) (*Record, error)
	Update(ctx context.Context, uid string, patch Patch) (*Record, error)
	// TouchLastLogin refreshes LastLoginAt and UpdatedAt.
	TouchLastLogin(ctx context.Context, uid string) error
	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, uid string) error
}

// AdminStore is implemented by stores that can change the admin flag. It is
// only reachable from maintenance tooling, never through the profile API.
type AdminStore interface {
	SetAdmin(ctx context.Context, uid string, admin bool) error
}
