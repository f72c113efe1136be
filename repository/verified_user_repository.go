package repository

import (
	"fmt"

	"shieldbot/models"
	"shieldbot/storage"
)

// VerifiedUserRepository persists verification records keyed by account ID.
// Verification is tracked per account, not per guild: an account that
// verified once is trusted everywhere.
type VerifiedUserRepository struct {
	store *storage.Store
}

// NewVerifiedUserRepository creates a new verified user repository.
func NewVerifiedUserRepository(store *storage.Store) *VerifiedUserRepository {
	return &VerifiedUserRepository{store: store}
}

// GetByAccountID returns the verification record for the account, or nil
// when the account has never verified.
func (r *VerifiedUserRepository) GetByAccountID(accountID string) (*models.VerifiedUser, error) {
	var record models.VerifiedUser
	found, err := r.store.Get(accountID, &record)
	if err != nil {
		return nil, fmt.Errorf("failed to get verified user %s: %w", accountID, err)
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

// Create stores a verification record for the account.
func (r *VerifiedUserRepository) Create(record *models.VerifiedUser) error {
	if err := r.store.Put(record.AccountID, record); err != nil {
		return fmt.Errorf("failed to store verified user %s: %w", record.AccountID, err)
	}
	return nil
}
