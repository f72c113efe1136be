package repository

import (
	"fmt"

	"shieldbot/models"
	"shieldbot/storage"
)

// PendingBanRepository persists pending bans keyed by verification token.
type PendingBanRepository struct {
	store *storage.Store
}

// NewPendingBanRepository creates a new pending ban repository.
func NewPendingBanRepository(store *storage.Store) *PendingBanRepository {
	return &PendingBanRepository{store: store}
}

// GetByToken returns the pending ban for the token, or nil when the token is
// unknown.
func (r *PendingBanRepository) GetByToken(token string) (*models.PendingBan, error) {
	var ban models.PendingBan
	found, err := r.store.Get(token, &ban)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending ban %q: %w", token, err)
	}
	if !found {
		return nil, nil
	}
	return &ban, nil
}

// Create stores a new pending ban under its token.
func (r *PendingBanRepository) Create(ban *models.PendingBan) error {
	if err := r.store.Put(ban.Token, ban); err != nil {
		return fmt.Errorf("failed to store pending ban %q: %w", ban.Token, err)
	}
	return nil
}

// Delete removes the pending ban for the token.
func (r *PendingBanRepository) Delete(token string) error {
	if err := r.store.Delete(token); err != nil {
		return fmt.Errorf("failed to delete pending ban %q: %w", token, err)
	}
	return nil
}
