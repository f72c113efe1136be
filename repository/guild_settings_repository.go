package repository

import (
	"fmt"

	"shieldbot/models"
	"shieldbot/storage"
)

// GuildSettingsRepository persists per-guild moderation settings keyed by
// guild ID.
type GuildSettingsRepository struct {
	store *storage.Store
}

// NewGuildSettingsRepository creates a new guild settings repository.
func NewGuildSettingsRepository(store *storage.Store) *GuildSettingsRepository {
	return &GuildSettingsRepository{store: store}
}

// Get returns the settings for the guild, or defaults when none are stored.
func (r *GuildSettingsRepository) Get(guildID string) (*models.GuildSettings, error) {
	settings := models.GuildSettings{GuildID: guildID}
	found, err := r.store.Get(guildID, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for guild %s: %w", guildID, err)
	}
	if !found {
		return &models.GuildSettings{GuildID: guildID}, nil
	}
	return &settings, nil
}

// SetReportChannel stores the report channel for the guild.
func (r *GuildSettingsRepository) SetReportChannel(guildID, channelID string) error {
	settings := models.GuildSettings{GuildID: guildID, ReportChannelID: channelID}
	if err := r.store.Put(guildID, &settings); err != nil {
		return fmt.Errorf("failed to update settings for guild %s: %w", guildID, err)
	}
	return nil
}

// ClearReportChannel removes the stored settings for the guild.
func (r *GuildSettingsRepository) ClearReportChannel(guildID string) error {
	if err := r.store.Delete(guildID); err != nil {
		return fmt.Errorf("failed to clear settings for guild %s: %w", guildID, err)
	}
	return nil
}
