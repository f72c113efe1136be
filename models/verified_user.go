package models

import (
	"time"
)

// VerifiedUser marks an account that passed human verification. Checked
// before auto-banning so verified users are never re-flagged automatically.
// Records never expire.
type VerifiedUser struct {
	AccountID  string    `json:"account_id"`
	GuildID    string    `json:"guild_id"`
	VerifiedAt time.Time `json:"verified_at"`
}
