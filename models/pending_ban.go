package models

import (
	"time"
)

// PendingBan records a ban awaiting human verification. The token is the
// sole lookup key; the record is destroyed when the token is redeemed.
type PendingBan struct {
	Token      string    `json:"token"`
	AccountID  string    `json:"account_id"`
	AccountTag string    `json:"account_tag"`
	GuildID    string    `json:"guild_id"`
	CreatedAt  time.Time `json:"created_at"`
}
