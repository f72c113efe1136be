package models

import (
	"time"
)

// Account is a read-only view of a Discord user, carrying only the
// attributes the flag engine inspects.
type Account struct {
	ID        string
	Username  string
	Tag       string // username plus discriminator, for display
	AvatarURL string // empty when the user has no custom avatar
	CreatedAt time.Time
}
