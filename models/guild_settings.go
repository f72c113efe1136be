package models

// GuildSettings holds per-guild moderation configuration.
type GuildSettings struct {
	GuildID string `json:"guild_id"`
	// ReportChannelID is the channel automatic actions are reported to.
	// Empty means reporting is disabled.
	ReportChannelID string `json:"report_channel_id"`
}
