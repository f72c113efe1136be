package service

import (
	"context"

	"shieldbot/models"
)

// DiscordGateway is the subset of platform actions the moderation workflow
// needs. Implemented by the bot package over the live session, mocked in
// tests.
type DiscordGateway interface {
	// GuildName resolves the guild's display name. Returns an error when
	// the guild is not reachable from the current session.
	GuildName(guildID string) (string, error)
	BanMember(guildID, accountID, reason string, purgeDays int) error
	UnbanMember(guildID, accountID string) error
	KickMember(guildID, accountID, reason string) error
	SendDirectMessage(accountID, content string) error
}

// PendingBanRepository stores bans awaiting verification, keyed by token.
type PendingBanRepository interface {
	GetByToken(token string) (*models.PendingBan, error)
	Create(ban *models.PendingBan) error
	Delete(token string) error
}

// VerifiedUserRepository stores verification records, keyed by account ID.
type VerifiedUserRepository interface {
	GetByAccountID(accountID string) (*models.VerifiedUser, error)
	Create(record *models.VerifiedUser) error
}

// GuildSettingsRepository stores per-guild moderation settings.
type GuildSettingsRepository interface {
	Get(guildID string) (*models.GuildSettings, error)
	SetReportChannel(guildID, channelID string) error
	ClearReportChannel(guildID string) error
}

// ModerationService orchestrates suspect management and the
// ban-with-verification lifecycle.
type ModerationService interface {
	// PrepareSuspects builds a fresh suspect list from the candidate
	// snapshot and replaces the guild's previous list wholesale.
	PrepareSuspects(ctx context.Context, guildID string, candidates []models.Account, threshold int) ([]*models.Suspect, error)

	// Suspects returns the guild's current suspect list, empty if absent.
	Suspects(guildID string) []*models.Suspect

	// SpareSuspects removes the entries at the given zero-based positions,
	// computed against the list before any removal. Out-of-range indices
	// are ignored, duplicates removed once. Returns the remaining list.
	SpareSuspects(guildID string, indices []int) ([]*models.Suspect, error)

	// KickSuspects kicks every account on the suspect list. The list is
	// left intact afterwards, until the next prepare.
	KickSuspects(ctx context.Context, guildID string) (int, error)

	// BanSuspects bans every account on the suspect list with a
	// verification link. The list is left intact afterwards.
	BanSuspects(ctx context.Context, guildID string) (int, error)

	// AutoModerateOnJoin scores a newly joined account and bans it with
	// verification when the score reaches the automatic threshold.
	// Previously verified accounts are never banned.
	AutoModerateOnJoin(ctx context.Context, guildID string, account models.Account) error

	// BanWithVerification bans the account, DMs it a verification link
	// and a rejoin invite, and records a pending ban. The pending ban is
	// only persisted once the platform ban succeeded.
	BanWithVerification(ctx context.Context, guildID string, account models.Account) (*models.PendingBan, error)

	// AttemptVerification redeems a verification token: lifts the ban,
	// consumes the pending record and marks the account verified. Fails
	// with ErrBanNotFound for unknown or already-redeemed tokens and
	// ErrGuildUnavailable when the originating guild is gone.
	AttemptVerification(ctx context.Context, token string) error

	// PendingBan looks up a pending ban by token, nil when unknown.
	PendingBan(token string) (*models.PendingBan, error)

	SetReportChannel(guildID, channelID string) error
	ClearReportChannel(guildID string) error
	ReportChannel(guildID string) (string, error)

	SetInviteURL(guildID, inviteURL string)
}
