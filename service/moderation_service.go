package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"shieldbot/events"
	"shieldbot/models"
)

var (
	// ErrBanNotFound is returned when a verification token matches no
	// pending ban, including tokens that were already redeemed.
	ErrBanNotFound = errors.New("ban could not be found")

	// ErrGuildUnavailable is returned when the guild a ban originated
	// from is no longer reachable.
	ErrGuildUnavailable = errors.New("the guild you were banned from is not available")

	// ErrNoSuspects is returned by list-consuming operations when the
	// guild has no prepared suspect list.
	ErrNoSuspects = errors.New("the suspect list is empty")
)

// ModerationConfig carries the tunables of the moderation workflow.
type ModerationConfig struct {
	// BaseURL is the public address of the verification web server.
	BaseURL string
	// AutoBanThreshold is the minimum score that triggers a ban on join.
	AutoBanThreshold int
	// BanPurgeDays is how many days of messages the platform purges when
	// banning.
	BanPurgeDays int
}

type moderationService struct {
	gateway       DiscordGateway
	state         *GuildState
	pendingBans   PendingBanRepository
	verifiedUsers VerifiedUserRepository
	guildSettings GuildSettingsRepository
	eventBus      *events.Bus
	config        ModerationConfig
}

// NewModerationService creates the moderation workflow service.
func NewModerationService(
	gateway DiscordGateway,
	state *GuildState,
	pendingBans PendingBanRepository,
	verifiedUsers VerifiedUserRepository,
	guildSettings GuildSettingsRepository,
	eventBus *events.Bus,
	config ModerationConfig,
) ModerationService {
	return &moderationService{
		gateway:       gateway,
		state:         state,
		pendingBans:   pendingBans,
		verifiedUsers: verifiedUsers,
		guildSettings: guildSettings,
		eventBus:      eventBus,
		config:        config,
	}
}

func (s *moderationService) PrepareSuspects(ctx context.Context, guildID string, candidates []models.Account, threshold int) ([]*models.Suspect, error) {
	suspects := BuildSuspectList(candidates, threshold, time.Now())
	s.state.ReplaceSuspects(guildID, suspects)

	log.WithFields(log.Fields{
		"guildID":    guildID,
		"candidates": len(candidates),
		"suspects":   len(suspects),
		"threshold":  threshold,
	}).Info("Prepared suspect list")

	return suspects, nil
}

func (s *moderationService) Suspects(guildID string) []*models.Suspect {
	return s.state.Suspects(guildID)
}

func (s *moderationService) SpareSuspects(guildID string, indices []int) ([]*models.Suspect, error) {
	if len(s.state.Suspects(guildID)) == 0 {
		return nil, ErrNoSuspects
	}
	return s.state.RemoveSuspectsAt(guildID, indices), nil
}

func (s *moderationService) KickSuspects(ctx context.Context, guildID string) (int, error) {
	suspects := s.state.Suspects(guildID)
	if len(suspects) == 0 {
		return 0, ErrNoSuspects
	}

	for _, suspect := range suspects {
		if err := s.gateway.KickMember(guildID, suspect.AccountID, "You set off too many security flags."); err != nil {
			return 0, fmt.Errorf("failed to kick %s: %w", suspect.Account.Tag, err)
		}
	}

	// The list deliberately stays in place until the next prepare, so a
	// moderator can still re-ban residue after a kick.
	return len(suspects), nil
}

func (s *moderationService) BanSuspects(ctx context.Context, guildID string) (int, error) {
	suspects := s.state.Suspects(guildID)
	if len(suspects) == 0 {
		return 0, ErrNoSuspects
	}

	for _, suspect := range suspects {
		if _, err := s.BanWithVerification(ctx, guildID, suspect.Account); err != nil {
			return 0, fmt.Errorf("failed to ban %s: %w", suspect.Account.Tag, err)
		}
	}
	return len(suspects), nil
}

func (s *moderationService) AutoModerateOnJoin(ctx context.Context, guildID string, account models.Account) error {
	verified, err := s.verifiedUsers.GetByAccountID(account.ID)
	if err != nil {
		return fmt.Errorf("failed to check verification status: %w", err)
	}
	if verified != nil {
		log.WithFields(log.Fields{
			"accountID": account.ID,
			"guildID":   guildID,
		}).Debug("Skipping previously verified account")
		return nil
	}

	flags := ComputeFlags(account, time.Now())
	score := flags.Score()
	if score < s.config.AutoBanThreshold {
		return nil
	}

	if _, err := s.BanWithVerification(ctx, guildID, account); err != nil {
		return err
	}

	s.eventBus.Emit(ctx, events.ModerationActionEvent{
		Action:     events.ActionBanOnJoin,
		GuildID:    guildID,
		AccountID:  account.ID,
		AccountTag: account.Tag,
		Flags:      flags,
		Score:      score,
	})
	return nil
}

func (s *moderationService) BanWithVerification(ctx context.Context, guildID string, account models.Account) (*models.PendingBan, error) {
	guildName, err := s.gateway.GuildName(guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGuildUnavailable, guildID)
	}

	log.Infof("Banning user %q with verification", account.Tag)
	token := uuid.NewString()

	// The DM must go out before the ban: once banned the user shares no
	// guild with the bot and can no longer be messaged. A closed-DM
	// failure is non-fatal, the ban proceeds regardless.
	if err := s.gateway.SendDirectMessage(account.ID, s.banMessage(guildID, guildName, token)); err != nil {
		log.WithFields(log.Fields{
			"accountID": account.ID,
			"guildID":   guildID,
		}).Errorf("Could not deliver verification link: %v", err)
	}

	if err := s.gateway.BanMember(guildID, account.ID, "User triggered too many security flags.", s.config.BanPurgeDays); err != nil {
		// No pending record has been written yet, so a failed ban leaves
		// nothing dangling and the token in the DM stays unknown.
		return nil, fmt.Errorf("failed to ban %s: %w", account.Tag, err)
	}

	ban := &models.PendingBan{
		Token:      token,
		AccountID:  account.ID,
		AccountTag: account.Tag,
		GuildID:    guildID,
		CreatedAt:  time.Now(),
	}
	if err := s.pendingBans.Create(ban); err != nil {
		return nil, fmt.Errorf("failed to record pending ban for %s: %w", account.Tag, err)
	}
	return ban, nil
}

func (s *moderationService) banMessage(guildID, guildName, token string) string {
	message := fmt.Sprintf("You were banned from *%s* server for setting off too many security flags.", guildName)
	message += " The ban will be lifted if you verify yourself on this page:\n\n"
	message += fmt.Sprintf("%s/verify/%s", s.config.BaseURL, token)
	if inviteURL := s.state.InviteURL(guildID); inviteURL != "" {
		message += "\n\nOnce you have verified yourself, you can rejoin the server using this link:\n"
		message += inviteURL + ` (click on it even if it says "Invalid Invite")`
	}
	return message
}

func (s *moderationService) AttemptVerification(ctx context.Context, token string) error {
	ban, err := s.pendingBans.GetByToken(token)
	if err != nil {
		return fmt.Errorf("failed to look up pending ban: %w", err)
	}
	if ban == nil {
		return ErrBanNotFound
	}

	if _, err := s.gateway.GuildName(ban.GuildID); err != nil {
		return ErrGuildUnavailable
	}

	log.Infof("Unbanning user %q after verification", ban.AccountTag)
	if err := s.gateway.UnbanMember(ban.GuildID, ban.AccountID); err != nil {
		return fmt.Errorf("failed to lift ban for %s: %w", ban.AccountTag, err)
	}

	if err := s.pendingBans.Delete(token); err != nil {
		return fmt.Errorf("failed to consume pending ban: %w", err)
	}
	if err := s.verifiedUsers.Create(&models.VerifiedUser{
		AccountID:  ban.AccountID,
		GuildID:    ban.GuildID,
		VerifiedAt: time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to record verification: %w", err)
	}

	s.eventBus.Emit(ctx, events.ModerationActionEvent{
		Action:     events.ActionUnbanOnVerification,
		GuildID:    ban.GuildID,
		AccountID:  ban.AccountID,
		AccountTag: ban.AccountTag,
	})
	return nil
}

func (s *moderationService) PendingBan(token string) (*models.PendingBan, error) {
	return s.pendingBans.GetByToken(token)
}

func (s *moderationService) SetReportChannel(guildID, channelID string) error {
	return s.guildSettings.SetReportChannel(guildID, channelID)
}

func (s *moderationService) ClearReportChannel(guildID string) error {
	return s.guildSettings.ClearReportChannel(guildID)
}

func (s *moderationService) ReportChannel(guildID string) (string, error) {
	settings, err := s.guildSettings.Get(guildID)
	if err != nil {
		return "", err
	}
	return settings.ReportChannelID, nil
}

func (s *moderationService) SetInviteURL(guildID, inviteURL string) {
	s.state.SetInviteURL(guildID, inviteURL)
}
