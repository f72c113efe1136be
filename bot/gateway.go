package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SessionGateway adapts a discordgo session to the moderation workflow's
// platform action surface.
type SessionGateway struct {
	session *discordgo.Session
}

// NewSessionGateway wraps the session for use by the service layer.
func NewSessionGateway(session *discordgo.Session) *SessionGateway {
	return &SessionGateway{session: session}
}

func (g *SessionGateway) GuildName(guildID string) (string, error) {
	if guild, err := g.session.State.Guild(guildID); err == nil {
		return guild.Name, nil
	}
	guild, err := g.session.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("guild %s is not reachable: %w", guildID, err)
	}
	return guild.Name, nil
}

func (g *SessionGateway) BanMember(guildID, accountID, reason string, purgeDays int) error {
	return g.session.GuildBanCreateWithReason(guildID, accountID, reason, purgeDays)
}

func (g *SessionGateway) UnbanMember(guildID, accountID string) error {
	return g.session.GuildBanDelete(guildID, accountID)
}

func (g *SessionGateway) KickMember(guildID, accountID, reason string) error {
	return g.session.GuildMemberDeleteWithReason(guildID, accountID, reason)
}

func (g *SessionGateway) SendDirectMessage(accountID, content string) error {
	channel, err := g.session.UserChannelCreate(accountID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}
	if _, err := g.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}
	return nil
}
