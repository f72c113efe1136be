package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"shieldbot/models"
)

// accountFromUser converts a discordgo user into the read-only view the
// flag engine works on. Account creation time is derived from the snowflake
// ID.
func accountFromUser(user *discordgo.User) models.Account {
	createdAt, _ := discordgo.SnowflakeTimestamp(user.ID)

	avatarURL := ""
	if user.Avatar != "" {
		avatarURL = user.AvatarURL("")
	}

	return models.Account{
		ID:        user.ID,
		Username:  user.Username,
		Tag:       user.String(),
		AvatarURL: avatarURL,
		CreatedAt: createdAt,
	}
}

// defaultChannel picks the channel invites are created on: the channel
// sharing the guild's ID if it still exists, then a channel named
// "general", then the first text channel the bot can speak in.
func defaultChannel(session *discordgo.Session, guild *discordgo.Guild) *discordgo.Channel {
	for _, channel := range guild.Channels {
		if channel.ID == guild.ID {
			return channel
		}
	}

	for _, channel := range guild.Channels {
		if channel.Type == discordgo.ChannelTypeGuildText && channel.Name == "general" {
			return channel
		}
	}

	var writable []*discordgo.Channel
	for _, channel := range guild.Channels {
		if channel.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		perms, err := session.State.UserChannelPermissions(session.State.User.ID, channel.ID)
		if err != nil || perms&discordgo.PermissionSendMessages == 0 {
			continue
		}
		writable = append(writable, channel)
	}
	if len(writable) == 0 {
		return nil
	}

	sort.Slice(writable, func(i, j int) bool {
		if writable[i].Position != writable[j].Position {
			return writable[i].Position < writable[j].Position
		}
		return writable[i].ID < writable[j].ID
	})
	return writable[0]
}

// parseIndices parses a comma-separated index list spread over any number
// of tokens, e.g. ["0,", "2", ",3"]. Non-numeric entries are skipped.
func parseIndices(params []string) []int {
	joined := strings.Join(params, "")
	joined = strings.ReplaceAll(joined, " ", "")

	var indices []int
	for _, part := range strings.Split(joined, ",") {
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			indices = append(indices, n)
		}
	}
	return indices
}

func helpText(prefix string) string {
	return fmt.Sprintf("```markdown\n"+
		"Help\n"+
		"----\n"+
		"Commands used to show this message:\n\n"+
		"# %[1]s\n"+
		"# %[1]s help\n\n\n"+
		"Suspect list\n"+
		"------------\n"+
		"The bot maintains a list of suspects for each server. This list can be\n"+
		"used to kick or ban suspicious members. By default, the list is empty.\n\n"+
		"# %[1]s prepare [threshold=3]\n"+
		"→ Initialises the list of suspects based on the list of current server\n"+
		"  members. Suspects with score less than the threshold are ignored.\n\n"+
		"# %[1]s spare <indices>\n"+
		"→ Removes users with specified indices from the suspect list. The\n"+
		"  indices have to be separated with commas.\n\n"+
		"# %[1]s kick\n"+
		"→ Kicks all of the users on the suspect list.\n\n"+
		"# %[1]s ban\n"+
		"→ Bans all of the users on the suspect list, sending each one a message\n"+
		"  with a verification link.\n\n"+
		"# %[1]s list\n"+
		"→ Shows the current list of suspects, indicating the score of each suspect.\n\n\n"+
		"Util\n"+
		"----\n\n"+
		"# %[1]s report-here\n"+
		"→ Makes the bot report all of its automatic actions (mostly bans and\n"+
		"  unbans) to the current channel.\n\n"+
		"# %[1]s no-report\n"+
		"→ Disables automatic reporting.\n"+
		"```", prefix)
}
