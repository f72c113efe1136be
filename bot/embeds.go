package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"shieldbot/events"
	"shieldbot/models"
)

const (
	colorBan   = 0xad2e27
	colorUnban = 0x44ad34
)

// flagLine renders the raised flags as "[flag a] [flag b]" or a
// placeholder when nothing is raised.
func flagLine(flags models.FlagSet) string {
	descriptions := flags.Describe()
	if len(descriptions) == 0 {
		return "No flags."
	}
	return "[" + strings.Join(descriptions, "] [") + "]"
}

// buildReportEmbed renders a moderation action for the guild's report
// channel.
func buildReportEmbed(event events.ModerationActionEvent, avatarURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "User ID: " + event.AccountID,
		},
	}

	switch event.Action {
	case events.ActionBanOnJoin:
		description := fmt.Sprintf("<@%s>\n", event.AccountID)
		description += "```asciidoc\n"
		description += fmt.Sprintf("= %s (score: %d)\n", event.AccountTag, event.Score)
		description += flagLine(event.Flags) + "\n"
		description += "```"

		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    "User was banned on join.",
			IconURL: avatarURL,
		}
		embed.Description = description
		embed.Color = colorBan

	case events.ActionUnbanOnVerification:
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    "User was unbanned after verification.",
			IconURL: avatarURL,
		}
		embed.Description = fmt.Sprintf("<@%s> %s", event.AccountID, event.AccountTag)
		embed.Color = colorUnban
	}

	return embed
}

// formatSuspectList renders the staff-facing suspect listing.
func formatSuspectList(suspects []*models.Suspect) string {
	var sb strings.Builder
	if len(suspects) == 1 {
		sb.WriteString("There is 1 suspect:\n")
	} else {
		fmt.Fprintf(&sb, "There are %d suspects:\n", len(suspects))
	}

	sb.WriteString("```asciidoc\n")
	for i, suspect := range suspects {
		if i != 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "= %d: %s (score: %d)\n", i, suspect.Account.Tag, suspect.Score)
		sb.WriteString(flagLine(suspect.Flags) + "\n")
	}
	sb.WriteString("```")
	return sb.String()
}
