package bot

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"shieldbot/events"
	"shieldbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	CommandPrefix    string
	DefaultThreshold int
}

type Bot struct {
	config     Config
	session    *discordgo.Session
	moderation service.ModerationService
	router     *Router
}

// New wires the bot onto an existing session, registers gateway handlers
// and opens the connection.
func New(session *discordgo.Session, config Config, moderation service.ModerationService, eventBus *events.Bus) (*Bot, error) {
	bot := &Bot{
		config:     config,
		session:    session,
		moderation: moderation,
		router:     NewRouter(),
	}
	bot.registerCommands()

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleGuildCreate)
	session.AddHandler(bot.handleGuildMemberAdd)
	session.AddHandler(bot.handleMessageCreate)

	// Report rendering is decoupled from the workflow: the service emits
	// events, the bot turns them into report-channel embeds.
	eventBus.Subscribe(events.EventTypeModerationAction, bot.handleModerationAction)

	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Bot logged in as %s", s.State.User.String())
}

// handleGuildCreate fires once per guild on startup and again whenever the
// bot joins a new guild; both are the moments to refresh the rejoin invite.
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	go b.refreshInvite(g.Guild)
}

func (b *Bot) refreshInvite(guild *discordgo.Guild) {
	channel := defaultChannel(b.session, guild)
	if channel == nil {
		log.Warnf("No channel available for invite in guild %q", guild.Name)
		return
	}

	invite, err := b.session.ChannelInviteCreate(channel.ID, discordgo.Invite{})
	if err != nil {
		log.Errorf("Error occurred while preparing invite for server %q: %v", guild.Name, err)
		return
	}
	b.moderation.SetInviteURL(guild.ID, "https://discord.gg/"+invite.Code)
}

func (b *Bot) handleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	go func() {
		account := accountFromUser(m.User)
		if err := b.moderation.AutoModerateOnJoin(context.Background(), m.GuildID, account); err != nil {
			log.Errorf("An error occurred while processing new member: %v", err)
		}
	}()
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if !strings.HasPrefix(content, b.config.CommandPrefix) {
		return
	}

	ctx := &CommandContext{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		AuthorID:  m.Author.ID,
	}

	command := strings.TrimSpace(strings.TrimPrefix(content, b.config.CommandPrefix))
	if command == "" {
		b.invoke(b.handleHelp, ctx)
		return
	}

	// Moderation commands only make sense inside a guild; elsewhere the
	// message is silently ignored.
	if m.GuildID == "" {
		return
	}

	handler := b.router.Route(command)
	if handler == nil {
		return
	}

	ctx.Params = strings.Fields(command)
	b.invoke(handler, ctx)
}

// invoke runs a command handler in its own goroutine. Failures are caught
// and reported back to the invoking channel so one bad command never takes
// anything else down.
func (b *Bot) invoke(handler HandlerFunc, ctx *CommandContext) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("Command handler panicked: %v", r)
				b.replyError(ctx, fmt.Errorf("%v", r))
			}
		}()

		if err := handler(ctx); err != nil {
			log.Errorf("Command failed in guild %s: %v", ctx.GuildID, err)
			b.replyError(ctx, err)
		}
	}()
}

func (b *Bot) replyError(ctx *CommandContext, err error) {
	content := fmt.Sprintf("<@%s>, an error occurred while fulfilling your request: `%v`", ctx.AuthorID, err)
	if _, sendErr := b.session.ChannelMessageSend(ctx.ChannelID, content); sendErr != nil {
		log.Errorf("Error sending error response: %v", sendErr)
	}
}

// handleModerationAction renders an automatic action into the guild's
// report channel. Reporting failures are logged and never propagate to the
// action that triggered them.
func (b *Bot) handleModerationAction(ctx context.Context, event events.Event) {
	action, ok := event.(events.ModerationActionEvent)
	if !ok {
		return
	}

	channelID, err := b.moderation.ReportChannel(action.GuildID)
	if err != nil {
		log.Errorf("Failed to resolve report channel for guild %s: %v", action.GuildID, err)
		return
	}
	if channelID == "" {
		return
	}

	avatarURL := ""
	if user, err := b.session.User(action.AccountID); err == nil {
		avatarURL = user.AvatarURL("")
	}

	if _, err := b.session.ChannelMessageSendEmbed(channelID, buildReportEmbed(action, avatarURL)); err != nil {
		log.Errorf("Failed to send report to channel %s: %v", channelID, err)
	}
}

// fetchAllMembers pages through the guild's full member snapshot.
func (b *Bot) fetchAllMembers(guildID string) ([]*discordgo.Member, error) {
	var all []*discordgo.Member
	after := ""
	for {
		page, err := b.session.GuildMembers(guildID, after, 1000)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guild members: %w", err)
		}
		all = append(all, page...)
		if len(page) < 1000 {
			return all, nil
		}
		after = page[len(page)-1].User.ID
	}
}
