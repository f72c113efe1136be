package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"shieldbot/models"
	"shieldbot/service"
)

func (b *Bot) registerCommands() {
	b.router.Handle("help", b.handleHelp)
	b.router.Handle("ping", b.handlePing)
	b.router.Handle("prepare", b.handlePrepare)
	b.router.Handle("list", b.handleList)
	b.router.Handle("spare", b.handleSpare)
	b.router.Handle("kick", b.handleKick)
	b.router.Handle("ban", b.handleBan)
	b.router.Handle("report-here", b.handleReportHere)
	b.router.Handle("no-report", b.handleNoReport)
}

func (b *Bot) reply(ctx *CommandContext, content string) error {
	if _, err := b.session.ChannelMessageSend(ctx.ChannelID, content); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}
	return nil
}

func (b *Bot) replyEmptyList(ctx *CommandContext) error {
	return b.reply(ctx, fmt.Sprintf("<@%s>, the suspect list is empty. use `%s prepare` to initialise the list.",
		ctx.AuthorID, b.config.CommandPrefix))
}

func (b *Bot) handleHelp(ctx *CommandContext) error {
	return b.reply(ctx, helpText(b.config.CommandPrefix))
}

func (b *Bot) handlePing(ctx *CommandContext) error {
	return b.reply(ctx, fmt.Sprintf("<@%s>, pong!", ctx.AuthorID))
}

func (b *Bot) handlePrepare(ctx *CommandContext) error {
	threshold := b.config.DefaultThreshold
	if len(ctx.Params) >= 2 {
		parsed, err := strconv.Atoi(ctx.Params[1])
		if err != nil {
			return b.reply(ctx, fmt.Sprintf("<@%s>, the threshold must be a number, e.g. `%s prepare 3`.",
				ctx.AuthorID, b.config.CommandPrefix))
		}
		threshold = parsed
	}

	log.Infof("Preparing suspect list for guild %s with threshold %d", ctx.GuildID, threshold)

	members, err := b.fetchAllMembers(ctx.GuildID)
	if err != nil {
		return err
	}

	candidates := make([]models.Account, 0, len(members))
	for _, member := range members {
		candidates = append(candidates, accountFromUser(member.User))
	}

	if _, err := b.moderation.PrepareSuspects(context.Background(), ctx.GuildID, candidates, threshold); err != nil {
		return err
	}

	if err := b.reply(ctx, fmt.Sprintf("Prepared suspect list with score threshold %d.", threshold)); err != nil {
		return err
	}
	return b.handleList(ctx)
}

func (b *Bot) handleList(ctx *CommandContext) error {
	suspects := b.moderation.Suspects(ctx.GuildID)
	if len(suspects) == 0 {
		return b.replyEmptyList(ctx)
	}
	return b.reply(ctx, formatSuspectList(suspects))
}

func (b *Bot) handleSpare(ctx *CommandContext) error {
	if len(ctx.Params) <= 1 {
		return nil
	}

	indices := parseIndices(ctx.Params[1:])
	if _, err := b.moderation.SpareSuspects(ctx.GuildID, indices); err != nil {
		if errors.Is(err, service.ErrNoSuspects) {
			return b.replyEmptyList(ctx)
		}
		return err
	}
	return b.handleList(ctx)
}

func (b *Bot) handleKick(ctx *CommandContext) error {
	count, err := b.moderation.KickSuspects(context.Background(), ctx.GuildID)
	if err != nil {
		if errors.Is(err, service.ErrNoSuspects) {
			return b.replyEmptyList(ctx)
		}
		return err
	}
	return b.reply(ctx, fmt.Sprintf("Kicked %d members.", count))
}

func (b *Bot) handleBan(ctx *CommandContext) error {
	count, err := b.moderation.BanSuspects(context.Background(), ctx.GuildID)
	if err != nil {
		if errors.Is(err, service.ErrNoSuspects) {
			return b.replyEmptyList(ctx)
		}
		return err
	}
	return b.reply(ctx, fmt.Sprintf("Banned %d members (with verification).", count))
}

func (b *Bot) handleReportHere(ctx *CommandContext) error {
	if err := b.moderation.SetReportChannel(ctx.GuildID, ctx.ChannelID); err != nil {
		return err
	}
	return b.reply(ctx, "From now on, automatic actions will be reported to this channel.")
}

func (b *Bot) handleNoReport(ctx *CommandContext) error {
	if err := b.moderation.ClearReportChannel(ctx.GuildID); err != nil {
		return err
	}
	return b.reply(ctx, "Automatic action reporting disabled.")
}
