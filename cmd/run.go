package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"

	"shieldbot/bot"
	"shieldbot/config"
	"shieldbot/events"
	"shieldbot/repository"
	"shieldbot/service"
	"shieldbot/storage"
	"shieldbot/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting shieldbot...")

	// Load configuration
	cfg := config.Get()

	// Open the JSON key-value stores, one per key space
	pendingBanStore, err := storage.Open(filepath.Join(cfg.DataDir, "verification.json"))
	if err != nil {
		return fmt.Errorf("failed to open pending ban store: %w", err)
	}
	verifiedStore, err := storage.Open(filepath.Join(cfg.DataDir, "whitelist.json"))
	if err != nil {
		return fmt.Errorf("failed to open verified user store: %w", err)
	}
	settingsStore, err := storage.Open(filepath.Join(cfg.DataDir, "guild-report.json"))
	if err != nil {
		return fmt.Errorf("failed to open guild settings store: %w", err)
	}

	pendingBans := repository.NewPendingBanRepository(pendingBanStore)
	verifiedUsers := repository.NewVerifiedUserRepository(verifiedStore)
	guildSettings := repository.NewGuildSettingsRepository(settingsStore)

	// Initialize event bus
	eventBus := events.NewBus()

	// Create the Discord session up front: the moderation service talks to
	// the platform through a thin gateway over it.
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("error creating discord session: %w", err)
	}

	// Initialize services
	guildState := service.NewGuildState()
	moderationService := service.NewModerationService(
		bot.NewSessionGateway(session),
		guildState,
		pendingBans,
		verifiedUsers,
		guildSettings,
		eventBus,
		service.ModerationConfig{
			BaseURL:          cfg.Host,
			AutoBanThreshold: cfg.AutoBanThreshold,
			BanPurgeDays:     cfg.BanPurgeDays,
		},
	)

	// Initialize Discord bot
	botConfig := bot.Config{
		CommandPrefix:    cfg.CommandPrefix,
		DefaultThreshold: cfg.AutoBanThreshold,
	}
	discordBot, err := bot.New(session, botConfig, moderationService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Start the verification web server
	webServer := web.NewServer(
		web.Config{RecaptchaSiteKey: cfg.RecaptchaSiteKey},
		moderationService,
		web.NewRecaptchaVerifier(cfg.RecaptchaSecretKey),
	)
	webErr := make(chan error, 1)
	go func() {
		webErr <- webServer.Listen(fmt.Sprintf(":%d", cfg.Port))
	}()

	log.Infof("Bot is running in %s mode...", cfg.Environment)

	select {
	case <-ctx.Done():
	case err := <-webErr:
		if err != nil {
			log.Errorf("Verification server failed: %v", err)
		}
	}

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down verification server: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}
