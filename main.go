package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/kritsada/taladnat-bot/config"
	"github.com/kritsada/taladnat-bot/internal/bot"
	"github.com/kritsada/taladnat-bot/internal/llm"
	"github.com/kritsada/taladnat-bot/internal/storage"
	"github.com/kritsada/taladnat-bot/talad"
)

const logFileName = "taladnat-bot.log"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	config.LoadEnvFile()

	// JOURNAL_STREAM is set by systemd when running as a service.
	// Skip file logging under systemd (journald handles it, and ProtectSystem=strict
	// makes the working directory read-only).
	if _, underSystemd := os.LookupEnv("JOURNAL_STREAM"); underSystemd {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		// Local development: log to both stderr and file
		logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open log file")
		}
		defer logFile.Close()

		consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
		fileWriter := zerolog.ConsoleWriter{Out: logFile, NoColor: true}
		multiWriter := io.MultiWriter(consoleWriter, fileWriter)
		log.Logger = log.Output(multiWriter)

		log.Info().Str("logFile", logFileName).Msg("logging to file")
	}

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal().Msg("BOT_TOKEN is not set")
	}

	// Credential encryption key (required)
	tokenKey := os.Getenv("TALAD_TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal().Msg("TALAD_TOKEN_KEY is not set")
	}

	// Database path (optional, defaults to taladnat.db)
	dbPath := os.Getenv("TALAD_DB_PATH")
	if dbPath == "" {
		dbPath = "taladnat.db"
	}

	tg, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telegram bot")
	}
	tg.Debug = false
	log.Info().Str("username", tg.Self.UserName).Msg("authorized on account")

	// Register bot commands for Telegram's command menu
	bot.RegisterCommands(tg)

	// Derive encryption key from passphrase
	encryptionKey, err := storage.DeriveKey(tokenKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to derive encryption key")
	}

	store, err := storage.NewSQLiteStore(dbPath, encryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}
	defer store.Close()
	log.Info().Str("dbPath", dbPath).Msg("store initialized")

	// Create context that cancels on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize photo analyzer (GEMINI_API_KEY is required)
	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Fatal().Msg("GEMINI_API_KEY environment variable is required")
	}
	geminiAnalyzer, err := llm.NewGeminiAnalyzer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gemini photo analyzer")
	}
	log.Info().Msg("gemini photo analyzer initialized")

	// Wrap with cache
	analyzer := llm.NewCachedAnalyzer(geminiAnalyzer, store)
	log.Info().Msg("photo analysis caching enabled")

	// Marketplace client for price comparisons
	market := talad.NewClient(talad.ClientOpts{
		BaseURL: os.Getenv("TALAD_API_URL"),
		Auth:    os.Getenv("TALAD_API_TOKEN"),
	})

	// Admin user for whitelist management (optional; zero means the bot
	// answers everyone)
	var adminID int64
	if v := os.Getenv("ADMIN_USER_ID"); v != "" {
		adminID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid ADMIN_USER_ID")
		}
		log.Info().Int64("adminID", adminID).Msg("whitelist enabled")
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return runBot(ctx, tg, store, analyzer, market, adminID)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error().Err(err).Msg("shutdown with error")
	} else {
		log.Info().Msg("shutdown complete")
	}
}

func runBot(ctx context.Context, tg *tgbotapi.BotAPI, store storage.Store, analyzer llm.Analyzer, market *talad.Client, adminID int64) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := tg.GetUpdatesChan(updateConfig)

	b := bot.NewBot(tg, store, analyzer, market, adminID)

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping bot update loop")
			tg.StopReceivingUpdates()
			log.Info().Msg("waiting for active handlers to finish")
			wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				log.Warn().Msg("updates channel closed")
				wg.Wait()
				return nil
			}
			wg.Add(1)
			go func(u tgbotapi.Update) {
				defer wg.Done()
				b.HandleUpdate(ctx, u)
			}(update)
		}
	}
}
