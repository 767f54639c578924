package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/api"
	"github.com/ivangarzab/kluvs-bot/internal/config"
	"github.com/ivangarzab/kluvs-bot/internal/handlers/discord"
	"github.com/ivangarzab/kluvs-bot/internal/scheduler"
	"github.com/ivangarzab/kluvs-bot/internal/services/club"
	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
	openaiService "github.com/ivangarzab/kluvs-bot/internal/services/openai"
	weatherService "github.com/ivangarzab/kluvs-bot/internal/services/weather"
)

// version is overridden at build time with -ldflags
var version = "dev"

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "dev" {
		log.SetLevel(logrus.DebugLevel)
	}

	// Initialize the backend API client
	apiClient, err := api.New(&api.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
		Logger:  log,
	})
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	// Initialize services
	clubSvc, err := club.New(&club.Config{
		APIClient: apiClient,
		Logger:    log,
	})
	if err != nil {
		log.Fatalf("Failed to create club service: %v", err)
	}

	funSvc := fun.New(&fun.Config{})

	openaiSvc, err := openaiService.New(&openaiService.Config{
		APIKey: cfg.OpenAIKey,
		Logger: log,
	})
	if err != nil {
		log.Fatalf("Failed to create AI service: %v", err)
	}

	weatherSvc, err := weatherService.New(&weatherService.Config{
		APIKey: cfg.WeatherKey,
		Logger: log,
	})
	if err != nil {
		log.Fatalf("Failed to create weather service: %v", err)
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.Token,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		DefaultChannelID: cfg.DefaultChannelID,
		CommandPrefix:    cfg.CommandPrefix,
		Version:          version,
		ClubService:      clubSvc,
		OpenAIService:    openaiSvc,
		WeatherService:   weatherSvc,
		FunService:       funSvc,
		Logger:           log,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Initialize the daily reminder scheduler
	reminders, err := scheduler.New(&scheduler.Config{
		Sender:     bot,
		FunService: funSvc,
		ChannelID:  cfg.DefaultChannelID,
		Hour:       cfg.ReminderHour,
		Timezone:   cfg.ReminderTimezone,
		Chance:     cfg.ReminderChance,
		Logger:     log,
	})
	if err != nil {
		log.Fatalf("Failed to create reminder scheduler: %v", err)
	}
	reminders.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	reminders.Stop()

	if err := bot.Stop(); err != nil {
		log.Errorf("Error stopping bot: %v", err)
	}

	log.Info("Bot has been shut down")
}
