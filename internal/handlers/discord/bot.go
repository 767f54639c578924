package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/services/club"
	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
	"github.com/ivangarzab/kluvs-bot/internal/services/openai"
	"github.com/ivangarzab/kluvs-bot/internal/services/weather"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	log        *logrus.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// DefaultChannelID receives welcome messages and reminders
	DefaultChannelID string

	// CommandPrefix is the prefix for text commands, such as "!"
	CommandPrefix string

	// Version reported by the version command
	Version string

	// Services
	ClubService    club.Service
	OpenAIService  openai.Service
	WeatherService weather.Service
	FunService     fun.Service

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ClubService == nil {
		return nil, errors.New("club service cannot be nil")
	}

	if cfg.FunService == nil {
		return nil, errors.New("fun service cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		log:        log,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handleGuildMemberAdd)
	session.AddHandler(bot.handleGuildCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewBookCommand(b.config.ClubService, b.log),
		NewDueDateCommand(b.config.ClubService, b.log),
		NewSessionCommand(b.config.ClubService, b.log),
		NewDiscussionsCommand(b.config.ClubService, b.log),
		NewBookSummaryCommand(b.config.ClubService, b.config.OpenAIService, b.log),
		NewAskCommand(b.config.ClubService, b.config.OpenAIService, b.log),
		NewWeatherCommand(b.config.WeatherService, b.log),
		NewFunFactCommand(b.config.FunService),
		NewRobotCommand(b.config.OpenAIService, b.log),
		NewRollDiceCommand(b.config.FunService),
		NewFlipCoinCommand(b.config.FunService),
		NewChooseCommand(b.config.FunService),
		NewHelpCommand(),
		NewUsageCommand(),
		NewVersionCommand(b.config.Version),
	}

	for _, handler := range handlers {
		if err := b.RegisterCommand(handler); err != nil {
			return fmt.Errorf("failed to register %s command: %w", handler.GetName(), err)
		}
	}

	b.log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.WithError(err).WithField("command", cmdName).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	guildID := b.config.GuildID
	if guildID != "" {
		b.log.WithFields(logrus.Fields{
			"command": cmd.GetName(),
			"guild":   guildID,
		}).Info("registering guild command")
	} else {
		b.log.WithField("command", cmd.GetName()).Info("registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// SendReminder posts a reading reminder embed to a channel
func (b *Bot) SendReminder(channelID string, message string) error {
	_, err := b.session.ChannelMessageSendEmbed(channelID, &discordgo.MessageEmbed{
		Title:       "📚 Daily Reading Reminder",
		Description: message,
		Color:       colorPurple,
	})
	return err
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	if h, ok := b.commands[name]; ok {
		if err := h.Handle(s, i); err != nil {
			b.log.WithError(err).WithField("command", name).Error("command handler failed")
		}
	}
}

// handleMessageCreate handles passive message events and prefix commands
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore our own messages and other bots; two reacting bots can
	// otherwise feed each other forever
	if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
		return
	}

	prefix := b.config.CommandPrefix
	if prefix != "" && strings.HasPrefix(m.Content, prefix) {
		b.handlePrefixCommand(s, m)
		return
	}

	mentionsBot := false
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			mentionsBot = true
			break
		}
	}

	switch decideMessageAction(m.Content, mentionsBot, prefix, b.config.FunService) {
	case actionGreet:
		greeting, err := b.config.FunService.GetGreeting(context.Background())
		if err != nil {
			return
		}
		if _, err := s.ChannelMessageSend(m.ChannelID, greeting.Message); err != nil {
			b.log.WithError(err).WithField("channel", m.ChannelID).Warn("failed to send greeting")
		}
	case actionReact:
		reaction, err := b.config.FunService.GetReaction(context.Background())
		if err != nil {
			return
		}
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, reaction.Message); err != nil {
			b.log.WithError(err).WithField("channel", m.ChannelID).Warn("failed to add reaction")
		}
	case actionCommunityReply:
		if _, err := s.ChannelMessageSend(m.ChannelID, communityReply); err != nil {
			b.log.WithError(err).WithField("channel", m.ChannelID).Warn("failed to send reply")
		}
	}
}

// handlePrefixCommand handles text commands such as "!robot hello"
func (b *Bot) handlePrefixCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	content := strings.TrimPrefix(m.Content, b.config.CommandPrefix)
	name, args, _ := strings.Cut(content, " ")

	switch name {
	case "robot":
		prompt := strings.TrimSpace(args)
		if prompt == "" {
			prompt = "Say hello to the book club."
		}

		output, err := b.config.OpenAIService.Ask(context.Background(), &openai.AskInput{Question: prompt})
		if err != nil {
			b.log.WithError(err).Error("robot prefix command failed")
			return
		}

		if _, err := s.ChannelMessageSend(m.ChannelID, output.Answer); err != nil {
			b.log.WithError(err).WithField("channel", m.ChannelID).Warn("failed to send robot reply")
		}
	case "version":
		if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("🤖 Running version **%s**", b.config.Version)); err != nil {
			b.log.WithError(err).WithField("channel", m.ChannelID).Warn("failed to send version reply")
		}
	}
}

// handleGuildMemberAdd welcomes new members and creates their profile
func (b *Bot) handleGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if b.config.DefaultChannelID != "" {
		greeting, err := b.config.FunService.GetGreeting(context.Background())
		if err == nil {
			embed := &discordgo.MessageEmbed{
				Title:       "👋 New Member!",
				Description: fmt.Sprintf("%s %s", greeting.Message, m.User.Mention()),
				Color:       colorSuccess,
			}
			if _, err := s.ChannelMessageSendEmbed(b.config.DefaultChannelID, embed); err != nil {
				b.log.WithError(err).WithField("channel", b.config.DefaultChannelID).Warn("failed to send welcome message")
			}
		}
	}

	_, err := b.config.ClubService.WelcomeMember(context.Background(), &club.WelcomeMemberInput{
		UserID: m.User.ID,
		Name:   m.User.Username,
	})
	if err != nil {
		b.log.WithError(err).WithFields(logrus.Fields{
			"guild": m.GuildID,
			"user":  m.User.ID,
		}).Error("failed to create member profile")
	}
}

// handleGuildCreate registers the guild with the backend on connect
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	_, err := b.config.ClubService.RegisterServer(context.Background(), &club.RegisterServerInput{
		GuildID: g.ID,
		Name:    g.Name,
	})
	if err != nil {
		b.log.WithError(err).WithField("guild", g.ID).Error("failed to register guild")
	}
}
