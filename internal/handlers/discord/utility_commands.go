package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
	"github.com/ivangarzab/kluvs-bot/internal/services/openai"
	"github.com/ivangarzab/kluvs-bot/internal/services/weather"
)

// WeatherCommand handles the /weather command
type WeatherCommand struct {
	BaseCommand
	weatherService weather.Service
	log            *logrus.Logger
}

// NewWeatherCommand creates a new weather command handler
func NewWeatherCommand(weatherService weather.Service, log *logrus.Logger) *WeatherCommand {
	return &WeatherCommand{
		BaseCommand: BaseCommand{
			Name:        "weather",
			Description: "Show current weather for a location",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "location",
					Description: "City name, postal code, or lat/long",
					Required:    true,
				},
			},
		},
		weatherService: weatherService,
		log:            log,
	}
}

// Handle processes a Discord interaction for the weather command
func (c *WeatherCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	location := ""
	if opt, ok := optionMap(i)["location"]; ok {
		location = opt.StringValue()
	}
	if location == "" {
		return RespondWithEphemeralMessage(s, i, "Please include a location to look up.")
	}

	if err := DeferResponse(s, i); err != nil {
		return err
	}

	output, err := c.weatherService.GetWeather(context.Background(), &weather.GetWeatherInput{
		Location: location,
	})
	if err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return FollowUpWithMessage(s, i, fmt.Sprintf("I couldn't find a location called **%s**.", location))
		}
		c.log.WithError(err).WithField("location", location).Error("weather command failed")
		return FollowUpWithError(s, i, "I couldn't fetch the weather right now. Please try again later.")
	}

	place := output.Location
	if output.Region != "" {
		place = fmt.Sprintf("%s, %s", output.Location, output.Region)
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🌤️ Weather in %s", place),
		Description: fmt.Sprintf("**%s**", output.Condition),
		Color:       colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Temperature", Value: fmt.Sprintf("%.1f°F / %.1f°C", output.TempF, output.TempC), Inline: true},
			{Name: "Feels Like", Value: fmt.Sprintf("%.1f°F", output.FeelsLikeF), Inline: true},
			{Name: "Humidity", Value: fmt.Sprintf("%d%%", output.Humidity), Inline: true},
		},
	})
}

// FunFactCommand handles the /funfact command
type FunFactCommand struct {
	BaseCommand
	funService fun.Service
}

// NewFunFactCommand creates a new funfact command handler
func NewFunFactCommand(funService fun.Service) *FunFactCommand {
	return &FunFactCommand{
		BaseCommand: BaseCommand{
			Name:        "funfact",
			Description: "Share a random book-related fun fact",
		},
		funService: funService,
	}
}

// Handle processes a Discord interaction for the funfact command
func (c *FunFactCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.funService.GetFunFact(context.Background())
	if err != nil {
		return RespondWithError(s, i, "I'm out of fun facts right now.")
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📖 Fun Fact",
		Description: output.Message,
		Color:       colorPurple,
	})
}

// RobotCommand handles the /robot command
type RobotCommand struct {
	BaseCommand
	openaiService openai.Service
	log           *logrus.Logger
}

// NewRobotCommand creates a new robot command handler
func NewRobotCommand(openaiService openai.Service, log *logrus.Logger) *RobotCommand {
	return &RobotCommand{
		BaseCommand: BaseCommand{
			Name:        "robot",
			Description: "Chat with the bot (AI-powered)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "What would you like to say?",
					Required:    true,
				},
			},
		},
		openaiService: openaiService,
		log:           log,
	}
}

// Handle processes a Discord interaction for the robot command
func (c *RobotCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	prompt := ""
	if opt, ok := optionMap(i)["prompt"]; ok {
		prompt = opt.StringValue()
	}
	if prompt == "" {
		return RespondWithEphemeralMessage(s, i, "Please include something to say.")
	}

	if err := DeferResponse(s, i); err != nil {
		return err
	}

	output, err := c.openaiService.Ask(context.Background(), &openai.AskInput{Question: prompt})
	if err != nil {
		c.log.WithError(err).Error("robot command failed")
		return FollowUpWithError(s, i, "My circuits are fried. Please try again later.")
	}

	return FollowUpWithMessage(s, i, output.Answer)
}

// RollDiceCommand handles the /rolldice command
type RollDiceCommand struct {
	BaseCommand
	funService fun.Service
}

// NewRollDiceCommand creates a new rolldice command handler
func NewRollDiceCommand(funService fun.Service) *RollDiceCommand {
	return &RollDiceCommand{
		BaseCommand: BaseCommand{
			Name:        "rolldice",
			Description: "Roll a die",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "sides",
					Description: "Number of sides (default 6)",
					Required:    false,
				},
			},
		},
		funService: funService,
	}
}

// Handle processes a Discord interaction for the rolldice command
func (c *RollDiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	sides := 0
	if opt, ok := optionMap(i)["sides"]; ok {
		sides = int(opt.IntValue())
	}

	output, err := c.funService.RollDice(context.Background(), &fun.RollDiceInput{Sides: sides})
	if err != nil {
		return RespondWithError(s, i, "The die rolled off the table.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🎲 You rolled a **%d** (d%d)", output.Value, output.Sides))
}

// FlipCoinCommand handles the /flipcoin command
type FlipCoinCommand struct {
	BaseCommand
	funService fun.Service
}

// NewFlipCoinCommand creates a new flipcoin command handler
func NewFlipCoinCommand(funService fun.Service) *FlipCoinCommand {
	return &FlipCoinCommand{
		BaseCommand: BaseCommand{
			Name:        "flipcoin",
			Description: "Flip a coin",
		},
		funService: funService,
	}
}

// Handle processes a Discord interaction for the flipcoin command
func (c *FlipCoinCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.funService.FlipCoin(context.Background())
	if err != nil {
		return RespondWithError(s, i, "The coin rolled under the couch.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🪙 **%s**!", output.Result))
}

// ChooseCommand handles the /choose command
type ChooseCommand struct {
	BaseCommand
	funService fun.Service
}

// NewChooseCommand creates a new choose command handler
func NewChooseCommand(funService fun.Service) *ChooseCommand {
	return &ChooseCommand{
		BaseCommand: BaseCommand{
			Name:        "choose",
			Description: "Let me pick one option for you",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "options",
					Description: "Comma-separated options to choose from",
					Required:    true,
				},
			},
		},
		funService: funService,
	}
}

// Handle processes a Discord interaction for the choose command
func (c *ChooseCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	raw := ""
	if opt, ok := optionMap(i)["options"]; ok {
		raw = opt.StringValue()
	}

	options := make([]string, 0)
	for _, option := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(option); trimmed != "" {
			options = append(options, trimmed)
		}
	}

	if len(options) < 2 {
		return RespondWithEphemeralMessage(s, i, "Give me at least two comma-separated options to choose from.")
	}

	output, err := c.funService.Choose(context.Background(), &fun.ChooseInput{Options: options})
	if err != nil {
		return RespondWithError(s, i, "I couldn't make up my mind.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🤔 I choose... **%s**", output.Choice))
}
