package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// HelpCommand handles the /help command
type HelpCommand struct {
	BaseCommand
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand() *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			Name:        "help",
			Description: "Show what I can do",
		},
	}
}

// Handle processes a Discord interaction for the help command
func (c *HelpCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "📖 Book Club Bot",
		Description: "I keep track of your book club's reading sessions and " +
			"throw in a few extras.",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Book Club",
				Value: "`/book` current book • `/duedate` session due date • " +
					"`/session` session details • `/discussions` discussion schedule",
			},
			{
				Name: "AI",
				Value: "`/ask` question about the current book • " +
					"`/book_summary` summary of the current book • `/robot` free-form chat",
			},
			{
				Name: "Extras",
				Value: "`/weather` current conditions • `/funfact` book trivia • " +
					"`/rolldice` roll a die • `/flipcoin` flip a coin • `/choose` pick an option",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Use /usage for examples"},
	})
}

// UsageCommand handles the /usage command
type UsageCommand struct {
	BaseCommand
}

// NewUsageCommand creates a new usage command handler
func NewUsageCommand() *UsageCommand {
	return &UsageCommand{
		BaseCommand: BaseCommand{
			Name:        "usage",
			Description: "Show usage examples",
		},
	}
}

// Handle processes a Discord interaction for the usage command
func (c *UsageCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "🛠️ Usage",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "/ask",
				Value: "`/ask question: Who is the narrator?`\nAnswers questions about the active book.",
			},
			{
				Name:  "/weather",
				Value: "`/weather location: San Francisco`\nAlso accepts postal codes and lat/long pairs.",
			},
			{
				Name:  "/choose",
				Value: "`/choose options: fiction, non-fiction, poetry`\nComma-separated options.",
			},
			{
				Name:  "/rolldice",
				Value: "`/rolldice sides: 20`\nDefaults to a six-sided die.",
			},
		},
	})
}

// VersionCommand handles the /version command
type VersionCommand struct {
	BaseCommand
	version string
}

// NewVersionCommand creates a new version command handler
func NewVersionCommand(version string) *VersionCommand {
	return &VersionCommand{
		BaseCommand: BaseCommand{
			Name:        "version",
			Description: "Show the bot version",
		},
		version: version,
	}
}

// Handle processes a Discord interaction for the version command
func (c *VersionCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return RespondWithMessage(s, i, fmt.Sprintf("🤖 Running version **%s**", c.version))
}
