package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/services/club"
	"github.com/ivangarzab/kluvs-bot/internal/services/openai"
)

// AskCommand handles the /ask command
type AskCommand struct {
	BaseCommand
	clubService   club.Service
	openaiService openai.Service
	log           *logrus.Logger
}

// NewAskCommand creates a new ask command handler
func NewAskCommand(clubService club.Service, openaiService openai.Service, log *logrus.Logger) *AskCommand {
	return &AskCommand{
		BaseCommand: BaseCommand{
			Name:        "ask",
			Description: "Ask a question about the current book (AI-powered)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "What would you like to know about the book?",
					Required:    true,
				},
			},
		},
		clubService:   clubService,
		openaiService: openaiService,
		log:           log,
	}
}

// Handle processes a Discord interaction for the ask command
func (c *AskCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !requireGuild(s, i) {
		return nil
	}

	question := ""
	if opt, ok := optionMap(i)["question"]; ok {
		question = opt.StringValue()
	}
	if question == "" {
		return RespondWithEphemeralMessage(s, i, "Please include a question to ask.")
	}

	// The model call can be slow, so acknowledge first
	if err := DeferResponse(s, i); err != nil {
		return err
	}

	_, session, ok := resolveActiveSession(s, i, c.clubService, c.log)
	if !ok {
		return nil
	}

	output, err := c.openaiService.Ask(context.Background(), &openai.AskInput{
		Question:   question,
		BookTitle:  session.Book.Title,
		BookAuthor: session.Book.Author,
	})
	if err != nil {
		c.log.WithError(err).WithField("guild", i.GuildID).Error("ask command failed")
		return FollowUpWithError(s, i, "I encountered an error while processing your question. Please try again later.")
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🧠 About '%s'", session.Book.Title),
		Description: output.Answer,
		Color:       colorInfo,
	})
}

// BookSummaryCommand handles the /book_summary command
type BookSummaryCommand struct {
	BaseCommand
	clubService   club.Service
	openaiService openai.Service
	log           *logrus.Logger
}

// NewBookSummaryCommand creates a new book_summary command handler
func NewBookSummaryCommand(clubService club.Service, openaiService openai.Service, log *logrus.Logger) *BookSummaryCommand {
	return &BookSummaryCommand{
		BaseCommand: BaseCommand{
			Name:        "book_summary",
			Description: "Let me provide a summary of the active book",
		},
		clubService:   clubService,
		openaiService: openaiService,
		log:           log,
	}
}

// Handle processes a Discord interaction for the book_summary command
func (c *BookSummaryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !requireGuild(s, i) {
		return nil
	}

	if err := DeferResponse(s, i); err != nil {
		return err
	}

	_, session, ok := resolveActiveSession(s, i, c.clubService, c.log)
	if !ok {
		return nil
	}

	output, err := c.openaiService.SummarizeBook(context.Background(), &openai.SummarizeBookInput{
		Title:  session.Book.Title,
		Author: session.Book.Author,
	})
	if err != nil {
		c.log.WithError(err).WithField("guild", i.GuildID).Error("book summary command failed")
		return FollowUpWithError(s, i, "I couldn't put a summary together right now. Please try again later.")
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🤖 Book Summary",
		Description: output.Summary,
		Color:       colorInfo,
	})
}
