package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/models"
	"github.com/ivangarzab/kluvs-bot/internal/services/club"
)

// resolveActiveSession fetches the club and active session for the invoking
// channel. On failure it sends the appropriate followup and returns ok=false.
func resolveActiveSession(s *discordgo.Session, i *discordgo.InteractionCreate, clubSvc club.Service, log *logrus.Logger) (*models.Club, *models.Session, bool) {
	output, err := clubSvc.GetActiveSession(context.Background(), &club.GetActiveSessionInput{
		ChannelID: i.ChannelID,
		GuildID:   i.GuildID,
	})
	if err != nil {
		switch {
		case errors.Is(err, club.ErrClubNotFound):
			_ = FollowUpWithMessage(s, i, "There is no book club set up in this channel.")
		case errors.Is(err, club.ErrNoActiveSession):
			_ = FollowUpWithMessage(s, i, "There is no active reading session right now.")
		default:
			log.WithError(err).WithFields(logrus.Fields{
				"guild":   i.GuildID,
				"channel": i.ChannelID,
			}).Error("failed to resolve active session")
			_ = FollowUpWithError(s, i, "I couldn't reach the book club backend. Please try again later.")
		}
		return nil, nil, false
	}

	return output.Club, output.Session, true
}

// BookCommand handles the /book command
type BookCommand struct {
	BaseCommand
	clubService club.Service
	log         *logrus.Logger
}

// NewBookCommand creates a new book command handler
func NewBookCommand(clubService club.Service, log *logrus.Logger) *BookCommand {
	return &BookCommand{
		BaseCommand: BaseCommand{
			Name:        "book",
			Description: "Show current book details",
		},
		clubService: clubService,
		log:         log,
	}
}

// Handle processes a Discord interaction for the book command
func (c *BookCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	book := session.Book

	fields := []*discordgo.MessageEmbedField{
		{Name: "Author", Value: book.Author},
	}
	if book.Year != 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Year", Value: fmt.Sprintf("%d", book.Year), Inline: true,
		})
	}
	if book.Edition != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Edition", Value: book.Edition, Inline: true,
		})
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📚 Current Book",
		Description: fmt.Sprintf("**%s**", book.Title),
		Color:       colorInfo,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Happy reading! 📖"},
	})
}

// DueDateCommand handles the /duedate command
type DueDateCommand struct {
	BaseCommand
	clubService club.Service
	log         *logrus.Logger
}

// NewDueDateCommand creates a new duedate command handler
func NewDueDateCommand(clubService club.Service, log *logrus.Logger) *DueDateCommand {
	return &DueDateCommand{
		BaseCommand: BaseCommand{
			Name:        "duedate",
			Description: "Show the session's due date",
		},
		clubService: clubService,
		log:         log,
	}
}

// Handle processes a Discord interaction for the duedate command
func (c *DueDateCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📅 Due Date",
		Description: fmt.Sprintf("Session due date: **%s**", session.DueDate),
		Color:       colorPurple,
	})
}

// SessionCommand handles the /session command
type SessionCommand struct {
	BaseCommand
	clubService club.Service
	log         *logrus.Logger
}

// NewSessionCommand creates a new session command handler
func NewSessionCommand(clubService club.Service, log *logrus.Logger) *SessionCommand {
	return &SessionCommand{
		BaseCommand: BaseCommand{
			Name:        "session",
			Description: "Show current session details",
		},
		clubService: clubService,
		log:         log,
	}
}

// Handle processes a Discord interaction for the session command
func (c *SessionCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	fields := []*discordgo.MessageEmbedField{
		{Name: "Book", Value: session.Book.Title, Inline: true},
		{Name: "Author", Value: session.Book.Author, Inline: true},
		{Name: "Due Date", Value: session.DueDate, Inline: false},
	}

	if len(session.Discussions) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Discussions",
			Value:  fmt.Sprintf("%d scheduled", len(session.Discussions)),
			Inline: true,
		})
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:  "📚 Current Session Details",
		Color:  colorInfo,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "Keep reading! 📖"},
	})
}

// DiscussionsCommand handles the /discussions command
type DiscussionsCommand struct {
	BaseCommand
	clubService club.Service
	log         *logrus.Logger
}

// NewDiscussionsCommand creates a new discussions command handler
func NewDiscussionsCommand(clubService club.Service, log *logrus.Logger) *DiscussionsCommand {
	return &DiscussionsCommand{
		BaseCommand: BaseCommand{
			Name:        "discussions",
			Description: "Show the session's discussion details",
		},
		clubService: clubService,
		log:         log,
	}
}

// Handle processes a Discord interaction for the discussions command
func (c *DiscussionsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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

	if len(session.Discussions) == 0 {
		return FollowUpWithMessage(s, i, "There are no discussions scheduled for this session.")
	}

	discussions := make([]*models.Discussion, len(session.Discussions))
	copy(discussions, session.Discussions)
	sort.Slice(discussions, func(a, b int) bool {
		return discussions[a].Date < discussions[b].Date
	})

	fields := make([]*discordgo.MessageEmbedField, 0, len(discussions))
	for idx, discussion := range discussions {
		location := discussion.Location
		if location == "" {
			location = "TBD"
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Discussion %d: %s", idx+1, discussion.Title),
			Value:  fmt.Sprintf("**Date**: %s\n**Location**: %s", discussion.Date, location),
			Inline: false,
		})
	}

	return FollowUpWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:  "📚 Book Discussion Details",
		Color:  colorInfo,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "Don't stop reading! 📖"},
	})
}
