package club

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/api"
	"github.com/ivangarzab/kluvs-bot/internal/models"
)

// Config holds configuration for the club service
type Config struct {
	// APIClient is the backend API client
	APIClient api.Client

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger
}

// service implements the Service interface
type service struct {
	apiClient api.Client
	log       *logrus.Logger
}

// New creates a new club service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.APIClient == nil {
		return nil, ErrNilAPIClient
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &service{
		apiClient: cfg.APIClient,
		log:       log,
	}, nil
}

// FindClub resolves the club bound to a Discord channel, if any
func (s *service) FindClub(ctx context.Context, input *FindClubInput) (*FindClubOutput, error) {
	club, err := s.apiClient.FindClubInChannel(ctx, &api.GetClubByChannelInput{
		ChannelID: input.ChannelID,
		GuildID:   input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &FindClubOutput{Club: club}, nil
}

// GetActiveSession resolves the club for a channel and returns its active
// reading session. Resource identification is fully dynamic: the club is
// always looked up by the invoking channel.
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	club, err := s.apiClient.FindClubInChannel(ctx, &api.GetClubByChannelInput{
		ChannelID: input.ChannelID,
		GuildID:   input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if club == nil {
		return nil, ErrClubNotFound
	}

	if club.ActiveSession == nil {
		s.log.WithFields(logrus.Fields{
			"guild": input.GuildID,
			"club":  club.ID,
		}).Info("club has no active session")
		return nil, ErrNoActiveSession
	}

	return &GetActiveSessionOutput{
		Club:    club,
		Session: club.ActiveSession,
	}, nil
}

// RegisterServer registers a guild with the backend
func (s *service) RegisterServer(ctx context.Context, input *RegisterServerInput) (*RegisterServerOutput, error) {
	server, err := s.apiClient.RegisterServer(ctx, &api.RegisterServerInput{
		GuildID: input.GuildID,
		Name:    input.Name,
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"guild": input.GuildID,
		"name":  input.Name,
	}).Info("registered server with backend")

	return &RegisterServerOutput{Server: server}, nil
}

// WelcomeMember creates a member profile for a user who joined the guild.
// Member profiles are keyed by the Discord snowflake.
func (s *service) WelcomeMember(ctx context.Context, input *WelcomeMemberInput) (*WelcomeMemberOutput, error) {
	userID, err := strconv.ParseInt(input.UserID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID %q: %w", input.UserID, err)
	}

	member, err := s.apiClient.CreateMember(ctx, &api.CreateMemberInput{
		Member: &models.Member{
			ID:   userID,
			Name: input.Name,
		},
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user": input.UserID,
		"name": input.Name,
	}).Info("created member profile")

	return &WelcomeMemberOutput{Member: member}, nil
}

// AddToShameList records members who missed the club's due date
func (s *service) AddToShameList(ctx context.Context, input *AddToShameListInput) (*AddToShameListOutput, error) {
	club, err := s.apiClient.GetClub(ctx, &api.GetClubInput{
		ClubID:  input.ClubID,
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	shameList := club.ShameList
	for _, id := range input.MemberIDs {
		if !containsID(shameList, id) {
			shameList = append(shameList, id)
		}
	}

	updated, err := s.apiClient.UpdateClub(ctx, &api.UpdateClubInput{
		ClubID:  input.ClubID,
		GuildID: input.GuildID,
		Update: api.ClubUpdate{
			ShameList: shameList,
		},
	})
	if err != nil {
		return nil, err
	}

	return &AddToShameListOutput{Club: updated}, nil
}

func containsID(ids []int64, id int64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
