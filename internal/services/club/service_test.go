package club

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ivangarzab/kluvs-bot/internal/api"
	"github.com/ivangarzab/kluvs-bot/internal/api/mocks"
	"github.com/ivangarzab/kluvs-bot/internal/models"
)

type ClubServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *mocks.MockClient
	svc        Service
	ctx        context.Context

	testGuildID   string
	testChannelID string
	testClubID    string

	expectedSession *models.Session
	expectedClub    *models.Club
}

func (s *ClubServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(s.mockCtrl)

	svc, err := New(&Config{APIClient: s.mockClient})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testClubID = "test-club-id"

	s.expectedSession = &models.Session{
		ID:     "test-session-id",
		ClubID: s.testClubID,
		Book: &models.Book{
			Title:  "The Great Gatsby",
			Author: "F. Scott Fitzgerald",
		},
		DueDate: "2025-11-30",
	}

	s.expectedClub = &models.Club{
		ID:             s.testClubID,
		Name:           "Test Club",
		ServerID:       s.testGuildID,
		DiscordChannel: s.testChannelID,
		ActiveSession:  s.expectedSession,
	}
}

func (s *ClubServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestClubServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClubServiceTestSuite))
}

func (s *ClubServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilAPIClient)
}

func (s *ClubServiceTestSuite) TestGetActiveSession_Success() {
	s.mockClient.EXPECT().
		FindClubInChannel(s.ctx, &api.GetClubByChannelInput{
			ChannelID: s.testChannelID,
			GuildID:   s.testGuildID,
		}).
		Return(s.expectedClub, nil)

	output, err := s.svc.GetActiveSession(s.ctx, &GetActiveSessionInput{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(s.expectedClub, output.Club)
	s.Equal(s.expectedSession, output.Session)
}

func (s *ClubServiceTestSuite) TestGetActiveSession_NoClub() {
	s.mockClient.EXPECT().
		FindClubInChannel(s.ctx, gomock.Any()).
		Return(nil, nil)

	_, err := s.svc.GetActiveSession(s.ctx, &GetActiveSessionInput{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
	})
	s.ErrorIs(err, ErrClubNotFound)
}

func (s *ClubServiceTestSuite) TestGetActiveSession_NoSession() {
	clubWithoutSession := &models.Club{
		ID:       s.testClubID,
		ServerID: s.testGuildID,
	}

	s.mockClient.EXPECT().
		FindClubInChannel(s.ctx, gomock.Any()).
		Return(clubWithoutSession, nil)

	_, err := s.svc.GetActiveSession(s.ctx, &GetActiveSessionInput{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
	})
	s.ErrorIs(err, ErrNoActiveSession)
}

func (s *ClubServiceTestSuite) TestGetActiveSession_BackendError() {
	backendErr := &api.Error{Kind: api.KindServer, StatusCode: 500}

	s.mockClient.EXPECT().
		FindClubInChannel(s.ctx, gomock.Any()).
		Return(nil, backendErr)

	_, err := s.svc.GetActiveSession(s.ctx, &GetActiveSessionInput{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
	})
	// The error kind passes through unchanged
	s.ErrorIs(err, api.ErrServer)
}

func (s *ClubServiceTestSuite) TestFindClub_NoClubIsNotAnError() {
	s.mockClient.EXPECT().
		FindClubInChannel(s.ctx, gomock.Any()).
		Return(nil, nil)

	output, err := s.svc.FindClub(s.ctx, &FindClubInput{
		ChannelID: s.testChannelID,
		GuildID:   s.testGuildID,
	})
	s.Require().NoError(err)
	s.Nil(output.Club)
}

func (s *ClubServiceTestSuite) TestRegisterServer() {
	expected := &models.Server{ID: s.testGuildID, Name: "Test Server"}

	s.mockClient.EXPECT().
		RegisterServer(s.ctx, &api.RegisterServerInput{
			GuildID: s.testGuildID,
			Name:    "Test Server",
		}).
		Return(expected, nil)

	output, err := s.svc.RegisterServer(s.ctx, &RegisterServerInput{
		GuildID: s.testGuildID,
		Name:    "Test Server",
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Server)
}

func (s *ClubServiceTestSuite) TestWelcomeMember() {
	expected := &models.Member{ID: 123456789, Name: "New Reader"}

	s.mockClient.EXPECT().
		CreateMember(s.ctx, &api.CreateMemberInput{
			Member: &models.Member{
				ID:   123456789,
				Name: "New Reader",
			},
		}).
		Return(expected, nil)

	output, err := s.svc.WelcomeMember(s.ctx, &WelcomeMemberInput{
		UserID: "123456789",
		Name:   "New Reader",
	})
	s.Require().NoError(err)
	s.Equal(expected, output.Member)
}

func (s *ClubServiceTestSuite) TestWelcomeMember_BadSnowflake() {
	_, err := s.svc.WelcomeMember(s.ctx, &WelcomeMemberInput{
		UserID: "not-a-number",
		Name:   "New Reader",
	})
	s.Error(err)
}

func (s *ClubServiceTestSuite) TestAddToShameList() {
	existing := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testGuildID,
		ShameList: []int64{1},
	}

	s.mockClient.EXPECT().
		GetClub(s.ctx, &api.GetClubInput{
			ClubID:  s.testClubID,
			GuildID: s.testGuildID,
		}).
		Return(existing, nil)

	s.mockClient.EXPECT().
		UpdateClub(s.ctx, &api.UpdateClubInput{
			ClubID:  s.testClubID,
			GuildID: s.testGuildID,
			Update: api.ClubUpdate{
				ShameList: []int64{1, 2, 3},
			},
		}).
		Return(&models.Club{
			ID:        s.testClubID,
			ShameList: []int64{1, 2, 3},
		}, nil)

	// Member 1 is already shamed and must not be duplicated
	output, err := s.svc.AddToShameList(s.ctx, &AddToShameListInput{
		ClubID:    s.testClubID,
		GuildID:   s.testGuildID,
		MemberIDs: []int64{1, 2, 3},
	})
	s.Require().NoError(err)
	s.Equal([]int64{1, 2, 3}, output.Club.ShameList)
}
