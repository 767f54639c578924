package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ivangarzab/kluvs-bot/internal/models"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// newClient builds a client against a test server with fast retries.
func (s *ClientTestSuite) newClient(serverURL string, maxRetries int) Client {
	c, err := New(&Config{
		BaseURL:        serverURL,
		APIKey:         "test-key",
		MaxRetries:     maxRetries,
		RetryBaseDelay: time.Millisecond,
	})
	s.Require().NoError(err)
	return c
}

func (s *ClientTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{APIKey: "key"})
	s.Error(err)

	_, err = New(&Config{BaseURL: "http://localhost"})
	s.Error(err)
}

func (s *ClientTestSuite) TestTransientFailuresThenSuccess() {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(&models.Club{
			ID:       "club-1",
			Name:     "Test Club",
			ServerID: "guild-1",
		})
	}))
	defer ts.Close()

	client := s.newClient(ts.URL, 3)

	club, err := client.GetClub(s.ctx, &GetClubInput{
		ClubID:  "club-1",
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal("Test Club", club.Name)

	// Two failures plus the final success
	s.Equal(3, requests)
}

func (s *ClientTestSuite) TestNonTransientFailuresAreNotRetried() {
	cases := []struct {
		status   int
		sentinel error
		kind     Kind
	}{
		{http.StatusBadRequest, ErrValidation, KindValidation},
		{http.StatusUnauthorized, ErrAuthentication, KindAuthentication},
		{http.StatusForbidden, ErrAuthentication, KindAuthentication},
		{http.StatusNotFound, ErrNotFound, KindNotFound},
	}

	for _, tc := range cases {
		requests := 0
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(tc.status)
		}))

		client := s.newClient(ts.URL, 3)

		_, err := client.GetClub(s.ctx, &GetClubInput{
			ClubID:  "club-1",
			GuildID: "guild-1",
		})
		s.Require().Error(err, "status %d", tc.status)
		s.ErrorIs(err, tc.sentinel)
		s.Equal(1, requests, "status %d should not be retried", tc.status)

		var apiErr *Error
		s.Require().True(errors.As(err, &apiErr))
		s.Equal(tc.kind, apiErr.Kind)
		s.Equal(tc.status, apiErr.StatusCode)

		ts.Close()
	}
}

func (s *ClientTestSuite) TestRetryLimitExhausted() {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := s.newClient(ts.URL, 2)

	_, err := client.GetServer(s.ctx, &GetServerInput{GuildID: "guild-1"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrServer)

	// Initial attempt plus MaxRetries retries
	s.Equal(3, requests)
}

func (s *ClientTestSuite) TestConnectionErrorIsServerKind() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing is listening anymore

	client := s.newClient(ts.URL, 1)

	_, err := client.GetServer(s.ctx, &GetServerInput{GuildID: "guild-1"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrServer)

	var apiErr *Error
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(KindServer, apiErr.Kind)
	s.Zero(apiErr.StatusCode)
}

func (s *ClientTestSuite) TestFindClubInChannel_NoClub() {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := s.newClient(ts.URL, 3)

	club, err := client.FindClubInChannel(s.ctx, &GetClubByChannelInput{
		ChannelID: "channel-1",
		GuildID:   "guild-1",
	})
	s.NoError(err)
	s.Nil(club)

	// Not-found is deterministic, so a single request
	s.Equal(1, requests)
}

func (s *ClientTestSuite) TestCreateAndGetClubRoundTrip() {
	// A stable backend double: POST stores the club, GET returns it
	var stored *models.Club
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var club models.Club
			if err := json.NewDecoder(r.Body).Decode(&club); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			club.ID = "club-42"
			stored = &club
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "Club created successfully",
				"club":    stored,
			})
		case http.MethodGet:
			if stored == nil || r.URL.Query().Get("id") != stored.ID {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(stored)
		}
	}))
	defer ts.Close()

	client := s.newClient(ts.URL, 3)

	created, err := client.CreateClub(s.ctx, &CreateClubInput{
		GuildID: "guild-1",
		Club: &models.Club{
			Name:           "Classic Literature Club",
			DiscordChannel: "channel-1",
			ActiveSession: &models.Session{
				Book: &models.Book{
					Title:  "To Kill a Mockingbird",
					Author: "Harper Lee",
				},
				DueDate: "2025-12-31",
			},
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal("club-42", created.ID)
	s.Equal("guild-1", created.ServerID)

	fetched, err := client.GetClub(s.ctx, &GetClubInput{
		ClubID:  created.ID,
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(created, fetched)
}

func (s *ClientTestSuite) TestRequestShape() {
	var gotAuth, gotRequestID, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(&models.Server{ID: "guild-1", Name: "Test Server"})
	}))
	defer ts.Close()

	client := s.newClient(ts.URL, 3)

	server, err := client.GetServer(s.ctx, &GetServerInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal("Test Server", server.Name)
	s.Equal("Bearer test-key", gotAuth)
	s.NotEmpty(gotRequestID)
	s.Equal("id=guild-1", gotQuery)
}

func (s *ClientTestSuite) TestErrorMessages() {
	err := &Error{Kind: KindNotFound, Resource: "club", ResourceID: "club-1"}
	s.Equal(`club "club-1" not found`, err.Error())

	err = &Error{Kind: KindValidation, Resource: "member", Message: "missing name"}
	s.Contains(err.Error(), "invalid member request")

	err = &Error{Kind: KindServer, StatusCode: 502, Message: "bad gateway"}
	s.Contains(err.Error(), "502")
}
