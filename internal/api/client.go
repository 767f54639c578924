package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/models"
)

const (
	defaultMaxRetries     = 3
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultTimeout        = 10 * time.Second

	// All resources live under the Supabase edge function prefix
	functionsPath = "/functions/v1"
)

// Config holds configuration for the backend API client
type Config struct {
	// BaseURL is the Supabase project URL, e.g. https://your-project.supabase.co
	BaseURL string

	// APIKey is the Supabase key sent as a bearer token
	APIKey string

	// HTTPClient is optional; a client with a default timeout is used when nil
	HTTPClient *http.Client

	// MaxRetries bounds the retry loop for transient failures
	MaxRetries int

	// RetryBaseDelay is the first backoff delay; it doubles per attempt
	RetryBaseDelay time.Duration

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger
}

// client implements the Client interface over HTTP
type client struct {
	functionsURL string
	apiKey       string
	httpClient   *http.Client
	maxRetries   int
	baseDelay    time.Duration
	log          *logrus.Logger
}

// New creates a new backend API client
func New(cfg *Config) (*client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultRetryBaseDelay
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &client{
		functionsURL: strings.TrimRight(cfg.BaseURL, "/") + functionsPath,
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		maxRetries:   maxRetries,
		baseDelay:    baseDelay,
		log:          log,
	}, nil
}

// do performs one logical backend call: it issues the request, retries
// transient failures with exponential backoff, and decodes the success
// body into out when out is non-nil.
func (c *client) do(ctx context.Context, method, resource string, query url.Values, body any, resourceID string, out any) error {
	endpoint := c.functionsURL + "/" + resource
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", resource, err)
		}
	}

	var apiErr *Error
	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("failed to build %s request: %w", resource, err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-Request-ID", uuid.New().String())

		apiErr = c.attempt(req, resource, resourceID, out)
		if apiErr == nil {
			return nil
		}

		if !retryable(apiErr) || attempt >= c.maxRetries {
			c.log.WithFields(logrus.Fields{
				"resource":    resource,
				"resource_id": resourceID,
				"kind":        apiErr.Kind,
				"status":      apiErr.StatusCode,
				"attempts":    attempt + 1,
			}).Error("backend request failed")
			return apiErr
		}

		delay := c.baseDelay << attempt
		c.log.WithFields(logrus.Fields{
			"resource": resource,
			"status":   apiErr.StatusCode,
			"attempt":  attempt + 1,
			"delay":    delay.String(),
		}).Warn("transient backend failure, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return apiErr
		case <-timer.C:
		}
	}
}

// attempt performs a single request and classifies the outcome.
func (c *client) attempt(req *http.Request, resource, resourceID string, out any) *Error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{
			Kind:       KindServer,
			Resource:   resource,
			ResourceID: resourceID,
			Message:    "could not connect to the backend: " + err.Error(),
			cause:      err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Kind:       KindServer,
			Resource:   resource,
			ResourceID: resourceID,
			Message:    "failed to read response body: " + err.Error(),
			cause:      err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Kind:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Resource:   resource,
			ResourceID: resourceID,
			Message:    strings.TrimSpace(string(respBody)),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{
				Kind:       KindServer,
				StatusCode: resp.StatusCode,
				Resource:   resource,
				ResourceID: resourceID,
				Message:    "failed to decode response: " + err.Error(),
				cause:      err,
			}
		}
	}

	return nil
}

// RegisterServer registers a Discord guild with the backend
func (c *client) RegisterServer(ctx context.Context, input *RegisterServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	body := map[string]string{
		"id":   input.GuildID,
		"name": input.Name,
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPost, "server", nil, body, "", &env); err != nil {
		return nil, err
	}

	return env.Server, nil
}

// GetServer retrieves a server and its clubs
func (c *client) GetServer(ctx context.Context, input *GetServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	query := url.Values{"id": {input.GuildID}}

	var server models.Server
	if err := c.do(ctx, http.MethodGet, "server", query, nil, input.GuildID, &server); err != nil {
		return nil, err
	}

	return &server, nil
}

// ListServers retrieves all registered servers
func (c *client) ListServers(ctx context.Context) ([]*models.Server, error) {
	var env listServersEnvelope
	if err := c.do(ctx, http.MethodGet, "server", nil, nil, "", &env); err != nil {
		return nil, err
	}

	return env.Servers, nil
}

// UpdateServer updates server information
func (c *client) UpdateServer(ctx context.Context, input *UpdateServerInput) (*models.Server, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	body := map[string]string{
		"id":   input.GuildID,
		"name": input.Name,
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPut, "server", nil, body, input.GuildID, &env); err != nil {
		return nil, err
	}

	return env.Server, nil
}

// DeleteServer deletes a server and all associated data
func (c *client) DeleteServer(ctx context.Context, input *DeleteServerInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	query := url.Values{"id": {input.GuildID}}

	return c.do(ctx, http.MethodDelete, "server", query, nil, input.GuildID, nil)
}

// GetClub retrieves a club by ID within a guild
func (c *client) GetClub(ctx context.Context, input *GetClubInput) (*models.Club, error) {
	if input == nil || input.ClubID == "" {
		return nil, errors.New("input and club ID cannot be empty")
	}

	query := url.Values{
		"id":        {input.ClubID},
		"server_id": {input.GuildID},
	}

	var club models.Club
	if err := c.do(ctx, http.MethodGet, "club", query, nil, input.ClubID, &club); err != nil {
		return nil, err
	}

	return &club, nil
}

// GetClubByChannel retrieves the club bound to a Discord channel
func (c *client) GetClubByChannel(ctx context.Context, input *GetClubByChannelInput) (*models.Club, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	query := url.Values{
		"discord_channel": {input.ChannelID},
		"server_id":       {input.GuildID},
	}

	var club models.Club
	if err := c.do(ctx, http.MethodGet, "club", query, nil, "discord_channel:"+input.ChannelID, &club); err != nil {
		return nil, err
	}

	return &club, nil
}

// FindClubInChannel looks up the club for a channel, returning (nil, nil)
// instead of an error when the channel has no club.
func (c *client) FindClubInChannel(ctx context.Context, input *GetClubByChannelInput) (*models.Club, error) {
	club, err := c.GetClubByChannel(ctx, input)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return club, nil
}

// CreateClub creates a new club with its associated data
func (c *client) CreateClub(ctx context.Context, input *CreateClubInput) (*models.Club, error) {
	if input == nil || input.Club == nil {
		return nil, errors.New("input and club cannot be nil")
	}

	club := *input.Club
	club.ServerID = input.GuildID

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPost, "club", nil, &club, "", &env); err != nil {
		return nil, err
	}

	return env.Club, nil
}

// UpdateClub updates club fields
func (c *client) UpdateClub(ctx context.Context, input *UpdateClubInput) (*models.Club, error) {
	if input == nil || input.ClubID == "" {
		return nil, errors.New("input and club ID cannot be empty")
	}

	body := struct {
		ID       string `json:"id"`
		ServerID string `json:"server_id"`
		ClubUpdate
	}{
		ID:         input.ClubID,
		ServerID:   input.GuildID,
		ClubUpdate: input.Update,
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPut, "club", nil, &body, input.ClubID, &env); err != nil {
		return nil, err
	}

	return env.Club, nil
}

// DeleteClub deletes a club and all associated data
func (c *client) DeleteClub(ctx context.Context, input *DeleteClubInput) error {
	if input == nil || input.ClubID == "" {
		return errors.New("input and club ID cannot be empty")
	}

	query := url.Values{
		"id":        {input.ClubID},
		"server_id": {input.GuildID},
	}

	return c.do(ctx, http.MethodDelete, "club", query, nil, input.ClubID, nil)
}

// GetMember retrieves a member profile
func (c *client) GetMember(ctx context.Context, input *GetMemberInput) (*models.Member, error) {
	if input == nil || input.MemberID == 0 {
		return nil, errors.New("input and member ID cannot be empty")
	}

	memberID := strconv.FormatInt(input.MemberID, 10)
	query := url.Values{"id": {memberID}}

	var member models.Member
	if err := c.do(ctx, http.MethodGet, "member", query, nil, memberID, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

// CreateMember creates a new member profile
func (c *client) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	if input == nil || input.Member == nil {
		return nil, errors.New("input and member cannot be nil")
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPost, "member", nil, input.Member, "", &env); err != nil {
		return nil, err
	}

	return env.Member, nil
}

// UpdateMember updates member fields
func (c *client) UpdateMember(ctx context.Context, input *UpdateMemberInput) (*models.Member, error) {
	if input == nil || input.MemberID == 0 {
		return nil, errors.New("input and member ID cannot be empty")
	}

	body := struct {
		ID int64 `json:"id"`
		MemberUpdate
	}{
		ID:           input.MemberID,
		MemberUpdate: input.Update,
	}

	memberID := strconv.FormatInt(input.MemberID, 10)

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPut, "member", nil, &body, memberID, &env); err != nil {
		return nil, err
	}

	return env.Member, nil
}

// DeleteMember deletes a member profile
func (c *client) DeleteMember(ctx context.Context, input *DeleteMemberInput) error {
	if input == nil || input.MemberID == 0 {
		return errors.New("input and member ID cannot be empty")
	}

	memberID := strconv.FormatInt(input.MemberID, 10)
	query := url.Values{"id": {memberID}}

	return c.do(ctx, http.MethodDelete, "member", query, nil, memberID, nil)
}

// GetSession retrieves a reading session
func (c *client) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	query := url.Values{"id": {input.SessionID}}

	var session models.Session
	if err := c.do(ctx, http.MethodGet, "session", query, nil, input.SessionID, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// CreateSession creates a new reading session for a club
func (c *client) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPost, "session", nil, input.Session, "", &env); err != nil {
		return nil, err
	}

	return env.Session, nil
}

// UpdateSession updates session fields
func (c *client) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	body := struct {
		ID string `json:"id"`
		SessionUpdate
	}{
		ID:            input.SessionID,
		SessionUpdate: input.Update,
	}

	var env mutationEnvelope
	if err := c.do(ctx, http.MethodPut, "session", nil, &body, input.SessionID, &env); err != nil {
		return nil, err
	}

	return env.Session, nil
}

// DeleteSession deletes a reading session
func (c *client) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	query := url.Values{"id": {input.SessionID}}

	return c.do(ctx, http.MethodDelete, "session", query, nil, input.SessionID, nil)
}
