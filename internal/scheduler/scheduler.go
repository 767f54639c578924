package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ivangarzab/kluvs-bot/internal/common/clock"
	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
)

var (
	ErrNilConfig     = errors.New("config cannot be nil")
	ErrNilSender     = errors.New("sender cannot be nil")
	ErrNilFunService = errors.New("fun service cannot be nil")
)

// Sender delivers a reminder message to a channel
type Sender interface {
	SendReminder(channelID string, message string) error
}

// Config holds configuration for the reminder scheduler
type Config struct {
	// Sender delivers reminder messages
	Sender Sender

	// FunService supplies the reminder pool and the probability roll
	FunService fun.Service

	// ChannelID is the channel reminders are sent to; empty disables delivery
	ChannelID string

	// Hour is the local hour at which reminders may fire
	Hour int

	// Timezone is the IANA name of the reminder timezone
	Timezone string

	// Chance is the per-check probability of sending a reminder
	Chance float64

	// Interval overrides the check interval
	Interval time.Duration

	// Clock overrides the time source
	Clock clock.Clock

	// Logger is optional; the standard logger is used when nil
	Logger *logrus.Logger
}

// Scheduler sends daily reading reminders on an hourly check
type Scheduler struct {
	sender    Sender
	funSvc    fun.Service
	channelID string
	hour      int
	location  *time.Location
	chance    float64
	interval  time.Duration
	clock     clock.Clock
	log       *logrus.Logger

	mu     sync.Mutex
	stopCh chan struct{}
}

// New creates a new reminder scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	if cfg.FunService == nil {
		return nil, ErrNilFunService
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = time.Hour
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Scheduler{
		sender:    cfg.Sender,
		funSvc:    cfg.FunService,
		channelID: cfg.ChannelID,
		hour:      cfg.Hour,
		location:  location,
		chance:    cfg.Chance,
		interval:  interval,
		clock:     clk,
		log:       log,
	}, nil
}

// Start begins the hourly reminder checks. It returns immediately; checks
// run on a single goroutine until Stop is called.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh != nil {
		return
	}

	s.stopCh = make(chan struct{})

	go s.run(s.stopCh)
}

// Stop halts the reminder checks
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopCh == nil {
		return
	}

	close(s.stopCh)
	s.stopCh = nil
}

func (s *Scheduler) run(stopCh chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Check(context.Background())
		case <-stopCh:
			return
		}
	}
}

// Check performs a single reminder check: when the local time is the
// configured hour, a reminder is sent with the configured probability.
func (s *Scheduler) Check(ctx context.Context) {
	if s.channelID == "" {
		return
	}

	now := s.clock.Now().In(s.location)
	if now.Hour() != s.hour {
		return
	}

	if !s.funSvc.Chance(s.chance) {
		return
	}

	reminder, err := s.funSvc.GetReadingReminder(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to pick a reading reminder")
		return
	}

	if err := s.sender.SendReminder(s.channelID, reminder.Message); err != nil {
		s.log.WithError(err).WithField("channel", s.channelID).Error("failed to send reading reminder")
		return
	}

	s.log.WithField("channel", s.channelID).Info("sent daily reading reminder")
}
