package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/ivangarzab/kluvs-bot/internal/common/clock/mocks"
	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
)

type fakeSender struct {
	channels []string
	messages []string
	err      error
}

func (f *fakeSender) SendReminder(channelID string, message string) error {
	if f.err != nil {
		return f.err
	}
	f.channels = append(f.channels, channelID)
	f.messages = append(f.messages, message)
	return nil
}

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockmocks.MockClock
	sender    *fakeSender
	funSvc    fun.Service
	ctx       context.Context
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockmocks.NewMockClock(s.mockCtrl)
	s.sender = &fakeSender{}
	s.funSvc = fun.New(&fun.Config{Seed: 42})
	s.ctx = context.Background()
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) newScheduler(chance float64) *Scheduler {
	sched, err := New(&Config{
		Sender:     s.sender,
		FunService: s.funSvc,
		ChannelID:  "reminder-channel",
		Hour:       17,
		Timezone:   "US/Pacific",
		Chance:     chance,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	return sched
}

// pacificTime returns a UTC instant whose US/Pacific local hour is the given hour.
func (s *SchedulerTestSuite) pacificTime(hour int) time.Time {
	location, err := time.LoadLocation("US/Pacific")
	s.Require().NoError(err)
	return time.Date(2025, time.June, 15, hour, 30, 0, 0, location).UTC()
}

func (s *SchedulerTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{FunService: s.funSvc})
	s.ErrorIs(err, ErrNilSender)

	_, err = New(&Config{Sender: s.sender})
	s.ErrorIs(err, ErrNilFunService)

	_, err = New(&Config{Sender: s.sender, FunService: s.funSvc, Timezone: "Not/AZone"})
	s.Error(err)
}

func (s *SchedulerTestSuite) TestCheck_FiresAtConfiguredHour() {
	sched := s.newScheduler(1.0)

	s.mockClock.EXPECT().Now().Return(s.pacificTime(17))

	sched.Check(s.ctx)

	s.Require().Len(s.sender.messages, 1)
	s.Equal("reminder-channel", s.sender.channels[0])
	s.NotEmpty(s.sender.messages[0])
}

func (s *SchedulerTestSuite) TestCheck_SkipsOtherHours() {
	sched := s.newScheduler(1.0)

	for hour := 0; hour < 24; hour++ {
		if hour == 17 {
			continue
		}
		s.mockClock.EXPECT().Now().Return(s.pacificTime(hour))
		sched.Check(s.ctx)
	}

	s.Empty(s.sender.messages)
}

func (s *SchedulerTestSuite) TestCheck_ZeroChanceNeverFires() {
	sched := s.newScheduler(0.0)

	for i := 0; i < 100; i++ {
		s.mockClock.EXPECT().Now().Return(s.pacificTime(17))
		sched.Check(s.ctx)
	}

	s.Empty(s.sender.messages)
}

func (s *SchedulerTestSuite) TestCheck_FiresAtConfiguredRate() {
	sched := s.newScheduler(0.1)

	const trials = 10000
	for i := 0; i < trials; i++ {
		s.mockClock.EXPECT().Now().Return(s.pacificTime(17))
		sched.Check(s.ctx)
	}

	s.InDelta(1000, len(s.sender.messages), 100)
}

func (s *SchedulerTestSuite) TestCheck_NoChannelConfigured() {
	sched, err := New(&Config{
		Sender:     s.sender,
		FunService: s.funSvc,
		Hour:       17,
		Timezone:   "US/Pacific",
		Chance:     1.0,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)

	sched.Check(s.ctx)

	s.Empty(s.sender.messages)
}

func (s *SchedulerTestSuite) TestStartStop() {
	sched := s.newScheduler(1.0)

	// A long interval keeps the ticker from firing during the test
	sched.interval = time.Hour

	sched.Start()
	sched.Start()
	sched.Stop()
	sched.Stop()

	s.Empty(s.sender.messages)
}
