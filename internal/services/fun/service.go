package fun

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

const defaultDiceSides = 6

// Config holds configuration for the fun service
type Config struct {
	// Optional seed for deterministic behavior in tests
	Seed int64
}

// service implements the Service interface
type service struct {
	// mu guards random; the scheduler and Discord event handlers share
	// one instance across goroutines and rand.Rand is not safe for that
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new fun service
func New(cfg *Config) *service {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		random: rand.New(rand.NewSource(seed)),
	}
}

// intn draws a value in [0, n) under the lock
func (s *service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Intn(n)
}

// float64n draws a value in [0.0, 1.0) under the lock
func (s *service) float64n() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Float64()
}

// RollDice rolls a die with the given number of sides
func (s *service) RollDice(_ context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	sides := defaultDiceSides
	if input != nil && input.Sides > 0 {
		sides = input.Sides
	}

	return &RollDiceOutput{
		Value: s.intn(sides) + 1,
		Sides: sides,
	}, nil
}

// FlipCoin flips a coin
func (s *service) FlipCoin(_ context.Context) (*FlipCoinOutput, error) {
	result := "Heads"
	if s.intn(2) == 1 {
		result = "Tails"
	}

	return &FlipCoinOutput{Result: result}, nil
}

// Choose picks one option from a list
func (s *service) Choose(_ context.Context, input *ChooseInput) (*ChooseOutput, error) {
	if input == nil || len(input.Options) == 0 {
		return nil, errors.New("options cannot be empty")
	}

	return &ChooseOutput{
		Choice: input.Options[s.intn(len(input.Options))],
	}, nil
}

// GetFunFact returns a random book-related fun fact
func (s *service) GetFunFact(_ context.Context) (*GetMessageOutput, error) {
	return s.pick(funFacts), nil
}

// GetGreeting returns a random greeting for when the bot is mentioned
func (s *service) GetGreeting(_ context.Context) (*GetMessageOutput, error) {
	return s.pick(greetings), nil
}

// GetReaction returns a random emoji reaction
func (s *service) GetReaction(_ context.Context) (*GetMessageOutput, error) {
	return s.pick(reactions), nil
}

// GetReadingReminder returns a random daily reading reminder
func (s *service) GetReadingReminder(_ context.Context) (*GetMessageOutput, error) {
	return s.pick(readingReminders), nil
}

// Chance reports true with the given probability
func (s *service) Chance(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return s.float64n() < probability
}

func (s *service) pick(pool []string) *GetMessageOutput {
	return &GetMessageOutput{
		Message: pool[s.intn(len(pool))],
	}
}
