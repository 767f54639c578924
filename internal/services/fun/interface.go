package fun

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ivangarzab/kluvs-bot/internal/services/fun Service

// Service provides the bot's randomness: dice, coins, choices, and the
// canned message pools used by events and the reminder scheduler.
type Service interface {
	// RollDice rolls a die with the given number of sides
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// FlipCoin flips a coin
	FlipCoin(ctx context.Context) (*FlipCoinOutput, error)

	// Choose picks one option from a list
	Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error)

	// GetFunFact returns a random book-related fun fact
	GetFunFact(ctx context.Context) (*GetMessageOutput, error)

	// GetGreeting returns a random greeting for when the bot is mentioned
	GetGreeting(ctx context.Context) (*GetMessageOutput, error)

	// GetReaction returns a random emoji reaction
	GetReaction(ctx context.Context) (*GetMessageOutput, error)

	// GetReadingReminder returns a random daily reading reminder
	GetReadingReminder(ctx context.Context) (*GetMessageOutput, error)

	// Chance reports true with the given probability
	Chance(probability float64) bool
}
