package fun

// RollDiceInput contains parameters for rolling a die
type RollDiceInput struct {
	// Sides on the die; defaults to 6 when zero
	Sides int
}

// RollDiceOutput contains the result of a dice roll
type RollDiceOutput struct {
	Value int
	Sides int
}

// FlipCoinOutput contains the result of a coin flip
type FlipCoinOutput struct {
	// Result is "Heads" or "Tails"
	Result string
}

// ChooseInput contains parameters for choosing between options
type ChooseInput struct {
	Options []string
}

// ChooseOutput contains the chosen option
type ChooseOutput struct {
	Choice string
}

// GetMessageOutput contains a randomly selected canned message
type GetMessageOutput struct {
	Message string
}
