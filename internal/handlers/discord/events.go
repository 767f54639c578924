package discord

import (
	"strings"

	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
)

// Response probabilities for passive message events
const (
	greetingChance       = 0.4
	mentionReactChance   = 0.7
	randomReactionChance = 0.3
)

const communityReply = "Reading is done best in community."

// messageAction is the bot's reaction to a message it did not send
type messageAction int

const (
	actionNone messageAction = iota
	actionGreet
	actionReact
	actionCommunityReply
)

// decideMessageAction picks how the bot responds to a channel message.
// Mentions get a greeting or an emoji reaction, the "together" keyword gets
// a fixed reply, and anything else may get a rare random reaction. Messages
// carrying the command prefix never get random reactions.
func decideMessageAction(content string, mentionsBot bool, prefix string, funSvc fun.Service) messageAction {
	if mentionsBot {
		if funSvc.Chance(greetingChance) {
			return actionGreet
		}
		if funSvc.Chance(mentionReactChance) {
			return actionReact
		}
		return actionNone
	}

	if strings.Contains(strings.ToLower(content), "together") {
		return actionCommunityReply
	}

	if prefix != "" && strings.HasPrefix(content, prefix) {
		return actionNone
	}

	if funSvc.Chance(randomReactionChance) {
		return actionReact
	}

	return actionNone
}
