package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/ivangarzab/kluvs-bot/internal/services/fun"
)

// recordingFun counts probability rolls and never triggers an action,
// keeping the handler off the network
type recordingFun struct {
	fun.Service
	chanceCalls int
}

func (r *recordingFun) Chance(float64) bool {
	r.chanceCalls++
	return false
}

type BotTestSuite struct {
	suite.Suite
	session *discordgo.Session
	funSvc  *recordingFun
	bot     *Bot
}

func (s *BotTestSuite) SetupTest() {
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)
	session.State.User = &discordgo.User{ID: "bot-user-id"}
	s.session = session

	s.funSvc = &recordingFun{}

	s.bot = &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config: &Config{
			CommandPrefix: "!",
			FunService:    s.funSvc,
		},
		log: logrus.New(),
	}
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) newMessage(authorID string, isBot bool, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "message-id",
			ChannelID: "channel-id",
			Content:   content,
			Author:    &discordgo.User{ID: authorID, Bot: isBot},
		},
	}
}

func (s *BotTestSuite) TestMessageCreate_IgnoresOwnMessages() {
	s.bot.handleMessageCreate(s.session, s.newMessage("bot-user-id", true, "hello readers"))

	s.Zero(s.funSvc.chanceCalls)
}

func (s *BotTestSuite) TestMessageCreate_IgnoresOtherBots() {
	s.bot.handleMessageCreate(s.session, s.newMessage("other-bot-id", true, "hello readers"))

	s.Zero(s.funSvc.chanceCalls)
}

func (s *BotTestSuite) TestMessageCreate_ConsidersHumanMessages() {
	s.bot.handleMessageCreate(s.session, s.newMessage("human-id", false, "hello readers"))

	s.Positive(s.funSvc.chanceCalls)
}
