package fun

// Canned message pools. These mirror what lives in the backend-less side
// of the bot: nothing here is persisted or guild-specific.

var greetings = []string{
	"Hello there, fellow reader! 📖",
	"Hey! Shouldn't you be reading right now?",
	"You called? I was in the middle of a chapter.",
	"Greetings, bookworm!",
	"At your service. Have you hit today's pages yet?",
	"👋 Hi! The current book isn't going to read itself.",
}

var reactions = []string{
	"📚",
	"📖",
	"🤓",
	"✨",
	"👀",
	"☕",
}

var readingReminders = []string{
	"Don't forget to read a few pages today! 📖",
	"A chapter a day keeps the shame list away.",
	"Your book misses you. Go say hi.",
	"Reading time! Even ten minutes counts.",
	"The due date is closer than it appears. 📅",
	"Put the phone down and pick the book up. (After reading this.)",
}

var funFacts = []string{
	"The longest novel ever published, 'In Search of Lost Time', clocks in at roughly 1.2 million words.",
	"Iceland publishes more books per capita than any other country.",
	"The word 'bookworm' originally referred to insects that ate through book bindings.",
	"One of the longest sentences in literature appears in 'Les Misérables': over 800 words.",
	"The first book ever printed on a press was the Gutenberg Bible, around 1455.",
	"Theodore Roosevelt read roughly one book per day while president.",
	"'Don Quixote' is widely considered the best-selling novel of all time.",
}
