package engine

import (
	"math/rand"
	"time"

	"github.com/yourname/fitcoach/internal"
)

// FallbackNotice is the fixed reply the router produces when no topic
// matches. The outer Respond call treats it as "unhelpful" and degrades the
// turn to the legacy rule tier.
const FallbackNotice = "I can help with personalized workouts, meal planning, goal setting, challenges, hydration, mood-based fitness, and recovery! What interests you? 🤖"

// Bot is the stateful response engine. It owns only process-wide resources
// (catalog, clock, random source, logger); all per-user state lives in the
// caller-owned Session. A Bot is not safe for concurrent use: the host must
// serialize turn processing.
type Bot struct {
	catalog *Catalog
	clock   Clock
	rng     *rand.Rand
	log     internal.Logger
}

type Option func(*Bot)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(c Clock) Option {
	return func(b *Bot) { b.clock = c }
}

// WithRand replaces the random source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(b *Bot) { b.rng = r }
}

// WithCatalog replaces the built-in content tables.
func WithCatalog(c *Catalog) Option {
	return func(b *Bot) { b.catalog = c }
}

func New(log internal.Logger, opts ...Option) *Bot {
	b := &Bot{
		catalog: DefaultCatalog(),
		clock:   systemClock{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Respond processes one full conversation turn: the enhanced router first,
// then the legacy rule matcher when the enhanced path fails or produced the
// unhelpful fallback notice. Every turn is appended to the session's
// conversation memory exactly once, with the reply actually returned.
func (b *Bot) Respond(sess *Session, text string) string {
	reply, ctx, err := b.Route(sess, text)
	if err != nil {
		b.log.Warnf("enhanced path unavailable, falling back to legacy rules: %v", err)
		reply = sess.Legacy.Respond(text)
		ctx = internal.ContextRecord{}
	} else if reply == FallbackNotice {
		reply = sess.Legacy.Respond(text)
	}

	sess.Memory.Append(internal.ConversationTurn{
		Input:     text,
		Response:  reply,
		Context:   ctx,
		Timestamp: b.clock.Now(),
	})
	return reply
}

// pick selects one entry uniformly at random.
func (b *Bot) pick(items []string) string {
	return items[b.rng.Intn(len(items))]
}

func (b *Bot) today() string {
	return b.clock.Now().Format(dateLayout)
}
