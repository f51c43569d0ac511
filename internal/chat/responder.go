package chat

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ayurclinic/portal/pkg/logging"
)

var chatTracer = otel.Tracer("ayurclinic/chat")

// Responder matches free text against the fixed keyword rules and picks a
// canned reply from the matched category's pool.
type Responder struct {
	logger *logging.Logger
	rng    *rand.Rand
}

// NewResponder creates a responder. Reply selection is pseudo-random and
// deliberately unseeded from the caller's point of view.
func NewResponder(logger *logging.Logger) *Responder {
	if logger == nil {
		logger = logging.Default()
	}
	return &Responder{
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Classify lowercases the utterance and returns the first category (in rule
// priority order) with any keyword contained in it.
func Classify(utterance string) (Category, bool) {
	text := strings.ToLower(utterance)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category, true
			}
		}
	}
	return "", false
}

// Respond returns a reply for the utterance: a pseudo-random pool entry for
// a matched category, or the fixed fallback. The returned category is empty
// when the fallback was used.
func (r *Responder) Respond(ctx context.Context, utterance string) (string, Category) {
	_, span := chatTracer.Start(ctx, "chat.respond")
	defer span.End()

	category, ok := Classify(utterance)
	if !ok {
		span.SetAttributes(attribute.Bool("chat.matched", false))
		r.logger.Debug("no category matched", "utterance", utterance)
		return FallbackReply, ""
	}

	pool := responsePools[category]
	reply := pool[r.rng.Intn(len(pool))]

	span.SetAttributes(
		attribute.Bool("chat.matched", true),
		attribute.String("chat.category", string(category)),
	)
	r.logger.Debug("utterance classified", "category", category)
	return reply, category
}
