package chat

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayurclinic/portal/internal/observability/metrics"
	"github.com/ayurclinic/portal/pkg/logging"
)

// ErrComposing is returned when a message arrives while the previous reply
// is still being "typed". The transcript is left untouched.
var ErrComposing = errors.New("chat: responder is composing a reply")

// Speaker identifies who produced a transcript message.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Message is one transcript entry.
type Message struct {
	ID      string
	Speaker Speaker
	Text    string
	At      time.Time
}

// Presenter applies chat widget side effects to the UI layer.
type Presenter interface {
	AppendMessage(msg Message)
	// SetComposing shows or hides the typing indicator.
	SetComposing(active bool)
	// ShowQuickQuestions controls the canned-prompt strip; it reappears
	// after every bot reply.
	ShowQuickQuestions(visible bool)
}

// Widget owns the chat transcript and the composing/typing simulation.
// Accepting an utterance schedules exactly one deferred reply; further sends
// are rejected until it fires. A scheduled reply is never cancelled except
// by Close at teardown.
type Widget struct {
	responder *Responder
	presenter Presenter
	metrics   *metrics.PortalMetrics
	logger    *logging.Logger

	delayMin time.Duration
	delayMax time.Duration
	rng      *rand.Rand

	mu         sync.Mutex
	open       bool
	composing  bool
	closed     bool
	transcript []Message
	pending    *time.Timer
}

// NewWidget constructs the chat widget. The composing delay is drawn
// uniformly from [delayMin, delayMax) for every reply.
func NewWidget(responder *Responder, presenter Presenter, delayMin, delayMax time.Duration, m *metrics.PortalMetrics, logger *logging.Logger) *Widget {
	if responder == nil {
		panic("chat: responder required")
	}
	if presenter == nil {
		panic("chat: presenter required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if delayMin <= 0 {
		delayMin = time.Second
	}
	if delayMax <= delayMin {
		delayMax = delayMin + 1
	}
	return &Widget{
		responder: responder,
		presenter: presenter,
		metrics:   m,
		logger:    logger,
		delayMin:  delayMin,
		delayMax:  delayMax,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Toggle opens or closes the widget and returns the new open state. Opening
// re-shows the quick questions.
func (w *Widget) Toggle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.open = !w.open
	if w.open {
		w.presenter.ShowQuickQuestions(true)
	}
	return w.open
}

// IsOpen reports whether the widget is open.
func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

// Composing reports whether a reply is scheduled but not yet delivered.
func (w *Widget) Composing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.composing
}

// Transcript returns a copy of the exchange so far.
func (w *Widget) Transcript() []Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Message, len(w.transcript))
	copy(out, w.transcript)
	return out
}

// Send accepts a user utterance. Trimmed-empty input is silently ignored.
// While a reply is composing, Send rejects with ErrComposing and the
// transcript does not change. Otherwise the utterance is appended and one
// reply is scheduled after the composing delay.
func (w *Widget) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	if w.composing {
		return ErrComposing
	}

	w.appendLocked(Message{
		ID:      uuid.NewString(),
		Speaker: SpeakerUser,
		Text:    text,
		At:      time.Now(),
	})

	w.composing = true
	w.presenter.SetComposing(true)

	delay := w.delayMin + time.Duration(w.rng.Int63n(int64(w.delayMax-w.delayMin)))
	w.pending = time.AfterFunc(delay, func() {
		w.deliver(ctx, text)
	})
	w.logger.Debug("reply scheduled", "delay", delay)
	return nil
}

// SendQuickQuestion submits one of the canned prompts as if the user had
// typed its literal text.
func (w *Widget) SendQuickQuestion(ctx context.Context, index int) error {
	if index < 0 || index >= len(QuickQuestions) {
		return errors.New("chat: unknown quick question")
	}
	return w.Send(ctx, QuickQuestions[index])
}

// deliver runs on the timer goroutine; it produces the reply, appends it,
// and clears the composing state.
func (w *Widget) deliver(ctx context.Context, utterance string) {
	reply, category := w.responder.Respond(ctx, utterance)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.appendLocked(Message{
		ID:      uuid.NewString(),
		Speaker: SpeakerBot,
		Text:    reply,
		At:      time.Now(),
	})
	w.composing = false
	w.pending = nil
	w.presenter.SetComposing(false)
	w.presenter.ShowQuickQuestions(true)

	label := string(category)
	if label == "" {
		label = "fallback"
	}
	w.metrics.ObserveChatMessage(label)
}

// Close releases the teardown timer handle. A pending reply is dropped; no
// new sends are accepted.
func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.composing = false
}

func (w *Widget) appendLocked(msg Message) {
	w.transcript = append(w.transcript, msg)
	w.presenter.AppendMessage(msg)
}
