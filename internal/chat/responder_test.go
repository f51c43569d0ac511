package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Category
		matched   bool
	}{
		{"greeting", "Hello there", CategoryGreeting, true},
		{"greeting namaste", "NAMASTE", CategoryGreeting, true},
		{"appointment", "I want to book a slot", CategoryAppointment, true},
		{"appointment schedule", "can you schedule me in", CategoryAppointment, true},
		{"ayurveda", "tell me about ayurvedic treatment", CategoryAyurveda, true},
		{"doctors", "talk to a physician", CategoryDoctors, true},
		// "which" contains the greeting keyword "hi"; substring matching
		// means greeting wins despite the doctor wording.
		{"greeting hidden in which", "which physician is available", CategoryGreeting, true},
		{"services", "do you offer panchakarma", CategoryServices, true},
		{"pricing", "what does a consultation cost", CategoryPricing, true},
		{"contact", "what's your address", CategoryContact, true},
		{"no match", "do you validate parking", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.utterance)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// "Hi" matches greeting and "appointment" matches appointment; the
	// earlier rule must win.
	got, ok := Classify("Hi, can I book an appointment?")
	require.True(t, ok)
	assert.Equal(t, CategoryGreeting, got)

	// Appointment outranks doctors.
	got, ok = Classify("book me with a doctor")
	require.True(t, ok)
	assert.Equal(t, CategoryAppointment, got)

	// Ayurveda outranks services.
	got, ok = Classify("ayurvedic therapy options")
	require.True(t, ok)
	assert.Equal(t, CategoryAyurveda, got)
}

func TestRespondDrawsFromMatchedPool(t *testing.T) {
	r := NewResponder(nil)

	reply, category := r.Respond(context.Background(), "what services do you offer?")
	assert.Equal(t, CategoryServices, category)
	assert.Contains(t, responsePools[CategoryServices], reply)
}

func TestRespondFallbackIsExact(t *testing.T) {
	r := NewResponder(nil)

	reply, category := r.Respond(context.Background(), "do you validate parking")
	assert.Empty(t, category)
	assert.Equal(t, FallbackReply, reply)

	// The fallback is fixed, not pooled: repeated calls return it verbatim.
	again, _ := r.Respond(context.Background(), "do you validate parking")
	assert.Equal(t, reply, again)
}

func TestResponsePoolsNonEmpty(t *testing.T) {
	for _, r := range rules {
		assert.NotEmpty(t, responsePools[r.category], "pool for %s", r.category)
	}
}
