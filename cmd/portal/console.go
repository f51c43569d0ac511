package main

import (
	"fmt"

	"github.com/ayurclinic/portal/internal/auth"
	"github.com/ayurclinic/portal/internal/chat"
	"github.com/ayurclinic/portal/internal/particles"
	"github.com/ayurclinic/portal/internal/session"
	"github.com/ayurclinic/portal/internal/view"
)

// consoleUI renders the portal's outbound surface as plain terminal output.
type consoleUI struct{}

func (consoleUI) RenderView(v view.View) {
	fmt.Printf("\n=== %s ===\n", screenTitle(v))
}

func screenTitle(v view.View) string {
	switch v {
	case view.ViewLanding:
		return "AyurVeda Clinic"
	case view.ViewAuth:
		return "Sign In"
	case view.ViewPatientDashboard:
		return "Patient Portal"
	case view.ViewDoctorDashboard:
		return "Doctor Portal"
	case view.ViewAdminDashboard:
		return "Admin Panel"
	}
	return string(v)
}

func (consoleUI) ShowIdentity(sess session.Session) {
	fmt.Printf("[%s] %s — %s\n", sess.AvatarInitial(), sess.Name, sess.HeaderDetail())
}

func (consoleUI) SetVisibleFields(v auth.Visibility) {
	fields := []string{"email", "password"}
	if v.Name {
		fields = append(fields, "name")
	}
	if v.ConfirmPassword {
		fields = append(fields, "confirm-password")
	}
	if v.Phone {
		fields = append(fields, "phone")
	}
	if v.Specialization {
		fields = append(fields, "specialization")
	}
	if v.License {
		fields = append(fields, "license")
	}
	fmt.Printf("form fields: %v", fields)
	if v.Toggle {
		fmt.Print(" (type 'toggle' to switch login/signup)")
	}
	fmt.Println()
}

func (consoleUI) ShowError(msg string) {
	fmt.Printf("!! %s\n", msg)
}

func (consoleUI) ClearError() {}

func (consoleUI) OpenTwoFactorPrompt() {
	fmt.Println("Enter the one-time passcode with: otp <code>")
}

func (consoleUI) CloseTwoFactorPrompt() {}

func (consoleUI) ShowChallengeError(msg string) {
	fmt.Printf("!! %s\n", msg)
}

func (consoleUI) AppendMessage(msg chat.Message) {
	speaker := "you"
	if msg.Speaker == chat.SpeakerBot {
		speaker = "ayurbot"
	}
	fmt.Printf("%s> %s\n", speaker, msg.Text)
}

func (consoleUI) SetComposing(active bool) {
	if active {
		fmt.Println("ayurbot is typing...")
	}
}

func (consoleUI) ShowQuickQuestions(visible bool) {
	if !visible {
		return
	}
	for i, q := range chat.QuickQuestions {
		fmt.Printf("  quick %d: %s\n", i, q)
	}
}

func (consoleUI) SetActiveSlide(index int) {
	fmt.Printf("(carousel: slide %d)\n", index)
}

func (consoleUI) RenderParticles(ps []particles.Particle) {
	fmt.Printf("(%d particles drifting in the background)\n", len(ps))
}
