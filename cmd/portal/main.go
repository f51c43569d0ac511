package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ayurclinic/portal/internal/app"
	"github.com/ayurclinic/portal/internal/auth"
	"github.com/ayurclinic/portal/internal/booking"
	appconfig "github.com/ayurclinic/portal/internal/config"
	"github.com/ayurclinic/portal/internal/observability/metrics"
	"github.com/ayurclinic/portal/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	m := metrics.NewPortalMetrics(prometheus.NewRegistry())

	portal := app.New(cfg, consoleUI{}, m, logger)
	portal.Start()
	defer portal.Shutdown()

	fmt.Println("commands: patient|doctor|admin, toggle, login <email> <password> [name] [extra...],")
	fmt.Println("          otp <code>, chat <message>, chat-toggle, quick <n>,")
	fmt.Println("          book <doctor>;<type>;<date>;<time>;<symptoms>, appointments,")
	fmt.Println("          confirm <id>, cancel <id>, tab <name>, slide <n>, logout, quit")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "quit", "exit":
			return

		case "patient", "doctor", "admin":
			if err := portal.ShowAuth(cmd); err != nil {
				fmt.Println(err)
			}

		case "toggle":
			portal.Auth.ToggleMode()

		case "login", "signup":
			submit(ctx, portal, rest)

		case "otp":
			portal.Auth.VerifyCode(ctx, strings.TrimSpace(rest))

		case "chat":
			if err := portal.Chat.Send(ctx, rest); err != nil {
				fmt.Println(err)
			}

		case "chat-toggle":
			if portal.Chat.Toggle() {
				fmt.Println("(chat open)")
			} else {
				fmt.Println("(chat closed)")
			}

		case "quick":
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				fmt.Println("usage: quick <n>")
				continue
			}
			if err := portal.Chat.SendQuickQuestion(ctx, n); err != nil {
				fmt.Println(err)
			}

		case "book":
			book(ctx, portal, rest)

		case "appointments":
			for _, a := range portal.Bookings.Appointments() {
				fmt.Printf("%s  %s %s  %s (%s)  [%s]\n",
					a.ID, booking.FormatDate(a.Date), booking.FormatTime(a.Time), a.Doctor, a.Type, a.Status)
			}

		case "confirm":
			report(portal.ConfirmAppointment(ctx, strings.TrimSpace(rest)))

		case "cancel":
			report(portal.CancelAppointment(ctx, strings.TrimSpace(rest)))

		case "tab":
			if err := portal.SelectTab(strings.TrimSpace(rest)); err != nil {
				fmt.Println(err)
			}

		case "slide":
			n, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				fmt.Println("usage: slide <n>")
				continue
			}
			if err := portal.Carousel.GoTo(n); err != nil {
				fmt.Println(err)
			}

		case "logout":
			portal.Logout()

		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

// submit parses "email password [name] [phone|specialization] [license] [confirm]"
// positionally; unneeded fields can be left off.
func submit(ctx context.Context, portal *app.App, rest string) {
	parts := strings.Fields(rest)
	form := auth.Form{}
	if len(parts) > 0 {
		form.Email = parts[0]
	}
	if len(parts) > 1 {
		form.Password = parts[1]
		form.ConfirmPassword = parts[1]
	}
	if len(parts) > 2 {
		form.Name = parts[2]
	}
	if len(parts) > 3 {
		form.Phone = parts[3]
		form.Specialization = parts[3]
	}
	if len(parts) > 4 {
		form.License = parts[4]
	}
	portal.Auth.Submit(ctx, form)
}

func book(ctx context.Context, portal *app.App, rest string) {
	parts := strings.Split(rest, ";")
	if len(parts) != 5 {
		fmt.Println("usage: book <doctor>;<type>;<date>;<time>;<symptoms>")
		return
	}
	req := booking.Request{
		Doctor:   strings.TrimSpace(parts[0]),
		Type:     strings.TrimSpace(parts[1]),
		Date:     strings.TrimSpace(parts[2]),
		Time:     strings.TrimSpace(parts[3]),
		Symptoms: strings.TrimSpace(parts[4]),
	}
	appt, msg, err := portal.Bookings.Book(ctx, req)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s (id %s)\n", msg, appt.ID)
}

func report(msg string, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(msg)
}
