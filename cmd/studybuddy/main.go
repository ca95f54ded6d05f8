// Command studybuddy is the terminal flashcard client.
//
// Usage:
//
//	studybuddy [--config=client.yaml] [--api-url=http://localhost:8080] [--user=<uuid>] [--subject=math]
//
// Without --api-url (or STUDYBUDDY_API_URL) it runs offline on the built-in
// sample deck.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/heartmarshall/studybuddy/internal/app"
	"github.com/heartmarshall/studybuddy/internal/config"
)

func main() {
	var (
		configPath = flag.StringP("config", "c", "", "path to client YAML config")
		apiURL     = flag.String("api-url", "", "collaborator API base URL (empty for offline)")
		userID     = flag.StringP("user", "u", "", "user id sent as X-User-Id")
		subject    = flag.StringP("subject", "s", "", "default subject filter")
		shuffle    = flag.Bool("shuffle", false, "shuffle the deck")
		timer      = flag.Bool("timer", false, "print the elapsed time on every tick")
		offline    = flag.Bool("offline", false, "ignore any configured API and use the sample deck")
		version    = flag.BoolP("version", "v", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.LoadClient(*configPath, func(c *config.ClientConfig) {
		if flag.CommandLine.Changed("api-url") {
			c.API.BaseURL = *apiURL
		}
		if flag.CommandLine.Changed("user") {
			c.API.UserID = *userID
		}
		if flag.CommandLine.Changed("subject") {
			c.Study.Subject = *subject
		}
		if flag.CommandLine.Changed("shuffle") {
			c.Study.Shuffle = *shuffle
		}
		if flag.CommandLine.Changed("timer") {
			c.Study.LiveTimer = *timer
		}
		if *offline {
			c.API.BaseURL = ""
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "studybuddy: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunClient(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "studybuddy: %v\n", err)
		os.Exit(1)
	}
}
