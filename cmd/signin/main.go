// Command signin authorizes the userbot account interactively and stores the
// session credential that the API server later reuses.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"zyra-views/internal/channels/adapters/mtproto"
	"zyra-views/internal/config"
	"zyra-views/internal/logger"
	"zyra-views/internal/session"
)

func main() {
	cfg, err := config.LoadTelegram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("zyra-views-signin", os.Getenv("DEBUG") == "true")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := session.OpenStorage(ctx, *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session storage")
	}
	defer closeStorage()

	authenticator := mtproto.NewTermAuth(os.Stdin, os.Stdout, os.Getenv("TELEGRAM_PHONE"))

	res, err := mtproto.SignIn(ctx, cfg.APIID, cfg.APIHash, storage, authenticator)
	if err != nil {
		log.Fatal().Err(err).Msg("sign in failed")
	}

	name := "unknown"
	if res.User != nil {
		name = res.User.FirstName
		if res.User.Username != "" {
			name = "@" + res.User.Username
		}
	}

	if res.AlreadyAuthorized {
		fmt.Printf("Session is already authorized as %s\n", name)
		return
	}
	fmt.Printf("Signed in as %s, session saved\n", name)
}
