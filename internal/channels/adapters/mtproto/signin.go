package mtproto

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

// TermAuth asks for the phone number, login code and 2FA password on a
// terminal. Sign-up is not supported: the account must already exist.
type TermAuth struct {
	PhoneNumber string // asked interactively when empty

	In  *bufio.Reader
	Out io.Writer
}

func NewTermAuth(in io.Reader, out io.Writer, phone string) TermAuth {
	return TermAuth{PhoneNumber: phone, In: bufio.NewReader(in), Out: out}
}

func (a TermAuth) ask(prompt string) (string, error) {
	fmt.Fprint(a.Out, prompt)
	line, err := a.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a TermAuth) Phone(_ context.Context) (string, error) {
	if a.PhoneNumber != "" {
		return a.PhoneNumber, nil
	}
	return a.ask("Phone number (+79123456789): ")
}

func (a TermAuth) Password(_ context.Context) (string, error) {
	return a.ask("Two-step verification password: ")
}

func (a TermAuth) Code(_ context.Context, _ *tg.AuthSentCode) (string, error) {
	return a.ask("Code from Telegram: ")
}

func (TermAuth) AcceptTermsOfService(_ context.Context, _ tg.HelpTermsOfService) error {
	return nil
}

func (TermAuth) SignUp(_ context.Context) (auth.UserInfo, error) {
	return auth.UserInfo{}, errors.New("sign up is not supported, use an existing account")
}

// SignInResult describes the account the session belongs to.
type SignInResult struct {
	User              *tg.User
	AlreadyAuthorized bool
}

// SignIn authorizes a session interactively and persists it to storage.
// An already authorized session is left untouched.
func SignIn(ctx context.Context, appID int, appHash string, storage session.Storage, authenticator auth.UserAuthenticator) (*SignInResult, error) {
	client := telegram.NewClient(appID, appHash, telegram.Options{
		SessionStorage: storage,
		NoUpdates:      true,
	})

	var res SignInResult
	err := client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("auth status: %w", err)
		}
		if status.Authorized {
			res.AlreadyAuthorized = true
			res.User = status.User
			return nil
		}

		flow := auth.NewFlow(authenticator, auth.SendCodeOptions{})
		if err := client.Auth().IfNecessary(ctx, flow); err != nil {
			return fmt.Errorf("auth flow: %w", err)
		}

		self, err := client.Self(ctx)
		if err != nil {
			return fmt.Errorf("get self: %w", err)
		}
		res.User = self
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
