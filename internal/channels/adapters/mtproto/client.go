// Package mtproto implements the channel gateway on top of a gotd user
// client restored from a previously signed-in session.
package mtproto

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
	"github.com/rs/zerolog/log"
)

var errNotConnected = errors.New("telegram client is not connected")

type Client struct {
	appID   int
	appHash string
	storage session.Storage

	mu     sync.Mutex
	client *telegram.Client
	api    *tg.Client
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient builds a client that reads its credential from storage. The
// connection is not opened until Connect.
func NewClient(appID int, appHash string, storage session.Storage) *Client {
	return &Client{
		appID:   appID,
		appHash: appHash,
		storage: storage,
	}
}

// Connect starts a fresh gotd client in the background and waits until the
// connection is usable or ctx expires. The background run outlives ctx and
// stops on Close or on a fatal protocol error, see Alive.
func (c *Client) Connect(ctx context.Context) error {
	client := telegram.NewClient(c.appID, c.appHash, telegram.Options{
		SessionStorage: c.storage,
		NoUpdates:      true,
	})

	runCtx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan struct{})
	runErr := make(chan error, 1)

	go func() {
		defer close(done)
		err := client.Run(runCtx, func(ctx context.Context) error {
			close(ready)
			<-ctx.Done()
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("telegram client stopped")
		}
		runErr <- err
	}()

	select {
	case <-ready:
		c.mu.Lock()
		prevCancel, prevDone := c.cancel, c.done
		c.client, c.api = client, client.API()
		c.cancel, c.done = cancel, done
		c.mu.Unlock()

		// a previous run that died is still drained
		if prevCancel != nil {
			prevCancel()
			<-prevDone
		}
		return nil
	case err := <-runErr:
		cancel()
		if err == nil {
			err = errors.New("client exited before becoming ready")
		}
		return fmt.Errorf("telegram run: %w", err)
	case <-ctx.Done():
		cancel()
		<-done
		return fmt.Errorf("telegram connect: %w", ctx.Err())
	}
}

// Alive reports whether the background run started by Connect is still
// going.
func (c *Client) Alive() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

func (c *Client) rpc() (*tg.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api == nil {
		return nil, errNotConnected
	}
	return c.api, nil
}

func (c *Client) Authorized(ctx context.Context) (bool, error) {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()
	if client == nil {
		return false, errNotConnected
	}

	status, err := client.Auth().Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Authorized, nil
}

// Close stops the background run and waits for it to exit.
func (c *Client) Close() error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

// ReadOnly wraps a session storage so the running service never rewrites the
// credential produced by the sign-in tool.
func ReadOnly(s session.Storage) session.Storage {
	return readOnlyStorage{Storage: s}
}

type readOnlyStorage struct {
	session.Storage
}

func (readOnlyStorage) StoreSession(ctx context.Context, data []byte) error {
	log.Debug().Int("bytes", len(data)).Msg("session update discarded, storage is read-only")
	return nil
}
