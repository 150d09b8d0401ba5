// Package session owns the single MTProto user session shared by all
// requests of the process.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnauthorizedSession means the connection is up but the stored
	// credential is missing or revoked. The sign-in tool has to be re-run.
	ErrUnauthorizedSession = errors.New("userbot session is not authorized")

	// ErrSessionUnavailable means the connection could not be established or
	// its status could not be queried.
	ErrSessionUnavailable = errors.New("telegram session unavailable")

	// ErrSessionTimeout means the authorization status query did not answer
	// within the call timeout.
	ErrSessionTimeout = errors.New("telegram session status timed out")
)

// Connector is the protocol client as seen by the Manager.
type Connector interface {
	// Connect blocks until the connection is up. It is called at most once
	// at a time.
	Connect(ctx context.Context) error
	Authorized(ctx context.Context) (bool, error)
	// Alive reports whether the connection opened by Connect is still up.
	Alive() bool
	Close() error
}

type Manager struct {
	conn           Connector
	connectTimeout time.Duration
	callTimeout    time.Duration

	connected atomic.Bool
	connect   singleflight.Group
}

func NewManager(conn Connector, connectTimeout, callTimeout time.Duration) *Manager {
	return &Manager{
		conn:           conn,
		connectTimeout: connectTimeout,
		callTimeout:    callTimeout,
	}
}

// EnsureReady connects on first use and checks authorization. Concurrent
// callers share one in-flight connect; once connected no lock is taken.
// A connection whose client died is dialed again.
func (m *Manager) EnsureReady(ctx context.Context) error {
	if m.connected.Load() && !m.conn.Alive() {
		if m.connected.CompareAndSwap(true, false) {
			log.Warn().Msg("telegram client is gone, reconnecting")
		}
	}

	if !m.connected.Load() {
		ch := m.connect.DoChan("connect", func() (any, error) {
			if m.connected.Load() && m.conn.Alive() {
				return nil, nil
			}
			return nil, m.dial(ctx)
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				return fmt.Errorf("%w: %v", ErrSessionUnavailable, res.Err)
			}
		}
	}

	return m.checkAuthorized(ctx)
}

func (m *Manager) checkAuthorized(ctx context.Context) error {
	callCtx := ctx
	if m.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, m.callTimeout)
		defer cancel()
	}

	ok, err := m.conn.Authorized(callCtx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %v", ErrSessionTimeout, err)
		}
		return fmt.Errorf("%w: auth status: %v", ErrSessionUnavailable, err)
	}
	if !ok {
		return ErrUnauthorizedSession
	}
	return nil
}

// dial runs detached from the caller that triggered it, so one cancelled
// request does not fail everyone waiting on the same connect.
func (m *Manager) dial(ctx context.Context) error {
	dialCtx := context.WithoutCancel(ctx)
	if m.connectTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(dialCtx, m.connectTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := m.conn.Connect(dialCtx); err != nil {
		log.Error().Err(err).Msg("telegram connect failed")
		return err
	}
	m.connected.Store(true)

	log.Info().Dur("took", time.Since(start)).Msg("telegram connected")
	return nil
}

// Connected reports whether the connect step has completed.
func (m *Manager) Connected() bool {
	return m.connected.Load()
}

// Close tears the connection down. It is meant for process shutdown only.
func (m *Manager) Close() error {
	return m.conn.Close()
}
