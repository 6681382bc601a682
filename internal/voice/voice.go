// Copyright (c) ZKAi-DEV
// SPDX-License-Identifier: BUSL-1.1

// Package voice runs the hands-free conversation loop: listen, send the
// transcript, speak the reply, listen again.
package voice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

type State int

const (
	Idle State = iota
	Listening
	Sending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Listening:
		return "listening"
	case Sending:
		return "sending"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Recognizer yields one final transcript per call. An empty transcript means
// listening ended without a result.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// Speaker plays text and returns when playback is done.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// SendFunc delivers a transcript and returns the assistant reply to speak.
// An empty reply is not spoken.
type SendFunc func(ctx context.Context, text string) (string, error)

// ErrRunning is returned when a cycle is started while another is in flight.
var ErrRunning = errors.New("voice: already running")

func New(rec Recognizer, spk Speaker, send SendFunc) *Loop {
	return &Loop{
		rec:  rec,
		spk:  spk,
		send: send,
	}
}

// Loop is the voice state machine. Playback happens while Idle.
type Loop struct {
	rec  Recognizer
	spk  Speaker
	send SendFunc

	mu     sync.Mutex
	state  State
	active bool
	busy   bool
	cancel context.CancelFunc

	// OnState, when set, is called after every state change.
	OnState func(State)
}

func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Active reports whether the loop re-enters Listening after each reply.
func (l *Loop) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Start runs cycles until Stop is called, ctx is done, or listening ends
// without a result.
func (l *Loop) Start(ctx context.Context) error {
	ctx, err := l.begin(ctx, true)
	if err != nil {
		return err
	}
	defer l.end()

	for {
		more, err := l.cycle(ctx)
		if err != nil || !more || !l.Active() {
			return err
		}
	}
}

// ListenOnce runs a single cycle.
func (l *Loop) ListenOnce(ctx context.Context) error {
	ctx, err := l.begin(ctx, false)
	if err != nil {
		return err
	}
	defer l.end()

	_, err = l.cycle(ctx)
	return err
}

// Stop clears the loop flag and cancels any in-flight listening or playback.
// A transcript already being sent is delivered and its reply dropped.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.active = false
	cancel := l.cancel
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	l.setState(Idle)
}

func (l *Loop) begin(ctx context.Context, active bool) (context.Context, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.busy {
		return nil, ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	l.busy = true
	l.active = active
	l.cancel = cancel
	return ctx, nil
}

func (l *Loop) end() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.cancel = nil
	l.busy = false
	l.active = false
	l.mu.Unlock()
	l.setState(Idle)
}

// cycle reports whether a transcript was handled. Cancellation is not an error.
func (l *Loop) cycle(ctx context.Context) (bool, error) {
	l.setState(Listening)
	text, err := l.rec.Listen(ctx)
	if ctx.Err() != nil {
		return false, nil
	}
	if err != nil {
		l.setState(Idle)
		return false, fmt.Errorf("voice: listening: %w", err)
	}
	if text == "" {
		l.setState(Idle)
		return false, nil
	}

	// Stop does not cancel a send in flight, the reply is kept but not spoken.
	l.setState(Sending)
	reply, err := l.send(context.WithoutCancel(ctx), text)
	l.setState(Idle)
	if ctx.Err() != nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("voice: sending: %w", err)
	}
	if reply == "" {
		return true, nil
	}

	if err := l.spk.Speak(ctx, reply); err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		slog.WarnContext(ctx, "voice: playback failed", "error", err)
	}
	return true, nil
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	changed := l.state != s
	l.state = s
	cb := l.OnState
	l.mu.Unlock()
	if changed && cb != nil {
		cb(s)
	}
}
