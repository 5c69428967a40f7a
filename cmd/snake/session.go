package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// session owns the process-wide services and every game created in this
// process. Games are created once and reused, so a high score lasts until
// the process exits.
type session struct {
	env   registry.Env
	games map[string]registry.Game
}

func newSession(env registry.Env) *session {
	return &session{env: env, games: make(map[string]registry.Game)}
}

// openSession resolves the rule flags and builds the logger and alert cue.
// The returned closer releases the log file.
func openSession() (*session, io.Closer, error) {
	rules, err := loadRules()
	if err != nil {
		return nil, nil, err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return nil, nil, err
	}

	var alerter core.Alerter = audio.Mute{}
	if !flagMute {
		alerter = audio.NewBeeper(os.Stderr, logger)
	}

	return newSession(registry.Env{
		Logger:  logger,
		Alerter: alerter,
		Config:  &rules,
	}), closer, nil
}

// game returns the instance of id, creating it on first use.
func (s *session) game(id string) (registry.Game, error) {
	if g, ok := s.games[id]; ok {
		return g, nil
	}
	g, err := registry.Create(id, s.env)
	if err != nil {
		return nil, err
	}
	s.games[id] = g
	return g, nil
}

// play runs game id in the terminal until the player quits.
func (s *session) play(id string, start ...core.Command) error {
	game, err := s.game(id)
	if err != nil {
		return err
	}

	// Get terminal size early for the too-small check
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	s.env.Logger.Info("starting", "game", id, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, cfg, s.env.Logger, start...); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}

// close stops every game of the session.
func (s *session) close() {
	for _, g := range s.games {
		g.Close()
	}
}
