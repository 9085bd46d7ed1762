// Package terminal is the interactive front end: it renders the game to
// an ANSI terminal and translates key presses into game actions, for
// solo play and for online matches.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"columns/columns"
	"columns/proto"

	"github.com/eiannone/keyboard"
)

type clientState int

const (
	lobby clientState = iota
	waiting
	playing
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type Terminal struct {
	game    *columns.Game
	render  *render
	options *Options
	logger  *slog.Logger
	kbCh    <-chan keyboard.KeyEvent
	state   *state
}

type Options struct {
	NoShadow bool
	Advisor  bool
	Address  string
	Name     string
	Colors   columns.ColorSource
}

func New(l *slog.Logger, o *Options) (*Terminal, error) {
	r, err := newRender(l, o.NoShadow, o.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Terminal{
		game:    columns.NewGame(o.Colors, columns.Options{AI: o.Advisor, ShowShadows: !o.NoShadow}),
		render:  r,
		options: o,
		logger:  l,
		kbCh:    kb,
		state:   &state{current: lobby},
	}, nil
}

func (t *Terminal) Start() {
	t.render.local(t.game.Read())
	t.render.lobby()
	var wg sync.WaitGroup
	wg.Add(1)
	go t.listenKB(&wg)
	wg.Wait()
}

func (t *Terminal) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	var cancel context.CancelFunc
	for {
		event, ok := <-t.kbCh
		if !ok {
			t.logger.Error("Keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			t.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		switch t.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				t.render.reset()
				go t.listenGame()
				t.game.Start()
				t.state.set(playing)
			case 'o':
				var ctx context.Context
				ctx, cancel = context.WithCancel(context.Background())
				defer cancel()
				t.render.overlay("connecting to server...")
				go t.listenOnlineGame(ctx)
				t.state.set(waiting)
			case 'q':
				return
			default:
				continue
			}
		case waiting:
			switch event.Rune {
			case 'c':
				cancel()
				t.render.reset()
				t.render.local(t.game.Read())
				t.render.lobby()
				t.state.set(lobby)
			default:
				continue
			}
		case playing:
			switch {
			case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
				t.game.Action(columns.ShiftLeft)
			case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
				t.game.Action(columns.ShiftRight)
			case event.Key == keyboard.KeyArrowUp || event.Rune == 'e':
				t.game.Action(columns.CycleColors)
			case event.Key == keyboard.KeyArrowDown || event.Rune == 's' || event.Key == keyboard.KeySpace:
				t.game.Action(columns.Drop)
			case event.Rune == 'p':
				t.game.Action(columns.TogglePause)
			case event.Rune == 'r':
				t.game.Action(columns.Restart)
			}
		}
	}
}

func (t *Terminal) listenGame() {
	for {
		select {
		case <-t.game.UpdateCh:
			t.render.local(t.game.Read())
		case <-t.game.GameOverCh:
			t.game.Stop()
			t.render.local(t.game.Read())
			t.render.lobby()
			t.render.overlay("Game Over :(")
			t.state.set(lobby)
			return
		}
	}
}

func (t *Terminal) listenOnlineGame(ctx context.Context) {
	rc := newRemoteClient(t.options.Name, t.options.Address, t.logger)
	defer rc.close()

	if err := rc.start(ctx); err != nil {
		t.logger.Error("unable to start online game", slog.String("error", err.Error()))
		t.render.lobby()
		t.render.overlay("something went wrong :(")
		t.state.set(lobby)
		return
	}
	if ctx.Err() != nil {
		return
	}

	t.state.set(playing)
	t.render.reset()
	go t.game.Start()

	defer func() {
		t.game.Stop()
		t.state.set(lobby)
	}()
	for {
		select {
		case <-t.game.UpdateCh:
			snap := t.game.Read()
			t.render.local(snap)
			rc.send(&proto.GameMessage{
				Name:  t.options.Name,
				Score: int64(snap.Score),
				Field: field2Proto(snap.Field),
			})
		case gm, ok := <-rc.rcvCh:
			if !ok {
				t.render.lobby()
				t.render.overlay("opponent left the game")
				return
			}
			t.render.remote(gm)
			if gm.GetIsGameOver() {
				t.render.lobby()
				t.render.overlay("You Won :)")
				return
			}
		case <-t.game.GameOverCh:
			snap := t.game.Read()
			rc.send(&proto.GameMessage{
				Name:       t.options.Name,
				Score:      int64(snap.Score),
				IsGameOver: true,
				Field:      field2Proto(snap.Field),
			})
			t.render.lobby()
			t.render.overlay("You Lose :(")
			return
		case <-ctx.Done():
			return
		}
	}
}
