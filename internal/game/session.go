package game

import (
	"io"
	"math/rand"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scene"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	pauseMessage = "PAUSED: press SPACE to continue"
	lostMessage  = "LOST! Again: ENTER / Exit: ESC"
)

// Options configures a session.
type Options struct {
	Width         int
	Height        int
	BorderWidth   int
	InitialLength int
	Seed          int64 // 0 = seed from the clock
	Logger        *log.Logger
}

// Session owns the snake and the scene and advances them one tick per Step.
// It is not safe for concurrent use.
type Session struct {
	opts   Options
	snake  *snake.Snake
	scene  *scene.Scene
	logger *log.Logger

	state State
	grow  bool // extend the tail on the next advance
	score int
	tick  uint64
}

// NewSession validates the options and builds a session.
// Call Reset before the first Step to draw the board and place food.
func NewSession(opts Options) (*Session, error) {
	if opts.InitialLength < 1 {
		return nil, &core.ConfigError{Field: "initial_length", Reason: "must be at least 1"}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc, err := scene.New(opts.Width, opts.Height, opts.BorderWidth, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		scene:  sc,
		logger: logger,
	}
	s.snake = snake.NewWithLength(s.start(), snake.DirDown, s.startLength())
	return s, nil
}

// start is the board center.
func (s *Session) start() core.Point {
	return core.NewRect(0, 0, s.scene.Width(), s.scene.Height()).Center()
}

// startLength caps the initial length to the interior rows above the center,
// where the tail is laid out.
func (s *Session) startLength() int {
	n := min(s.opts.InitialLength, s.start().Y-s.scene.BorderWidth())
	if n < s.opts.InitialLength {
		s.logger.Debug("initial length capped",
			"requested", s.opts.InitialLength,
			"length", n)
	}
	return n
}

// Reset starts a new round: snake at the center heading down, no food, state
// Running. The whole board is redrawn onto dst with one food item.
func (s *Session) Reset(dst core.Canvas) {
	s.snake.Reset(s.start(), snake.DirDown, s.startLength())
	s.scene.Reset()
	s.state = StateRunning
	s.grow = false
	s.score = 0
	s.tick = 0

	s.scene.RenderBorder(dst)
	s.scene.RenderSnake(dst, s.snake)
	s.scene.SpawnFood(s.snake)
	s.scene.RenderFood(dst)

	s.logger.Debug("round started",
		"width", s.scene.Width(),
		"height", s.scene.Height(),
		"head", s.snake.Head(),
		"length", s.snake.Len())
}

// Step processes the input batch collected since the previous step and, when
// running, advances the snake by one cell. A batch that pauses and resumes
// again still ends with a move.
func (s *Session) Step(events []core.Action, dst core.Canvas) Signal {
	for _, ev := range events {
		if ev == core.ActionQuit {
			s.logger.Info("quit", "state", s.state, "score", s.score)
			return SignalQuit
		}
	}

	switch s.state {
	case StatePaused:
		for _, ev := range events {
			if ev == core.ActionPause {
				s.resume(dst)
				break
			}
		}
	case StateLost:
		for _, ev := range events {
			if ev == core.ActionConfirm {
				s.logger.Info("restart", "previous_score", s.score)
				s.Reset(dst)
				break
			}
		}
	case StateRunning:
		s.advance(events, dst)
	}
	return SignalNone
}

func (s *Session) advance(events []core.Action, dst core.Canvas) {
	// The last turn that does not reverse the current heading wins. Pause
	// toggles: turns read before it survive, and while paused only another
	// Pause is honoured.
	next, turn := s.snake.Direction(), false
	for _, ev := range events {
		if s.state == StatePaused {
			if ev == core.ActionPause {
				s.resume(dst)
			}
			continue
		}
		if d, ok := snake.FromAction(ev); ok {
			if !d.IsOpposite(s.snake.Direction()) {
				next, turn = d, true
			}
			continue
		}
		if ev == core.ActionPause {
			if turn {
				s.snake.SetDirection(next)
				turn = false
			}
			s.pause(dst)
		}
	}
	if s.state == StatePaused {
		return
	}
	if turn {
		s.snake.SetDirection(next)
	}

	s.tick++

	if s.scene.IsOutOfBounds(s.snake) || s.scene.IsSelfCollision(s.snake) {
		s.lose(dst)
		return
	}

	s.scene.ClearSnakeCells(dst, s.snake)
	s.snake.Advance(s.grow)
	s.scene.RenderFood(dst)
	s.scene.RenderSnake(dst, s.snake)

	if s.scene.TryConsumeFood(s.snake) {
		s.score++
		s.grow = true
		if !s.scene.SpawnFood(s.snake) {
			s.logger.Debug("board full, no food spawned", "length", s.snake.Len())
		}
		s.scene.RenderFood(dst)
		s.logger.Debug("food eaten", "score", s.score, "head", s.snake.Head())
	} else {
		s.grow = false
	}
}

func (s *Session) pause(dst core.Canvas) {
	s.state = StatePaused
	s.drawMessage(dst, pauseMessage)
	s.logger.Debug("paused", "tick", s.tick)
}

// resume redraws the board under the pause message.
func (s *Session) resume(dst core.Canvas) {
	s.state = StateRunning
	s.scene.RenderBorder(dst)
	s.scene.RenderFood(dst)
	s.scene.RenderSnake(dst, s.snake)
	s.logger.Debug("resumed", "tick", s.tick)
}

func (s *Session) lose(dst core.Canvas) {
	s.state = StateLost
	s.drawMessage(dst, lostMessage)
	s.logger.Info("lost",
		"score", s.score,
		"length", s.snake.Len(),
		"head", s.snake.Head(),
		"tick", s.tick)
}

// drawMessage writes text centered on the middle row.
func (s *Session) drawMessage(dst core.Canvas, text string) {
	x := max(0, (s.scene.Width()-utf8.RuneCountInString(text))/2)
	dst.DrawText(x, s.scene.Height()/2, text)
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of food items eaten this round.
func (s *Session) Score() int {
	return s.score
}

// Snake returns the live snake.
func (s *Session) Snake() *snake.Snake {
	return s.snake
}

// Scene returns the live scene.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}
