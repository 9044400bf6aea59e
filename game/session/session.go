package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/wricardo/party-board-game/game/engine"
	"github.com/wricardo/party-board-game/game/render"
)

// DefaultPlayers are the names of the players created for every session
var DefaultPlayers = []string{"Alice", "Bob"}

// Prompts shown to the operator
const (
	ContinuePrompt = " Press <enter> to continue. "
)

// InputProvider supplies one line of operator input per call
type InputProvider interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}

// Step records one step of a turn
type Step struct {
	To      engine.Coordinate `json:"to"`
	Effect  engine.Effect     `json:"effect"`
	Blocked bool              `json:"blocked,omitempty"`
}

// Turn records what happened to the active player during one playing tick
type Turn struct {
	Tick   int               `json:"tick"`
	Player string            `json:"player"`
	Roll   int               `json:"roll"`
	Steps  []Step            `json:"steps"`
	Final  engine.Coordinate `json:"final"`
}

// Session owns one game run: the board, the players and the turn state machine
type Session struct {
	ID string

	board    *engine.Board
	players  []*engine.Player
	active   *engine.Player
	input    InputProvider
	out      *render.Renderer
	rng      *rand.Rand
	movement Movement
	logger   log.FieldLogger

	state State
	ticks int
	turns []Turn
}

// Option configures a Session
type Option func(*Session)

// WithSeed seeds the session's random source once for the whole run
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithMovement selects the movement variant
func WithMovement(m Movement) Option {
	return func(s *Session) {
		s.movement = m
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger log.FieldLogger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithID overrides the generated session ID
func WithID(id string) Option {
	return func(s *Session) {
		s.ID = id
	}
}

// New creates a session in the undefined state with the default players
// standing on the board's start cell.
func New(board *engine.Board, input InputProvider, out *render.Renderer, opts ...Option) (*Session, error) {
	if board == nil {
		return nil, errors.New("board cannot be nil")
	}
	if input == nil {
		return nil, errors.New("input provider cannot be nil")
	}
	if out == nil {
		out = render.New(nil, nil)
	}

	s := &Session{
		board:    board,
		input:    input,
		out:      out,
		movement: MovementPath,
		logger:   log.StandardLogger(),
		state:    StateUndefined,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.rng == nil {
		WithSeed(uint64(time.Now().UnixNano()))(s)
	}
	if _, err := ParseMovement(string(s.movement)); err != nil {
		return nil, err
	}

	for _, name := range DefaultPlayers {
		s.players = append(s.players, engine.NewPlayer(name, board.Start()))
	}
	s.active = s.players[0]
	s.logger = s.logger.WithField("session", s.ID)

	return s, nil
}

// State returns the current state
func (s *Session) State() State { return s.state }

// TicksPlayed returns the number of completed ticks
func (s *Session) TicksPlayed() int { return s.ticks }

// Players returns the session's players in turn order
func (s *Session) Players() []*engine.Player { return s.players }

// Active returns the player selected by the most recent playing tick
func (s *Session) Active() *engine.Player { return s.active }

// Board returns the session's board
func (s *Session) Board() *engine.Board { return s.board }

// Turns returns the record of every turn played so far
func (s *Session) Turns() []Turn { return s.turns }

// Run plays engine.DefaultTicks ticks, or what remains of them, and returns
func (s *Session) Run(ctx context.Context) error {
	for s.ticks < engine.DefaultTicks {
		if err := s.Tick(ctx); err != nil {
			return err
		}
	}
	s.logger.WithField("ticks", s.ticks).Debug("run finished")
	return nil
}

// Tick runs one process, update, render cycle
func (s *Session) Tick(ctx context.Context) error {
	if err := s.process(ctx); err != nil {
		return fmt.Errorf("tick %d: %w", s.ticks, err)
	}
	s.update()
	s.render()
	s.ticks++
	return nil
}

// process reads operator input. The content is discarded.
func (s *Session) process(ctx context.Context) error {
	switch s.state {
	case StateWelcome:
		_, err := s.input.Prompt(ctx, ContinuePrompt)
		return err

	case StatePlaying:
		s.out.Printf("Turn of %s.", s.playerFor(s.ticks).Name())
		_, err := s.input.Prompt(ctx, ContinuePrompt)
		s.out.Println()
		return err
	}
	return nil
}

// update advances the state machine and plays a turn once in StatePlaying
func (s *Session) update() {
	switch s.state {
	case StateUndefined:
		s.transition(StateWelcome)
		return

	case StateWelcome:
		s.transition(StatePlaying)
		return

	case StatePlaying:
		s.playTurn()
	}
}

// render prints the banner or the board and player status
func (s *Session) render() {
	switch s.state {
	case StateWelcome:
		s.out.Welcome()

	case StatePlaying:
		s.out.Board(s.board, s.active.Position())
		s.out.Players(s.players)
	}
}

func (s *Session) transition(to State) {
	s.logger.WithFields(log.Fields{
		"from": s.state.String(),
		"to":   to.String(),
		"tick": s.ticks,
	}).Debug("state transition")
	s.state = to
}

func (s *Session) playerFor(tick int) *engine.Player {
	return s.players[tick%len(s.players)]
}

func (s *Session) rollDice() int {
	return s.rng.IntN(engine.MaxRoll-engine.MinRoll+1) + engine.MinRoll
}

func (s *Session) playTurn() {
	s.active = s.playerFor(s.ticks)
	steps := s.rollDice()

	logger := s.logger.WithFields(log.Fields{
		"tick":   s.ticks,
		"player": s.active.Name(),
		"roll":   steps,
	})
	logger.Debug("dice rolled")

	s.out.Printf("%s rolled %d steps!\n", s.active.Name(), steps)

	turn := Turn{Tick: s.ticks, Player: s.active.Name(), Roll: steps}
	switch s.movement {
	case MovementWalk:
		turn.Steps = s.walk(steps, logger)
	default:
		turn.Steps = s.followPath(steps, logger)
	}

	turn.Final = s.active.Position()
	for _, step := range turn.Steps {
		if !step.Blocked {
			turn.Final = step.To
		}
	}
	s.active.ResetPosition(turn.Final)
	s.turns = append(s.turns, turn)

	s.out.Printf("\n%s stopped at [%d,%d]\n", s.active.Name(), turn.Final.Row, turn.Final.Col)
}

// followPath advances the shared path cursor once per step and applies each landed cell
func (s *Session) followPath(steps int, logger log.FieldLogger) []Step {
	var taken []Step
	for i := 0; i < steps; i++ {
		next, err := s.board.Next()
		if err != nil {
			logger.WithError(err).Warn("cannot advance along path")
			break
		}
		taken = append(taken, s.land(next))
	}
	return taken
}

// walk takes steps random orthogonal moves from the active player's position.
// Blocked moves are skipped silently, without drawing again.
func (s *Session) walk(steps int, logger log.FieldLogger) []Step {
	var taken []Step
	pos := s.active.Position()
	for i := 0; i < steps; i++ {
		target, dir, ok := s.board.RandomStep(pos, s.rng)
		if !ok {
			logger.WithFields(log.Fields{"direction": dir, "from": pos.String()}).Debug("random step blocked")
			taken = append(taken, Step{To: target, Blocked: true})
			continue
		}
		taken = append(taken, s.land(target))
		pos = target
	}
	return taken
}

func (s *Session) land(pos engine.Coordinate) Step {
	kind, _ := s.board.Cell(pos)
	effect := s.active.Apply(kind)
	if !effect.None() {
		s.out.Printf(" %s!", effect)
	}
	s.out.Printf(" [%d,%d]", pos.Row, pos.Col)
	return Step{To: pos, Effect: effect}
}
