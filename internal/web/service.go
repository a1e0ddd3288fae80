// Package web serves match-3 boards over HTTP. Each game is an independent
// board keyed by a UUID; clients play it with JSON requests and can follow
// it as a stream of server-sent events.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/match3/internal/board"
	"github.com/vovakirdan/match3/internal/config"
)

var (
	// ErrNotFound is returned for an unknown game ID.
	ErrNotFound = errors.New("web: game not found")
	// ErrClosed is returned by Subscribe after Close.
	ErrClosed = errors.New("web: service closed")
)

// NewGameRequest describes a board. Zero values take the configured
// defaults.
type NewGameRequest struct {
	Rows    int   `json:"rows"`
	Columns int   `json:"columns"`
	Colors  int   `json:"colors"`
	Strict  *bool `json:"strict"`
	Seed    int64 `json:"seed"`
}

// StepResult is the outcome of one swap.
type StepResult struct {
	Accepted bool      `json:"accepted"`
	Score    int       `json:"score"`
	Cleared  int       `json:"cleared"`
	NoMoves  bool      `json:"noMoves"`
	Board    BoardView `json:"board"`
}

// session is one hosted board. The board is not safe for concurrent use;
// mu guards it and the fields its observer writes.
type session struct {
	id      string
	created time.Time

	mu      sync.Mutex
	board   *board.Board
	updated time.Time
	cleared int // cleared by the current step
	noMoves bool
	steps   int
}

func (s *session) onEvent(e board.Event) {
	switch e := e.(type) {
	case board.Matched:
		s.cleared += e.Cleared
	case board.NoLegalMoves:
		s.noMoves = true
	case board.Dealt:
		s.noMoves = false
	}
}

// view must be called with mu held.
func (s *session) view() BoardView {
	return newBoardView(s.id, s.board, s.noMoves, s.steps)
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service hosts games and fans their state out to subscribers.
type Service struct {
	cfg    config.Match3Config
	logger *log.Logger

	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
	subs     map[string]map[*subscriber]struct{}
	closed   bool
}

// NewService creates a service dealing boards from cfg.
func NewService(cfg config.Match3Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
		subs:     make(map[string]map[*subscriber]struct{}),
	}
}

// CreateGame deals a new board. A request the engine cannot build fails
// with board.ErrInvalidConfig; a board without a legal first move is still
// created and reported with NoMoves set.
func (s *Service) CreateGame(req NewGameRequest) (BoardView, error) {
	rows, cols := s.cfg.Board.Rows, s.cfg.Board.Columns
	if req.Rows > 0 {
		rows = req.Rows
	}
	if req.Columns > 0 {
		cols = req.Columns
	}
	colors := len(s.cfg.Board.Colors)
	if req.Colors > 0 {
		colors = req.Colors
	}

	opts := append(s.cfg.Rules.BoardOptions(), board.WithAutoSettle(true))
	if req.Strict != nil {
		opts = append(opts, board.WithStrict(*req.Strict))
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	now := s.now()
	sess := &session{id: uuid.NewString(), created: now, updated: now}
	cfg := board.Config{Rows: rows, Columns: cols, Palette: s.cfg.Board.Palette(colors)}
	b, err := board.New(cfg, rand.New(rand.NewSource(seed)), opts...)
	if b == nil {
		return BoardView{}, err
	}
	sess.board = b
	b.Subscribe(board.ObserverFunc(sess.onEvent))
	sess.noMoves = !b.HasLegalMove()

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.logger.Info("game created", "id", sess.id, "rows", rows, "columns", cols, "colors", cfg.Palette.Len(), "seed", seed)
	if err != nil {
		s.logger.Warn("deal has no legal move", "id", sess.id, "error", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

func (s *Service) session(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Get returns the current state of a game.
func (s *Service) Get(id string) (BoardView, error) {
	sess, err := s.session(id)
	if err != nil {
		return BoardView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// Swap plays first and second. An illegal swap is not an error: it comes
// back with Accepted false and an unchanged board. Out-of-range indices
// return an error wrapping board.ErrOutOfBounds.
func (s *Service) Swap(id string, first, second int) (StepResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return StepResult{}, err
	}

	sess.mu.Lock()
	sess.cleared = 0
	accepted, err := sess.board.TakeStep(first, second)
	if err != nil {
		sess.mu.Unlock()
		return StepResult{}, err
	}
	if accepted {
		sess.steps++
		sess.updated = s.now()
	}
	res := StepResult{
		Accepted: accepted,
		Score:    sess.board.Score(),
		Cleared:  sess.cleared,
		NoMoves:  sess.noMoves,
		Board:    sess.view(),
	}
	sess.mu.Unlock()

	if accepted {
		s.logger.Debug("swap", "id", id, "first", first, "second", second, "cleared", res.Cleared, "score", res.Score)
		if res.NoMoves {
			s.logger.Info("game deadlocked", "id", id, "score", res.Score)
		}
		s.broadcast(id, res.Board)
	}
	return res, nil
}

// NewDeal redeals a game in place and resets its score.
func (s *Service) NewDeal(id string) (BoardView, error) {
	sess, err := s.session(id)
	if err != nil {
		return BoardView{}, err
	}

	sess.mu.Lock()
	dealErr := sess.board.NewGame()
	if dealErr != nil {
		sess.noMoves = !sess.board.HasLegalMove()
	}
	sess.updated = s.now()
	view := sess.view()
	sess.mu.Unlock()

	if dealErr != nil {
		s.logger.Warn("deal has no legal move", "id", id, "error", dealErr)
	}
	s.broadcast(id, view)
	return view, nil
}

// Hint returns the first legal swap of a game, if any.
func (s *Service) Hint(id string) (board.Swap, bool, error) {
	sess, err := s.session(id)
	if err != nil {
		return board.Swap{}, false, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	swap, ok := sess.board.Hint()
	return swap, ok, nil
}

// Delete drops a game and closes its subscribers.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	if _, ok := s.sessions[id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.dropLocked(id)
	s.mu.Unlock()

	s.logger.Info("game deleted", "id", id)
	return nil
}

// dropLocked removes a game and closes its subscribers. mu must be held.
func (s *Service) dropLocked(id string) {
	delete(s.sessions, id)
	for sub := range s.subs[id] {
		sub.close()
	}
	delete(s.subs, id)
}

// ExpireIdle drops games that have not changed for maxIdle and have no
// subscribers. It returns the number of games dropped.
func (s *Service) ExpireIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var expired []string
	for id, sess := range s.sessions {
		if len(s.subs[id]) > 0 {
			continue
		}
		sess.mu.Lock()
		idle := sess.updated.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			s.dropLocked(id)
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		s.logger.Info("game expired", "id", id)
	}
	return len(expired)
}

// RunExpiry calls ExpireIdle every interval until ctx ends.
func (s *Service) RunExpiry(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ExpireIdle(maxIdle)
		}
	}
}

// Close ends every event stream and refuses new subscribers. Games stay
// readable so in-flight requests can finish.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, set := range s.subs {
		for sub := range set {
			sub.close()
		}
		delete(s.subs, id)
	}
}

// Len returns the number of hosted games.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Subscribe registers for the board state of a game after every change.
// The channel is closed by unsubscribe, when ctx ends, when the game is
// deleted, or when the subscriber falls behind.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, nil, ErrClosed
	}
	if _, ok := s.sessions[id]; !ok {
		return nil, nil, ErrNotFound
	}

	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 4)}
	set[sub] = struct{}{}

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub, nil
}

// broadcast sends view to every subscriber of id. Subscribers with a full
// buffer are dropped. Sends and closes both happen under mu, so a channel
// is never written after it was closed.
func (s *Service) broadcast(id string, view BoardView) {
	payload, err := json.Marshal(view)
	if err != nil {
		s.logger.Error("cannot encode board", "id", id, "error", err)
		return
	}

	s.mu.Lock()
	dropped := 0
	for sub := range s.subs[id] {
		select {
		case sub.ch <- payload:
		default:
			delete(s.subs[id], sub)
			sub.close()
			dropped++
		}
	}
	s.mu.Unlock()

	if dropped > 0 {
		s.logger.Warn("dropped slow subscribers", "id", id, "count", dropped)
	}
}
