package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"znkr.io/distle/dictionary"
	"znkr.io/distle/edit"
	"znkr.io/distle/game"
	"znkr.io/distle/report"
)

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request failures and finished games.
func WithLogger(log *zap.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// WithMaxGuesses sets the guess budget of new games.
func WithMaxGuesses(n int) Option {
	return func(h *Handler) { h.maxGuesses = n }
}

// WithRand sets the source used to pick secrets.
func WithRand(rng *rand.Rand) Option {
	return func(h *Handler) { h.rng = rng }
}

// WithStrictGuesses rejects guesses that are not in the game's dictionary.
func WithStrictGuesses(strict bool) Option {
	return func(h *Handler) { h.strict = strict }
}

// WithRecorder stores every finished game.
func WithRecorder(rec game.Recorder) Option {
	return func(h *Handler) { h.rec = rec }
}

// Handler implements the HTTP API.
type Handler struct {
	dict       atomic.Pointer[dictionary.Dictionary]
	router     *mux.Router
	log        *zap.Logger
	maxGuesses int
	strict     bool
	rec        game.Recorder

	mu    sync.Mutex
	rng   *rand.Rand
	games map[string]*session
}

// session is a game in progress. Fields are guarded by Handler.mu.
type session struct {
	dict *dictionary.Dictionary
	res  *game.Result
}

func (s *session) over() bool {
	return s.res.Won || s.res.Guesses() >= s.res.MaxGuesses
}

// NewHandler creates a handler serving dict.
func NewHandler(dict *dictionary.Dictionary, opts ...Option) *Handler {
	h := &Handler{
		log:        zap.NewNop(),
		maxGuesses: 10,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		games:      make(map[string]*session),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.dict.Store(dict)

	r := mux.NewRouter()
	r.HandleFunc("/distance", h.distance).Methods(http.MethodGet)
	r.HandleFunc("/games", h.newGame).Methods(http.MethodPost)
	r.HandleFunc("/games/{id}/guesses", h.guess).Methods(http.MethodPost)
	r.HandleFunc("/games/{id}/report", h.report).Methods(http.MethodGet)
	h.router = r
	return h
}

// ReplaceDictionary replaces the dictionary new games are played with.
func (h *Handler) ReplaceDictionary(dict *dictionary.Dictionary) {
	h.dict.Store(dict)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

type distanceResponse struct {
	Distance int           `json:"distance"`
	Sequence edit.Sequence `json:"sequence"`
}

func (h *Handler) distance(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	if !q.Has("from") || !q.Has("to") {
		h.writeError(w, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}
	res := edit.Compare(q.Get("from"), q.Get("to"))
	h.writeJSON(w, http.StatusOK, distanceResponse{res.Distance, res.Sequence})
}

type newGameRequest struct {
	Secret string `json:"secret"`
}

type newGameResponse struct {
	ID         string `json:"id"`
	MaxGuesses int    `json:"max_guesses"`
	Words      int    `json:"words"`
}

func (h *Handler) newGame(w http.ResponseWriter, req *http.Request) {
	var r newGameRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %v", err))
		return
	}

	dict := h.dict.Load()
	h.mu.Lock()
	defer h.mu.Unlock()

	secret := r.Secret
	switch {
	case secret == "":
		var err error
		secret, err = game.RandomSecret(dict.Words(), h.rng)
		if err != nil {
			h.writeError(w, http.StatusInternalServerError, err)
			return
		}
	case !dict.Contains(secret):
		h.writeError(w, http.StatusBadRequest, game.ErrUnknownSecret)
		return
	}

	s := &session{
		dict: dict,
		res: &game.Result{
			ID:         uuid.NewString(),
			Secret:     secret,
			MaxGuesses: h.maxGuesses,
			Played:     time.Now(),
		},
	}
	h.games[s.res.ID] = s
	h.log.Debug("game started", zap.String("game", s.res.ID), zap.Int("words", dict.Len()))
	h.writeJSON(w, http.StatusCreated, newGameResponse{s.res.ID, h.maxGuesses, dict.Len()})
}

type guessRequest struct {
	Guess string `json:"guess"`
}

type guessResponse struct {
	Guess     string        `json:"guess"`
	Distance  int           `json:"distance"`
	Feedback  edit.Sequence `json:"feedback"`
	Won       bool          `json:"won"`
	Remaining int           `json:"remaining"`
	Secret    string        `json:"secret,omitempty"` // only set once the game is over
}

func (h *Handler) guess(w http.ResponseWriter, req *http.Request) {
	var r guessRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %v", err))
		return
	}
	if r.Guess == "" {
		h.writeError(w, http.StatusBadRequest, errors.New("guess is required"))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.games[mux.Vars(req)["id"]]
	if !ok {
		h.writeError(w, http.StatusNotFound, errors.New("unknown game"))
		return
	}
	if s.over() {
		h.writeError(w, http.StatusConflict, errors.New("game is over"))
		return
	}
	if h.strict && !s.dict.Contains(r.Guess) {
		h.writeError(w, http.StatusUnprocessableEntity, fmt.Errorf("%q is not in the dictionary", r.Guess))
		return
	}

	c := edit.Compare(r.Guess, s.res.Secret)
	s.res.Turns = append(s.res.Turns, game.Turn{Guess: r.Guess, Distance: c.Distance, Feedback: c.Sequence})
	s.res.Won = c.Distance == 0

	resp := guessResponse{
		Guess:     r.Guess,
		Distance:  c.Distance,
		Feedback:  c.Sequence,
		Won:       s.res.Won,
		Remaining: s.res.MaxGuesses - s.res.Guesses(),
	}
	if s.over() {
		resp.Secret = s.res.Secret
		h.finish(s)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) finish(s *session) {
	h.log.Info("game finished",
		zap.String("game", s.res.ID),
		zap.Bool("won", s.res.Won),
		zap.Int("guesses", s.res.Guesses()))
	if h.rec == nil {
		return
	}
	if err := h.rec.Record(s.res); err != nil {
		h.log.Warn("recording game failed", zap.String("game", s.res.ID), zap.Error(err))
	}
}

func (h *Handler) report(w http.ResponseWriter, req *http.Request) {
	h.mu.Lock()
	s, ok := h.games[mux.Vars(req)["id"]]
	var res game.Result
	if ok {
		res = *s.res
		res.Turns = append([]game.Turn(nil), s.res.Turns...)
		if !s.over() {
			res.Secret = ""
		}
	}
	h.mu.Unlock()

	if !ok {
		h.writeError(w, http.StatusNotFound, errors.New("unknown game"))
		return
	}

	b, err := report.HTML(&res)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(b, '\n')); err != nil {
		h.log.Warn("failed to write response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	b, _ := json.Marshal(errorResponse{err.Error()})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(b, '\n'))
}
