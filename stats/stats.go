// Package stats keeps the history of played games in a badger database.
package stats

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"znkr.io/distle/edit"
	"znkr.io/distle/game"
)

const gamePrefix = "game:"

// Record is the stored form of a finished game.
type Record struct {
	ID       string          `json:"id"`
	Secret   string          `json:"secret"`
	Won      bool            `json:"won"`
	Guesses  int             `json:"guesses"`
	Feedback []edit.Sequence `json:"feedback"`
	Played   time.Time       `json:"played"`
}

// Summary aggregates all stored games.
type Summary struct {
	Games          int
	Wins           int
	AverageGuesses float64 // over won games only
}

// Store is a game history. It implements game.Recorder.
type Store struct {
	db  *badger.DB
	log *zap.Logger
}

// Open opens (or creates) the history stored in dir.
func Open(dir string, log *zap.Logger) (*Store, error) {
	return open(badger.DefaultOptions(dir), log)
}

// OpenInMemory opens a history that is never written to disk.
func OpenInMemory(log *zap.Logger) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), log)
}

func open(opts badger.Options, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := badger.Open(opts.WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("opening stats: %v", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Record stores a finished game.
func (s *Store) Record(res *game.Result) error {
	rec := Record{
		ID:      res.ID,
		Secret:  res.Secret,
		Won:     res.Won,
		Guesses: res.Guesses(),
		Played:  res.Played,
	}
	for _, t := range res.Turns {
		rec.Feedback = append(rec.Feedback, t.Feedback)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding game %s: %v", res.ID, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+res.ID), data)
	})
	if err != nil {
		return fmt.Errorf("storing game %s: %v", res.ID, err)
	}
	s.log.Debug("recorded game", zap.String("game", res.ID))
	return nil
}

// Records returns all stored games, oldest first.
func (s *Store) Records() ([]Record, error) {
	var recs []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			var rec Record
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("decoding %s: %v", item.Key(), err)
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading stats: %v", err)
	}
	slices.SortStableFunc(recs, func(a, b Record) int {
		return a.Played.Compare(b.Played)
	})
	return recs, nil
}

// Summary aggregates all stored games.
func (s *Store) Summary() (Summary, error) {
	recs, err := s.Records()
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	guesses := 0
	for _, r := range recs {
		sum.Games++
		if r.Won {
			sum.Wins++
			guesses += r.Guesses
		}
	}
	if sum.Wins > 0 {
		sum.AverageGuesses = float64(guesses) / float64(sum.Wins)
	}
	return sum, nil
}
