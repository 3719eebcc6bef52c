package dedupe

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/core"
	"github.com/Prabhatcodes-x/rovo-issue-duplicator-i/rank"
)

// Duplicate reports the likely duplicates of one document. Each unordered
// pair appears once in a sweep, attributed to its lower document ID.
type Duplicate struct {
	QueryID string
	Matches []core.ScoredCandidate
}

// Sweeper runs a full pairwise duplicate scan over a corpus using a shared
// worker pool.
type Sweeper struct {
	ranker *rank.Ranker
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Sweeper.
type Option func(*Sweeper) error

// WithPoolSize sets the worker pool size for concurrent scanning.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Sweeper) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sweeper) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSweeper creates a new sweeper.
func NewSweeper(ranker *rank.Ranker, opts ...Option) (*Sweeper, error) {
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Sweeper{
		ranker: ranker,
		pool:   pool,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	return s, nil
}

// Sweep ranks every document against the whole corpus and collects the
// duplicate pairs found. Every query sees the same candidate slice so the
// cached corpus statistics stay consistent across workers; a match is then
// kept only on the side with the lower document ID, which reports each
// unordered pair exactly once.
//
// Documents without an ID are skipped with a warning.
func (s *Sweeper) Sweep(ctx context.Context, docs []core.Document, corpusKey string) ([]Duplicate, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		found    []Duplicate
		firstErr error
	)

	for i := range docs {
		if err := ctx.Err(); err != nil {
			break
		}

		doc := &docs[i]
		if doc.ID == "" {
			s.logger.Warn("skipping document without id in sweep")
			continue
		}

		wg.Add(1)
		if err := s.pool.Submit(func() {
			defer wg.Done()

			results, err := s.ranker.Rank(ctx, doc, docs, corpusKey)
			if err != nil {
				s.logger.Error("error ranking document during sweep", "id", doc.ID, "err", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			matches := make([]core.ScoredCandidate, 0, len(results))
			for _, match := range results {
				if match.DocumentID > doc.ID {
					matches = append(matches, match)
				}
			}
			if len(matches) == 0 {
				return
			}

			mu.Lock()
			found = append(found, Duplicate{QueryID: doc.ID, Matches: matches})
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].QueryID < found[j].QueryID
	})
	return found, nil
}

// Release releases the worker pool.
// The sweeper should not be used after calling Release.
func (s *Sweeper) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
