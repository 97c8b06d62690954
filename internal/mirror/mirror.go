// Package mirror write-behinds engine state to the store. The engine calls
// the Mirror hooks synchronously under its lock, so every write is queued
// here and applied by a single worker in call order.
package mirror

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/asengupta/cyberquest/internal/catalog"
	"github.com/asengupta/cyberquest/internal/challenges"
	"github.com/asengupta/cyberquest/internal/engine"
	"github.com/asengupta/cyberquest/internal/stats"
	"github.com/asengupta/cyberquest/internal/store"
)

// defaultQueueSize bounds pending writes before the syncer starts dropping.
const defaultQueueSize = 256

// writeTimeout bounds each individual store write.
const writeTimeout = 5 * time.Second

// Repos are the store repositories the syncer writes through.
type Repos struct {
	Profiles   store.ProfileRepo
	Challenges store.ChallengeRepo
	Tasks      store.TaskRepo
	Events     store.EventRepo
}

// FromStore collects the repositories of s.
func FromStore(s *store.Store) Repos {
	return Repos{
		Profiles:   s.ProfileRepo(),
		Challenges: s.ChallengeRepo(),
		Tasks:      s.TaskRepo(),
		Events:     s.EventRepo(),
	}
}

// Syncer implements engine.Mirror. Writes never block the caller: they are
// queued FIFO and applied by one worker goroutine, so per-user ordering is
// the engine's call ordering. When the queue is full the write is dropped
// and reported through the warn hook; gameplay always wins over persistence.
type Syncer struct {
	userID string
	repos  Repos
	warn   func(error)

	queue chan func(context.Context) error
	quit  chan struct{}
	done  chan struct{}
	once  sync.Once
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithWarnFunc sets the handler for dropped or failed writes.
func WithWarnFunc(fn func(error)) Option {
	return func(s *Syncer) { s.warn = fn }
}

// WithQueueSize overrides the pending-write buffer size.
func WithQueueSize(n int) Option {
	return func(s *Syncer) {
		if n > 0 {
			s.queue = make(chan func(context.Context) error, n)
		}
	}
}

// New creates a syncer for userID and starts its worker.
func New(repos Repos, userID string, opts ...Option) *Syncer {
	s := &Syncer{
		userID: userID,
		repos:  repos,
		warn:   func(error) {},
		queue:  make(chan func(context.Context) error, defaultQueueSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Close stops the worker after draining queued writes.
func (s *Syncer) Close() {
	s.once.Do(func() { close(s.quit) })
	<-s.done
}

// SaveProfile queues an upsert of the learner profile.
func (s *Syncer) SaveProfile(p engine.ProfileState) {
	rec := &store.ProfileRecord{
		UserID:             s.userID,
		XP:                 p.Stats.XP,
		TotalEarnedXP:      p.Stats.TotalEarnedXP,
		Streak:             p.Stats.Streak,
		CompletedModules:   p.Stats.CompletedModules,
		ExercisesCompleted: p.ExercisesCompleted,
		WeekStart:          p.WeekStart,
	}
	if !p.LastActive.IsZero() {
		la := p.LastActive
		rec.LastActive = &la
	}
	s.enqueue("profile", func(ctx context.Context) error {
		return s.repos.Profiles.Upsert(ctx, rec)
	})
}

// SaveChallenge queues an upsert of one weekly challenge row.
func (s *Syncer) SaveChallenge(ch challenges.Challenge) {
	rec := store.ChallengeRecord{
		UserID:      s.userID,
		ChallengeID: ch.ID,
		Category:    string(ch.Category),
		Current:     ch.Current,
		Target:      ch.Target,
		XPReward:    ch.XPReward,
		Completed:   ch.Completed,
		WeekStart:   ch.WeekStart,
	}
	s.enqueue("challenge", func(ctx context.Context) error {
		return s.repos.Challenges.Upsert(ctx, rec)
	})
}

// SaveTask queues a task completion record.
func (s *Syncer) SaveTask(cat catalog.Category, taskID string, xpReward int) {
	rec := store.TaskRecord{
		UserID:   s.userID,
		Category: string(cat),
		TaskID:   taskID,
		XPReward: xpReward,
	}
	s.enqueue("task", func(ctx context.Context) error {
		return s.repos.Tasks.Add(ctx, rec)
	})
}

// AppendXP queues an XP ledger event.
func (s *Syncer) AppendXP(ev engine.XPEvent) {
	rec := store.XPEventRecord{
		Timestamp: ev.At,
		UserID:    s.userID,
		Source:    string(ev.Source),
		Amount:    ev.Amount,
		Category:  string(ev.Category),
		RefID:     ev.RefID,
		SessionID: ev.SessionID,
	}
	s.enqueue("xp event", func(ctx context.Context) error {
		return s.repos.Events.AppendXPEvent(ctx, rec)
	})
}

func (s *Syncer) enqueue(kind string, op func(context.Context) error) {
	select {
	case s.queue <- op:
	default:
		s.warn(fmt.Errorf("sync queue full, dropped %s write for %s", kind, s.userID))
	}
}

func (s *Syncer) run() {
	defer close(s.done)
	for {
		select {
		case op := <-s.queue:
			s.apply(op)
		case <-s.quit:
			// Drain what's already queued, then stop.
			for {
				select {
				case op := <-s.queue:
					s.apply(op)
				default:
					return
				}
			}
		}
	}
}

func (s *Syncer) apply(op func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := op(ctx); err != nil {
		s.warn(err)
	}
}

// Load hydrates an engine seed for userID from the store. A missing profile
// returns (nil, nil): a brand-new learner. Challenge and task rows with a
// category the catalog no longer knows are skipped rather than failing the
// whole load.
func Load(ctx context.Context, repos Repos, userID string) (*engine.Seed, error) {
	prof, err := repos.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if prof == nil {
		return nil, nil
	}

	seed := &engine.Seed{
		Stats: stats.UserStats{
			XP:               prof.XP,
			TotalEarnedXP:    prof.TotalEarnedXP,
			Streak:           prof.Streak,
			CompletedModules: prof.CompletedModules,
		},
		ExercisesCompleted: prof.ExercisesCompleted,
		WeekStart:          prof.WeekStart,
		Tasks:              make(map[catalog.Category][]string),
	}
	if prof.LastActive != nil {
		seed.LastActive = *prof.LastActive
	}

	chRows, err := repos.Challenges.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	for _, row := range chRows {
		if _, err := catalog.ParseCategory(row.Category); err != nil {
			continue
		}
		seed.Challenges = append(seed.Challenges, engine.ChallengeRow{
			ID:        row.ChallengeID,
			Current:   row.Current,
			WeekStart: row.WeekStart,
		})
	}

	taskRows, err := repos.Tasks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	for _, row := range taskRows {
		cat, err := catalog.ParseCategory(row.Category)
		if err != nil {
			continue
		}
		seed.Tasks[cat] = append(seed.Tasks[cat], row.TaskID)
	}

	return seed, nil
}
