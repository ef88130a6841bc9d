// Package maintenance runs periodic housekeeping jobs.
package maintenance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// PruneSchedule is when conversation logs are pruned.
const PruneSchedule = "@daily"

// ConversationPruner deletes conversation logs created before a cutoff.
type ConversationPruner interface {
	PruneConversations(ctx context.Context, before time.Time) (int64, error)
}

// Scheduler handles cron-based housekeeping jobs
type Scheduler struct {
	cron    *cron.Cron
	jobs    map[string]cron.EntryID // job name -> entry id
	jobsMux sync.RWMutex
	now     func() time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		jobs: make(map[string]cron.EntryID),
		now:  time.Now,
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Info().Int("jobs", len(s.Jobs())).Msg("✅ Maintenance scheduler started")
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("⏰ Maintenance scheduler stopped")
}

// AddJob registers job under name, replacing any job with the same name.
func (s *Scheduler) AddJob(name, schedule string, job func()) error {
	s.jobsMux.Lock()
	defer s.jobsMux.Unlock()

	if entryID, exists := s.jobs[name]; exists {
		s.cron.Remove(entryID)
		delete(s.jobs, name)
	}

	entryID, err := s.cron.AddFunc(schedule, job)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	s.jobs[name] = entryID
	log.Info().Str("job", name).Str("schedule", schedule).Msg("⏰ Scheduled maintenance job")
	return nil
}

// Jobs returns the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	s.jobsMux.RLock()
	defer s.jobsMux.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

// SchedulePrune registers the daily deletion of conversation logs older than retentionDays.
func (s *Scheduler) SchedulePrune(pruner ConversationPruner, retentionDays int) error {
	return s.AddJob("prune-conversations", PruneSchedule, func() {
		if _, err := s.PruneOnce(context.Background(), pruner, retentionDays); err != nil {
			log.Error().Err(err).Msg("❌ Failed to prune conversations")
		}
	})
}

// PruneOnce deletes conversation logs older than retentionDays and returns how many went.
func (s *Scheduler) PruneOnce(ctx context.Context, pruner ConversationPruner, retentionDays int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -retentionDays)
	n, err := pruner.PruneConversations(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune conversations: %w", err)
	}
	log.Info().Int64("deleted", n).Time("before", cutoff).Msg("🧹 Pruned conversation logs")
	return n, nil
}
