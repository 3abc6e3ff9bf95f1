package scheduler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/petbazaar/petbazaar-api/databases"
)

const auditTimeout = 5 * time.Minute

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron *cron.Cron
	CDB  databases.ChatDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(cDB databases.ChatDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		CDB:  cDB,
	}
}

// Start registers the jobs and begins the scheduler. spec is the cron
// expression for the duplicate chat audit.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.auditDuplicateChats); err != nil {
		return errors.Wrapf(err, "failed to register duplicate chat audit with schedule %q", spec)
	}

	s.cron.Start()
	zap.S().Infow("scheduler started", "auditSchedule", spec)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// auditDuplicateChats reports chats sharing the same buyer, seller and pet.
// Concurrent get-or-create calls can insert more than one; nothing is merged.
func (s *Scheduler) auditDuplicateChats() {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	dups, err := s.CDB.FindDuplicates(ctx)
	if err != nil {
		zap.S().Errorw("failed to audit duplicate chats", "error", err)
		return
	}

	for _, d := range dups {
		ids := make([]string, 0, len(d.ChatIDs))
		for _, id := range d.ChatIDs {
			ids = append(ids, id.Hex())
		}
		zap.S().Warnw("duplicate chats found",
			"buyerId", d.BuyerID,
			"sellerId", d.SellerID,
			"petId", d.PetID,
			"count", d.Count,
			"chatIds", ids,
		)
	}
	zap.S().Infow("duplicate chat audit complete", "duplicates", len(dups))
}
