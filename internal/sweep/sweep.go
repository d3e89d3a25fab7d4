// Package sweep implements the posting-expiry job: it walks every open
// posting with a deadline, computes the remaining Brazilian business days,
// and closes the ones whose deadline has passed.
package sweep

import (
	"context"
	"database/sql"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gmfurtado/rhpulse/internal/domain/models"
	"github.com/gmfurtado/rhpulse/internal/logger"
	"github.com/gmfurtado/rhpulse/internal/notify"
	"github.com/gmfurtado/rhpulse/internal/storage"
	"github.com/gmfurtado/rhpulse/internal/workdays"
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PostingRepository {
	return storage.NewPostingRepository(db)
}

// timeNow is an indirection for tests; defaults to time.Now.
var timeNow = time.Now

// Result summarizes one sweep run.
type Result struct {
	Scanned int // postings evaluated
	Expired int // postings marked Vencida (or that would be, in dry-run)
}

// Run evaluates every open posting with a deadline and marks the expired
// ones. With dryRun set it only logs what it would do.
//
// Behavior:
//   - Fetches open postings with a deadline via ListExpiring.
//   - Evaluates postings concurrently, capped at NumCPU workers.
//   - A posting expires when its signed business-day distance is <= 0.
//   - Each expiry notifies the HR inbox; mail failures are logged, never fatal.
//   - The first repository error cancels the remaining workers.
func Run(ctx context.Context, db *sql.DB, mailer notify.Mailer, hrInbox string, dryRun bool) (Result, error) {
	repo := repoCtor(db)
	cal := workdays.BR()
	now := timeNow()

	postings, err := repo.ListExpiring(ctx)
	if err != nil {
		return Result{}, err
	}

	logger.L().Info().Int("postings", len(postings)).Bool("dry_run", dryRun).Msg("expiry sweep start")

	maxParallel := runtime.NumCPU()
	if maxParallel > 8 {
		maxParallel = 8
	}

	expired := make(chan string, len(postings))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for _, posting := range postings {
		p := posting
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			diff := cal.BusinessDaysUntil(p.ExpiresAt, now)
			if diff == nil || *diff > 0 {
				return nil
			}

			logger.L().Info().
				Str("posting_id", p.ID).
				Str("title", p.Title).
				Int("business_days", *diff).
				Msg("posting past deadline")

			if dryRun {
				expired <- p.ID
				return nil
			}

			if err := repo.MarkExpired(gctx, p.ID); err != nil {
				return err
			}
			expired <- p.ID

			notifyExpired(mailer, hrInbox, p)
			return nil
		})
	}

	err = g.Wait()
	close(expired)

	res := Result{Scanned: len(postings), Expired: len(expired)}
	logger.L().Info().Int("scanned", res.Scanned).Int("expired", res.Expired).Msg("expiry sweep done")
	return res, err
}

func notifyExpired(mailer notify.Mailer, hrInbox string, p models.JobPosting) {
	subject, body := notify.PostingExpired(p)
	if err := mailer.Send(hrInbox, subject, body); err != nil {
		logger.L().Warn().Err(err).Str("posting_id", p.ID).Msg("expiry notification failed")
	}
}
