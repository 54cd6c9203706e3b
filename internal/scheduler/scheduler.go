// Package scheduler drives all outbound reminder traffic. A single cron
// entry ticks every minute and sweeps the registered groups; each group is
// evaluated in its own timezone and failures never cross group boundaries.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	apperrors "github.com/azkar-labs/azkar-bot/internal/errors"
	"github.com/azkar-labs/azkar-bot/internal/occasion"
	"github.com/azkar-labs/azkar-bot/internal/provider"
	"github.com/azkar-labs/azkar-bot/internal/settings"
	"github.com/azkar-labs/azkar-bot/pkg/logger"
	"github.com/azkar-labs/azkar-bot/pkg/metrics"
)

const defaultSendTimeout = 30 * time.Second

// Sender delivers outbound messages to a group. The transport layer
// implements it over the bot API.
type Sender interface {
	SendMessage(ctx context.Context, groupID int64, text string) error
	SendDocument(ctx context.Context, groupID int64, url, caption string) error
	SendAudio(ctx context.Context, groupID int64, url, caption string) error
}

// Config carries the scheduler knobs taken from the application config.
type Config struct {
	// SendTimeout bounds the work done for one group within a tick.
	SendTimeout time.Duration
}

// Scheduler owns the minute tick and the per-group sweep.
type Scheduler struct {
	cron     *cron.Cron
	store    settings.Store
	provider provider.Provider
	oracle   occasion.Oracle
	sender   Sender
	errs     *apperrors.Handler
	log      *slog.Logger
	timeout  time.Duration

	now func() time.Time
}

// New builds a Scheduler. A nil oracle defaults to the Umm al-Qura rules.
func New(store settings.Store, prov provider.Provider, oracle occasion.Oracle, sender Sender, errs *apperrors.Handler, log *slog.Logger, cfg Config) *Scheduler {
	if oracle == nil {
		oracle = occasion.Active
	}
	if log == nil {
		log = slog.Default()
	}

	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}

	return &Scheduler{
		cron:     cron.New(),
		store:    store,
		provider: prov,
		oracle:   oracle,
		sender:   sender,
		errs:     errs,
		log:      log,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Run registers the minute tick and starts the cron loop.
func (s *Scheduler) Run() error {
	if _, err := s.cron.AddFunc("* * * * *", func() {
		s.Sweep(context.Background())
	}); err != nil {
		return err
	}

	s.log.Info("scheduler: starting minute sweep")
	s.cron.Start()

	return nil
}

// Shutdown stops the tick and waits for an in-flight sweep to finish.
func (s *Scheduler) Shutdown() {
	s.log.Info("scheduler: shutting down")
	<-s.cron.Stop().Done()
}

// Sweep evaluates every registered group once. Exported so tests and a
// manual trigger can run a tick without the cron loop.
func (s *Scheduler) Sweep(ctx context.Context) {
	start := s.now()
	ctx = logger.ContextWithCorrelationID(ctx, uuid.NewString())

	ids, err := s.store.GroupIDs(ctx)
	if err != nil {
		s.errs.Handle(ctx, err)
		return
	}

	occasions := newOccasionCache(s.oracle)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(groupID int64) {
			defer wg.Done()

			groupCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			s.sweepGroup(groupCtx, groupID, start, occasions)
		}(id)
	}
	wg.Wait()

	metrics.ObserveSweep(time.Since(start))
}

func (s *Scheduler) sweepGroup(ctx context.Context, groupID int64, now time.Time, occasions *occasionCache) {
	record, err := s.store.Get(ctx, groupID)
	if err != nil {
		s.errs.Handle(ctx, err)
		return
	}

	local := now.In(s.location(record.Timezone))

	active, err := occasions.lookup(local)
	if err != nil {
		s.errs.Handle(ctx, err)
		active = occasion.Set{}
	}

	for _, ev := range dueEvents(record, local, active) {
		if err := s.deliver(ctx, groupID, ev, record); err != nil {
			s.errs.Handle(ctx, err)
			metrics.RecordSend(ev.name, "error")
			continue
		}

		metrics.RecordSend(ev.name, "success")

		if ev.periodic {
			s.recordPeriodicSend(ctx, groupID, now)
		}
	}
}

func (s *Scheduler) deliver(ctx context.Context, groupID int64, ev event, record domain.GroupSettings) error {
	switch ev.kind {
	case kindFetched:
		fetchStart := s.now()
		reminders, err := s.provider.FetchReminderSet(ctx, ev.category)
		metrics.ObserveProviderFetch(string(ev.category), time.Since(fetchStart))
		if err != nil {
			return err
		}

		return s.sender.SendMessage(ctx, groupID, provider.FormatMessage(ev.title, reminders))

	case kindFriday:
		if err := s.sender.SendMessage(ctx, groupID, ev.text); err != nil {
			return err
		}
		if err := s.sender.SendDocument(ctx, groupID, kahfDocumentURL, kahfDocumentCaption); err != nil {
			return err
		}
		if record.QuranAudio.Enabled {
			return s.sender.SendAudio(ctx, groupID, kahfAudioURL, kahfAudioCaption)
		}

		return nil

	default:
		return s.sender.SendMessage(ctx, groupID, ev.text)
	}
}

func (s *Scheduler) recordPeriodicSend(ctx context.Context, groupID int64, now time.Time) {
	sentAt := now.UTC()
	if _, err := s.store.Update(ctx, groupID, func(rec *domain.GroupSettings) {
		rec.LastPeriodicSentAt = &sentAt
	}); err != nil {
		s.errs.Handle(ctx, err)
	}
}

func (s *Scheduler) location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc
	}

	s.log.Warn("scheduler: unknown timezone, using default", slog.String("timezone", name))

	loc, err = time.LoadLocation(domain.DefaultTimezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// occasionCache memoizes oracle lookups per calendar day so one tick does
// at most one conversion per distinct group-local date.
type occasionCache struct {
	oracle occasion.Oracle

	mu   sync.Mutex
	days map[string]occasion.Set
	errs map[string]error
}

func newOccasionCache(oracle occasion.Oracle) *occasionCache {
	return &occasionCache{
		oracle: oracle,
		days:   make(map[string]occasion.Set),
		errs:   make(map[string]error),
	}
}

func (c *occasionCache) lookup(local time.Time) (occasion.Set, error) {
	key := local.Format("2006-01-02")

	c.mu.Lock()
	defer c.mu.Unlock()

	if set, ok := c.days[key]; ok {
		return set, c.errs[key]
	}

	set, err := c.oracle(local)
	if set == nil {
		set = occasion.Set{}
	}

	c.days[key] = set
	c.errs[key] = err

	return set, err
}
