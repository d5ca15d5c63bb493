package ratesync

import (
	"context"
	"fmt"
	"time"

	"github.com/kylycht/hoststats/metrics"
	"github.com/kylycht/hoststats/service"
	"github.com/kylycht/hoststats/storage"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	DefaultSchedule = "@every 5m"
	jobName         = "sync_exchange_rates"
	syncTimeout     = 30 * time.Second
)

// Syncer refetches coin exchange rates and
// commits them to the store
type Syncer struct {
	client   service.Stats // stats API to fetch rates from
	store    storage.Store // store receiving the rate tables
	schedule cron.Schedule // when Run refetches
}

// New creates a Syncer. expr accepts standard cron expressions
// and descriptors such as "@every 5m".
func New(client service.Stats, store storage.Store, expr string) (*Syncer, error) {
	if expr == "" {
		expr = DefaultSchedule
	}

	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate sync schedule %q: %w", expr, err)
	}

	return &Syncer{
		client:   client,
		store:    store,
		schedule: schedule,
	}, nil
}

// Sync fetches the current rates once. The store is
// only touched when the fetch succeeds.
func (s *Syncer) Sync(ctx context.Context) error {
	resp, err := s.client.GetCoinPrice(ctx)
	if err != nil {
		return fmt.Errorf("fetch exchange rates: %w", err)
	}

	s.store.SetExchangeRateSC(resp.Rates["sc"])
	s.store.SetExchangeRateSF(resp.Rates["sf"])

	return nil
}

// Run syncs immediately and then on every tick of the
// schedule until ctx is done
func (s *Syncer) Run(ctx context.Context) error {
	s.runJob(ctx)

	c := cron.New()
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.runJob(ctx)
	}))
	c.Start()

	log.Debug().Time("next", s.schedule.Next(time.Now())).Msg("rate sync scheduled")

	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}

func (s *Syncer) runJob(ctx context.Context) {
	started := time.Now()

	syncCtx, cancelFn := context.WithTimeout(ctx, syncTimeout)
	defer cancelFn()

	err := s.Sync(syncCtx)
	metrics.UpdateJobMetrics(jobName, started, err)

	if err != nil {
		log.Error().Err(err).Msg("unable to sync exchange rates, keeping previous rates")
		return
	}

	log.Debug().Dur("duration", time.Since(started)).Msg("exchange rates synced")
}
