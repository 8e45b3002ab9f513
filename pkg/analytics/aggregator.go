package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/ent/agentperformance"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// upsertAttempts bounds the optimistic compare-and-update loop. Contention
// on one (agent, hour) row is rare; three attempts is plenty.
const upsertAttempts = 3

// Aggregator folds post-analysis events into AgentPerformance rows via the
// Redis write buffer.
type Aggregator struct {
	client *ent.Client
	buf    *buffer
	cfg    *config.AggregatorConfig
	logger *slog.Logger

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewAggregator creates an aggregator over the given stores.
func NewAggregator(client *ent.Client, rdb *redis.Client, cfg *config.AggregatorConfig) *Aggregator {
	return &Aggregator{
		client: client,
		buf:    newBuffer(rdb, cfg),
		cfg:    cfg,
		logger: slog.Default().With("component", "aggregator"),
	}
}

// Observe buffers the observation carried by one event. Events without an
// agent id, with unknown types, or already seen within the dedup window are
// skipped cleanly.
func (a *Aggregator) Observe(ctx context.Context, env events.Envelope) error {
	obs, ok := Extract(env)
	if !ok {
		return nil
	}

	fresh, err := a.buf.markSeen(ctx, env.EventID)
	if err != nil {
		return err
	}
	if !fresh {
		a.logger.Debug("Skipping duplicate observation", "event_id", env.EventID)
		return nil
	}

	return a.buf.push(ctx, obs)
}

// Start launches the periodic flush loop.
func (a *Aggregator) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ticker := time.NewTicker(a.cfg.FlushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if err := a.Flush(runCtx); err != nil {
					a.logger.Error("Flush failed", "error", err)
				}
			}
		}
	}()
	a.logger.Info("Aggregator started", "flush_interval", a.cfg.FlushInterval)
}

// Stop halts the loop and flushes what remains so buffered observations
// are not stranded until the next process picks them up.
func (a *Aggregator) Stop() {
	a.stopOnce.Do(func() {
		if a.cancel != nil {
			a.cancel()
		}
		a.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := a.Flush(ctx); err != nil {
			a.logger.Error("Final flush failed, observations remain buffered", "error", err)
		}
		a.logger.Info("Aggregator stopped")
	})
}

// Flush drains every dirty bucket and merges it into its persistent row.
// A bucket that fails is re-marked dirty; its drained observations are
// re-pushed so no observation is lost or double-counted.
func (a *Aggregator) Flush(ctx context.Context) error {
	buckets, err := a.buf.dirtyBuckets(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, bucket := range buckets {
		if err := a.flushBucket(ctx, bucket); err != nil {
			a.logger.Error("Bucket flush failed, re-marked dirty", "bucket", bucket, "error", err)
			if rerr := a.buf.remark(ctx, bucket); rerr != nil {
				a.logger.Error("Failed to re-mark bucket", "bucket", bucket, "error", rerr)
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (a *Aggregator) flushBucket(ctx context.Context, bucket string) error {
	observations, err := a.buf.drain(ctx, bucket)
	if err != nil {
		return err
	}
	if len(observations) == 0 {
		return nil
	}

	local := aggregate(observations)
	slot, err := observations[0].SlotTime()
	if err != nil {
		return err
	}

	if err := a.upsert(ctx, observations[0].AgentID, slot, local); err != nil {
		// Put the observations back before re-marking so the next flush
		// sees them again.
		for _, obs := range observations {
			if perr := a.buf.push(ctx, obs); perr != nil {
				a.logger.Error("Failed to re-buffer observation",
					"event_id", obs.EventID, "error", perr)
			}
		}
		return err
	}
	return nil
}

// upsert merges the local aggregate into the (agentId, slot) row with an
// optimistic compare-and-update on the count column.
func (a *Aggregator) upsert(ctx context.Context, agentID string, slot time.Time, local aggregateResult) error {
	for attempt := 0; attempt < upsertAttempts; attempt++ {
		row, err := a.client.AgentPerformance.Query().
			Where(agentperformance.AgentID(agentID), agentperformance.TimeSlot(slot)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query performance row: %w", err)
		}

		if row == nil {
			builder := a.client.AgentPerformance.Create().
				SetID(uuid.New().String()).
				SetAgentID(agentID).
				SetTimeSlot(slot).
				SetCount(local.count).
				SetNillableAvgQuality(local.quality).
				SetNillableAvgSentiment(local.sentiment).
				SetNillableAvgSatisfaction(local.satisfaction).
				SetNillableAvgCompliancePassRate(local.compliance).
				SetNillableAvgChurnRisk(local.churn)
			if _, err := builder.Save(ctx); err != nil {
				if ent.IsConstraintError(err) {
					continue // lost the create race, merge into the winner
				}
				return fmt.Errorf("failed to create performance row: %w", err)
			}
			return nil
		}

		merged := mergeRow(row, local)
		n, err := a.client.AgentPerformance.Update().
			Where(agentperformance.ID(row.ID), agentperformance.Count(row.Count)).
			SetCount(merged.count).
			SetNillableAvgQuality(merged.quality).
			SetNillableAvgSentiment(merged.sentiment).
			SetNillableAvgSatisfaction(merged.satisfaction).
			SetNillableAvgCompliancePassRate(merged.compliance).
			SetNillableAvgChurnRisk(merged.churn).
			SetUpdatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update performance row: %w", err)
		}
		if n > 0 {
			return nil
		}
		// Count moved underneath us; reread and retry.
	}
	return fmt.Errorf("gave up updating performance row for agent %s after %d attempts", agentID, upsertAttempts)
}

// aggregateResult is a local reduction of one bucket, or a merged row
// state. Averages are nil when no observation carried the metric.
type aggregateResult struct {
	count        int
	quality      *float64
	sentiment    *float64
	satisfaction *float64
	compliance   *float64
	churn        *float64
}

// aggregate reduces a bucket's observations. Each average runs over the
// observations that carry the metric; count tallies every observation once.
func aggregate(observations []Observation) aggregateResult {
	res := aggregateResult{count: len(observations)}
	res.quality = meanOf(observations, func(o Observation) *float64 { return o.Quality })
	res.sentiment = meanOf(observations, func(o Observation) *float64 { return o.Sentiment })
	res.satisfaction = meanOf(observations, func(o Observation) *float64 { return o.Satisfaction })
	res.compliance = meanOf(observations, func(o Observation) *float64 { return o.ComplianceOK })
	res.churn = meanOf(observations, func(o Observation) *float64 { return o.ChurnRisk })
	return res
}

func meanOf(observations []Observation, metric func(Observation) *float64) *float64 {
	sum, n := 0.0, 0
	for _, obs := range observations {
		if v := metric(obs); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}

// mergeRow folds a local aggregate into the persisted row state using the
// running-average merge: (avg1*n1 + avg2*n2) / (n1 + n2), null-safe on
// either side.
func mergeRow(row *ent.AgentPerformance, local aggregateResult) aggregateResult {
	n1, n2 := row.Count, local.count
	return aggregateResult{
		count:        n1 + n2,
		quality:      mergeAvg(row.AvgQuality, n1, local.quality, n2),
		sentiment:    mergeAvg(row.AvgSentiment, n1, local.sentiment, n2),
		satisfaction: mergeAvg(row.AvgSatisfaction, n1, local.satisfaction, n2),
		compliance:   mergeAvg(row.AvgCompliancePassRate, n1, local.compliance, n2),
		churn:        mergeAvg(row.AvgChurnRisk, n1, local.churn, n2),
	}
}

// mergeAvg merges two running averages with their counts. A nil side
// contributes nothing and the other side passes through unchanged.
func mergeAvg(avg1 *float64, n1 int, avg2 *float64, n2 int) *float64 {
	switch {
	case avg1 == nil:
		return avg2
	case avg2 == nil:
		return avg1
	case n1+n2 == 0:
		return nil
	}
	merged := (*avg1*float64(n1) + *avg2*float64(n2)) / float64(n1+n2)
	return &merged
}
