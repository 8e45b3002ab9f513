// Package correlator assembles the three analysis fragments of a call
// (transcription, sentiment, VoC insights) into a complete triple for the
// compliance audit. Fragments arrive on independent topics in any order;
// state is held in memory per call id and evicted after a TTL so a gap in
// the pipeline cannot leak memory forever.
//
// The correlator is in-process state, not a durable store. A crash loses
// pending partials; the affected calls surface on the pipeline-gap counter
// and can be replayed by resetting the audit group's offsets.
package correlator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
)

// Complete is a fully assembled triple, ready for audit. Completing is the
// envelope of the fragment that closed the triple; derived events use it as
// their causation parent.
type Complete struct {
	CallID        string
	Transcription events.CallTranscribedPayload
	Sentiment     events.SentimentAnalyzedPayload
	Voc           events.VocAnalyzedPayload
	Completing    events.Envelope
}

type entry struct {
	transcription *events.CallTranscribedPayload
	sentiment     *events.SentimentAnalyzedPayload
	voc           *events.VocAnalyzedPayload
	deadline      time.Time
}

func (e *entry) complete() bool {
	return e.transcription != nil && e.sentiment != nil && e.voc != nil
}

// Correlator holds partial triples keyed by call id.
type Correlator struct {
	cfg    *config.CorrelatorConfig
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]*entry

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a correlator with the given TTL configuration.
func New(cfg *config.CorrelatorConfig) *Correlator {
	return &Correlator{
		cfg:     cfg,
		logger:  slog.Default().With("component", "correlator"),
		pending: make(map[string]*entry),
	}
}

// Start launches the background eviction sweep.
func (c *Correlator) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				c.evictExpired(time.Now())
			}
		}
	}()
}

// Stop halts the eviction sweep.
func (c *Correlator) Stop() {
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.wg.Wait()
	})
}

// OfferTranscription records a transcription fragment. When it completes
// the triple, the triple is removed and returned exactly once.
func (c *Correlator) OfferTranscription(env events.Envelope, p events.CallTranscribedPayload) (*Complete, bool) {
	return c.offer(env, func(e *entry) { e.transcription = &p })
}

// OfferSentiment records a sentiment fragment.
func (c *Correlator) OfferSentiment(env events.Envelope, p events.SentimentAnalyzedPayload) (*Complete, bool) {
	return c.offer(env, func(e *entry) { e.sentiment = &p })
}

// OfferVoc records a VoC fragment.
func (c *Correlator) OfferVoc(env events.Envelope, p events.VocAnalyzedPayload) (*Complete, bool) {
	return c.offer(env, func(e *entry) { e.voc = &p })
}

func (c *Correlator) offer(env events.Envelope, set func(*entry)) (*Complete, bool) {
	callID := env.AggregateID

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.pending[callID]
	if !ok {
		e = &entry{}
		c.pending[callID] = e
	}
	set(e)
	// Each arrival refreshes the deadline: a triple still making progress
	// is not a pipeline gap.
	e.deadline = time.Now().Add(c.cfg.TTL)

	if !e.complete() {
		pendingTriples.Set(float64(len(c.pending)))
		return nil, false
	}

	delete(c.pending, callID)
	pendingTriples.Set(float64(len(c.pending)))
	triplesCompleted.Inc()
	return &Complete{
		CallID:        callID,
		Transcription: *e.transcription,
		Sentiment:     *e.sentiment,
		Voc:           *e.voc,
		Completing:    env,
	}, true
}

// Restore puts a completed triple back into the buffer. The audit stage
// calls this when work downstream of completion fails transiently: the
// redelivered fragment then completes the triple again instead of opening
// a fresh partial.
func (c *Correlator) Restore(t *Complete) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[t.CallID] = &entry{
		transcription: &t.Transcription,
		sentiment:     &t.Sentiment,
		voc:           &t.Voc,
		deadline:      time.Now().Add(c.cfg.TTL),
	}
	pendingTriples.Set(float64(len(c.pending)))
}

// evictExpired drops partials whose deadline has passed. Each eviction is a
// pipeline gap: some upstream stage never delivered its fragment.
func (c *Correlator) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for callID, e := range c.pending {
		if now.Before(e.deadline) {
			continue
		}
		delete(c.pending, callID)
		pipelineGaps.Inc()
		c.logger.Warn("Evicted incomplete triple, upstream fragment missing",
			"call_id", callID,
			"has_transcription", e.transcription != nil,
			"has_sentiment", e.sentiment != nil,
			"has_voc", e.voc != nil)
	}
	pendingTriples.Set(float64(len(c.pending)))
}

// Pending reports whether a partial triple is buffered for the call.
func (c *Correlator) Pending(callID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[callID]
	return ok
}

// PendingCount reports how many calls are waiting on fragments.
func (c *Correlator) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
