package correlator

import (
	"testing"
	"time"

	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragments(t *testing.T, callID string) (events.Envelope, events.CallTranscribedPayload, events.Envelope, events.SentimentAnalyzedPayload, events.Envelope, events.VocAnalyzedPayload) {
	t.Helper()
	tp := events.CallTranscribedPayload{CallID: callID, FullText: "hello", WordCount: 1}
	sp := events.SentimentAnalyzedPayload{CallID: callID, OverallSentiment: events.SentimentNeutral}
	vp := events.VocAnalyzedPayload{CallID: callID, PrimaryIntent: events.IntentInquiry, CustomerSatisfaction: events.SatisfactionMedium}

	te, err := events.New(events.EventTypeCallTranscribed, callID, tp)
	require.NoError(t, err)
	se, err := events.Derive(te, events.EventTypeSentimentAnalyzed, sp)
	require.NoError(t, err)
	ve, err := events.Derive(te, events.EventTypeVocAnalyzed, vp)
	require.NoError(t, err)
	return te, tp, se, sp, ve, vp
}

func TestCorrelator_CompletesInAnyOrder(t *testing.T) {
	orders := []struct {
		name  string
		order []int
	}{
		{"transcription first", []int{0, 1, 2}},
		{"voc first", []int{2, 0, 1}},
		{"sentiment first", []int{1, 2, 0}},
	}

	for _, tc := range orders {
		t.Run(tc.name, func(t *testing.T) {
			c := New(config.DefaultCorrelatorConfig())
			te, tp, se, sp, ve, vp := fragments(t, "call-1")

			offers := []func() (*Complete, bool){
				func() (*Complete, bool) { return c.OfferTranscription(te, tp) },
				func() (*Complete, bool) { return c.OfferSentiment(se, sp) },
				func() (*Complete, bool) { return c.OfferVoc(ve, vp) },
			}

			for i, idx := range tc.order {
				done, ok := offers[idx]()
				if i < 2 {
					assert.False(t, ok)
					assert.Nil(t, done)
					continue
				}
				require.True(t, ok)
				assert.Equal(t, "call-1", done.CallID)
				assert.Equal(t, tp.FullText, done.Transcription.FullText)
				assert.Equal(t, sp.OverallSentiment, done.Sentiment.OverallSentiment)
				assert.Equal(t, vp.PrimaryIntent, done.Voc.PrimaryIntent)
			}
			assert.Equal(t, 0, c.PendingCount())
		})
	}
}

func TestCorrelator_CompletingEnvelopeIsCausationParent(t *testing.T) {
	c := New(config.DefaultCorrelatorConfig())
	te, tp, se, sp, ve, vp := fragments(t, "call-2")

	c.OfferTranscription(te, tp)
	c.OfferSentiment(se, sp)
	done, ok := c.OfferVoc(ve, vp)
	require.True(t, ok)
	assert.Equal(t, ve.EventID, done.Completing.EventID)
	assert.Equal(t, te.CorrelationID, done.Completing.CorrelationID)
}

func TestCorrelator_ReleasesAtMostOnce(t *testing.T) {
	c := New(config.DefaultCorrelatorConfig())
	te, tp, se, sp, ve, vp := fragments(t, "call-3")

	c.OfferTranscription(te, tp)
	c.OfferSentiment(se, sp)
	_, ok := c.OfferVoc(ve, vp)
	require.True(t, ok)

	// A redelivered fragment starts a fresh partial; it must not complete a
	// second triple from stale state.
	done, ok := c.OfferSentiment(se, sp)
	assert.False(t, ok)
	assert.Nil(t, done)
	assert.Equal(t, 1, c.PendingCount())
}

func TestCorrelator_EvictsExpiredPartials(t *testing.T) {
	cfg := config.DefaultCorrelatorConfig()
	cfg.TTL = 10 * time.Minute
	c := New(cfg)

	te, tp, _, _, _, _ := fragments(t, "call-4")
	_, ok := c.OfferTranscription(te, tp)
	require.False(t, ok)
	require.Equal(t, 1, c.PendingCount())

	// Before the TTL the partial survives a sweep.
	c.evictExpired(time.Now().Add(5 * time.Minute))
	assert.Equal(t, 1, c.PendingCount())

	// After the TTL it is gone; a late sibling cannot complete it.
	c.evictExpired(time.Now().Add(11 * time.Minute))
	assert.Equal(t, 0, c.PendingCount())

	_, _, se, sp, _, _ := fragments(t, "call-4")
	_, ok = c.OfferSentiment(se, sp)
	assert.False(t, ok)
	assert.Equal(t, 1, c.PendingCount())
}

func TestCorrelator_ArrivalRefreshesDeadline(t *testing.T) {
	cfg := config.DefaultCorrelatorConfig()
	cfg.TTL = 10 * time.Minute
	c := New(cfg)

	te, tp, se, sp, _, _ := fragments(t, "call-5")
	c.OfferTranscription(te, tp)

	// Second fragment arrives 8 minutes in and pushes the deadline out.
	c.mu.Lock()
	c.pending["call-5"].deadline = time.Now().Add(2 * time.Minute)
	c.mu.Unlock()
	c.OfferSentiment(se, sp)

	c.evictExpired(time.Now().Add(5 * time.Minute))
	assert.Equal(t, 1, c.PendingCount())
}
