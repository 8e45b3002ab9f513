package audit

import (
	"testing"

	"github.com/callsight/callsight/pkg/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeRule(kind string, def map[string]interface{}) Rule {
	def["type"] = kind
	return Rule{
		ID:         "r-1",
		Name:       "test rule",
		Severity:   events.SeverityMedium,
		IsActive:   true,
		Definition: def,
	}
}

func TestEvaluate_KeywordCheck(t *testing.T) {
	in := happyInput()

	t.Run("satisfied", func(t *testing.T) {
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"thank you for calling"},
			"speaker":  "agent",
		})
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})

	t.Run("absent keyword violates", func(t *testing.T) {
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"verification complete"},
			"speaker":  "agent",
		})
		violations := Evaluate([]Rule{rule}, in)
		require.Len(t, violations, 1)
		assert.Equal(t, events.SeverityMedium, violations[0].Severity)
	})

	t.Run("keyword outside the time window violates", func(t *testing.T) {
		// The greeting is at t=0; require it between 5 and 10 seconds.
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"thank you for calling"},
			"speaker":  "agent",
			"window":   []interface{}{5.0, 10.0},
		})
		assert.Len(t, Evaluate([]Rule{rule}, in), 1)
	})

	t.Run("wrong speaker violates", func(t *testing.T) {
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"thank you for calling"},
			"speaker":  "customer",
		})
		assert.Len(t, Evaluate([]Rule{rule}, in), 1)
	})

	t.Run("any speaker matches either side", func(t *testing.T) {
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"question about my plan"},
			"speaker":  SpeakerAny,
		})
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})

	t.Run("no segments falls back to full text", func(t *testing.T) {
		noSegs := in
		noSegs.Transcription.Segments = nil
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": []interface{}{"have a great day"},
			"speaker":  "agent",
		})
		assert.Empty(t, Evaluate([]Rule{rule}, noSegs))
	})
}

func TestEvaluate_ProhibitedWords(t *testing.T) {
	in := happyInput()
	in.Transcription.Segments = append(in.Transcription.Segments,
		events.Segment{Speaker: events.SpeakerAgent, StartTime: 11, EndTime: 13, Text: "that is a Stupid question"},
		events.Segment{Speaker: events.SpeakerCustomer, StartTime: 13, EndTime: 15, Text: "this is stupid"},
	)

	t.Run("matches case-insensitively with evidence", func(t *testing.T) {
		rule := activeRule(KindProhibitedWords, map[string]interface{}{
			"words":   []interface{}{"stupid"},
			"speaker": "agent",
		})
		violations := Evaluate([]Rule{rule}, in)
		require.Len(t, violations, 1)
		assert.Equal(t, "that is a Stupid question", violations[0].Evidence)
		require.NotNil(t, violations[0].TimestampInCall)
		assert.InDelta(t, 11, *violations[0].TimestampInCall, 1e-9)
	})

	t.Run("any speaker flags both segments", func(t *testing.T) {
		rule := activeRule(KindProhibitedWords, map[string]interface{}{
			"words": []interface{}{"stupid"},
		})
		assert.Len(t, Evaluate([]Rule{rule}, in), 2)
	})

	t.Run("clean transcript passes", func(t *testing.T) {
		rule := activeRule(KindProhibitedWords, map[string]interface{}{
			"words":   []interface{}{"idiot"},
			"speaker": "agent",
		})
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})
}

func TestEvaluate_SentimentResponse(t *testing.T) {
	in := happyInput()
	in.Sentiment.SegmentSentiments = []events.SegmentSentiment{
		{StartTime: 3, EndTime: 5, Sentiment: events.SentimentNegative, Score: -0.6, Speaker: events.SpeakerCustomer},
	}
	cueRule := func() Rule {
		return activeRule(KindSentimentResponse, map[string]interface{}{
			"trigger":  events.SentimentNegative,
			"speaker":  "agent",
			"keywords": []interface{}{"i understand", "i'm sorry"},
		})
	}

	t.Run("agent cue after trigger passes", func(t *testing.T) {
		// The agent segment at t=5 contains "i understand".
		assert.Empty(t, Evaluate([]Rule{cueRule()}, in))
	})

	t.Run("missing cue violates at the trigger time", func(t *testing.T) {
		cold := in
		cold.Transcription.Segments = []events.Segment{
			{Speaker: events.SpeakerCustomer, StartTime: 3, EndTime: 5, Text: "this is unacceptable"},
			{Speaker: events.SpeakerAgent, StartTime: 5, EndTime: 7, Text: "please hold"},
		}
		violations := Evaluate([]Rule{cueRule()}, cold)
		require.Len(t, violations, 1)
		require.NotNil(t, violations[0].TimestampInCall)
		assert.InDelta(t, 3, *violations[0].TimestampInCall, 1e-9)
		assert.Equal(t, "please hold", violations[0].Evidence)
	})

	t.Run("no trigger means no violation", func(t *testing.T) {
		calm := in
		calm.Sentiment.SegmentSentiments = nil
		assert.Empty(t, Evaluate([]Rule{cueRule()}, calm))
	})
}

func TestEvaluate_DegeneratesSafely(t *testing.T) {
	in := happyInput()

	t.Run("inactive rule is skipped", func(t *testing.T) {
		rule := activeRule(KindProhibitedWords, map[string]interface{}{
			"words": []interface{}{"question"},
		})
		rule.IsActive = false
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})

	t.Run("unknown kind evaluates to no violation", func(t *testing.T) {
		rule := activeRule("pause_detection", map[string]interface{}{
			"max_pause": 30,
		})
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})

	t.Run("malformed definition evaluates to no violation", func(t *testing.T) {
		rule := activeRule(KindKeywordCheck, map[string]interface{}{
			"keywords": "not-a-list",
		})
		assert.Empty(t, Evaluate([]Rule{rule}, in))
	})
}

func TestValidateDefinition(t *testing.T) {
	tests := []struct {
		name    string
		def     map[string]interface{}
		wantErr bool
	}{
		{"valid keyword_check", map[string]interface{}{"type": KindKeywordCheck, "keywords": []interface{}{"hello"}}, false},
		{"keyword_check without keywords", map[string]interface{}{"type": KindKeywordCheck}, true},
		{"keyword_check with bad window", map[string]interface{}{"type": KindKeywordCheck, "keywords": []interface{}{"x"}, "window": []interface{}{1.0}}, true},
		{"valid prohibited_words", map[string]interface{}{"type": KindProhibitedWords, "words": []interface{}{"stupid"}}, false},
		{"prohibited_words without words", map[string]interface{}{"type": KindProhibitedWords}, true},
		{"valid sentiment_response", map[string]interface{}{"type": KindSentimentResponse, "trigger": "negative", "keywords": []interface{}{"i understand"}}, false},
		{"sentiment_response without trigger", map[string]interface{}{"type": KindSentimentResponse, "keywords": []interface{}{"x"}}, true},
		{"missing type", map[string]interface{}{"keywords": []interface{}{"x"}}, true},
		{"unknown type is storable", map[string]interface{}{"type": "pause_detection"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDefinition(tc.def)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, IsRuleDefinitionError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
