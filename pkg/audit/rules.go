// Package audit scores a fused call context against the configured
// compliance rules and produces the audit read model. Rule evaluation and
// scoring are pure; persistence and event emission live in the services.
package audit

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/callsight/callsight/ent"
	"github.com/callsight/callsight/pkg/events"
)

// Rule kinds understood by the evaluator.
const (
	KindKeywordCheck      = "keyword_check"
	KindProhibitedWords   = "prohibited_words"
	KindSentimentResponse = "sentiment_response"
)

// SpeakerAny matches segments from either side of the call.
const SpeakerAny = "any"

// Input is the fused context the scorer and rule evaluator consume.
type Input struct {
	Transcription events.CallTranscribedPayload
	Sentiment     events.SentimentAnalyzedPayload
	Voc           events.VocAnalyzedPayload
}

// Rule is one active compliance rule with its parsed definition.
type Rule struct {
	ID         string
	Name       string
	Category   string
	Severity   string
	IsActive   bool
	Definition map[string]interface{}
}

// definition is the tagged variant inside Rule.Definition.
type definition struct {
	Type     string    `json:"type"`
	Keywords []string  `json:"keywords,omitempty"`
	Words    []string  `json:"words,omitempty"`
	Speaker  string    `json:"speaker,omitempty"`
	Window   []float64 `json:"window,omitempty"`
	Trigger  string    `json:"trigger,omitempty"`
}

// RuleFromEnt converts a stored rule row.
func RuleFromEnt(row *ent.ComplianceRule) Rule {
	return Rule{
		ID:         row.ID,
		Name:       row.Name,
		Category:   row.Category,
		Severity:   string(row.Severity),
		IsActive:   row.IsActive,
		Definition: row.Definition,
	}
}

// ValidateDefinition checks a rule definition at write time so malformed
// rules are rejected at the API instead of silently skipped during audits.
func ValidateDefinition(raw map[string]interface{}) error {
	def, err := parseDefinition(raw)
	if err != nil {
		return err
	}
	switch def.Type {
	case KindKeywordCheck:
		if len(def.Keywords) == 0 {
			return NewRuleDefinitionError("keywords", "required for keyword_check")
		}
		if len(def.Window) != 0 && len(def.Window) != 2 {
			return NewRuleDefinitionError("window", "must be [t0, t1] seconds")
		}
	case KindProhibitedWords:
		if len(def.Words) == 0 {
			return NewRuleDefinitionError("words", "required for prohibited_words")
		}
	case KindSentimentResponse:
		if def.Trigger == "" {
			return NewRuleDefinitionError("trigger", "required for sentiment_response")
		}
		if len(def.Keywords) == 0 {
			return NewRuleDefinitionError("keywords", "required for sentiment_response")
		}
	case "":
		return NewRuleDefinitionError("type", "required")
	default:
		// Unknown kinds are storable for forward compatibility; they
		// evaluate to no violation.
	}
	return nil
}

func parseDefinition(raw map[string]interface{}) (definition, error) {
	var def definition
	data, err := json.Marshal(raw)
	if err != nil {
		return def, NewRuleDefinitionError("definition", err.Error())
	}
	if err := json.Unmarshal(data, &def); err != nil {
		return def, NewRuleDefinitionError("definition", err.Error())
	}
	return def, nil
}

// Evaluate runs every active rule against the fused context. Unknown rule
// kinds and malformed definitions contribute no violation; the latter are
// logged so a broken rule does not fail audits silently forever.
func Evaluate(rules []Rule, in Input) []events.Violation {
	var violations []events.Violation
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		def, err := parseDefinition(rule.Definition)
		if err != nil {
			slog.Warn("Skipping rule with malformed definition",
				"rule_id", rule.ID, "rule_name", rule.Name, "error", err)
			continue
		}

		switch def.Type {
		case KindKeywordCheck:
			violations = append(violations, evalKeywordCheck(rule, def, in)...)
		case KindProhibitedWords:
			violations = append(violations, evalProhibitedWords(rule, def, in)...)
		case KindSentimentResponse:
			violations = append(violations, evalSentimentResponse(rule, def, in)...)
		default:
			slog.Debug("Skipping rule with unknown kind",
				"rule_id", rule.ID, "kind", def.Type)
		}
	}
	return violations
}

// evalKeywordCheck requires at least one keyword in the matching segments.
// With no segments at all, the full text stands in for them.
func evalKeywordCheck(rule Rule, def definition, in Input) []events.Violation {
	if len(in.Transcription.Segments) == 0 {
		if containsAny(in.Transcription.FullText, def.Keywords) {
			return nil
		}
		return []events.Violation{newViolation(rule, "required keywords absent from transcript", nil, "")}
	}

	for _, seg := range in.Transcription.Segments {
		if !speakerMatches(def.Speaker, seg.Speaker) || !inWindow(def.Window, seg.StartTime) {
			continue
		}
		if containsAny(seg.Text, def.Keywords) {
			return nil
		}
	}
	return []events.Violation{newViolation(rule, "required keywords absent from transcript", nil, "")}
}

// evalProhibitedWords flags every segment containing a prohibited word.
func evalProhibitedWords(rule Rule, def definition, in Input) []events.Violation {
	var violations []events.Violation
	if len(in.Transcription.Segments) == 0 {
		if word, ok := firstMatch(in.Transcription.FullText, def.Words); ok {
			violations = append(violations, newViolation(rule,
				"prohibited word "+quote(word)+" used", nil, in.Transcription.FullText))
		}
		return violations
	}

	for _, seg := range in.Transcription.Segments {
		if !speakerMatches(def.Speaker, seg.Speaker) {
			continue
		}
		if word, ok := firstMatch(seg.Text, def.Words); ok {
			at := seg.StartTime
			violations = append(violations, newViolation(rule,
				"prohibited word "+quote(word)+" used", &at, seg.Text))
		}
	}
	return violations
}

// evalSentimentResponse requires the target speaker's next segment after a
// trigger-sentiment segment to contain one of the cue keywords.
func evalSentimentResponse(rule Rule, def definition, in Input) []events.Violation {
	var violations []events.Violation
	for _, ss := range in.Sentiment.SegmentSentiments {
		if !strings.EqualFold(ss.Sentiment, def.Trigger) {
			continue
		}
		response, found := nextSegmentBy(in.Transcription.Segments, def.Speaker, ss.EndTime)
		if found && containsAny(response.Text, def.Keywords) {
			continue
		}
		at := ss.StartTime
		evidence := ""
		if found {
			evidence = response.Text
		}
		violations = append(violations, newViolation(rule,
			"no acknowledging response to "+def.Trigger+" sentiment", &at, evidence))
	}
	return violations
}

func newViolation(rule Rule, description string, at *float64, evidence string) events.Violation {
	return events.Violation{
		RuleID:          rule.ID,
		RuleName:        rule.Name,
		Severity:        rule.Severity,
		Description:     description,
		TimestampInCall: at,
		Evidence:        evidence,
	}
}

// nextSegmentBy returns the first segment by the given speaker starting at
// or after t.
func nextSegmentBy(segments []events.Segment, speaker string, t float64) (events.Segment, bool) {
	for _, seg := range segments {
		if seg.StartTime >= t && speakerMatches(speaker, seg.Speaker) {
			return seg, true
		}
	}
	return events.Segment{}, false
}

func speakerMatches(want, got string) bool {
	return want == "" || want == SpeakerAny || strings.EqualFold(want, got)
}

func inWindow(window []float64, t float64) bool {
	if len(window) != 2 {
		return true
	}
	return t >= window[0] && t <= window[1]
}

func containsAny(text string, terms []string) bool {
	_, ok := firstMatch(text, terms)
	return ok
}

// firstMatch finds the first term contained in text, case-insensitively.
func firstMatch(text string, terms []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, term := range terms {
		if term != "" && strings.Contains(lower, strings.ToLower(term)) {
			return term, true
		}
	}
	return "", false
}

func quote(word string) string {
	return `"` + word + `"`
}
