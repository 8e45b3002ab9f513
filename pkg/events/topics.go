package events

// Pipeline topics, partitioned by call id.
const (
	TopicCallsReceived          = "calls.received"
	TopicCallsTranscribed       = "calls.transcribed"
	TopicCallsSentimentAnalyzed = "calls.sentiment-analyzed"
	TopicCallsVocAnalyzed       = "calls.voc-analyzed"
	TopicCallsAudited           = "calls.audited"
)

// Event type tags carried in the envelope.
const (
	EventTypeCallReceived      = "call.received"
	EventTypeCallTranscribed   = "call.transcribed"
	EventTypeSentimentAnalyzed = "call.sentiment_analyzed"
	EventTypeVocAnalyzed       = "call.voc_analyzed"
	EventTypeCallAudited       = "call.audited"
)

// DefaultDLQSuffix is appended to a topic name to form its dead-letter
// topic.
const DefaultDLQSuffix = ".dlq"

var topicByEventType = map[string]string{
	EventTypeCallReceived:      TopicCallsReceived,
	EventTypeCallTranscribed:   TopicCallsTranscribed,
	EventTypeSentimentAnalyzed: TopicCallsSentimentAnalyzed,
	EventTypeVocAnalyzed:       TopicCallsVocAnalyzed,
	EventTypeCallAudited:       TopicCallsAudited,
}

// TopicForEventType maps an event type to its home topic, or "" for
// unknown types.
func TopicForEventType(eventType string) string {
	return topicByEventType[eventType]
}
