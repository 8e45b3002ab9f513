package config

import "time"

// PipelineConfig controls the broker-driven stage consumer runtime: topic
// names, consumer group ids, retry bounds, and shutdown behavior.
type PipelineConfig struct {
	// Topics maps each pipeline stream to its broker topic. The names are a
	// fixed contract; overriding them is only intended for test isolation.
	Topics TopicsConfig `yaml:"topics"`

	// Groups holds the consumer group id per stage.
	Groups GroupsConfig `yaml:"groups"`

	// DLQSuffix is appended to a topic name to form its dead-letter topic.
	DLQSuffix string `yaml:"dlq_suffix"`

	// MaxAttempts bounds handler retries for transient errors. After the
	// bound the message is routed to the DLQ with a failure reason.
	MaxAttempts int `yaml:"max_attempts"`

	// InitialBackoff and MaxBackoff bound the exponential retry backoff.
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`

	// DrainTimeout is the bounded wait for in-flight handlers during
	// cooperative shutdown. Unacknowledged messages are redelivered on
	// restart; idempotency absorbs them.
	DrainTimeout time.Duration `yaml:"drain_timeout"`

	// RPCTimeout is the per-call deadline for ML service RPCs.
	RPCTimeout time.Duration `yaml:"rpc_timeout"`
}

// TopicsConfig names the five pipeline topics.
type TopicsConfig struct {
	Received          string `yaml:"received"`
	Transcribed       string `yaml:"transcribed"`
	SentimentAnalyzed string `yaml:"sentiment_analyzed"`
	VocAnalyzed       string `yaml:"voc_analyzed"`
	Audited           string `yaml:"audited"`
}

// GroupsConfig names the consumer group per logical stage.
type GroupsConfig struct {
	Transcribe string `yaml:"transcribe"`
	Sentiment  string `yaml:"sentiment"`
	Voc        string `yaml:"voc"`
	Audit      string `yaml:"audit"`
	Analytics  string `yaml:"analytics"`
	Notify     string `yaml:"notify"`
}

// CorrelatorConfig controls the audit stage's partial-triple buffer.
type CorrelatorConfig struct {
	// TTL is the wall-clock deadline for a partial triple. Entries past the
	// deadline are evicted and reported as pipeline gaps; no partial score
	// is produced. Sized around 2x expected pipeline latency.
	TTL time.Duration `yaml:"ttl"`

	// SweepInterval is how often expired partials are scanned for.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// AggregatorConfig controls the write-buffered metrics aggregator.
type AggregatorConfig struct {
	// FlushInterval is how often buffered observations are folded into the
	// persistent agent_performance rows.
	FlushInterval time.Duration `yaml:"flush_interval"`

	// DedupTTL is how long processed event ids are remembered to suppress
	// duplicate observations from at-least-once delivery.
	DedupTTL time.Duration `yaml:"dedup_ttl"`

	// KeyPrefix namespaces the aggregator's cache keys.
	KeyPrefix string `yaml:"key_prefix"`
}
