// Package mlservice wraps the gRPC connections to the external ML
// services (speech-to-text, sentiment, Voice-of-Customer). The wrappers
// translate between the wire contract and the pipeline's payload types so
// stage handlers never touch protobuf.
package mlservice

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/callsight/callsight/pkg/events"
	pb "github.com/callsight/callsight/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Per-RPC deadlines. Transcription runs over whole recordings and gets a
// longer budget than the text-only analysis calls. Deadline expiry is a
// transient failure and subject to the consumer's retry policy.
const (
	defaultTranscribeTimeout = 120 * time.Second
	defaultAnalysisTimeout   = 30 * time.Second
)

// Transcription is the speech service result.
type Transcription struct {
	Payload      events.CallTranscribedPayload
	ModelVersion string
}

// Sentiment is the sentiment analysis result.
type Sentiment struct {
	Payload      events.SentimentAnalyzedPayload
	ModelVersion string
}

// Insights is the Voice-of-Customer result.
type Insights struct {
	Payload      events.VocAnalyzedPayload
	ModelVersion string
}

// SpeechClient transcribes stored call audio.
type SpeechClient interface {
	Transcribe(ctx context.Context, callID, audioKey, fileFormat string) (*Transcription, error)
}

// AnalysisClient runs the language models over a transcript.
type AnalysisClient interface {
	AnalyzeSentiment(ctx context.Context, callID string, t events.CallTranscribedPayload) (*Sentiment, error)
	ExtractInsights(ctx context.Context, callID string, t events.CallTranscribedPayload) (*Insights, error)
}

// Client wraps one gRPC connection carrying both services.
type Client struct {
	conn     *grpc.ClientConn
	speech   pb.SpeechServiceClient
	analysis pb.AnalysisServiceClient

	transcribeTimeout time.Duration
	analysisTimeout   time.Duration
}

// NewClient connects to the ML service at addr. Timeouts can be overridden
// with ML_TRANSCRIBE_TIMEOUT and ML_ANALYSIS_TIMEOUT (Go durations).
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ML service: %w", err)
	}
	return &Client{
		conn:              conn,
		speech:            pb.NewSpeechServiceClient(conn),
		analysis:          pb.NewAnalysisServiceClient(conn),
		transcribeTimeout: durationFromEnv("ML_TRANSCRIBE_TIMEOUT", defaultTranscribeTimeout),
		analysisTimeout:   durationFromEnv("ML_ANALYSIS_TIMEOUT", defaultAnalysisTimeout),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Transcribe converts the stored audio into a transcript.
func (c *Client) Transcribe(ctx context.Context, callID, audioKey, fileFormat string) (*Transcription, error) {
	ctx, cancel := context.WithTimeout(ctx, c.transcribeTimeout)
	defer cancel()

	resp, err := c.speech.Transcribe(ctx, &pb.TranscribeRequest{
		CallId:     callID,
		AudioKey:   audioKey,
		FileFormat: fileFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription failed for call %s: %w", callID, err)
	}

	return &Transcription{
		Payload: events.CallTranscribedPayload{
			CallID:     callID,
			FullText:   resp.FullText,
			Language:   resp.Language,
			Confidence: resp.Confidence,
			WordCount:  len(strings.Fields(resp.FullText)),
			Segments:   segmentsFromProto(resp.Segments),
		},
		ModelVersion: resp.ModelVersion,
	}, nil
}

// AnalyzeSentiment classifies overall and per-segment sentiment.
func (c *Client) AnalyzeSentiment(ctx context.Context, callID string, t events.CallTranscribedPayload) (*Sentiment, error) {
	ctx, cancel := context.WithTimeout(ctx, c.analysisTimeout)
	defer cancel()

	resp, err := c.analysis.AnalyzeSentiment(ctx, analyzeRequest(callID, t))
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis failed for call %s: %w", callID, err)
	}

	payload := events.SentimentAnalyzedPayload{
		CallID:             callID,
		OverallSentiment:   resp.OverallSentiment,
		SentimentScore:     resp.SentimentScore,
		EscalationDetected: resp.EscalationDetected,
		SegmentSentiments:  make([]events.SegmentSentiment, len(resp.SegmentSentiments)),
	}
	if resp.Escalation != nil {
		payload.EscalationDetails = &events.EscalationDetails{
			MaxDrop:   resp.Escalation.MaxDrop,
			FromScore: resp.Escalation.FromScore,
			ToScore:   resp.Escalation.ToScore,
		}
	}
	for i, s := range resp.SegmentSentiments {
		payload.SegmentSentiments[i] = events.SegmentSentiment{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Sentiment: s.Sentiment,
			Score:     s.Score,
			Speaker:   s.Speaker,
			Emotions:  s.Emotions,
		}
	}
	return &Sentiment{Payload: payload, ModelVersion: resp.ModelVersion}, nil
}

// ExtractInsights mines intent, topics, satisfaction, and churn risk.
func (c *Client) ExtractInsights(ctx context.Context, callID string, t events.CallTranscribedPayload) (*Insights, error) {
	ctx, cancel := context.WithTimeout(ctx, c.analysisTimeout)
	defer cancel()

	resp, err := c.analysis.ExtractInsights(ctx, analyzeRequest(callID, t))
	if err != nil {
		return nil, fmt.Errorf("insight extraction failed for call %s: %w", callID, err)
	}

	return &Insights{
		Payload: events.VocAnalyzedPayload{
			CallID:               callID,
			PrimaryIntent:        resp.PrimaryIntent,
			Topics:               resp.Topics,
			Keywords:             resp.Keywords,
			CustomerSatisfaction: resp.CustomerSatisfaction,
			PredictedChurnRisk:   resp.PredictedChurnRisk,
			ActionableItems:      resp.ActionableItems,
			Summary:              resp.Summary,
		},
		ModelVersion: resp.ModelVersion,
	}, nil
}

func analyzeRequest(callID string, t events.CallTranscribedPayload) *pb.AnalyzeRequest {
	segments := make([]*pb.TranscriptSegment, len(t.Segments))
	for i, s := range t.Segments {
		segments[i] = &pb.TranscriptSegment{
			Speaker:    s.Speaker,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Text:       s.Text,
			Confidence: s.Confidence,
		}
	}
	return &pb.AnalyzeRequest{CallId: callID, FullText: t.FullText, Segments: segments}
}

func segmentsFromProto(in []*pb.TranscriptSegment) []events.Segment {
	out := make([]events.Segment, len(in))
	for i, s := range in {
		out[i] = events.Segment{
			Speaker:    s.Speaker,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Text:       s.Text,
			Confidence: s.Confidence,
		}
	}
	return out
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
