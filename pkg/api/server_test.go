package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/callsight/callsight/pkg/analytics"
	"github.com/callsight/callsight/pkg/audit"
	"github.com/callsight/callsight/pkg/config"
	"github.com/callsight/callsight/pkg/events"
	"github.com/callsight/callsight/pkg/ingest"
	"github.com/callsight/callsight/pkg/notify"
	"github.com/callsight/callsight/pkg/projector"
	testdb "github.com/callsight/callsight/test/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ keys []string }

func (m *memStore) Put(_ context.Context, key, _ string, _ int64, body io.Reader) error {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	m.keys = append(m.keys, key)
	return nil
}

type memPublisher struct{ published []events.Envelope }

func (m *memPublisher) Publish(_ context.Context, _ string, env events.Envelope) error {
	m.published = append(m.published, env)
	return nil
}

type nullSender struct{}

func (nullSender) Send(context.Context, string, string, string) error { return nil }

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client := testdb.NewTestClient(t)

	calls := projector.NewCallService(client.Client)
	notifications := notify.NewNotificationService(client.Client)
	engine := notify.NewEngine(config.DefaultAlertConfig())
	dispatcher := notify.NewDispatcher(engine, notifications, map[string]notify.Sender{
		notify.ChannelEmail: nullSender{},
	})

	srv := NewServer(
		client,
		ingest.NewService(&memStore{}, calls, &memPublisher{}),
		calls,
		projector.NewDossierService(client.Client),
		audit.NewRuleService(client.Client),
		notifications,
		dispatcher,
		analytics.NewPerformanceService(client.Client),
	)
	return srv, srv.Router()
}

func multipartCall(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("audio", "call.wav")
	require.NoError(t, err)
	_, err = part.Write([]byte("RIFF"))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIngestEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	t.Run("accepts a call recording", func(t *testing.T) {
		callID := uuid.New().String()
		body, contentType := multipartCall(t, map[string]string{
			"callId":     callID,
			"callerId":   "+15550100",
			"agentId":    "agent-7",
			"channel":    "support",
			"fileFormat": "wav",
			"startTime":  "2026-08-24T10:30:00Z",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calls", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
		var resp struct {
			EventID string `json:"eventId"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.EventID)

		// A second upload with the same call id conflicts.
		body, contentType = multipartCall(t, map[string]string{
			"callId": callID, "agentId": "agent-7", "callerId": "+15550100",
			"channel": "support", "fileFormat": "wav",
		})
		req = httptest.NewRequest(http.MethodPost, "/api/v1/calls", body)
		req.Header.Set("Content-Type", contentType)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing audio part", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/calls", gin.H{"callId": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown format", func(t *testing.T) {
		body, contentType := multipartCall(t, map[string]string{
			"callId": uuid.New().String(), "agentId": "agent-7", "callerId": "+15550100",
			"channel": "support", "fileFormat": "aiff",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calls", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDossierEndpoint(t *testing.T) {
	srv, router := newTestServer(t)

	t.Run("unknown call is 404", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/calls/"+uuid.New().String()+"/dossier", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("registered call returns its partial dossier", func(t *testing.T) {
		callID := uuid.New().String()
		body, contentType := multipartCall(t, map[string]string{
			"callId": callID, "agentId": "agent-7", "callerId": "+15550100",
			"channel": "support", "fileFormat": "wav",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/calls", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusAccepted, rec.Code)

		rec = doJSON(router, http.MethodGet, "/api/v1/calls/"+callID+"/dossier", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var dossier projector.Dossier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dossier))
		require.NotNil(t, dossier.Call)
		assert.Equal(t, callID, dossier.Call.ID)
		assert.Nil(t, dossier.Transcription)
	})
	_ = srv
}

func TestRuleEndpoints(t *testing.T) {
	_, router := newTestServer(t)

	validRule := gin.H{
		"name":     "greeting required",
		"category": "script",
		"severity": "medium",
		"definition": gin.H{
			"type":     "keyword_check",
			"keywords": []string{"thank you for calling"},
			"speaker":  "agent",
		},
	}

	t.Run("create, read, update, delete", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/rules", validRule)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(router, http.MethodGet, "/api/v1/rules/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(router, http.MethodPatch, "/api/v1/rules/"+created.ID, gin.H{"severity": "high"})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(router, http.MethodGet, "/api/v1/rules", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), created.ID)

		rec = doJSON(router, http.MethodDelete, "/api/v1/rules/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(router, http.MethodGet, "/api/v1/rules/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate name is 409", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/rules", validRule)
		require.Equal(t, http.StatusCreated, rec.Code)
		rec = doJSON(router, http.MethodPost, "/api/v1/rules", validRule)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed definition is 400", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/rules", gin.H{
			"name":       "broken rule",
			"severity":   "low",
			"definition": gin.H{"type": "keyword_check"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid severity is 400", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/rules", gin.H{
			"name":       "severity rule",
			"severity":   "catastrophic",
			"definition": gin.H{"type": "prohibited_words", "words": []string{"x"}},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	srv, router := newTestServer(t)
	ctx := context.Background()

	row, err := srv.notifications.Enqueue(ctx, notify.Alert{
		CallID: uuid.New().String(), Type: notify.TypeHighChurn,
		Priority: notify.PriorityHigh, Channel: notify.ChannelEmail,
		Subject: "s", Body: "b",
	}, "supervisor@example.com")
	require.NoError(t, err)
	_, err = srv.notifications.MarkFailed(ctx, row.ID, "smtp send failed")
	require.NoError(t, err)

	t.Run("list filters by status", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/notifications?status=failed", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), row.ID)

		rec = doJSON(router, http.MethodGet, "/api/v1/notifications?status=delivered", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resend a failed notification", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/notifications/"+row.ID+"/resend", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), `"status":"sent"`)
	})

	t.Run("resend of a pending row is 400", func(t *testing.T) {
		pending, err := srv.notifications.Enqueue(ctx, notify.Alert{
			CallID: uuid.New().String(), Type: notify.TypeReviewRequired,
			Priority: notify.PriorityNormal, Channel: notify.ChannelEmail,
			Subject: "s", Body: "b",
		}, "supervisor@example.com")
		require.NoError(t, err)

		rec := doJSON(router, http.MethodPost, "/api/v1/notifications/"+pending.ID+"/resend", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("resend of an unknown row is 404", func(t *testing.T) {
		rec := doJSON(router, http.MethodPost, "/api/v1/notifications/"+uuid.New().String()+"/resend", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPerformanceAndHealthEndpoints(t *testing.T) {
	_, router := newTestServer(t)

	t.Run("empty performance window", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/agents/agent-7/performance", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad time bounds", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/api/v1/agents/agent-7/performance?from=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "healthy")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := doJSON(router, http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
