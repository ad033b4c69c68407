package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hawsadev/hawsa/internal/config"
	"github.com/hawsadev/hawsa/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCore struct {
	lastUserID  string
	lastMessage string
}

func (s *stubCore) ProcessQuery(ctx context.Context, userID, message string) core.QueryResult {
	s.lastUserID = userID
	s.lastMessage = message
	return core.QueryResult{
		Success: true,
		UserID:  userID,
		UserProfile: core.ProfileSummary{
			Personality: core.PersonalityPractical,
			Expertise:   core.ExpertiseIntermediate,
			Interests:   []string{"general_engineering"},
			Confidence:  0.5,
		},
		ContextUsed: []core.ContextItem{},
		Response: core.Response{
			Text:                     "reply",
			TechnicalRecommendations: []core.Recommendation{},
			PersonalizedNotes:        []string{},
		},
		Media:     core.Media{Type: "none", Content: ""},
		Analytics: core.Analytics{InteractionQuality: "MEDIUM"},
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *stubCore) {
	t.Helper()

	stub := &stubCore{}
	s := NewServer(&config.ServerConfig{Addr: ":0"}, stub)

	ts := httptest.NewServer(s.srv.Handler)
	t.Cleanup(ts.Close)
	return ts, stub
}

func TestAnalyze_RoundTrip(t *testing.T) {
	ts, stub := newTestServer(t)

	body := bytes.NewBufferString(`{"user_id": "u1", "message": "مرحبا"}`)
	resp, err := http.Post(ts.URL+"/analyze", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "u1", stub.lastUserID)
	assert.Equal(t, "مرحبا", stub.lastMessage)

	var result core.QueryResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)
	assert.Equal(t, "u1", result.UserID)
	assert.Equal(t, "reply", result.Response.Text)
}

func TestAnalyze_InvalidBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/analyze", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.False(t, errResp.Success)
	assert.NotEmpty(t, errResp.Error)
}

func TestAnalyze_MissingMessage(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/analyze", "application/json", bytes.NewBufferString(`{"user_id": "u1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/analyze")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
