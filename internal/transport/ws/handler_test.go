package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"interviewflow/internal/model"
	"interviewflow/internal/registry"
	"interviewflow/internal/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedQuestions struct{}

func (scriptedQuestions) GenerateQuestions(_ context.Context, _, _, _ string, count int) ([]model.Question, error) {
	questions := make([]model.Question, 0, count)
	for i := 0; i < count; i++ {
		questions = append(questions, model.Question{
			ID:     fmt.Sprintf("q-%d", i+1),
			Kind:   model.QuestionKindTechnical,
			Prompt: fmt.Sprintf("Question %d", i+1),
		})
	}
	return questions, nil
}

type scriptedEvaluator struct{}

func (scriptedEvaluator) EvaluateAnswer(_ context.Context, _ model.Question, _ string) (*model.AnswerEvaluation, error) {
	return &model.AnswerEvaluation{TechnicalAccuracy: 0.8, Clarity: 0.7}, nil
}

type scriptedNarrator struct{}

func (scriptedNarrator) GenerateNarrativeReport(_ context.Context, _ []model.Event) (*model.NarrativeReport, error) {
	return &model.NarrativeReport{AttitudeScore: 0.9}, nil
}

func newWSTest(t *testing.T) (*httptest.Server, *service.Orchestrator) {
	t.Helper()

	orchestrator := service.NewOrchestrator(registry.NewRegistry(), scriptedQuestions{}, scriptedEvaluator{}, scriptedNarrator{})
	handler := NewHandler(orchestrator)

	r := mux.NewRouter()
	r.HandleFunc("/ws/interview/{sessionId}", handler.InterviewWS)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, orchestrator
}

func dial(t *testing.T, srv *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/interview/" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func sendMessage(t *testing.T, conn *websocket.Conn, msgType MessageType, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Message{Type: msgType, Payload: data}))
}

func TestInterviewWS_FullFlow(t *testing.T) {
	srv, orchestrator := newWSTest(t)
	session := orchestrator.CreateSession(context.Background(), "", "", "SRE", 2)

	conn := dial(t, srv, session.ID)

	// First question arrives on connect
	msg := readMessage(t, conn)
	assert.Equal(t, MsgQuestion, msg.Type)
	var question model.Question
	require.NoError(t, json.Unmarshal(msg.Payload, &question))
	assert.Equal(t, "q-1", question.ID)

	// Telemetry is acknowledged without advancing the interview
	sendMessage(t, conn, MsgTelemetry, map[string]interface{}{"gaze_score": 0.8})
	msg = readMessage(t, conn)
	assert.Equal(t, MsgTelemetryAck, msg.Type)

	// First answer: feedback then the next question
	sendMessage(t, conn, MsgAnswer, map[string]string{"text": "partition by user id"})
	msg = readMessage(t, conn)
	assert.Equal(t, MsgFeedback, msg.Type)
	var feedback model.Feedback
	require.NoError(t, json.Unmarshal(msg.Payload, &feedback))
	assert.Equal(t, 0.8, feedback.TechnicalAccuracy)

	msg = readMessage(t, conn)
	assert.Equal(t, MsgQuestion, msg.Type)
	require.NoError(t, json.Unmarshal(msg.Payload, &question))
	assert.Equal(t, "q-2", question.ID)

	// Final answer: feedback then the report
	sendMessage(t, conn, MsgAnswer, map[string]string{"text": "measure first"})
	msg = readMessage(t, conn)
	assert.Equal(t, MsgFeedback, msg.Type)

	msg = readMessage(t, conn)
	assert.Equal(t, MsgDone, msg.Type)
	var report struct {
		SessionID string             `json:"session_id"`
		Averages  map[string]float64 `json:"averages"`
	}
	require.NoError(t, json.Unmarshal(msg.Payload, &report))
	assert.Equal(t, session.ID, report.SessionID)
	assert.InDelta(t, 0.9, report.Averages["attitude"], 1e-9)
}

func TestInterviewWS_EmptyAnswerRejected(t *testing.T) {
	srv, orchestrator := newWSTest(t)
	session := orchestrator.CreateSession(context.Background(), "", "", "SRE", 2)

	conn := dial(t, srv, session.ID)
	readMessage(t, conn) // initial question

	sendMessage(t, conn, MsgAnswer, map[string]string{"text": "   "})
	msg := readMessage(t, conn)
	assert.Equal(t, MsgError, msg.Type)

	var body map[string]string
	require.NoError(t, json.Unmarshal(msg.Payload, &body))
	assert.Equal(t, "Empty answer", body["message"])

	// The cursor did not move
	session.Lock()
	idx := session.Idx
	session.Unlock()
	assert.Equal(t, 0, idx)
}

func TestInterviewWS_InvalidJSON(t *testing.T) {
	srv, orchestrator := newWSTest(t)
	session := orchestrator.CreateSession(context.Background(), "", "", "SRE", 2)

	conn := dial(t, srv, session.ID)
	readMessage(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	msg := readMessage(t, conn)
	assert.Equal(t, MsgError, msg.Type)
}

func TestInterviewWS_UnknownMessageType(t *testing.T) {
	srv, orchestrator := newWSTest(t)
	session := orchestrator.CreateSession(context.Background(), "", "", "SRE", 2)

	conn := dial(t, srv, session.ID)
	readMessage(t, conn)

	sendMessage(t, conn, MessageType("ping"), map[string]string{})
	msg := readMessage(t, conn)
	assert.Equal(t, MsgError, msg.Type)
}

func TestInterviewWS_UnknownSession(t *testing.T) {
	srv, _ := newWSTest(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/interview/nope"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInterviewWS_FinalizedSession(t *testing.T) {
	srv, orchestrator := newWSTest(t)
	session := orchestrator.CreateSession(context.Background(), "", "", "SRE", 1)
	_, err := orchestrator.EndSession(context.Background(), session.ID)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/interview/" + session.ID
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
