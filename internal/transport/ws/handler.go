package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"interviewflow/internal/registry"
	"interviewflow/internal/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024 // Answers can be long
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// MessageType defines the type of WebSocket message
type MessageType string

// Inbound message types
const (
	MsgAnswer    MessageType = "answer"
	MsgTelemetry MessageType = "telemetry"
)

// Outbound message types
const (
	MsgQuestion     MessageType = "question"
	MsgFeedback     MessageType = "feedback"
	MsgDone         MessageType = "done"
	MsgTelemetryAck MessageType = "telemetry_ack"
	MsgError        MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Handler handles interview WebSocket connections. One connection
// drives one session: answers and telemetry in, feedback, questions
// and finally the report out.
type Handler struct {
	orchestrator *service.Orchestrator
}

// NewHandler creates a new WebSocket handler
func NewHandler(orchestrator *service.Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

// InterviewWS handles GET /api/ws/interview/{sessionId}
func (h *Handler) InterviewWS(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	question, err := h.orchestrator.CurrentQuestion(sessionID)
	if err == registry.ErrSessionNotFound {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	send := make(chan []byte, 16)
	log.Printf("Client connected to interview %s via WebSocket", sessionID)

	go h.writePump(wsConn, send)

	enqueue(send, MsgQuestion, question)
	go h.readPump(wsConn, send, sessionID)
}

func (h *Handler) readPump(wsConn *websocket.Conn, send chan []byte, sessionID string) {
	defer func() {
		close(send)
		wsConn.Close()
		log.Printf("Client disconnected from interview %s", sessionID)
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The request context dies with the HTTP handler; the pump outlives it.
	ctx := context.Background()

	for {
		_, raw, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			enqueueError(send, "Invalid JSON")
			continue
		}

		switch msg.Type {
		case MsgAnswer:
			h.handleAnswer(ctx, send, sessionID, msg.Payload)
		case MsgTelemetry:
			h.handleTelemetry(ctx, send, sessionID, msg.Payload)
		default:
			enqueueError(send, "Unknown message type")
		}
	}
}

func (h *Handler) handleAnswer(ctx context.Context, send chan []byte, sessionID string, payload json.RawMessage) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		enqueueError(send, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(body.Text)
	if text == "" {
		enqueueError(send, "Empty answer")
		return
	}

	result, err := h.orchestrator.SubmitAnswer(ctx, sessionID, text)
	if err != nil {
		enqueueError(send, err.Error())
		return
	}

	enqueue(send, MsgFeedback, result.Feedback)
	if result.NextQuestion != nil {
		enqueue(send, MsgQuestion, result.NextQuestion)
	} else {
		enqueue(send, MsgDone, result.Report)
	}
}

func (h *Handler) handleTelemetry(ctx context.Context, send chan []byte, sessionID string, payload json.RawMessage) {
	var telemetry map[string]interface{}
	if err := json.Unmarshal(payload, &telemetry); err != nil {
		enqueueError(send, "Invalid JSON")
		return
	}

	if err := h.orchestrator.SubmitTelemetry(ctx, sessionID, telemetry); err != nil {
		enqueueError(send, err.Error())
		return
	}

	enqueue(send, MsgTelemetryAck, map[string]bool{"ok": true})
}

func (h *Handler) writePump(wsConn *websocket.Conn, send chan []byte) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func enqueue(send chan []byte, msgType MessageType, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	envelope, _ := json.Marshal(&Message{Type: msgType, Payload: data})
	select {
	case send <- envelope:
	default:
		// Drop message if buffer full
	}
}

func enqueueError(send chan []byte, message string) {
	enqueue(send, MsgError, map[string]string{"message": message})
}
