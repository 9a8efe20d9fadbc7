package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"quizmaster/internal/app"
	"quizmaster/internal/domain"
)

const pollInterval = 250 * time.Millisecond

// WSHandler serves one quiz session per websocket. Only one player may be connected at a time.
type WSHandler struct {
	service  *app.QuizService
	upgrader websocket.Upgrader
	busy     atomic.Bool
	tick     time.Duration
}

func NewWSHandler(service *app.QuizService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		tick: pollInterval,
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func errorMessage(err error) outboundMessage[errorPayload] {
	return outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}}
}

// ServeWS upgrades the request and runs a session for ?name=&difficulty=.
// Clients send select {option}, submit, next, poll or quit; the server pushes view on every
// visible change, outcome after submit and result once the last question is done.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	difficulty := r.URL.Query().Get("difficulty")
	if name == "" || difficulty == "" {
		http.Error(w, "missing name or difficulty", http.StatusBadRequest)
		return
	}
	d, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.busy.CompareAndSwap(false, true) {
		http.Error(w, "a quiz is already in progress", http.StatusConflict)
		return
	}
	defer h.busy.Store(false)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Cancelled when the client goes away, which aborts the session.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	handle, err := h.service.StartSession(ctx, d, name)
	if err != nil {
		_ = conn.WriteJSON(errorMessage(err))
		return
	}
	defer h.service.AbortSession(handle)

	inbound := make(chan inboundMessage)
	go func() {
		defer cancel()
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	var last domain.SessionView
	for {
		view, err := h.service.PollSession(ctx, handle)
		if err != nil {
			return
		}
		if view != last {
			if err := conn.WriteJSON(outboundMessage[domain.SessionView]{Type: "view", Payload: view}); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
			last = view
		}
		if view.State == domain.StateComplete {
			h.finish(ctx, conn, handle)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case msg := <-inbound:
			if quit := h.dispatch(ctx, conn, handle, msg); quit {
				return
			}
		}
	}
}

// dispatch applies one client message and reports whether the connection should close.
func (h *WSHandler) dispatch(ctx context.Context, conn *websocket.Conn, handle string, msg inboundMessage) bool {
	var reply any
	switch msg.Type {
	case "select":
		var payload selectPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			reply = errorMessage(errors.New("invalid select payload"))
			break
		}
		if err := h.service.SelectOption(ctx, handle, payload.Option); err != nil {
			reply = errorMessage(err)
		}
	case "submit":
		outcome, err := h.service.SubmitAnswer(ctx, handle)
		if err != nil {
			reply = errorMessage(err)
			break
		}
		reply = outboundMessage[domain.AnswerOutcome]{Type: "outcome", Payload: outcome}
	case "next":
		if _, err := h.service.NextQuestion(ctx, handle); err != nil {
			reply = errorMessage(err)
		}
	case "poll":
		view, err := h.service.PollSession(ctx, handle)
		if err != nil {
			reply = errorMessage(err)
			break
		}
		reply = outboundMessage[domain.SessionView]{Type: "view", Payload: view}
	case "quit":
		return true
	default:
		reply = errorMessage(errors.New("unsupported message type"))
	}
	if reply == nil {
		return false
	}
	if err := conn.WriteJSON(reply); err != nil {
		log.Printf("ws write error: %v", err)
		return true
	}
	return false
}

func (h *WSHandler) finish(ctx context.Context, conn *websocket.Conn, handle string) {
	result, err := h.service.SessionResult(ctx, handle)
	if err != nil {
		_ = conn.WriteJSON(errorMessage(err))
		return
	}
	_ = conn.WriteJSON(outboundMessage[domain.SessionResult]{Type: "result", Payload: result})
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quiz complete"))
}
