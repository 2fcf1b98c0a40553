package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
	"vaccine-village-go/internal/service"
	"vaccine-village-go/pkg/log"
	"vaccine-village-go/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Websocket frame types sent to the client.
const (
	frameReply = "reply"
	frameBusy  = "busy"
	frameError = "error"
)

// ChatHandler serves the chat endpoints over HTTP and websocket.
type ChatHandler struct {
	chatService service.ChatService
	userService service.UserService
	jwtManager  *token.JWTManager
	blacklist   repository.TokenBlacklistRepository
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService, userService service.UserService, jwtManager *token.JWTManager, blacklist repository.TokenBlacklistRepository) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		userService: userService,
		jwtManager:  jwtManager,
		blacklist:   blacklist,
	}
}

// ChatRequest is one user message.
type ChatRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// SendMessage answers one message synchronously.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	reply, err := h.chatService.SendMessage(c.Request.Context(), currentUser(c), req.Text, req.Language)
	if err != nil {
		serviceError(c, "SendMessage", err)
		return
	}
	ok(c, reply)
}

type chatFrame struct {
	Type    string             `json:"type"`
	Message string             `json:"message,omitempty"`
	Data    *service.ChatReply `json:"data,omitempty"`
}

// wsSession serializes writes to one websocket connection.
type wsSession struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	pending atomic.Bool
}

func (s *wsSession) send(f chatFrame) {
	b, _ := json.Marshal(f)
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		log.Warnf("Failed to write websocket frame: %v", err)
	}
}

// parseChatFrame accepts either a ChatRequest JSON object or plain text.
func parseChatFrame(raw []byte) ChatRequest {
	var req ChatRequest
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") && json.Unmarshal(raw, &req) == nil {
		return req
	}
	return ChatRequest{Text: trimmed}
}

func (h *ChatHandler) authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := h.jwtManager.VerifyToken(tokenString)
	if err != nil || claims.Refresh {
		return nil, errors.New("invalid token")
	}
	revoked, err := h.blacklist.Contains(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errors.New("token revoked")
	}
	return h.userService.GetProfile(claims.UserID)
}

// Handle serves a websocket chat session. Each text frame is one request;
// a frame that arrives while the previous reply is pending gets a busy frame.
func (h *ChatHandler) Handle(c *gin.Context) {
	user, err := h.authenticate(c.Request.Context(), c.Param("token"))
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("WebSocket upgrade failed", err)
		return
	}
	defer conn.Close()
	log.Infow("WebSocket chat opened", "user_id", user.ID)

	// in-flight replies are cancelled, then awaited, before the conn closes
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	session := &wsSession{conn: conn}

	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnf("WebSocket read failed: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if !session.pending.CompareAndSwap(false, true) {
			session.send(chatFrame{Type: frameBusy, Message: "still answering the previous message"})
			continue
		}

		req := parseChatFrame(raw)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer session.pending.Store(false)
			reply, err := h.chatService.SendMessage(ctx, user, req.Text, req.Language)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				msg := "the assistant is unavailable, please try again"
				if statusFor(err) != http.StatusInternalServerError {
					msg = err.Error()
				} else {
					log.Errorf("Websocket chat failed for user %d: %v", user.ID, err)
				}
				session.send(chatFrame{Type: frameError, Message: msg})
				return
			}
			session.send(chatFrame{Type: frameReply, Data: reply})
		}()
	}
}
