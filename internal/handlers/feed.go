package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"coin-casino-backend/internal/ledger"
	"coin-casino-backend/internal/models"
	"coin-casino-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedHandler pushes every settlement to connected clients over a
// websocket, plus balance updates addressed to one account.
type FeedHandler struct {
	store *ledger.Store
	hub   *feedHub
}

type feedHub struct {
	clients    map[string]*feedClient
	register   chan *feedClient
	unregister chan *feedClient
	broadcast  chan *FeedMessage
}

type feedClient struct {
	ID        string
	AccountID int64
	Conn      *websocket.Conn
}

type FeedMessage struct {
	Type      string      `json:"type"`
	AccountID int64       `json:"account_id,omitempty"`
	Data      interface{} `json:"data"`
}

func NewFeedHandler(store *ledger.Store) *FeedHandler {
	hub := &feedHub{
		clients:    make(map[string]*feedClient),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		broadcast:  make(chan *FeedMessage, 100),
	}

	go hub.run()

	return &FeedHandler{
		store: store,
		hub:   hub,
	}
}

// FeedHandler is wired into the engine as its Broadcaster.
var _ services.Broadcaster = (*FeedHandler)(nil)

func (h *FeedHandler) HandleFeed(c *gin.Context) {
	accountID := c.GetInt64("account_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("Failed to upgrade to WebSocket", zap.Error(err))
		return
	}

	client := &feedClient{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Conn:      conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	h.sendBalance(client)

	for {
		var msg FeedMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("WebSocket closed unexpectedly", zap.Error(err))
			}
			break
		}

		if msg.Type == "PING" {
			conn.WriteJSON(FeedMessage{
				Type: "PONG",
				Data: gin.H{"timestamp": time.Now().Unix()},
			})
		}
	}
}

func (h *FeedHandler) sendBalance(client *feedClient) {
	balance, err := h.store.GetBalance(context.Background(), client.AccountID)
	if err != nil {
		zap.L().Warn("Failed to get balance for feed", zap.Error(err))
		return
	}

	client.Conn.WriteJSON(FeedMessage{
		Type:      "BALANCE_UPDATE",
		AccountID: client.AccountID,
		Data:      gin.H{"balance": balance},
	})
}

func (h *FeedHandler) BroadcastSettlement(accountID int64, result *models.SettlementResult) {
	h.hub.broadcast <- &FeedMessage{
		Type: "SETTLEMENT",
		Data: gin.H{
			"account_id":   accountID,
			"game_type":    result.GameType,
			"won":          result.Won,
			"push":         result.Push,
			"result_delta": result.ResultDelta,
			"timestamp":    time.Now().Unix(),
		},
	}
}

func (h *FeedHandler) BroadcastBalance(accountID, balance int64) {
	h.hub.broadcast <- &FeedMessage{
		Type:      "BALANCE_UPDATE",
		AccountID: accountID,
		Data:      gin.H{"balance": balance},
	}
}

func (hub *feedHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client.ID] = client
			zap.L().Debug("Feed client registered",
				zap.String("client_id", client.ID),
				zap.Int64("account_id", client.AccountID))

		case client := <-hub.unregister:
			if _, ok := hub.clients[client.ID]; ok {
				delete(hub.clients, client.ID)
				zap.L().Debug("Feed client unregistered", zap.String("client_id", client.ID))
			}

		case message := <-hub.broadcast:
			hub.send(message)
		}
	}
}

// Messages with an AccountID go only to that account's connections;
// everything else fans out to every client.
func (hub *feedHub) send(message *FeedMessage) {
	for _, client := range hub.clients {
		if message.AccountID != 0 && client.AccountID != message.AccountID {
			continue
		}
		if err := client.Conn.WriteJSON(message); err != nil {
			zap.L().Debug("Dropping unwritable feed client", zap.String("client_id", client.ID))
			client.Conn.Close()
			delete(hub.clients, client.ID)
		}
	}
}
