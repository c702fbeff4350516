package ws

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/repositories"
)

// Hub maintains room subscriptions and fans broadcast events out to the
// websocket clients of each room. A room exists exactly as long as it has at
// least one subscriber: the first client opens the room's pub/sub
// subscription, the last one leaving closes it.
type Hub struct {
	// Active rooms keyed by room code.
	rooms map[string]*room

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Events received from room subscriptions.
	fanout chan roomEvent

	// Mutex for read access to rooms from outside the run loop
	mu sync.RWMutex

	broadcaster repositories.Broadcaster
	logger      *zap.Logger
}

type room struct {
	clients map[*Client]bool
	cancel  context.CancelFunc
}

type roomEvent struct {
	roomCode string
	payload  []byte
}

// NewHub creates a new hub over the given broadcast transport
func NewHub(broadcaster repositories.Broadcaster, logger *zap.Logger) *Hub {
	return &Hub{
		rooms:       make(map[string]*room),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		fanout:      make(chan roomEvent, 64),
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Run starts the hub's main loop. It returns when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.addClient(ctx, client)

		case client := <-h.unregister:
			h.removeClient(client)

		case event := <-h.fanout:
			h.deliver(event)
		}
	}
}

func (h *Hub) addClient(ctx context.Context, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[client.roomCode]
	if !ok {
		subCtx, cancel := context.WithCancel(ctx)
		events, err := h.broadcaster.Subscribe(subCtx, client.roomCode)
		if err != nil {
			cancel()
			h.logger.Error("Failed to open room subscription",
				zap.String("roomCode", client.roomCode),
				zap.Error(err))
			close(client.send)
			return
		}

		rm = &room{
			clients: make(map[*Client]bool),
			cancel:  cancel,
		}
		h.rooms[client.roomCode] = rm
		go h.pump(client.roomCode, events)

		h.logger.Info("Room opened", zap.String("roomCode", client.roomCode))
	}

	rm.clients[client] = true
	h.logger.Info("Client joined room",
		zap.String("roomCode", client.roomCode),
		zap.String("participant", client.participantID))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[client.roomCode]
	if !ok || !rm.clients[client] {
		return
	}

	delete(rm.clients, client)
	close(client.send)
	h.logger.Info("Client left room",
		zap.String("roomCode", client.roomCode),
		zap.String("participant", client.participantID))

	if len(rm.clients) == 0 {
		rm.cancel()
		delete(h.rooms, client.roomCode)
		h.logger.Info("Room closed", zap.String("roomCode", client.roomCode))
	}
}

// deliver writes an event to every client of its room. Clients whose send
// buffer is full are dropped rather than blocking the loop.
func (h *Hub) deliver(event roomEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rm, ok := h.rooms[event.roomCode]
	if !ok {
		return
	}

	for client := range rm.clients {
		select {
		case client.send <- event.payload:
		default:
			delete(rm.clients, client)
			close(client.send)
			h.logger.Warn("Dropped slow client",
				zap.String("roomCode", event.roomCode),
				zap.String("participant", client.participantID))
		}
	}

	if len(rm.clients) == 0 {
		rm.cancel()
		delete(h.rooms, event.roomCode)
	}
}

// pump forwards one room's subscription into the fanout loop until the
// subscription channel closes.
func (h *Hub) pump(roomCode string, events <-chan []byte) {
	for payload := range events {
		h.fanout <- roomEvent{roomCode: roomCode, payload: payload}
	}
}

// RoomSize reports the current number of subscribers in a room
func (h *Hub) RoomSize(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rm, ok := h.rooms[roomCode]
	if !ok {
		return 0
	}
	return len(rm.clients)
}
