package websocket

import (
	"context"
	"encoding/json"

	"sync"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const fanoutChannel = "content_fanout"

// SnapshotSource builds the full current result set for a topic. Used to
// answer a fresh subscription immediately, before any change event fires.
type SnapshotSource interface {
	Build(ctx context.Context, topic string) (*dto.SnapshotEnvelope, error)
}

// Hub tracks which client watches which topic and fans snapshots out to
// them. Topics are content keys ("essays", "comments/{slug}", "votes/{slug}"),
// not user ids: subscriptions are anonymous reads.
type Hub struct {
	// topic -> subscribed clients
	topics map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout. Nil when running single
	// instance.
	rdb *redis.Client

	// instanceId marks our own redis messages so we do not deliver them twice.
	instanceId string

	snapshots SnapshotSource
	logger    logger.ILogger
}

func NewHub(rdb *redis.Client, snapshots SnapshotSource, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		topics:     make(map[string]map[*Client]bool),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		snapshots:  snapshots,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.logger.Info("Hub", "Client connected", map[string]interface{}{"client_id": client.Id})

		case client := <-h.unregister:
			// Closing Send under the lock keeps it ordered against deliver,
			// which only sends while holding the read lock.
			h.mu.Lock()
			for topic := range client.topics {
				h.dropLocked(topic, client)
			}
			close(client.Send)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client disconnected", map[string]interface{}{"client_id": client.Id})
		}
	}
}

// Subscribe adds the client to a topic and immediately sends the current
// snapshot so the subscriber never starts from a blank state.
func (h *Hub) Subscribe(ctx context.Context, client *Client, topic string) {
	h.mu.Lock()
	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Client]bool)
	}
	h.topics[topic][client] = true
	client.topics[topic] = true
	h.mu.Unlock()

	envelope, err := h.snapshots.Build(ctx, topic)
	if err != nil {
		h.logger.Warn("Hub", "Initial snapshot failed", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
		return
	}
	if data, err := json.Marshal(envelope); err == nil {
		h.mu.RLock()
		if h.topics[topic][client] {
			h.deliver(client, data)
		}
		h.mu.RUnlock()
	}
}

func (h *Hub) Unsubscribe(client *Client, topic string) {
	h.mu.Lock()
	h.dropLocked(topic, client)
	delete(client.topics, topic)
	h.mu.Unlock()
}

func (h *Hub) dropLocked(topic string, client *Client) {
	if subs, ok := h.topics[topic]; ok {
		delete(subs, client)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
}

// HasSubscribers reports whether broadcasting to a topic can reach anyone.
// With redis fanout active a remote instance may hold subscribers we cannot
// see, so the answer is then always yes.
func (h *Hub) HasSubscribers(topic string) bool {
	if h.rdb != nil {
		return true
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic]) > 0
}

// Broadcast sends a snapshot to every local subscriber of the topic and
// relays it to other instances over redis.
func (h *Hub) Broadcast(topic string, envelope *dto.SnapshotEnvelope) {
	data, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("Hub", "Failed to serialize snapshot", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(topic, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(fanoutPayload{
			Origin:  h.instanceId,
			Topic:   topic,
			Message: data,
		})
		if err := h.rdb.Publish(context.Background(), fanoutChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis fanout failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(topic string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.topics[topic] {
		h.deliver(client, data)
	}
}

// deliver requires h.mu held at least for reading, which excludes the close
// of Send on the unregister path.
func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("Hub", "Client send buffer full, disconnecting", map[string]interface{}{
			"client_id": client.Id,
		})
		client.Conn.Close()
	}
}

type fanoutPayload struct {
	Origin  string          `json:"origin"`
	Topic   string          `json:"topic"`
	Message json.RawMessage `json:"message"`
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload fanoutPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Malformed fanout message", map[string]interface{}{"error": err.Error()})
			continue
		}
		// Our own broadcasts were already delivered locally.
		if payload.Origin == h.instanceId {
			continue
		}
		h.deliverLocal(payload.Topic, payload.Message)
	}
}
