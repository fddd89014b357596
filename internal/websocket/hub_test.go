package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"degrondvraag-be/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSnapshots struct{}

func (stubSnapshots) Build(ctx context.Context, topic string) (*dto.SnapshotEnvelope, error) {
	return &dto.SnapshotEnvelope{Type: "snapshot", Topic: topic, Data: []string{}}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestClient(hub *Hub) *Client {
	return &Client{
		Id:     uuid.New(),
		Hub:    hub,
		topics: make(map[string]bool),
		Send:   make(chan []byte, 64),
	}
}

func TestSubscribeDeliversInitialSnapshot(t *testing.T) {
	hub := NewHub(nil, stubSnapshots{}, nopLogger{})
	go hub.Run()

	client := newTestClient(hub)
	hub.register <- client
	hub.Subscribe(context.Background(), client, "essays")

	select {
	case raw := <-client.Send:
		var envelope dto.SnapshotEnvelope
		assert.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "snapshot", envelope.Type)
		assert.Equal(t, "essays", envelope.Topic)
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot delivered")
	}
}

func TestBroadcastReachesSubscriber(t *testing.T) {
	hub := NewHub(nil, stubSnapshots{}, nopLogger{})
	go hub.Run()

	client := newTestClient(hub)
	hub.register <- client
	hub.Subscribe(context.Background(), client, "comments/essay")
	<-client.Send // initial snapshot

	hub.Broadcast("comments/essay", &dto.SnapshotEnvelope{
		Type:  "snapshot",
		Topic: "comments/essay",
		Data:  []string{"nieuw"},
	})

	select {
	case raw := <-client.Send:
		var envelope dto.SnapshotEnvelope
		assert.NoError(t, json.Unmarshal(raw, &envelope))
		assert.Equal(t, "comments/essay", envelope.Topic)
	case <-time.After(time.Second):
		t.Fatal("broadcast never arrived")
	}
}

// A snapshot racing a disconnect must never land on a closed Send channel.
func TestBroadcastDuringDisconnect(t *testing.T) {
	hub := NewHub(nil, stubSnapshots{}, nopLogger{})
	go hub.Run()

	envelope := &dto.SnapshotEnvelope{Type: "snapshot", Topic: "essays", Data: []string{}}

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				hub.Broadcast("essays", envelope)
			}
		}
	}()

	for i := 0; i < 500; i++ {
		client := newTestClient(hub)
		go func(c *Client) {
			for range c.Send {
			}
		}(client)
		hub.register <- client
		hub.Subscribe(context.Background(), client, "essays")
		hub.unregister <- client
	}
	close(stop)

	assert.Eventually(t, func() bool {
		return !hub.HasSubscribers("essays")
	}, time.Second, 10*time.Millisecond)
}
