package mqtt

import (
	"fmt"
	"sync"

	coremqtt "github.com/AayushY02/Parking-MapAI/core/mqtt"
	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

// Publisher mirrors the core mqtt.Publisher interface.
type Publisher = coremqtt.Publisher

// MockPublisher records published snapshots by topic. It is used in tests and
// when MQTT is disabled with recording requested.
type MockPublisher struct {
	Prefix   string
	Messages map[string]coremqtt.SnapshotMessage
	Topics   []string
	FailAll  bool
	mu       sync.Mutex
}

var _ coremqtt.Publisher = (*MockPublisher)(nil)

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Messages: make(map[string]coremqtt.SnapshotMessage)}
}

// PublishSnapshot records the message or returns an error if configured to fail.
func (m *MockPublisher) PublishSnapshot(runID string, s simulation.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailAll {
		return fmt.Errorf("publish failed")
	}
	topic := coremqtt.SnapshotTopic(m.Prefix, s)
	m.Messages[topic] = coremqtt.SnapshotMessage{RunID: runID, Snapshot: s}
	m.Topics = append(m.Topics, topic)
	return nil
}

// Count returns the number of recorded publishes.
func (m *MockPublisher) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Topics)
}

// Disconnect is a no-op.
func (m *MockPublisher) Disconnect() {}
