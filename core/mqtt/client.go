// Package mqtt defines the publisher interface used to push computed snapshots
// to a broker.
package mqtt

import (
	"fmt"

	"github.com/AayushY02/Parking-MapAI/core/simulation"
)

// Publisher sends snapshots to downstream subscribers.
type Publisher interface {
	// PublishSnapshot sends s, tagged with the sweep run id.
	PublishSnapshot(runID string, s simulation.Snapshot) error
	// Disconnect releases the connection.
	Disconnect()
}

// SnapshotMessage is the JSON payload published for each snapshot.
type SnapshotMessage struct {
	RunID     string              `json:"run_id"`
	Timestamp int64               `json:"timestamp"`
	Snapshot  simulation.Snapshot `json:"snapshot"`
}

// SnapshotTopic returns "<prefix>/snapshot/<scenario>/<slot>". The baseline
// snapshot is published under the "baseline" scenario segment.
func SnapshotTopic(prefix string, s simulation.Snapshot) string {
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	return fmt.Sprintf("%s/snapshot/%s/%s", prefix, s.Scenario.String(), s.Slot)
}

// DefaultTopicPrefix is used when no prefix is configured.
const DefaultTopicPrefix = "mapai"
