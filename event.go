package badgemon

// NodeEventType identifies a lifecycle transition reported to an EventSink.
type NodeEventType uint8

const (
	NodeStarted NodeEventType = iota // the node was triggered
	NodeEnded                        // the node ended (naturally or forced)
	NodeKilled                       // the node was ended by KillAnimation
)

// String returns the event type name.
func (t NodeEventType) String() string {
	switch t {
	case NodeStarted:
		return "started"
	case NodeEnded:
		return "ended"
	case NodeKilled:
		return "killed"
	default:
		return "unknown"
	}
}

// NodeEvent carries a lifecycle transition for an EventSink.
type NodeEvent struct {
	Type   NodeEventType
	NodeID uint32
	Name   string
	Clock  float64 // scheduler clock when the transition happened
}

// EventSink is the interface for optional lifecycle observers (an ECS world,
// a test recorder). When set on a Scheduler, every start, end and kill is
// forwarded to it synchronously.
type EventSink interface {
	EmitEvent(event NodeEvent)
}
