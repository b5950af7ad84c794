package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-questmap/internal/tracker"
)

// FrameSubjectPrefix prefixes the per-session frame subject.
const FrameSubjectPrefix = "overlay."

// FrameSubject returns the subject frames for sessionId are published on.
func FrameSubject(sessionId string) string {
	return FrameSubjectPrefix + sessionId
}

// Transport sends raw messages.
type Transport interface {
	Publish(subject string, data []byte) error
}

// readiness is implemented by transports that come up after the publisher
// is built, such as NatsServer.
type readiness interface {
	Ready() <-chan struct{}
}

// FramePublisher publishes frames as JSON, one subject per session. Frames
// produced before the transport is ready are dropped.
type FramePublisher struct {
	transport Transport
}

func NewFramePublisher(t Transport) *FramePublisher {
	return &FramePublisher{transport: t}
}

func (p *FramePublisher) PublishFrame(ctx context.Context, f *tracker.Frame) error {
	if !p.ready() {
		slog.DebugContext(ctx, "transport not ready, frame dropped", "session", f.SessionId, "tick", f.Tick)
		return nil
	}

	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshalling frame: %w", err)
	}

	err = p.transport.Publish(FrameSubject(f.SessionId), data)
	if err != nil {
		return fmt.Errorf("publishing frame for %s: %w", f.SessionId, err)
	}
	return nil
}

func (p *FramePublisher) ready() bool {
	r, ok := p.transport.(readiness)
	if !ok {
		return true
	}
	select {
	case <-r.Ready():
		return true
	default:
		return false
	}
}
