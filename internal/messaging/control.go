package messaging

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-questmap/internal/tracker"
)

// ControlSubject carries tracker control commands.
const ControlSubject = "questmap.control"

// Subscriber receives raw messages.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Enqueuer accepts commands for the tick goroutine.
type Enqueuer interface {
	Enqueue(tracker.Command) bool
}

// ControlListener feeds control messages into the tracker.
type ControlListener struct {
	server *NatsServer
	target Enqueuer
}

func NewControlListener(server *NatsServer, target Enqueuer) *ControlListener {
	return &ControlListener{server: server, target: target}
}

// Start waits for the server, listens until ctx is done, then unsubscribes.
func (l *ControlListener) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-l.server.Ready():
	}

	unsubscribe, err := Listen(ctx, l.server, l.target)
	if err != nil {
		return err
	}
	defer unsubscribe()

	slog.InfoContext(ctx, "listening for control commands", "subject", ControlSubject)
	<-ctx.Done()
	return nil
}

// Listen subscribes target to ControlSubject. Malformed messages are logged
// and dropped.
func Listen(ctx context.Context, sub Subscriber, target Enqueuer) (func(), error) {
	unsubscribe, err := sub.Subscribe(ControlSubject, func(data []byte) {
		cmd, err := tracker.ParseCommand(data)
		if err != nil {
			slog.WarnContext(ctx, "dropping control message", "error", err)
			return
		}
		if !target.Enqueue(cmd) {
			slog.WarnContext(ctx, "control queue full", "op", cmd.Op)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("listening for commands: %w", err)
	}
	return unsubscribe, nil
}
