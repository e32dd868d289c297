package heartbeat

import (
	"context"
	"time"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/types"
)

var topicConfigHeartbeat = bus.T("config", "heartbeat")

const defaultInterval = 5 * time.Second

// Service drives the power-on indicator pin and emits a periodic liveness
// line. The indicator goes high at boot and stays high; it signals power,
// not activity.
type Service struct {
	indicator types.OutputPin // nil when the board has no indicator wired
}

func NewService(indicator types.OutputPin) *Service {
	return &Service{indicator: indicator}
}

// Start raises the indicator and launches the liveness loop.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	if s.indicator != nil {
		s.indicator.Set(true)
	}
	go s.serviceLoop(ctx, conn)
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigHeartbeat)
	defer conn.Unsubscribe(cfgSub)

	tick := time.NewTicker(defaultInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: heartbeat service stopping")
			return
		case t := <-tick.C:
			println("Info:", t.Format("15:04:05"), "Heartbeat")
		case msg := <-cfgSub.Channel():
			if m, ok := msg.Payload.(map[string]any); ok {
				if iv, ok := m["interval"].(float64); ok && iv > 0 {
					tick.Reset(time.Duration(iv) * time.Second)
					println("Info: heartbeat interval set to", int(iv), "seconds")
				}
			}
		}
	}
}
