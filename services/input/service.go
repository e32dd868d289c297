package input

import (
	"context"
	"time"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/types"
)

var topicConfigInput = bus.T("config", "input")

// defaultPoll keeps the sampling period well under the debounce window so
// sub-window transitions are never missed.
const defaultPoll = time.Millisecond

// Service polls both button debouncers once per tick and publishes logical
// edges on button/<name>/<edge>.
type Service struct {
	// Poll overrides the tick period when set before Start.
	Poll time.Duration

	talk *Debouncer
	sel  *Debouncer
}

func NewService(talk, sel types.InputPin, debounce time.Duration) *Service {
	return &Service{
		talk: NewDebouncer(talk, debounce),
		sel:  NewDebouncer(sel, debounce),
	}
}

// Start launches the polling loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.loop(ctx, conn)
}

func (s *Service) loop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigInput)
	defer conn.Unsubscribe(cfgSub)

	poll := s.Poll
	if poll <= 0 {
		poll = defaultPoll
	}
	tick := time.NewTicker(poll)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			println("Info: input service stopping")
			return
		case <-tick.C:
			s.scan(conn)
		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload)
		}
	}
}

func (s *Service) scan(conn *bus.Connection) {
	s.talk.Update()
	s.sel.Update()
	publishEdges(conn, types.ButtonTalk, s.talk)
	publishEdges(conn, types.ButtonSelect, s.sel)
}

// publishEdges maps pin edges to logical events. Pull-up wiring: falling =
// press, rising = release.
func publishEdges(conn *bus.Connection, name string, d *Debouncer) {
	if d.FallingEdge() {
		publishEdge(conn, name, types.EdgePress)
	}
	if d.RisingEdge() {
		publishEdge(conn, name, types.EdgeRelease)
	}
}

func publishEdge(conn *bus.Connection, name string, edge types.Edge) {
	conn.Publish(conn.NewMessage(
		bus.T("button", name, edge.String()),
		types.ButtonEvent{Button: name, Edge: edge},
		false,
	))
}

func (s *Service) applyConfig(payload any) {
	m, ok := payload.(map[string]any)
	if !ok {
		return
	}
	if v, ok := m["debounce_ms"]; ok {
		if ms, ok := v.(float64); ok && ms > 0 {
			interval := time.Duration(ms) * time.Millisecond
			s.talk.SetInterval(interval)
			s.sel.SetInterval(interval)
			println("Info: input debounce set to", int(ms), "ms")
		}
	}
}
