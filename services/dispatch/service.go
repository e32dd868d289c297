// Package dispatch owns the profile selection state machine: button edges
// in, key sequences and profile announcements out.
package dispatch

import (
	"context"
	"time"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/errcode"
	"github.com/rzbrk/push2talk/keyboard"
	"github.com/rzbrk/push2talk/profile"
	"github.com/rzbrk/push2talk/types"
)

var (
	topicButtons        = bus.T("button", "#")
	topicConfigDispatch = bus.T("config", "dispatch")
	topicSelected       = bus.T("profile", "selected")
	topicErr            = bus.T("dispatch", "err")
)

// Service plays the selected profile's sequence on talk edges and advances
// the persistent selector on select-button releases.
type Service struct {
	// Hold is the minimum report-state hold during sequence playback.
	// May be overridden before Start; config/dispatch can adjust it later.
	Hold time.Duration

	sel  *profile.Selector
	sink keyboard.Sink
}

func NewService(sel *profile.Selector, sink keyboard.Sink) *Service {
	return &Service{
		Hold: profile.DefaultHold,
		sel:  sel,
		sink: sink,
	}
}

// Start loads the persisted selection, announces it, and launches the
// dispatch loop in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.loop(ctx, conn)
}

func (s *Service) loop(ctx context.Context, conn *bus.Connection) {
	btnSub := conn.Subscribe(topicButtons)
	cfgSub := conn.Subscribe(topicConfigDispatch)
	defer conn.Unsubscribe(btnSub)
	defer conn.Unsubscribe(cfgSub)

	s.announce(conn, s.sel.Load())

	for {
		select {
		case <-ctx.Done():
			println("Info: dispatch service stopping")
			return
		case msg := <-btnSub.Channel():
			s.handleButton(conn, msg)
		case msg := <-cfgSub.Channel():
			s.applyConfig(msg.Payload)
		}
	}
}

func (s *Service) handleButton(conn *bus.Connection, msg *bus.Message) {
	ev, ok := msg.Payload.(types.ButtonEvent)
	if !ok {
		s.fault(conn, errcode.InvalidPayload)
		return
	}
	switch ev.Button {
	case types.ButtonTalk:
		s.dispatch(conn, ev.Edge)
	case types.ButtonSelect:
		// The press edge is deliberately ignored; only the release
		// advances, so one physical click cannot double-fire.
		if ev.Edge == types.EdgeRelease {
			s.selectNext(conn)
		}
	default:
		s.fault(conn, errcode.UnknownButton)
	}
}

// dispatch plays the current profile's sequence for the given talk edge.
// Playback blocks this loop through the hold delays; nothing else competes
// for the sink, so that is acceptable.
func (s *Service) dispatch(conn *bus.Connection, edge types.Edge) {
	p := profile.Profiles[s.sel.Current()]
	var seq []profile.Step
	switch edge {
	case types.EdgePress:
		seq = p.Press
	case types.EdgeRelease:
		seq = p.Release
	default:
		return
	}
	if err := profile.Play(s.sink, seq, s.Hold); err != nil {
		s.fault(conn, errcode.Of(err))
	}
}

func (s *Service) selectNext(conn *bus.Connection) {
	idx, err := s.sel.Advance()
	if err != nil {
		// Selection still moved in RAM; only durability degraded.
		s.fault(conn, errcode.StoreWriteFailed)
	}
	s.announce(conn, idx)
}

// announce surfaces the selection: best-effort print through the sink and
// a retained bus message for late subscribers.
func (s *Service) announce(conn *bus.Connection, idx int) {
	label := profile.Profiles[idx].Label
	s.sink.Print(label)
	conn.Publish(conn.NewMessage(
		topicSelected,
		types.ProfileSelected{Index: idx, Label: label},
		true,
	))
}

func (s *Service) fault(conn *bus.Connection, code errcode.Code) {
	conn.Publish(conn.NewMessage(topicErr, string(code), false))
}

func (s *Service) applyConfig(payload any) {
	m, ok := payload.(map[string]any)
	if !ok {
		return
	}
	if v, ok := m["hold_ms"]; ok {
		if ms, ok := v.(float64); ok && ms >= 0 {
			s.Hold = time.Duration(ms) * time.Millisecond
			println("Info: dispatch hold set to", int(ms), "ms")
		}
	}
}
