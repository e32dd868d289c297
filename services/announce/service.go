// Package announce surfaces the selected profile to the user: a serial
// "Info:" line always, plus an optional status display.
package announce

import (
	"context"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/types"
	"github.com/rzbrk/push2talk/x/strconvx"
)

var topicSelected = bus.T("profile", "selected")

// Display renders the selected profile somewhere visible. Rendering is
// cosmetic; failures are logged and otherwise ignored.
type Display interface {
	ShowSelection(index int, label string) error
}

type Service struct {
	disp Display // nil when no display is fitted
}

func NewService(disp Display) *Service {
	return &Service{disp: disp}
}

func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.loop(ctx, conn)
}

func (s *Service) loop(ctx context.Context, conn *bus.Connection) {
	sub := conn.Subscribe(topicSelected)
	defer conn.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			println("Info: announce service stopping")
			return
		case msg := <-sub.Channel():
			sel, ok := msg.Payload.(types.ProfileSelected)
			if !ok {
				continue
			}
			println("Info: profile", strconvx.Itoa(sel.Index), sel.Label)
			if s.disp != nil {
				if err := s.disp.ShowSelection(sel.Index, sel.Label); err != nil {
					println("Info: display update failed:", err.Error())
				}
			}
		}
	}
}
