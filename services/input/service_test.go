package input

import (
	"context"
	"testing"
	"time"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/types"
)

func recvEvent(t *testing.T, sub *bus.Subscription, d time.Duration) (types.ButtonEvent, bool) {
	t.Helper()
	select {
	case msg := <-sub.Channel():
		ev, ok := msg.Payload.(types.ButtonEvent)
		if !ok {
			t.Fatalf("unexpected payload %T", msg.Payload)
		}
		return ev, true
	case <-time.After(d):
		return types.ButtonEvent{}, false
	}
}

func TestServicePublishesPressAndRelease(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(16)
	talk := &fakePin{level: true}
	sel := &fakePin{level: true}

	svc := NewService(talk, sel, 5*time.Millisecond)
	svc.Poll = time.Millisecond
	svc.Start(ctx, b.NewConnection("input"))

	sub := b.NewConnection("test").Subscribe(bus.T("button", "talk", "+"))

	talk.level = false
	ev, ok := recvEvent(t, sub, 200*time.Millisecond)
	if !ok {
		t.Fatal("no press event")
	}
	if ev.Button != types.ButtonTalk || ev.Edge != types.EdgePress {
		t.Fatalf("unexpected event %+v", ev)
	}

	talk.level = true
	ev, ok = recvEvent(t, sub, 200*time.Millisecond)
	if !ok {
		t.Fatal("no release event")
	}
	if ev.Edge != types.EdgeRelease {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestServiceRoutesButtonsToOwnTopics(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.NewBus(16)
	talk := &fakePin{level: true}
	sel := &fakePin{level: true}

	svc := NewService(talk, sel, 5*time.Millisecond)
	svc.Poll = time.Millisecond
	svc.Start(ctx, b.NewConnection("input"))

	talkSub := b.NewConnection("t1").Subscribe(bus.T("button", "talk", "#"))
	selSub := b.NewConnection("t2").Subscribe(bus.T("button", "select", "#"))

	sel.level = false
	ev, ok := recvEvent(t, selSub, 200*time.Millisecond)
	if !ok {
		t.Fatal("no select press event")
	}
	if ev.Button != types.ButtonSelect {
		t.Fatalf("unexpected event %+v", ev)
	}
	if _, ok := recvEvent(t, talkSub, 20*time.Millisecond); ok {
		t.Fatal("select press leaked onto the talk topic")
	}
}

func TestApplyConfigAdjustsDebounce(t *testing.T) {
	talk := &fakePin{level: true}
	sel := &fakePin{level: true}
	svc := NewService(talk, sel, 0)

	if svc.talk.interval != DefaultDebounce {
		t.Fatalf("default interval = %v", svc.talk.interval)
	}

	svc.applyConfig(map[string]any{"debounce_ms": float64(25)})
	if svc.talk.interval != 25*time.Millisecond || svc.sel.interval != 25*time.Millisecond {
		t.Fatalf("intervals = %v/%v, want 25ms", svc.talk.interval, svc.sel.interval)
	}

	// Junk payloads are ignored.
	svc.applyConfig("nonsense")
	svc.applyConfig(map[string]any{"debounce_ms": "nope"})
	if svc.talk.interval != 25*time.Millisecond {
		t.Fatalf("interval changed on junk config: %v", svc.talk.interval)
	}
}
