// config/config_test.go
package config

import (
	"context"
	"testing"
	"time"

	"github.com/rzbrk/push2talk/bus"
)

func TestConfig_PublishEmbedded_RetainedPerKey(t *testing.T) {
	// Override lookup for this test.
	oldLookup := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) ([]byte, bool) {
		if device != "pico_default" {
			return nil, false
		}
		return []byte(`{
			"input": {"debounce_ms": 10},
			"dispatch": {"hold_ms": 100},
			"heartbeat": {"interval": 5}
		}`), true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = oldLookup })

	b := bus.NewBus(16)
	conn := b.NewConnection("test-config")
	svc := NewConfigService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "pico_default")
	svc.Start(ctx, conn)

	// Subscribe; retained messages should arrive immediately.
	sub := conn.Subscribe(bus.T(configPrefix, "#"))

	wantCount := 3 // input, dispatch, heartbeat
	got := map[string]any{}

	deadline := time.Now().Add(600 * time.Millisecond)
	for len(got) < wantCount && time.Now().Before(deadline) {
		select {
		case m := <-sub.Channel():
			if m.Topic.Len() < 2 {
				t.Fatalf("unexpected topic: %#v", m.Topic)
			}
			if m.Topic.At(0) != configPrefix {
				t.Fatalf("unexpected prefix: %q", m.Topic.At(0))
			}
			got[m.Topic.At(1)] = m.Payload
		case <-time.After(10 * time.Millisecond):
		}
	}
	if len(got) != wantCount {
		t.Fatalf("expected %d retained messages, got %d (%v)", wantCount, len(got), got)
	}

	in, ok := got["input"].(map[string]any)
	if !ok {
		t.Fatalf("input payload type = %T, want map[string]any", got["input"])
	}
	if ms, ok := in["debounce_ms"].(float64); !ok || ms != 10 {
		t.Fatalf("input.debounce_ms = %#v, want 10", in["debounce_ms"])
	}
	d, ok := got["dispatch"].(map[string]any)
	if !ok {
		t.Fatalf("dispatch payload type = %T, want map[string]any", got["dispatch"])
	}
	if ms, ok := d["hold_ms"].(float64); !ok || ms != 100 {
		t.Fatalf("dispatch.hold_ms = %#v, want 100", d["hold_ms"])
	}
}

func TestConfig_PublishConfig_MissingDevice(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-missing-device")
	svc := NewConfigService()

	// No device ID in context
	if err := svc.publishConfig(context.Background(), conn); err == nil {
		t.Fatal("expected error for missing device ID, got nil")
	}
}

func TestConfig_PublishConfig_NoConfigFound(t *testing.T) {
	b := bus.NewBus(4)
	conn := b.NewConnection("test-no-config")
	svc := NewConfigService()

	ctx := context.WithValue(context.Background(), CtxDeviceKey, "unknown-device")
	if err := svc.publishConfig(ctx, conn); err == nil {
		t.Fatal("expected error for missing embedded config, got nil")
	}
}

func TestConfig_EmbeddedDefaultsParse(t *testing.T) {
	for device := range embeddedConfigs {
		b := bus.NewBus(8)
		conn := b.NewConnection("test-defaults")
		svc := NewConfigService()
		ctx := context.WithValue(context.Background(), CtxDeviceKey, device)
		if err := svc.publishConfig(ctx, conn); err != nil {
			t.Errorf("device %q: %v", device, err)
		}
	}
}
