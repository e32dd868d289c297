package main

import (
	"context"
	"time"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/platform"
	"github.com/rzbrk/push2talk/profile"
	"github.com/rzbrk/push2talk/services/announce"
	"github.com/rzbrk/push2talk/services/config"
	"github.com/rzbrk/push2talk/services/dispatch"
	"github.com/rzbrk/push2talk/services/heartbeat"
	"github.com/rzbrk/push2talk/services/input"
)

func main() {
	// Allow USB to enumerate before we print or type anything.
	time.Sleep(2 * time.Second)
	println("boot")

	res := platform.GetResources()
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, res.Device)

	b := bus.NewBus(8)

	config.NewConfigService().Start(ctx, b.NewConnection("config"))
	heartbeat.NewService(res.Indicator).Start(ctx, b.NewConnection("heartbeat"))
	announce.NewService(res.Display).Start(ctx, b.NewConnection("announce"))

	sel := profile.NewSelector(res.Store, 0)
	dispatch.NewService(sel, res.Sink).Start(ctx, b.NewConnection("dispatch"))

	input.NewService(res.Talk, res.Select, input.DefaultDebounce).
		Start(ctx, b.NewConnection("input"))

	select {}
}
