// Command hostsim runs the full service graph against fake pins so the
// keypad can be exercised on a development machine. Emitted reports are
// dumped as hex lines.
package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/google/shlex"

	"github.com/rzbrk/push2talk/bus"
	"github.com/rzbrk/push2talk/platform"
	"github.com/rzbrk/push2talk/profile"
	"github.com/rzbrk/push2talk/services/announce"
	"github.com/rzbrk/push2talk/services/config"
	"github.com/rzbrk/push2talk/services/dispatch"
	"github.com/rzbrk/push2talk/services/heartbeat"
	"github.com/rzbrk/push2talk/services/input"
	"github.com/rzbrk/push2talk/x/strconvx"
)

// settle comfortably exceeds the configured debounce window.
const settle = 50 * time.Millisecond

func main() {
	res := platform.GetResources()
	talk := res.Talk.(*platform.FakeInputPin)
	sel := res.Select.(*platform.FakeInputPin)

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, res.Device)
	b := bus.NewBus(8)

	config.NewConfigService().Start(ctx, b.NewConnection("config"))
	heartbeat.NewService(res.Indicator).Start(ctx, b.NewConnection("heartbeat"))
	announce.NewService(res.Display).Start(ctx, b.NewConnection("announce"))
	dispatch.NewService(profile.NewSelector(res.Store, 0), res.Sink).
		Start(ctx, b.NewConnection("dispatch"))
	input.NewService(res.Talk, res.Select, input.DefaultDebounce).
		Start(ctx, b.NewConnection("input"))

	pins := map[string]*platform.FakeInputPin{
		"talk":   talk,
		"select": sel,
	}

	println("push2talk host simulator")
	println("commands: press <btn> | release <btn> | tap <btn> | hold <btn> <ms> | quit")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		args, err := shlex.Split(sc.Text())
		if err != nil {
			println("parse error:", err.Error())
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return
		case "press":
			if pin := pinArg(pins, args); pin != nil {
				pin.SetLevel(false)
				time.Sleep(settle)
			}
		case "release":
			if pin := pinArg(pins, args); pin != nil {
				pin.SetLevel(true)
				time.Sleep(settle)
			}
		case "tap":
			if pin := pinArg(pins, args); pin != nil {
				tap(pin, settle)
			}
		case "hold":
			if len(args) < 3 {
				println("usage: hold <btn> <ms>")
				continue
			}
			ms, err := strconvx.Atoi(args[2])
			if err != nil || ms < 0 {
				println("bad duration:", args[2])
				continue
			}
			if pin := pinArg(pins, args); pin != nil {
				tap(pin, time.Duration(ms)*time.Millisecond)
			}
		default:
			println("unknown command:", args[0])
		}
	}
}

func pinArg(pins map[string]*platform.FakeInputPin, args []string) *platform.FakeInputPin {
	if len(args) < 2 {
		println("missing button name")
		return nil
	}
	pin, ok := pins[args[1]]
	if !ok {
		println("unknown button:", args[1])
		return nil
	}
	return pin
}

func tap(pin *platform.FakeInputPin, held time.Duration) {
	pin.SetLevel(false)
	if held < settle {
		held = settle
	}
	time.Sleep(held)
	pin.SetLevel(true)
	time.Sleep(settle)
}
