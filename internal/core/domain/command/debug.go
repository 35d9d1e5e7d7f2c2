package command

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"
	"runtime/metrics"

	"disbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Debug struct {
	messenger port.Messenger
	trigger   string
}

func NewDebug(messenger port.Messenger, trigger string) *Debug {
	return &Debug{messenger: messenger, trigger: trigger}
}

const kb = 1024

const debugTemplate = `allocated mem: %d KB
goroutines running: %d
heap: %d KB
stack: %d KB
compiled with %s for %s-%s
`

const metricCount = 3

// Execute reports process runtime stats to the channel.
func (d *Debug) Execute(ctx context.Context, client *http.Client, token string, channelID string, _ string) error {
	l := log.With().
		Str("channelId", channelID).
		Str("command", d.trigger).
		Logger()

	l.Info().Msg("handling request")

	data := make([]metrics.Sample, metricCount)
	data[0] = metrics.Sample{Name: "/memory/classes/heap/objects:bytes"}
	data[1] = metrics.Sample{Name: "/memory/classes/heap/stacks:bytes"}
	data[2] = metrics.Sample{Name: "/memory/classes/total:bytes"}

	metrics.Read(data)

	var goos, goarch string
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "GOOS":
				goos = setting.Value
			case "GOARCH":
				goarch = setting.Value
			}
		}
	}

	return d.messenger.SendMessage(ctx, client, token, channelID,
		fmt.Sprintf(
			debugTemplate,
			data[2].Value.Uint64()/kb,
			runtime.NumGoroutine(),
			data[0].Value.Uint64()/kb,
			data[1].Value.Uint64()/kb,
			runtime.Version(), goos, goarch,
		))
}
