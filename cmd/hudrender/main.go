// Command hudrender renders a HUD status frame to a PNG file.
//
// With -socket it connects to a running historian, waits for the first
// status snapshot and renders it; without, it renders a demo frame.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/sabertrack/hud"
	"github.com/sabertrack/hud/historian"
	"github.com/sabertrack/hud/text"
)

func main() {
	var (
		socket  = flag.String("socket", "", "unix socket of the historian (empty renders a demo frame)")
		out     = flag.String("out", "hud.png", "output PNG path")
		fontArg = flag.String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
		width   = flag.Int("width", 320, "canvas width in pixels")
		height  = flag.Int("height", 240, "canvas height in pixels")
		wait    = flag.Duration("wait", 5*time.Second, "how long to wait for a historian snapshot")
		verbose = flag.Bool("v", false, "log drawing internals to stderr")
	)
	flag.Parse()

	if *verbose {
		hud.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*socket, *out, *fontArg, *width, *height, *wait); err != nil {
		fmt.Fprintln(os.Stderr, "hudrender:", err)
		os.Exit(1)
	}
}

func run(socket, out, fontPath string, width, height int, wait time.Duration) error {
	fonts := text.NewLibrary()
	defer fonts.Close()

	face := "Go"
	if fontPath != "" {
		if err := fonts.AddFontFile(fontPath); err != nil {
			return err
		}
		if families := fonts.Families(); len(families) > 0 {
			face = families[0]
		}
	} else if err := fonts.AddFont(goregular.TTF); err != nil {
		return err
	}

	canvas, err := hud.New(width, height, hud.WithFonts(fonts))
	if err != nil {
		return err
	}
	defer canvas.Close()

	state, status, err := fetchStatus(socket, wait)
	if err != nil {
		return err
	}

	renderFrame(canvas, face, state, status)
	return canvas.DumpPNG(out)
}

// fetchStatus waits for the first ready snapshot from the historian,
// or fabricates a demo one when no socket is configured.
func fetchStatus(socket string, wait time.Duration) (historian.State, *historian.Status, error) {
	if socket == "" {
		player := "demo player"
		return historian.ConnectedReady, &historian.Status{
			Connection: historian.Connection{
				ConnectedToBeatSaber: true,
				CurrentPlayer:        &player,
				InGame:               true,
			},
		}, nil
	}

	client, err := historian.Dial(socket)
	if err != nil {
		return historian.Unconnected, nil, err
	}
	defer client.Close()

	state := historian.Unconnected
	deadline := time.After(wait)
	for {
		select {
		case ev, ok := <-client.Events():
			if !ok {
				return state, nil, errors.New("historian connection ended before a snapshot arrived")
			}
			state = ev.State
			if ev.State == historian.ConnectedReady {
				return ev.State, ev.Status, nil
			}
		case <-deadline:
			// Render whatever state we reached; the frame still shows
			// the connection status.
			return state, nil, nil
		}
	}
}

func renderFrame(c *hud.Canvas, face string, state historian.State, status *historian.Status) {
	c.Clear(hud.NewRGB(16, 16, 24))

	// Status panel along the bottom edge.
	c.Rect(hud.RectStyle{
		Placement: hud.AnchoredPlacement{
			Src:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YBottom},
			Dst:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YBottom},
			YOffset: -8,
		},
		Width:  uint(max(c.Width()-16, 0)),
		Height: 56,
		Color:  hud.NewRGB(40, 40, 64),
		Fill:   true,
		Round:  12,
	})

	c.Text(hud.TextStyle{
		Placement: hud.AnchoredPlacement{
			Src:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YTop},
			Dst:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YTop},
			YOffset: 12,
		},
		FontFace:  face,
		FontSize:  28,
		FontColor: hud.White,
	}, "sabertrack")

	line, color := statusLine(state, status)
	c.Text(hud.TextStyle{
		Placement: hud.AnchoredPlacement{
			Src:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YBottom},
			Dst:     hud.AnchorPoint{X: hud.XCenter, Y: hud.YBottom},
			YOffset: -28,
		},
		FontFace:  face,
		FontSize:  18,
		FontColor: color,
	}, line)
}

func statusLine(state historian.State, status *historian.Status) (string, hud.RGB) {
	switch state {
	case historian.ConnectedReady:
		if status == nil {
			return "connected", hud.Green
		}
		player := status.Connection.Player("unknown player")
		if status.Connection.InGame {
			return player + " is playing", hud.Green
		}
		if !status.Connection.ConnectedToBeatSaber {
			return player + " (game offline)", hud.Yellow
		}
		return player + " is idle", hud.Green
	case historian.ConnectedWaiting:
		return "waiting for historian", hud.Yellow
	default:
		return "historian unreachable", hud.Red
	}
}
