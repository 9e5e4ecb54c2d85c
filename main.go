package main

import (
	"flag"
	"log"

	"github.com/esimov/ascii-cloth/cloth"
	"github.com/esimov/ascii-cloth/config"
	"github.com/esimov/ascii-cloth/terminal"
	"github.com/esimov/ascii-cloth/websocket"
)

func main() {
	config.Load()

	web := flag.Bool("web", false, "serve the browser canvas host instead of the terminal renderer")
	addr := flag.String("a", config.Address(), "address to serve (host:port)")
	prefix := flag.String("p", "/", "prefix path under")
	root := flag.String("r", config.Root(), "root path of the static canvas page")
	flag.Parse()

	if *web {
		websocket.Init(&websocket.Params{
			Address: *addr,
			Prefix:  *prefix,
			Root:    *root,
		})
		return
	}

	term := terminal.New(terminalConfig())
	if err := term.Render(); err != nil {
		log.Fatalln(err)
	}
}

// terminalConfig rescales the default tuning from canvas pixels to the much
// coarser terminal cell grid.
func terminalConfig() cloth.Config {
	cfg := cloth.DefaultConfig()
	cfg.Cols = 36
	cfg.Rows = 14
	cfg.RowSpacing = 1
	cfg.Gravity = 0.04
	cfg.Damping = 0.96
	cfg.WindStrength = 0.4
	cfg.InteractionRadius = 8
	cfg.InteractionForce = 0.25
	cfg.TearThreshold = 3
	cfg.TearRadius = 2
	return cfg
}
