package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trop3n/scopemidi/internal/config"
	"github.com/trop3n/scopemidi/internal/midi"
)

// pollInterval matches a 60fps render loop; the controller is polled
// once per tick.
const pollInterval = time.Second / 60

// defaultMappings gives a fresh install something useful out of the
// box: mod wheel, channel volume and brightness per the usual General
// MIDI CC assignments.
var defaultMappings = []midi.MappingRecord{
	{CC: 1, Param: "Gain"},
	{CC: 7, Param: "Volume"},
	{CC: 74, Param: "Zoom"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.Default()
	}
	if len(cfg.Mappings) == 0 {
		cfg.Mappings = defaultMappings
	}

	ctrl := midi.NewController(logger)
	ctrl.ImportMappings(cfg.Mappings)

	// Initialize MIDI manager
	manager := midi.NewManager(logger)
	defer manager.Close()

	ports := manager.ListInPorts()
	if len(ports) == 0 {
		log.Fatal("No MIDI input ports found")
	}
	port := cfg.InPort
	if port == "" {
		port = ports[0]
	}

	conn, err := manager.Connect(port, ctrl)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Printf("Listening on %q with %d mappings", conn.Port(), len(ctrl.Mappings()))
	for {
		select {
		case <-ticker.C:
			for _, u := range ctrl.Poll() {
				log.Printf("%s = %.3f", u.Param, u.Value)
			}
		case <-sig:
			stats := ctrl.Stats()
			log.Printf("Shutting down (%d events received, %d coalesced)",
				stats.Received, stats.Dropped)

			cfg.InPort = conn.Port()
			cfg.Mappings = ctrl.ExportMappings()
			if err := cfg.Save(); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
			return
		}
	}
}
