package main

import (
	"flag"
	"fmt"
	"gridpath/api"
	"gridpath/config"
	"gridpath/pathfinding"
	"log"
	"os"
)

func main() {
	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var (
		addr     = flag.String("addr", cfg.Addr, "Listen address")
		maxNodes = flag.Int("max-nodes", 0, "Abort searches after expanding this many cells (0 = no limit)")
	)
	flag.Parse()

	router := api.NewRouter(pathfinding.WithMaxNodes(*maxNodes))

	log.Printf("[INFO] Starting gridpath server on %s\n", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("[FATAL] Server stopped: %v\n", err)
	}
}
