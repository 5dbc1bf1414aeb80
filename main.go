package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/arcflux/dazzle/actor"
	"github.com/arcflux/dazzle/config"
	"github.com/arcflux/dazzle/lobby"
	"github.com/arcflux/dazzle/server"
)

func main() {
	configPath := flag.String("config", "", "path to a dazzled.json config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("dazzled: loading config: %v", err)
	}
	log.Printf("dazzled: configuration loaded: tick=%v port=%d start_ticks=%d turns=%d",
		cfg.TickPeriod(), cfg.ServerPort, cfg.GameStartTicks, cfg.GameTurns)

	engine := actor.NewEngine()
	log.Println("dazzled: actor engine created")

	enginePID := engine.Spawn(actor.NewProps(lobby.NewProducer(cfg)))
	if enginePID == nil {
		log.Fatal("dazzled: failed to spawn lobby engine actor")
	}
	log.Printf("dazzled: lobby engine spawned with pid %s", enginePID)

	srv := server.New(engine, enginePID)
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("dazzled: listening on %s", addr)

	if err := srv.ListenAndServe(addr); err != nil {
		log.Printf("dazzled: server stopped: %v", err)
		log.Println("dazzled: shutting down engine...")
		engine.Shutdown(5 * time.Second)
		log.Println("dazzled: engine shutdown complete")
	}
}
