package main

import (
	"flag"
	"log"

	"bulwark/internal/game"
	"bulwark/internal/persistence"
	"bulwark/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	scores := flag.String("scores", "data/best_score.json", "best score file, empty to keep it in memory")
	static := flag.String("static", "./static", "static file directory, empty to disable")
	flag.Parse()

	var store game.ScoreStore = persistence.NewMemoryStore(0)
	if *scores != "" {
		store = persistence.NewFileStore(*scores)
	}
	srv := server.NewServer(store, *static)

	log.Println("Starting Bulwark arena server...")
	if err := srv.Start(*addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
