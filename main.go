package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"lanerush/host"
	"lanerush/utils"
	"lanerush/world"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Llongfile)

	players := flag.Int("players", 2, "number of racers (2-4)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	confPath := flag.String("config", "", "optional TOML config path")
	flag.Parse()

	interval := host.TickInterval
	if *confPath != "" {
		cfg, err := utils.ReadTOML(*confPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Host.TickMillis > 0 {
			interval = time.Duration(cfg.Host.TickMillis) * time.Millisecond
		}
		if cfg.Host.Players > 0 {
			*players = cfg.Host.Players
		}
		if cfg.Host.Seed != 0 {
			*seed = cfg.Host.Seed
		}
	}

	roster := host.MintRoster(*players)
	h := host.New(roster, rand.New(rand.NewSource(*seed)), time.Now())

	// Bots pick characters and ready up, then mash inputs until the race ends.
	deck := world.Characters()
	for i, id := range roster {
		h.Do(host.Action{PlayerID: id, Kind: host.SelectCharacter, Character: deck[i%len(deck)]})
		h.Do(host.Action{PlayerID: id, Kind: host.ToggleReady})
	}
	go runBots(h, roster, *seed)
	go watch(h.Subscribe())

	results := h.Run(interval)
	snap := h.Snapshot()
	for _, p := range snap.Players {
		log.Printf("%s (%s): %s, score=%d, y=%.0f", p.ID, p.Character, results[p.ID], p.Score, p.Y)
	}
}

func runBots(h *host.Host, roster []string, seed int64) {
	rng := rand.New(rand.NewSource(seed + 1))
	kinds := []host.ActionKind{host.TurnLeft, host.TurnRight, host.StartBoost, host.StopBoost, host.Strike}
	for range time.Tick(100 * time.Millisecond) {
		for _, id := range roster {
			h.Do(host.Action{PlayerID: id, Kind: kinds[rng.Intn(len(kinds))]})
		}
	}
}

// watch decodes the observer feed and logs race progress about once a second.
func watch(snaps chan []byte) {
	n := 0
	for raw := range snaps {
		n++
		if n%30 != 0 {
			continue
		}
		snap, err := world.DecodeSnapshot(raw)
		if err != nil {
			log.Println(err)
			continue
		}
		for _, p := range snap.Players {
			log.Printf("%s lane=%d y=%.0f speed=%.0f score=%d", p.ID, p.Lane, p.Y, p.Speed, p.Score)
		}
		if snap.LastStrike != nil {
			log.Printf("last strike: %s -> %s", snap.LastStrike.StrikerID, snap.LastStrike.TargetID)
		}
	}
}
