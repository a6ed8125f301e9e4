package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ThomasBonnelye/invader-comparator/core/config"
	"github.com/ThomasBonnelye/invader-comparator/core/gallery"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_gallery <uid>")
	}
	uid := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client := gallery.NewClient(cfg.Gallery)
	ctx := context.Background()

	fmt.Printf("Fetching gallery for %s from %s...\n", uid, cfg.Gallery.BaseURL)
	g, err := client.FetchGallery(ctx, uid)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Player: %q (%d points)\n", g.Name, g.Points)
	fmt.Printf("Invaders (%d):\n", len(g.Invaders))
	for _, inv := range g.Invaders {
		fmt.Printf("  %s\n", inv)
	}
}
