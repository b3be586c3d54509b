// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"linkhive/internal/bootstrap"
	"linkhive/internal/config"
	"linkhive/internal/seed"
)

func main() {
	presetPath := flag.String("preset", "", "path to a YAML seed preset (optional)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	preset := seed.DefaultPreset
	if *presetPath != "" {
		preset, err = seed.LoadPreset(*presetPath)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}

	if err := seed.Run(db, preset); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
