package seed

import (
	"fmt"
	"log"
	"os"

	"linkhive/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset describes a seed scenario loaded from a YAML file.
type Preset struct {
	Users       int     `yaml:"users"`
	AcceptRatio float64 `yaml:"accept_ratio"`
	MeshDegree  int     `yaml:"mesh_degree"`
	PostsPerUsr int     `yaml:"posts_per_user"`
	DraftRatio  float64 `yaml:"draft_ratio"`
	MaxDays     int     `yaml:"max_days"`
}

// DefaultPreset is used when no preset file is supplied.
var DefaultPreset = Preset{
	Users:       20,
	AcceptRatio: 0.6,
	MeshDegree:  4,
	PostsPerUsr: 5,
	DraftRatio:  0.2,
	MaxDays:     90,
}

// LoadPreset reads a seed preset from a YAML file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset file: %w", err)
	}
	preset := DefaultPreset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return Preset{}, fmt.Errorf("parse preset file: %w", err)
	}
	return preset, nil
}

// Run populates the database per the preset: users, a connection mesh with
// the given accept ratio, and posts with the given draft ratio.
func Run(db *gorm.DB, preset Preset) error {
	f := NewFactory(db)

	users, err := f.CreateUsers(preset.Users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	log.Printf("seeded %d users", len(users))

	degree := preset.MeshDegree
	if degree <= 0 {
		degree = 4
	}
	edges := 0
	for i := range users {
		for d := 1; d <= degree; d++ {
			j := (i + d) % len(users)
			if i == j {
				continue
			}
			status := models.ConnectionStatusPending
			if f.rnd.Float64() < preset.AcceptRatio {
				status = models.ConnectionStatusAccepted
			}
			if _, err := f.ConnectUsers(&users[i], &users[j], status); err != nil {
				// Duplicate pair in the mesh; skip it.
				continue
			}
			edges++
		}
	}
	log.Printf("seeded %d connection edges", edges)

	posts := 0
	for i := range users {
		for p := 0; p < preset.PostsPerUsr; p++ {
			draft := f.rnd.Float64() < preset.DraftRatio
			if _, err := f.CreatePost(&users[i], preset.MaxDays, func(post *models.Post) {
				post.Draft = draft
			}); err != nil {
				return fmt.Errorf("seed posts: %w", err)
			}
			posts++
		}
	}
	log.Printf("seeded %d posts", posts)

	return nil
}
