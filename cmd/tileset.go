package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rybkr/wfc/internal/symmetry"
	"github.com/rybkr/wfc/internal/tiled"
)

// tileSetFile is the on-disk JSON description of a tile set, consumed only
// by this CLI layer — the core never parses JSON directly.
type tileSetFile struct {
	Tiles []struct {
		Name   string  `json:"name"`
		Image  string  `json:"image"`
		Size   int     `json:"size"`
		Class  string  `json:"class"`
		Weight float64 `json:"weight"`
	} `json:"tiles"`
	Neighbors []struct {
		Left             string `json:"left"`
		LeftOrientation  int    `json:"left_orientation"`
		Right            string `json:"right"`
		RightOrientation int    `json:"right_orientation"`
	} `json:"neighbors"`
}

// loadTileSet reads a tile-set JSON description and the PNG image for every
// tile, resolving image paths relative to the JSON file's directory.
func loadTileSet(path string) ([]tiled.Tile, []tiled.NeighborRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file tileSetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tiles := make([]tiled.Tile, 0, len(file.Tiles))
	for _, t := range file.Tiles {
		class, err := symmetry.ParseClass(t.Class)
		if err != nil {
			return nil, nil, fmt.Errorf("tile %q: %w", t.Name, err)
		}
		pixels, err := loadImage(filepath.Join(dir, t.Image))
		if err != nil {
			return nil, nil, fmt.Errorf("tile %q: %w", t.Name, err)
		}
		tiles = append(tiles, tiled.Tile{
			Name:   t.Name,
			Pixels: pixels,
			Size:   t.Size,
			Class:  class,
			Weight: t.Weight,
		})
	}

	rules := make([]tiled.NeighborRule, 0, len(file.Neighbors))
	for _, n := range file.Neighbors {
		rules = append(rules, tiled.NeighborRule{
			LeftName:         n.Left,
			LeftOrientation:  n.LeftOrientation,
			RightName:        n.Right,
			RightOrientation: n.RightOrientation,
		})
	}

	return tiles, rules, nil
}
