package arrange

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Recipe is a hand-authored YAML description of the sprites to assemble
// from a tileset. It replaces editing arrangements in code.
type Recipe struct {
	TileSize int            `yaml:"tileSize"` // 0 means the caller's tile size
	Sprites  []RecipeSprite `yaml:"sprites"`
}

// RecipeSprite is one sprite entry in a recipe.
type RecipeSprite struct {
	Name  string `yaml:"name"`
	Grid  []int  `yaml:"grid"` // [width, height] in tiles
	Tiles []int  `yaml:"tiles"`
}

// LoadRecipe loads and validates a recipe from a YAML file.
func LoadRecipe(path string) (*Recipe, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, err
	}
	var r Recipe
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	for i, s := range r.Sprites {
		if s.Name == "" {
			return nil, fmt.Errorf("recipe sprite %d: missing name", i)
		}
		if len(s.Grid) != 2 {
			return nil, fmt.Errorf("recipe sprite %q: grid must be [width, height]", s.Name)
		}
	}
	return &r, nil
}

// Arrangements converts the recipe's sprite entries into arrangements.
func (r *Recipe) Arrangements() []Arrangement {
	arrs := make([]Arrangement, 0, len(r.Sprites))
	for _, s := range r.Sprites {
		arrs = append(arrs, Arrangement{
			Name:        s.Name,
			Width:       s.Grid[0],
			Height:      s.Grid[1],
			TileIndices: append([]int(nil), s.Tiles...),
		})
	}
	return arrs
}
