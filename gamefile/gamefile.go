// Package gamefile loads normal-form game definitions from HCL files.
//
// A file holds one or more game blocks:
//
//	game "prisoners_dilemma" {
//	  strategies = ["cooperate", "defect"]
//	  opponents  = 2
//	  payoffs = [
//	    [[-6, -6], [-5, -7]],
//	    [[-7, -5], [-3, -3]],
//	  ]
//	}
//
// payoffs[i][j] is the payoff vector when the focal player plays i against
// an opponent playing j; element 0 is the focal player's payoff.
package gamefile

import (
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/timpalpant/bestresponse/matrixgame"
)

const defaultOpponents = 1

// File is the decoded contents of a game file.
type File struct {
	Games []Game `hcl:"game,block"`
}

// Game is a single game definition.
type Game struct {
	Name       string        `hcl:"name,label"`
	Strategies []string      `hcl:"strategies,optional"`
	Opponents  *int          `hcl:"opponents,optional"`
	Payoffs    [][][]float64 `hcl:"payoffs"`
}

// Load reads and validates the game file at filename.
func Load(filename string) (*File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Parse(src, filename)
}

// Parse decodes and validates game definitions from src. filename is used
// only in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(f.Games) == 0 {
		return nil, errors.Errorf("%s: no game blocks", filename)
	}

	seen := make(map[string]bool, len(f.Games))
	for i := range f.Games {
		g := &f.Games[i]
		if seen[g.Name] {
			return nil, errors.Errorf("%s: duplicate game %q", filename, g.Name)
		}
		seen[g.Name] = true

		if g.Opponents == nil {
			n := defaultOpponents
			g.Opponents = &n
		}
		if err := g.Validate(); err != nil {
			return nil, errors.Wrapf(err, "%s: game %q", filename, g.Name)
		}
	}

	return &f, nil
}

// Game returns the game with the given name. If name is empty and the file
// holds exactly one game, that game is returned.
func (f *File) Game(name string) (*Game, error) {
	if name == "" {
		if len(f.Games) != 1 {
			return nil, errors.Errorf("file holds %d games, a name is required", len(f.Games))
		}
		return &f.Games[0], nil
	}

	for i := range f.Games {
		if f.Games[i].Name == name {
			return &f.Games[i], nil
		}
	}

	return nil, errors.Errorf("no game named %q", name)
}

// Validate checks that the payoff grid is square and complete and that
// strategy names, if given, match its size.
func (g *Game) Validate() error {
	if g.Opponents == nil {
		return errors.New("number of opponents is not set")
	}
	if *g.Opponents < 1 {
		return errors.Errorf("opponents must be positive, got %d", *g.Opponents)
	}

	m := g.Matrix()
	if m.NumStrategies() == 0 {
		return errors.New("payoffs must not be empty")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid payoffs")
	}

	if len(g.Strategies) > 0 && len(g.Strategies) != m.NumStrategies() {
		return errors.Errorf("%d strategy names given for %d strategies",
			len(g.Strategies), m.NumStrategies())
	}

	return nil
}

// NumOpponents returns n, the number of opponents player A faces.
func (g *Game) NumOpponents() int {
	if g.Opponents == nil {
		return defaultOpponents
	}

	return *g.Opponents
}

// NumStrategies returns k.
func (g *Game) NumStrategies() int {
	return len(g.Payoffs)
}

// Matrix returns the game's payoff grid.
func (g *Game) Matrix() matrixgame.Matrix {
	return matrixgame.Matrix(g.Payoffs)
}

// StrategyName returns the name of strategy i, or its index if unnamed.
func (g *Game) StrategyName(i int) string {
	if i >= 0 && i < len(g.Strategies) {
		return g.Strategies[i]
	}

	return strconv.Itoa(i)
}
