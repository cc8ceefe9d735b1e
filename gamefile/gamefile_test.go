package gamefile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := Load("testdata/prisoners_dilemma.hcl")
	require.NoError(t, err)
	require.Len(t, f.Games, 1)

	g, err := f.Game("")
	require.NoError(t, err)
	require.Equal(t, "prisoners_dilemma", g.Name)
	require.Equal(t, 2, g.NumOpponents())
	require.Equal(t, 2, g.NumStrategies())
	require.Equal(t, "defect", g.StrategyName(1))

	v, ok := g.Matrix().RowPayoff(1, 0)
	require.True(t, ok)
	require.Equal(t, -7.0, v)
}

func TestParse_MultipleGames(t *testing.T) {
	src := `
game "coordination" {
  payoffs = [
    [[2, 2], [0, 0]],
    [[0, 0], [1, 1]],
  ]
}

game "rps" {
  strategies = ["rock", "paper", "scissors"]
  opponents  = 3
  payoffs = [
    [[0, 0], [-1, 1], [1, -1]],
    [[1, -1], [0, 0], [-1, 1]],
    [[-1, 1], [1, -1], [0, 0]],
  ]
}
`
	f, err := Parse([]byte(src), "games.hcl")
	require.NoError(t, err)
	require.Len(t, f.Games, 2)

	_, err = f.Game("")
	require.Error(t, err)

	g, err := f.Game("coordination")
	require.NoError(t, err)
	require.NotNil(t, g.Opponents)
	require.Equal(t, defaultOpponents, g.NumOpponents())
	require.Equal(t, "1", g.StrategyName(1))

	g, err = f.Game("rps")
	require.NoError(t, err)
	require.Equal(t, 3, g.NumOpponents())
	require.Equal(t, 3, g.NumStrategies())

	_, err = f.Game("chess")
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	for name, src := range map[string]string{
		"syntax": `game "x" {`,
		"no games": `# nothing here`,
		"missing payoffs": `game "x" {
  opponents = 2
}`,
		"ragged": `game "x" {
  payoffs = [
    [[1, 1], [2, 2]],
    [[3, 3]],
  ]
}`,
		"empty cell": `game "x" {
  payoffs = [
    [[1, 1], []],
    [[3, 3], [4, 4]],
  ]
}`,
		"zero opponents": `game "x" {
  opponents = 0
  payoffs = [[[1, 1]]]
}`,
		"negative opponents": `game "x" {
  opponents = -2
  payoffs = [[[1, 1]]]
}`,
		"strategy names": `game "x" {
  strategies = ["a", "b"]
  payoffs = [[[1, 1]]]
}`,
		"duplicate": `game "x" {
  payoffs = [[[1, 1]]]
}
game "x" {
  payoffs = [[[2, 2]]]
}`,
	} {
		_, err := Parse([]byte(src), name+".hcl")
		require.Error(t, err, name)
	}
}

func TestParse_ZeroOpponentsNotDefaulted(t *testing.T) {
	src := `game "x" {
  opponents = 0
  payoffs = [[[1, 1]]]
}`
	f, err := Parse([]byte(src), "zero.hcl")
	require.Error(t, err)
	require.Nil(t, f)
}
