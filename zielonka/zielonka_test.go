package zielonka_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pgsolve/game"
	"github.com/katalvlaran/pgsolve/zielonka"
)

// ZielonkaSuite exercises the staged recursion under the boundary scenarios
// and the fault paths.
type ZielonkaSuite struct {
	suite.Suite
}

func (s *ZielonkaSuite) build(prios, owners []int, edges [][2]int) *game.Dense {
	b := game.NewBuilder()
	for i := range prios {
		b.AddVertex(prios[i], owners[i])
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	g, err := b.Build()
	require.NoError(s.T(), err)

	return g
}

func (s *ZielonkaSuite) solve(g *game.Dense, opts ...zielonka.Option) *game.Recorder {
	rec := game.NewRecorder(g.N())
	require.NoError(s.T(), zielonka.Solve(g, rec, opts...))

	return rec
}

// TestSelfLoopEven verifies scenario 1: a priority-0 self-loop owned by
// Even is won by Even with the loop as strategy.
func (s *ZielonkaSuite) TestSelfLoopEven() {
	g := s.build([]int{0}, []int{game.Even}, [][2]int{{0, 0}})
	rec := s.solve(g)
	require.Equal(s.T(), game.Even, rec.Winner(0))
	require.Equal(s.T(), 0, rec.Strategy(0))
}

// TestSelfLoopOdd verifies scenario 2: raising the priority to 1 hands the
// vertex to Odd, and the Even owner keeps no strategy.
func (s *ZielonkaSuite) TestSelfLoopOdd() {
	g := s.build([]int{1}, []int{game.Even}, [][2]int{{0, 0}})
	rec := s.solve(g)
	require.Equal(s.T(), game.Odd, rec.Winner(0))
	require.Equal(s.T(), game.NoStrategy, rec.Strategy(0))
}

// TestTwoCycleSingleOwner verifies scenario 3: the forced 0↔1 cycle with
// priorities [0, 1] is won by Odd everywhere.
func (s *ZielonkaSuite) TestTwoCycleSingleOwner() {
	g := s.build([]int{0, 1}, []int{game.Even, game.Even}, [][2]int{{0, 1}, {1, 0}})
	rec := s.solve(g)
	require.Equal(s.T(), game.Odd, rec.Winner(0))
	require.Equal(s.T(), game.Odd, rec.Winner(1))
	require.Equal(s.T(), game.NoStrategy, rec.Strategy(0))
	require.Equal(s.T(), game.NoStrategy, rec.Strategy(1))
}

// TestTwoCycleSplitOwners verifies scenario 4: Odd wins both vertices and
// plays 1→0 on its own vertex.
func (s *ZielonkaSuite) TestTwoCycleSplitOwners() {
	g := s.build([]int{0, 1}, []int{game.Even, game.Odd}, [][2]int{{0, 1}, {1, 0}})
	rec := s.solve(g)
	require.Equal(s.T(), game.Odd, rec.Winner(0))
	require.Equal(s.T(), game.Odd, rec.Winner(1))
	require.Equal(s.T(), game.NoStrategy, rec.Strategy(0))
	require.Equal(s.T(), 0, rec.Strategy(1))
}

// TestLadder verifies scenario 5: Even forces the even 0↔1 cycle and the
// priority-3 vertex drains into it.
func (s *ZielonkaSuite) TestLadder() {
	g := s.build(
		[]int{1, 2, 3},
		[]int{game.Even, game.Even, game.Even},
		[][2]int{{0, 1}, {1, 0}, {2, 0}})
	rec := s.solve(g)
	for v := 0; v < 3; v++ {
		require.Equal(s.T(), game.Even, rec.Winner(v), "vertex %d", v)
	}
	require.Equal(s.T(), 1, rec.Strategy(0))
	require.Equal(s.T(), 0, rec.Strategy(1))
	require.Equal(s.T(), 0, rec.Strategy(2))
}

// TestDisconnectedUnion verifies scenario 6: the partition of a two-
// component game is the union of the per-component partitions.
func (s *ZielonkaSuite) TestDisconnectedUnion() {
	g := s.build(
		[]int{0, 1, 1, 2, 3},
		[]int{game.Even, game.Even, game.Even, game.Even, game.Even},
		[][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}, {4, 2}})
	rec := s.solve(g)
	for _, v := range []int{0, 1} {
		require.Equal(s.T(), game.Odd, rec.Winner(v), "vertex %d", v)
	}
	for _, v := range []int{2, 3, 4} {
		require.Equal(s.T(), game.Even, rec.Winner(v), "vertex %d", v)
	}
}

// TestDisabledSkipped checks that masked-out vertices get no decision and
// do not influence the rest.
func (s *ZielonkaSuite) TestDisabledSkipped() {
	g := s.build(
		[]int{0, 1, 1, 2, 3},
		[]int{game.Even, game.Even, game.Even, game.Even, game.Even},
		[][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}, {4, 2}})
	for _, v := range []int{2, 3, 4} {
		g.Disable(v)
	}

	rec := s.solve(g)
	require.Equal(s.T(), game.Odd, rec.Winner(0))
	require.Equal(s.T(), game.Odd, rec.Winner(1))
	for _, v := range []int{2, 3, 4} {
		require.False(s.T(), rec.Decided(v), "disabled vertex %d decided", v)
	}
}

// TestDisabledHighTail checks the scan start when the highest-index
// vertices are disabled and carry priorities above the enabled maximum.
func (s *ZielonkaSuite) TestDisabledHighTail() {
	g := s.build(
		[]int{0, 1, 5},
		[]int{game.Even, game.Even, game.Even},
		[][2]int{{0, 1}, {1, 0}, {2, 0}})
	g.Disable(2)

	rec := s.solve(g)
	require.Equal(s.T(), game.Odd, rec.Winner(0))
	require.Equal(s.T(), game.Odd, rec.Winner(1))
	require.False(s.T(), rec.Decided(2))
}

// TestEmptyGameFault checks the empty-game abort.
func (s *ZielonkaSuite) TestEmptyGameFault() {
	g := s.build([]int{0}, []int{game.Even}, [][2]int{{0, 0}})
	g.Disable(0)

	err := zielonka.Solve(g, game.NewRecorder(1))
	require.ErrorIs(s.T(), err, game.ErrEmptyGame)
}

// TestSinkErrorAborts checks that a failing sink stops the emission.
func (s *ZielonkaSuite) TestSinkErrorAborts() {
	boom := errors.New("boom")
	g := s.build([]int{0}, []int{game.Even}, [][2]int{{0, 0}})

	err := zielonka.Solve(g, sinkFunc(func(_, _, _ int) error { return boom }))
	require.ErrorIs(s.T(), err, boom)
}

// TestOnFrameObservesStages checks that the hook sees every stage of the
// recursion in LIFO discipline.
func (s *ZielonkaSuite) TestOnFrameObservesStages() {
	g := s.build(
		[]int{1, 2, 3},
		[]int{game.Even, game.Even, game.Even},
		[][2]int{{0, 1}, {1, 0}, {2, 0}})

	var stages []int
	maxDepth := 0
	rec := game.NewRecorder(g.N())
	err := zielonka.Solve(g, rec, zielonka.WithOnFrame(func(e zielonka.FrameEvent) {
		stages = append(stages, e.Stage)
		if e.Depth > maxDepth {
			maxDepth = e.Depth
		}
		require.Equal(s.T(), e.Priority&1, e.Player)
	}))
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), stages)
	require.Equal(s.T(), 0, stages[0], "the first event is the root descent")
	require.GreaterOrEqual(s.T(), maxDepth, 1, "the ladder must recurse")
}

// TestDiagnosticsWriters smoke-tests the optional CSV and HTML outputs.
func (s *ZielonkaSuite) TestDiagnosticsWriters() {
	g := s.build(
		[]int{0, 1},
		[]int{game.Even, game.Odd},
		[][2]int{{0, 1}, {1, 0}})

	var winning, mappings, evenHTML, oddHTML strings.Builder
	_ = s.solve(g,
		zielonka.WithWinningCSV(&winning),
		zielonka.WithMappingsCSV(&mappings),
		zielonka.WithTreeHTML(&evenHTML, &oddHTML))

	require.True(s.T(), strings.HasPrefix(winning.String(), "vertex;winner;strategy\n"))
	require.Contains(s.T(), winning.String(), "0;1;-1")
	require.Contains(s.T(), winning.String(), "1;1;0")
	require.True(s.T(), strings.HasPrefix(mappings.String(), "vertex;even;odd\n"))
	require.Contains(s.T(), evenHTML.String(), "<svg")
	require.Contains(s.T(), oddHTML.String(), "Odd tree")
}

func TestZielonkaSuite(t *testing.T) {
	suite.Run(t, new(ZielonkaSuite))
}

type sinkFunc func(v, winner, strategy int) error

func (f sinkFunc) Solve(v, winner, strategy int) error { return f(v, winner, strategy) }
