package metrics

import (
	"chinesecheckers/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Mode       game.Mode
	Depth      int
	Goroutines int
	Duration   time.Duration
	Candidates int // moves considered at the root
	Nodes      int
	Leaves     int
	Cutoffs    int
}

type MoveMetric struct {
	Step   int
	Player game.Piece
	Move   string
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer game.Piece
	Winner         game.Piece // None when the turn cap was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(mode game.Mode, depth, goroutines int)
	SetCandidates(n int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	mode       game.Mode
	depth      int
	goroutines int
	startTime  time.Time
	candidates atomic.Int32
	nodes      atomic.Int64
	leaves     atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mode game.Mode, depth, goroutines int) {
	m.startTime = time.Now()
	m.mode = mode
	m.depth = depth
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Mode:       m.mode,
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode game.Mode, depth, goroutines int) {}
func (m *dummyCollector) SetCandidates(n int)                         {}
func (m *dummyCollector) AddNode()                                    {}
func (m *dummyCollector) AddLeaf()                                    {}
func (m *dummyCollector) AddCutoff()                                  {}
func (m *dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
