package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Name        string
	Seed        uint64
	Duration    time.Duration
	Episodes    int
	Wins        int
	Draws       int
	Losses      int
	PlayerBusts int
	DealerBusts int
}

// MeanPayoff is the average payoff per episode over the run.
func (m RunMetric) MeanPayoff() float64 {
	if m.Episodes == 0 {
		return 0
	}
	return float64(m.Wins-m.Losses) / float64(m.Episodes)
}

type Collector interface {
	Start(name string, seed uint64)
	AddEpisode(payoff int, playerBust, dealerBust bool)
	Complete() RunMetric
}

type collector struct {
	name        string
	seed        uint64
	startTime   time.Time
	episodes    atomic.Int64
	wins        atomic.Int64
	draws       atomic.Int64
	losses      atomic.Int64
	playerBusts atomic.Int64
	dealerBusts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(name string, seed uint64) {
	m.startTime = time.Now()
	m.name = name
	m.seed = seed
}

func (m *collector) AddEpisode(payoff int, playerBust, dealerBust bool) {
	m.episodes.Add(1)
	switch {
	case payoff > 0:
		m.wins.Add(1)
	case payoff < 0:
		m.losses.Add(1)
	default:
		m.draws.Add(1)
	}
	if playerBust {
		m.playerBusts.Add(1)
	}
	if dealerBust {
		m.dealerBusts.Add(1)
	}
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Name:        m.name,
		Seed:        m.seed,
		Duration:    time.Since(m.startTime),
		Episodes:    int(m.episodes.Load()),
		Wins:        int(m.wins.Load()),
		Draws:       int(m.draws.Load()),
		Losses:      int(m.losses.Load()),
		PlayerBusts: int(m.playerBusts.Load()),
		DealerBusts: int(m.dealerBusts.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(name string, seed uint64)                     {}
func (m *dummyCollector) AddEpisode(payoff int, playerBust, dealerBust bool) {}
func (m *dummyCollector) Complete() RunMetric                                { return RunMetric{} }
