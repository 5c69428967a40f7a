package snake

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ModeInfo describes a menu slot.
type ModeInfo struct {
	Slot int // 1-based
	ID   ModeID
	Name string
}

// Snapshot is a deep copy of the game state, safe to read after the game
// moves on.
type Snapshot struct {
	Tick      uint64
	Game      string // "snake" or "rogue"
	Phase     Phase
	Paused    bool
	Reason    Reason
	Grid      core.Grid
	Mode      ModeID
	ModeName  string
	Menu      []ModeInfo // empty for Rogue
	Selected  int        // 1-based menu slot
	Snake     []core.Cell
	Dir       Direction
	Items     []Item // in kind order
	Obstacles []core.Cell
	Enemy     core.Cell
	HasEnemy  bool

	Score        int
	Apples       int
	HighScore    int
	Health       int
	MaxHealth    int
	Shield       bool
	TickInterval time.Duration
	Elapsed      time.Duration
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Tick:         g.ticks,
		Game:         g.variant.id,
		Phase:        g.phase,
		Paused:       g.paused,
		Reason:       g.reason,
		Grid:         g.grid,
		Mode:         g.rules.ID,
		ModeName:     g.rules.Name,
		Selected:     g.selected + 1,
		Snake:        slices.Clone(g.snake),
		Dir:          g.direction,
		Enemy:        g.enemy,
		HasEnemy:     g.hasEnemy,
		Score:        g.score,
		Apples:       g.apples,
		HighScore:    g.highScore,
		Health:       g.health,
		MaxHealth:    g.rules.MaxHealth,
		Shield:       g.shield,
		TickInterval: g.interval,
		Elapsed:      g.elapsed,
	}

	if g.variant.menu {
		for i, id := range MenuModes {
			name := string(id)
			if r, ok := g.catalog[id]; ok {
				name = r.Name
			}
			s.Menu = append(s.Menu, ModeInfo{Slot: i + 1, ID: id, Name: name})
		}
	}

	for _, kind := range itemKinds {
		if it, ok := g.items[kind]; ok {
			s.Items = append(s.Items, it)
		}
	}

	for c := range g.obstacles {
		s.Obstacles = append(s.Obstacles, c)
	}
	slices.SortFunc(s.Obstacles, func(a, b core.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return s
}

// Head returns the head cell, or false before the first round.
func (s Snapshot) Head() (core.Cell, bool) {
	if len(s.Snake) == 0 {
		return core.Cell{}, false
	}
	return s.Snake[0], true
}

// Item returns the active item of kind.
func (s Snapshot) Item(kind ItemKind) (Item, bool) {
	for _, it := range s.Items {
		if it.Kind == kind {
			return it, true
		}
	}
	return Item{}, false
}

// ElapsedSeconds is the simulated play time shown in the HUD.
func (s Snapshot) ElapsedSeconds() int {
	return int(s.Elapsed / time.Second)
}
