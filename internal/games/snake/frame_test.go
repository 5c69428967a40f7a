package snake

import (
	"reflect"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestFrameMenu(t *testing.T) {
	g := newTestGame(t, false, nil)
	g.Handle(core.SelectMode(4))

	texts := g.Frame().Texts()
	for _, want := range []string{
		"Multi-Mode Snake Game",
		"Select Game Mode:",
		"1: Classic",
		"4: Bonus",
		"Press ENTER to Start",
		"Selected Mode: Bonus",
	} {
		if !slices.Contains(texts, want) {
			t.Errorf("menu frame missing %q in %q", want, texts)
		}
	}
}

func TestFramePlaying(t *testing.T) {
	g := startMode(t, ModeClassic)
	g.shield = true
	s := g.Snapshot()
	f := BuildFrame(s)

	if f.Grid != s.Grid {
		t.Errorf("frame grid = %+v, want %+v", f.Grid, s.Grid)
	}

	texts := f.Texts()
	for _, want := range []string{"Score: 0", "High Score: 0", "Time: 0s", "Mode: Classic", "Shield: ON"} {
		if !slices.Contains(texts, want) {
			t.Errorf("HUD missing %q in %q", want, texts)
		}
	}

	head, _ := s.Head()
	apple, _ := s.Item(ItemApple)
	var gotHead, gotApple bool
	for _, p := range f.Primitives {
		switch {
		case p.Bounds == s.Grid.Bounds(head) && p.Color == core.ColorGreen && p.Shape == core.ShapeRect:
			gotHead = true
		case p.Bounds == s.Grid.Bounds(apple.Cell) && p.Color == core.ColorRed && p.Shape == core.ShapeEllipse:
			gotApple = true
		}
	}
	if !gotHead {
		t.Error("no green head rect")
	}
	if !gotApple {
		t.Error("no red apple ellipse")
	}

	// The head is drawn after the body.
	last := f.Primitives[len(f.Primitives)-1]
	for _, p := range f.Primitives {
		if p.Layer == core.LayerBoard {
			last = p
		}
	}
	if last.Bounds != s.Grid.Bounds(head) {
		t.Errorf("last board primitive = %+v, want the head", last)
	}
}

func TestFrameOverlays(t *testing.T) {
	tests := []struct {
		name   string
		rogue  bool
		setup  func(*Game)
		want   []string
		absent []string
	}{
		{
			name:   "paused",
			setup:  func(g *Game) { g.TogglePause() },
			want:   []string{"Paused", "Press P to continue", "Score: 0"},
			absent: []string{"Game Over"},
		},
		{
			name:   "game over",
			setup:  func(g *Game) { g.endRound(ReasonWall) },
			want:   []string{"Game Over", "Score: 0", "Press R to Restart"},
			absent: []string{"Mode: Classic"},
		},
		{
			name:   "rogue hud",
			rogue:  true,
			setup:  func(*Game) {},
			want:   []string{"Health: 3", "High Score: 0", "Score: 0"},
			absent: []string{"Time: 0s"},
		},
		{
			name:   "rogue game over keeps board",
			rogue:  true,
			setup:  func(g *Game) { g.endRound(ReasonHealth) },
			want:   []string{"Game Over", "Press R to Restart", "Health: 3"},
			absent: []string{"Paused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := ModeClassic
			if tt.rogue {
				mode = ModeRogue
			}
			g := startMode(t, mode)
			tt.setup(g)

			texts := g.Frame().Texts()
			for _, w := range tt.want {
				if !slices.Contains(texts, w) {
					t.Errorf("missing %q in %q", w, texts)
				}
			}
			for _, a := range tt.absent {
				if slices.Contains(texts, a) {
					t.Errorf("unexpected %q in %q", a, texts)
				}
			}
		})
	}
}

func TestBuildFrameDoesNotMutate(t *testing.T) {
	g := startMode(t, ModeObstacle)
	s := g.Snapshot()
	before := g.Snapshot()

	BuildFrame(s)
	if !reflect.DeepEqual(s, before) {
		t.Error("BuildFrame modified its snapshot")
	}
	if !reflect.DeepEqual(g.Snapshot(), before) {
		t.Error("BuildFrame modified the game")
	}
}
