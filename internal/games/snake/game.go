package snake

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Phase is the round state machine position.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Reason records why a round ended.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonSelf      Reason = "self-collision"
	ReasonWall      Reason = "wall-collision"
	ReasonObstacle  Reason = "obstacle-collision"
	ReasonHealth    Reason = "health-depleted"
	ReasonBoardFull Reason = "board-full"
)

// startRow is the row of the initial body; the tail starts at column 0.
const startRow = 4

type variant struct {
	id    string
	title string
	menu  bool // multi-mode menu; otherwise the round starts as Rogue
}

var (
	variantSnake = variant{id: "snake", title: "Snake", menu: true}
	variantRogue = variant{id: "rogue", title: "Rogue Snake"}
)

// Option customizes a Game.
type Option func(*Game)

// WithManualClock disables the tick driver; the caller advances the
// simulation with Tick.
func WithManualClock() Option {
	return func(g *Game) { g.manual = true }
}

// WithConfig uses cfg as the resolved rules: no file is loaded and no
// difficulty preset is applied on top.
func WithConfig(cfg config.SnakeConfig) Option {
	return func(g *Game) { g.override = &cfg }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithAlerter sets the sink of the pickup cue.
func WithAlerter(a core.Alerter) Option {
	return func(g *Game) {
		if a != nil {
			g.alerter = a
		}
	}
}

// Game implements the snake simulation. All exported methods are safe for
// concurrent use: the tick driver, the input adapter and the renderer each
// run on their own goroutine.
type Game struct {
	// life serializes round lifecycle changes (Reset, Start, Close) so at
	// most one driver exists.
	life sync.Mutex
	// mu guards everything below.
	mu sync.Mutex

	variant  variant
	manual   bool
	override *config.SnakeConfig
	logger   *log.Logger
	alerter  core.Alerter
	driver   *core.Ticker
	gen      uint64

	catalog  map[ModeID]Rules
	grid     core.Grid
	placer   *Placer
	rules    Rules
	selected int // menu slot, 0-based

	phase  Phase
	paused bool
	reason Reason
	ticks  uint64

	// Snake state
	snake     []core.Cell // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growth    int       // segments still to be added on later moves

	items     map[ItemKind]Item
	obstacles map[core.Cell]bool
	enemy     core.Cell
	hasEnemy  bool

	score     int
	apples    int
	highScore int
	health    int
	shield    bool
	interval  time.Duration
	elapsed   time.Duration
}

// New creates the multi-mode game, which opens on the mode menu.
func New(opts ...Option) *Game {
	return newGame(variantSnake, opts)
}

// NewRogue creates the Rogue game, which starts playing on Reset.
func NewRogue(opts ...Option) *Game {
	return newGame(variantRogue, opts)
}

func newGame(v variant, opts []Option) *Game {
	g := &Game{
		variant: v,
		logger:  log.New(io.Discard),
		alerter: core.NopAlerter{},
		phase:   PhaseMenu,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(variantSnake.id, func(env registry.Env) registry.Game {
		return New(envOptions(env)...)
	})
	registry.Register(variantRogue.id, func(env registry.Env) registry.Game {
		return NewRogue(envOptions(env)...)
	})
}

func envOptions(env registry.Env) []Option {
	opts := []Option{WithLogger(env.Logger), WithAlerter(env.Alerter)}
	if env.Config != nil {
		opts = append(opts, WithConfig(*env.Config))
	}
	return opts
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.title
}

// Reset loads the rules, reseeds placement and returns to the menu. The
// Rogue variant goes straight into a round. The high score is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.life.Lock()
	defer g.life.Unlock()

	g.stopDriver()

	sc := g.loadConfig()
	catalog, err := Catalog(sc)
	if err != nil {
		g.logger.Error("invalid rules, using built-in defaults", "error", err)
		sc = config.DefaultSnakeConfig()
		catalog, _ = Catalog(sc)
	}

	g.mu.Lock()
	g.gen++
	g.catalog = catalog
	g.grid = core.NewGrid(sc.Grid.Width, sc.Grid.Height, sc.Grid.Unit)
	g.placer = NewPlacer(g.grid, cfg.Seed)
	g.selected = 0
	g.rules = catalog[MenuModes[0]]
	g.phase = PhaseMenu
	g.clearBoard()
	g.mu.Unlock()

	g.logger.Debug("reset", "game", g.variant.id, "seed", cfg.Seed, "grid", fmt.Sprintf("%dx%d", g.grid.W, g.grid.H))

	if !g.variant.menu {
		if err := g.start(ModeRogue); err != nil {
			g.logger.Error("start failed", "error", err)
		}
	}
}

// loadConfig returns the WithConfig override, or the rules found on the
// default config search path.
func (g *Game) loadConfig() config.SnakeConfig {
	if g.override != nil {
		return *g.override
	}
	sc, err := config.LoadSnake("")
	if err != nil {
		g.logger.Error("config load failed, using defaults", "error", err)
		sc = config.Default()
	}
	return sc
}

// Start begins a fresh round of mode. Any running driver is stopped and
// waited for before state is touched.
func (g *Game) Start(mode ModeID) error {
	g.life.Lock()
	defer g.life.Unlock()
	return g.start(mode)
}

// start requires g.life to be held.
func (g *Game) start(mode ModeID) error {
	if g.catalog == nil {
		return fmt.Errorf("snake: start %s before reset", mode)
	}
	rules, ok := g.catalog[mode]
	if !ok {
		return fmt.Errorf("snake: unknown mode %q", mode)
	}

	g.stopDriver()

	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.newRound(rules)
	playing := g.phase == PhasePlaying
	g.mu.Unlock()

	g.logger.Info("round started", "mode", mode, "round", gen)

	if playing && !g.manual {
		g.driver = core.NewTicker(g.currentInterval, func() bool {
			return g.step(gen)
		})
		g.driver.Start(context.Background())
	}
	return nil
}

// stopDriver requires g.life to be held.
func (g *Game) stopDriver() {
	if g.driver != nil {
		g.driver.Stop()
		g.driver = nil
	}
}

// Close stops the tick driver. Late ticks of the old driver are ignored.
func (g *Game) Close() {
	g.life.Lock()
	defer g.life.Unlock()

	g.stopDriver()
	g.mu.Lock()
	g.gen++
	g.mu.Unlock()
}

// clearBoard empties the round state; the board stays empty in the menu.
func (g *Game) clearBoard() {
	g.paused = false
	g.reason = ReasonNone
	g.ticks = 0
	g.snake = nil
	g.direction = DirRight
	g.nextDir = DirRight
	g.growth = 0
	g.items = make(map[ItemKind]Item)
	g.obstacles = make(map[core.Cell]bool)
	g.hasEnemy = false
	g.score = 0
	g.apples = 0
	g.health = 0
	g.shield = false
	g.interval = 0
	g.elapsed = 0
}

// newRound sets up a round of rules. Requires g.mu.
func (g *Game) newRound(rules Rules) {
	g.clearBoard()
	g.rules = rules
	g.phase = PhasePlaying
	g.health = rules.InitialHealth
	g.interval = rules.InitialTickInterval

	row := min(startRow, g.grid.H-1)
	g.snake = make([]core.Cell, rules.InitialBodyLength)
	for i := range g.snake {
		g.snake[i] = core.Cell{X: rules.InitialBodyLength - 1 - i, Y: row}
	}

	if _, err := g.spawn(ItemApple); err != nil {
		g.endRound(ReasonBoardFull)
		return
	}

	if rules.Obstacles.Enabled && rules.Obstacles.Count > 0 {
		obs, err := g.placer.Obstacles(rules.Obstacles.Count, g.occupied)
		g.obstacles = obs
		if err != nil {
			g.logger.Warn("board too small for all obstacles", "placed", len(obs), "want", rules.Obstacles.Count)
		}
	}

	if rules.Enemy.Enabled {
		if err := g.placeEnemy(); err != nil {
			g.endRound(ReasonBoardFull)
		}
	}
}

// step is the driver callback of round gen; false halts the driver.
func (g *Game) step(gen uint64) bool {
	g.mu.Lock()
	if gen != g.gen {
		g.mu.Unlock()
		return false
	}
	alert := g.tick()
	running := g.phase == PhasePlaying
	g.mu.Unlock()

	if alert {
		g.alerter.Alert()
	}
	return running
}

func (g *Game) currentInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.interval <= 0 {
		return g.rules.InitialTickInterval
	}
	return g.interval
}

// Tick advances the simulation by one step. It does nothing unless a round
// is playing and not paused.
func (g *Game) Tick() {
	g.mu.Lock()
	alert := g.tick()
	g.mu.Unlock()

	if alert {
		g.alerter.Alert()
	}
}

// tick runs one step under g.mu and reports whether something was picked up.
func (g *Game) tick() bool {
	if g.phase != PhasePlaying || g.paused || len(g.snake) == 0 {
		return false
	}
	g.ticks++
	dt := g.interval

	// Apply buffered direction
	g.direction = g.nextDir
	dx, dy := g.direction.Offset()
	head := g.snake[0].Add(dx, dy)

	if g.rules.Wrap {
		head = g.grid.Wrap(head)
	} else if !g.grid.Contains(head) {
		g.endRound(ReasonWall)
		return false
	}

	// Move snake: add new head, drop the tail unless growing
	g.snake = slices.Insert(g.snake, 0, head)
	var tail core.Cell
	dropped := false
	if g.growth > 0 {
		g.growth--
	} else {
		tail = g.snake[len(g.snake)-1]
		g.snake = g.snake[:len(g.snake)-1]
		dropped = true
	}

	if slices.Contains(g.snake[1:], head) {
		g.endRound(ReasonSelf)
		return false
	}

	if g.obstacles[head] {
		if !g.shield {
			g.endRound(ReasonObstacle)
			return false
		}
		g.shield = false
		g.logger.Debug("shield absorbed obstacle", "cell", head)
	}

	if g.rules.Enemy.Enabled && g.hasEnemy {
		g.enemy = chase(g.enemy, head, g.rules.Enemy.ChaseSpeed)
		if g.enemy == head {
			g.health--
			g.logger.Debug("enemy hit", "health", g.health)
			if g.health <= 0 {
				g.health = 0
				g.endRound(ReasonHealth)
				return false
			}
			if err := g.placeEnemy(); err != nil {
				g.endRound(ReasonBoardFull)
				return false
			}
		}
	}

	picked, ateApple := g.collect(head, tail, &dropped)
	if g.phase != PhasePlaying {
		return picked
	}

	g.countdown()

	if ateApple {
		g.periodicSpawns()
	}

	g.elapsed += dt
	return picked
}

// collect consumes the item under head, if any.
func (g *Game) collect(head, tail core.Cell, dropped *bool) (picked, ateApple bool) {
	for _, kind := range itemKinds {
		it, ok := g.items[kind]
		if !ok || it.Cell != head {
			continue
		}
		delete(g.items, kind)
		picked = true

		switch kind {
		case ItemApple:
			ateApple = true
			g.score += it.Score
			g.apples++
			g.grow(it.Growth, tail, dropped)
			if _, err := g.spawn(ItemApple); err != nil {
				g.bumpHighScore()
				g.endRound(ReasonBoardFull)
				return picked, ateApple
			}
			g.rampSpeed()
			g.maybeSpawnBonus()
		case ItemBonus:
			g.score += it.Score
			g.grow(it.Growth, tail, dropped)
		case ItemShield:
			g.shield = true
		case ItemPotion:
			g.health = min(g.health+it.Heal, g.rules.MaxHealth)
		}
		g.bumpHighScore()
		g.logger.Debug("picked up", "item", kind, "score", g.score)
	}
	return picked, ateApple
}

// grow lengthens the body by n. The tail dropped this tick is restored
// first so growth shows on the tick the item is eaten.
func (g *Game) grow(n int, tail core.Cell, dropped *bool) {
	if n > 0 && *dropped {
		g.snake = append(g.snake, tail)
		*dropped = false
		n--
	}
	g.growth += n
}

func (g *Game) rampSpeed() {
	r := g.rules
	if r.SpeedRampEveryNApples <= 0 || g.apples%r.SpeedRampEveryNApples != 0 {
		return
	}
	g.interval = max(g.interval-r.SpeedRampStep, r.MinTickInterval)
}

func (g *Game) maybeSpawnBonus() {
	b := g.rules.Bonus
	if !b.Enabled || g.score%b.EveryNScore != 0 {
		return
	}
	if _, ok := g.items[ItemBonus]; ok {
		return
	}
	if _, err := g.spawn(ItemBonus); err != nil {
		g.logger.Debug("no room for bonus", "error", err)
	}
}

// countdown ages timed items and removes expired ones.
func (g *Game) countdown() {
	for _, kind := range itemKinds {
		it, ok := g.items[kind]
		if !ok || !it.Timed() {
			continue
		}
		it.Remaining--
		if it.Remaining <= 0 {
			delete(g.items, kind)
			continue
		}
		g.items[kind] = it
	}
}

// periodicSpawns runs on the tick an apple is eaten.
func (g *Game) periodicSpawns() {
	r := g.rules
	if r.Shield.Enabled && g.apples%r.Shield.EveryNApples == 0 && !g.shield {
		if _, ok := g.items[ItemShield]; !ok {
			if _, err := g.spawn(ItemShield); err != nil {
				g.logger.Debug("no room for shield", "error", err)
			}
		}
	}
	if r.Potion.Enabled && g.apples%r.Potion.EveryNApples == 0 {
		if _, ok := g.items[ItemPotion]; !ok {
			if _, err := g.spawn(ItemPotion); err != nil {
				g.logger.Debug("no room for potion", "error", err)
			}
		}
	}
}

// spawn places a new item of kind on a free cell.
func (g *Game) spawn(kind ItemKind) (Item, error) {
	c, err := g.placer.Place(g.occupied)
	if err != nil {
		return Item{}, err
	}
	it := Item{Kind: kind, Cell: c}
	switch kind {
	case ItemApple:
		it.Score, it.Growth = 1, 1
	case ItemBonus:
		it.Remaining = g.rules.Bonus.Duration
		it.Score, it.Growth = g.rules.Bonus.Score, g.rules.Bonus.Growth
	case ItemShield:
		it.Remaining = g.rules.Shield.Duration
	case ItemPotion:
		it.Remaining = g.rules.Potion.Duration
		it.Heal = 1
	}
	g.items[kind] = it
	return it, nil
}

func (g *Game) placeEnemy() error {
	g.hasEnemy = false
	c, err := g.placer.Place(g.occupied)
	if err != nil {
		return err
	}
	g.enemy = c
	g.hasEnemy = true
	return nil
}

// occupied reports whether c holds the body, an obstacle, an item or the
// enemy.
func (g *Game) occupied(c core.Cell) bool {
	if g.obstacles[c] || (g.hasEnemy && g.enemy == c) {
		return true
	}
	for _, it := range g.items {
		if it.Cell == c {
			return true
		}
	}
	return slices.Contains(g.snake, c)
}

func (g *Game) bumpHighScore() {
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

func (g *Game) endRound(reason Reason) {
	g.phase = PhaseGameOver
	g.reason = reason
	g.logger.Info("round over",
		"mode", g.rules.ID,
		"reason", reason,
		"score", g.score,
		"high_score", g.highScore,
		"ticks", g.ticks,
	)
}

// SetDirection buffers d for the next move unless it reverses the current
// heading.
func (g *Game) SetDirection(d Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying || d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// TogglePause flips the pause flag of a running round.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return
	}
	g.paused = !g.paused
	g.logger.Debug("pause", "paused", g.paused)
}

// Handle dispatches a platform command. Commands that do not apply to the
// current phase are ignored.
func (g *Game) Handle(cmd core.Command) {
	switch cmd.Kind {
	case core.CmdTurnUp:
		g.SetDirection(DirUp)
	case core.CmdTurnDown:
		g.SetDirection(DirDown)
	case core.CmdTurnLeft:
		g.SetDirection(DirLeft)
	case core.CmdTurnRight:
		g.SetDirection(DirRight)
	case core.CmdTogglePause:
		g.TogglePause()
	case core.CmdSelectMode:
		g.selectMode(cmd.Mode)
	case core.CmdConfirm:
		g.transition(PhaseMenu, func() ModeID { return MenuModes[g.selected] })
	case core.CmdRestart:
		g.transition(PhaseGameOver, func() ModeID { return g.rules.ID })
	}
}

func (g *Game) selectMode(slot int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseMenu || slot < 1 || slot > len(MenuModes) {
		return
	}
	g.selected = slot - 1
	if r, ok := g.catalog[MenuModes[g.selected]]; ok {
		g.rules = r
	}
}

// transition starts a round of the mode picked by next if the game is in
// phase from. Rogue has no menu to confirm.
func (g *Game) transition(from Phase, next func() ModeID) {
	g.life.Lock()
	defer g.life.Unlock()

	g.mu.Lock()
	if g.phase != from || (from == PhaseMenu && !g.variant.menu) {
		g.mu.Unlock()
		return
	}
	mode := next()
	g.mu.Unlock()

	if err := g.start(mode); err != nil {
		g.logger.Error("start failed", "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Frame returns the draw list of the current state.
func (g *Game) Frame() core.Frame {
	return BuildFrame(g.Snapshot())
}
