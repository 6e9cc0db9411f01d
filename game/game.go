package game

import (
	"time"

	"snake-minigame/config"
	"snake-minigame/game/entity"
	"snake-minigame/game/manager"
	"snake-minigame/game/types"
	"snake-minigame/logger"
	"snake-minigame/monitor"

	"github.com/pkg/errors"
)

// Dependencies are the host collaborators. Any nil field falls back to a
// no-op, except Random which defaults to a generator seeded from config.
type Dependencies struct {
	Assets   types.AssetProvider
	Renderer types.RenderFacade
	Audio    types.AudioFacade
	Input    types.InputFacade
	Random   types.RandomSource
	Observer types.LifecycleObserver
	Metrics  *monitor.Metrics
}

// Game is one snake simulation instance. It is driven by a single Update
// call per host frame and is not safe for concurrent use.
type Game struct {
	Grid types.Grid

	cfg  *config.Config
	deps Dependencies

	snake        *entity.Snake
	buffer       *manager.DirectionBuffer
	clock        *manager.TickClock
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateMgr     *manager.StateManager
	events       *manager.EventQueue

	session     *Session
	cues        map[types.FoodKind]types.AssetHandle
	gameOverCue types.AssetHandle

	segmentVisuals map[entity.SegmentID]types.VisualID
	foodVisuals    map[types.FoodKind]types.VisualID

	Steps int
	fatal error
}

func NewGame(cfg *config.Config, deps Dependencies) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	withDefaults(&deps, cfg.Seed)

	clock, err := manager.NewTickClock(cfg.Clock.BaseTick)
	if err != nil {
		return nil, err
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:           grid,
		cfg:            cfg,
		deps:           deps,
		buffer:         manager.NewDirectionBuffer(cfg.Facing()),
		clock:          clock,
		collisionMgr:   collisionMgr,
		foodManager:    manager.NewFoodManager(grid, cfg.FoodEffects(), deps.Random, collisionMgr),
		stateMgr:       manager.NewStateManager(),
		events:         manager.NewEventQueue(),
		cues:           make(map[types.FoodKind]types.AssetHandle, len(types.FoodKinds)),
		segmentVisuals: make(map[entity.SegmentID]types.VisualID),
		foodVisuals:    make(map[types.FoodKind]types.VisualID),
	}

	for kind, path := range cfg.SoundPaths() {
		if path != "" {
			g.cues[kind] = deps.Assets.Load(path)
		}
	}
	if cfg.Sound.GameOver != "" {
		g.gameOverCue = deps.Assets.Load(cfg.Sound.GameOver)
	}

	g.stateMgr.OnTransition(func(from, to types.Phase) {
		logger.Log.Infow("phase changed", "from", from.String(), "to", to.String(), "session", g.sessionID())
	})

	return g, nil
}

func withDefaults(deps *Dependencies, seed uint64) {
	if deps.Assets == nil {
		deps.Assets = noopAssets{}
	}
	if deps.Renderer == nil {
		deps.Renderer = noopRenderer{}
	}
	if deps.Audio == nil {
		deps.Audio = noopAudio{}
	}
	if deps.Input == nil {
		deps.Input = noopInput{}
	}
	if deps.Random == nil {
		deps.Random = manager.NewRandSource(seed)
	}
	if deps.Observer == nil {
		deps.Observer = noopObserver{}
	}
}

// RequestStart begins a fresh session: any previous chain and food are
// removed, the chain and food respawn and the game waits for the player.
func (g *Game) RequestStart() error {
	g.despawnAll()
	g.fatal = nil
	g.stateMgr.Reset()

	g.session = newSession(types.Snake)
	if err := g.spawnAll(); err != nil {
		g.fatal = err
		return err
	}
	if err := g.stateMgr.Transition(types.WaitPlayer); err != nil {
		return err
	}

	logger.Log.Infow("session started", "session", g.session.ID.String(), "game", g.session.Game.String())
	g.deps.Observer.MinigameActivated(g.session.Game, g.session.ID)
	return nil
}

// Update advances the simulation by elapsed host time. Input is polled every
// call; at most one step runs. After a fatal error every call returns it
// until RequestStart.
func (g *Game) Update(elapsed time.Duration) error {
	if g.fatal != nil {
		return g.fatal
	}

	if err := g.handleInput(); err != nil {
		return g.fail(err)
	}

	if !g.stateMgr.Is(types.Playing) {
		return nil
	}
	if !g.clock.Tick(elapsed) {
		return nil
	}
	if err := g.step(); err != nil {
		return g.fail(err)
	}
	return nil
}

func (g *Game) fail(err error) error {
	g.fatal = err
	logger.Log.Errorw("simulation halted", "error", err.Error(), "session", g.sessionID())
	return err
}

func (g *Game) handleInput() error {
	for _, d := range types.Directions {
		for _, key := range types.DirectionKeys[d] {
			if !g.deps.Input.JustPressed(key) {
				continue
			}
			if err := g.HandleDirection(d); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

// HandleDirection feeds one directional request into the state machine, as
// if its key had just been pressed.
func (g *Game) HandleDirection(d types.Direction) error {
	switch g.stateMgr.Phase() {
	case types.WaitPlayer:
		if !g.buffer.Accept(g.snake.Facing, d) {
			return nil
		}
		g.clock.ResetToBase()
		g.clock.Restart()
		g.deps.Metrics.SetTickInterval(g.clock.Interval())
		return g.stateMgr.Transition(types.Playing)
	case types.Playing:
		g.buffer.Accept(g.snake.Facing, d)
	case types.GameOver:
		return g.restart(d)
	}
	return nil
}

// restart throws away the frozen chain and food and resumes play at once,
// re-announcing the same session to the observer.
func (g *Game) restart(d types.Direction) error {
	g.despawnAll()
	if err := g.spawnAll(); err != nil {
		return err
	}
	g.buffer.Accept(g.snake.Facing, d)
	g.session.Restarts++
	g.session.Score = 0
	g.deps.Metrics.ObserveRestart()
	logger.Log.Infow("session restarted", "session", g.sessionID(), "restarts", g.session.Restarts)
	if err := g.stateMgr.Transition(types.Playing); err != nil {
		return err
	}
	g.deps.Observer.MinigameActivated(g.session.Game, g.session.ID)
	return nil
}

// step runs one tick. The phase order is fixed: move, self collision, food
// collision with its effects, food respawn, then the phase check.
func (g *Game) step() error {
	g.Steps++
	if err := g.snake.Step(g.buffer.Direction()); err != nil {
		return err
	}
	g.syncSegments()
	g.deps.Metrics.ObserveStep()

	crashed := g.collisionMgr.CheckSelfCollision(g.snake)

	if food, ok := g.collisionMgr.CheckFoodCollisions(g.snake, g.foodManager.GetFoodList()); ok {
		g.foodManager.RemoveFood(food.Kind)
		g.despawnFoodVisual(food.Kind)
		g.events.Enqueue(manager.Event{Kind: manager.FoodEaten, Food: food})
	}
	if err := g.dispatch(); err != nil {
		return err
	}

	if err := g.spawnFood(); err != nil {
		return err
	}

	if crashed {
		g.events.Enqueue(manager.Event{Kind: manager.SnakeCrashed})
	}
	return g.dispatch()
}

func (g *Game) spawnAll() error {
	snake, err := entity.NewSnake(g.Grid, g.cfg.SpawnPoint(), g.cfg.Facing(), g.cfg.Snake.InitialLength)
	if err != nil {
		return err
	}
	g.snake = snake
	g.buffer.Reset(snake.Facing)
	g.clock.ResetToBase()
	g.clock.Restart()
	g.deps.Metrics.SetTickInterval(g.clock.Interval())

	for _, seg := range snake.Segments() {
		g.spawnSegmentVisual(seg)
	}
	g.deps.Metrics.SetSnakeLength(snake.Len())
	return g.spawnFood()
}

func (g *Game) spawnFood() error {
	spawned, err := g.foodManager.Update(g.snake)
	for _, food := range spawned {
		g.spawnFoodVisual(food)
		logger.Log.Debugw("food spawned", "kind", food.Kind.String(), "x", food.Position.X, "y", food.Position.Y)
	}
	if err != nil {
		return errors.Wrap(err, "respawn food")
	}
	return nil
}

func (g *Game) despawnAll() {
	for id, visual := range g.segmentVisuals {
		g.deps.Renderer.Despawn(visual)
		delete(g.segmentVisuals, id)
	}
	for _, food := range g.foodManager.Clear() {
		g.despawnFoodVisual(food.Kind)
	}
	g.snake = nil
	g.events.ClearQueue()
}

// ResetSpeed restores the base tick interval. Nothing calls it
// automatically; hosts may wire it to their own rules.
func (g *Game) ResetSpeed() {
	g.clock.ResetToBase()
	g.deps.Metrics.SetTickInterval(g.clock.Interval())
}

// AllowTransition adds a phase rule, such as an entry into Win.
func (g *Game) AllowTransition(from, to types.Phase) {
	g.stateMgr.AddTransition(from, to)
}

// EnterPhase moves to p if a rule allows it.
func (g *Game) EnterPhase(p types.Phase) error {
	return g.stateMgr.Transition(p)
}

func (g *Game) Phase() types.Phase {
	return g.stateMgr.Phase()
}

// Active reports whether a session has been started.
func (g *Game) Active() bool {
	return g.session != nil && !g.stateMgr.Is(types.NotStarted)
}

func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Segments() []entity.Segment {
	if g.snake == nil {
		return nil
	}
	return g.snake.Segments()
}

func (g *Game) Foods() []entity.Food {
	return g.foodManager.GetFoodList()
}

func (g *Game) Direction() types.Direction {
	return g.buffer.Direction()
}

func (g *Game) TickInterval() time.Duration {
	return g.clock.Interval()
}

func (g *Game) Score() int {
	if g.session == nil {
		return 0
	}
	return g.session.Score
}

func (g *Game) Err() error {
	return g.fatal
}

func (g *Game) sessionID() string {
	if g.session == nil {
		return ""
	}
	return g.session.ID.String()
}
