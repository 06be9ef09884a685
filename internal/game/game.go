// Package game runs one interactive play session on a tcell screen. It loads
// the character, applies the offline progress once, then drives the tick
// engine at a fixed interval until the player quits or the context ends.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"idlehunt/assets"
	"idlehunt/internal/actions"
	"idlehunt/internal/content"
	"idlehunt/internal/encounter"
	"idlehunt/internal/engine"
	"idlehunt/internal/event"
	"idlehunt/internal/offline"
	"idlehunt/internal/player"
	"idlehunt/internal/render"
	"idlehunt/internal/rng"
	"idlehunt/internal/store"
)

const (
	// maxLogs is how many log lines a session keeps for the HUD.
	maxLogs = 200
	// maxBatchTicks caps one driver callback; the rest is caught up later.
	maxBatchTicks = 1000
	// potionBatch is how many potions one buy key purchases.
	potionBatch = 10
)

var speedSteps = []float64{1, 2, 4}

// errQuit ends a session before the character exists.
var errQuit = errors.New("quit")

// Options configures one play session.
type Options struct {
	Name string
	// Vocation is used when the character does not exist yet. Empty asks
	// the player.
	Vocation         content.Vocation
	Speed            float64
	TickInterval     time.Duration
	AutosaveInterval time.Duration
	OfflineCapHours  float64
	Seed             int64 // 0 seeds from the clock
	Clock            Clock
	Logger           *slog.Logger
}

// Game is one play session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	store    store.Store
	cat      *content.Catalog
	opts     Options
	clock    Clock
	logger   *slog.Logger
	rng      *rand.Rand

	sess   *engine.Session
	player player.State
	logs   []event.LogEntry
	notice string
	speed  float64
	target string
	count  int

	journal store.SessionLog

	events chan tcell.Event
	done   chan struct{}
}

// Play runs a session until the player quits or ctx is cancelled. The caller
// owns the screen and finalises it after Play returns.
func Play(ctx context.Context, screen tcell.Screen, st store.Store, opts Options) error {
	return New(screen, st, assets.Catalog(), opts).Run(ctx)
}

// New creates a session. Zero options fall back to the defaults of
// config.Default.
func New(screen tcell.Screen, st store.Store, cat *content.Catalog, opts Options) *Game {
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 250 * time.Millisecond
	}
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = 30 * time.Second
	}
	if opts.OfflineCapHours <= 0 {
		opts.OfflineCapHours = offline.DefaultCapHours
	}
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		store:    st,
		cat:      cat,
		opts:     opts,
		clock:    clock,
		logger:   logger.With("name", opts.Name),
		rng:      rng.New(seed),
		speed:    opts.Speed,
		count:    1,
		events:   make(chan tcell.Event, 32),
		done:     make(chan struct{}),
	}
}

func (g *Game) nowMs() int64 { return g.clock.Now().UnixMilli() }

// startInput reads screen events on its own goroutine so the driver can
// select on input and timers together.
func (g *Game) startInput() {
	go func() {
		defer close(g.events)
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case g.events <- ev:
			case <-g.done:
				return
			}
		}
	}()
}

// Run is the session loop.
func (g *Game) Run(ctx context.Context) error {
	g.startInput()
	defer close(g.done)

	if err := g.load(ctx); err != nil {
		if errors.Is(err, errQuit) {
			return nil
		}
		return err
	}
	g.logger.Info("session started", "vocation", g.player.Vocation, "level", g.player.Level)

	tick := time.NewTicker(g.opts.TickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(g.opts.AutosaveInterval)
	defer autosave.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return g.finish(context.WithoutCancel(ctx))
		case ev, ok := <-g.events:
			if !ok {
				return g.finish(ctx)
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
			case *tcell.EventKey:
				if g.handle(ctx, keyToAction(ev)) {
					return g.finish(ctx)
				}
			}
			g.draw()
		case <-tick.C:
			if g.step() {
				g.draw()
			}
		case <-autosave.C:
			if err := g.save(ctx); err != nil {
				g.logger.Warn("autosave", "error", err)
				continue
			}
			g.logger.Debug("autosave")
		}
	}
}

// load restores or creates the character and applies offline progress.
func (g *Game) load(ctx context.Context) error {
	now := g.nowMs()
	snap, err := g.store.Load(ctx, g.opts.Name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		voc := g.opts.Vocation
		if voc == "" {
			v, ok := g.selectVocation(ctx)
			if !ok {
				return errQuit
			}
			voc = v
		}
		g.player = assets.NewCharacter(g.opts.Name, voc, now)
		def, _ := assets.Vocation(voc)
		g.addLog(event.Entry(event.Info, now, "Welcome, %s the %s. Press m to choose your prey.", g.opts.Name, def.Name))
		g.logger.Info("character created", "vocation", voc)
	case err != nil:
		return fmt.Errorf("load %s: %w", g.opts.Name, err)
	default:
		p, rep := offline.Extrapolate(snap.Player, snap.Player.LastSaveTime, now, g.cat,
			offline.Options{CapHours: g.opts.OfflineCapHours})
		g.player = p
		if rep != nil {
			g.journal.OfflineHours = rep.SecondsOffline / 3600
			g.logger.Info("offline progress", "seconds", rep.SecondsOffline, "xp", rep.XPGained,
				"gold", rep.GoldGained, "died", rep.DeathReport != nil)
			g.renderer.DrawOfflineReport(rep)
			g.waitKey(ctx)
			g.summarize(rep, now)
		}
	}

	now = g.nowMs()
	g.sess = engine.NewSession(now)
	g.sess.MaxTicks = maxBatchTicks
	if g.player.Hunting() {
		g.target, g.count = g.player.Hunt.MonsterID, g.player.Hunt.Concurrent
	} else if order := g.cat.HuntOrder(); len(order) > 0 {
		g.target = order[0]
	}
	g.journal = store.SessionLog{
		Name:         g.player.Name,
		Vocation:     string(g.player.Vocation),
		StartedAt:    now,
		LevelStart:   g.player.Level,
		Kills:        make(map[string]int),
		OfflineHours: g.journal.OfflineHours,
	}
	return nil
}

// summarize puts the offline report into the session log.
func (g *Game) summarize(rep *offline.Report, now int64) {
	if rep.XPGained > 0 || rep.GoldGained > 0 {
		g.addLog(event.Entry(event.Gain, now, "While away you gained %.0f experience and %d gold.", rep.XPGained, rep.GoldGained))
	}
	if rep.StopReason != "" {
		g.addLog(event.Entry(event.Info, now, "%s", rep.StopReason))
	}
	if d := rep.DeathReport; d != nil {
		g.addLog(event.Entry(event.Danger, now, "You were killed by %s while away.", d.Killer))
	}
}

// step runs one driver callback and reports whether anything changed.
func (g *Game) step() bool {
	p, res := g.sess.Process(g.player, g.nowMs(), g.speed, g.cat, g.rng)
	if res.Ticks == 0 {
		return false
	}
	g.player = p
	for _, e := range res.Logs {
		g.addLog(e)
	}
	g.journal.XPGained += res.Stats.XPGained
	g.journal.GoldGained += res.Stats.GoldGained
	for _, k := range res.Kills {
		g.journal.Kills[k.Name] += k.Count
	}
	for _, tr := range res.Triggers {
		switch tr {
		case encounter.TriggerRareMob:
			g.notice = "A rare creature has appeared!"
		case encounter.TriggerBossKilled:
			g.logger.Info("boss killed", "boss", g.target)
		}
	}
	if res.Death != nil {
		g.journal.Deaths++
		g.notice = "You died. Press h to hunt again."
		g.logger.Info("player died", "level", g.player.Level, "xp_lost", res.Death.XPLost)
	}
	return true
}

// handle applies one action and reports whether the session should end.
func (g *Game) handle(ctx context.Context, a Action) bool {
	now := g.nowMs()
	g.notice = ""
	switch a {
	case ActionQuit:
		return true
	case ActionToggleHunt:
		if g.player.Hunting() {
			g.apply(g.sess.StopHunt(g.player, now))
		} else {
			g.apply(g.sess.StartHunt(g.player, g.cat, g.target, g.count, now))
		}
	case ActionMonsterMenu:
		if id, ok := g.selectMonster(ctx); ok {
			g.target = id
			g.apply(g.sess.StartHunt(g.player, g.cat, id, g.count, g.nowMs()))
		}
	case ActionMoreTargets, ActionFewerTargets:
		g.changeCount(a, now)
	case ActionTrain:
		if g.player.IsTraining() {
			g.apply(g.sess.StopTraining(g.player, now))
		} else if skill, ok := g.selectSkill(ctx); ok {
			g.apply(g.sess.StartTraining(g.player, skill, g.nowMs()))
		}
	case ActionSpeed:
		g.cycleSpeed()
	case ActionPause:
		if g.sess.Paused {
			g.sess.Resume(now)
			g.notice = "Resumed."
		} else {
			g.step()
			g.sess.Pause(g.nowMs())
			g.notice = "Paused."
		}
	case ActionBuyHealth:
		g.apply(actions.Buy(g.player, g.cat, potionOf(g.player.Settings.HealthPotion, "health_potion"), potionBatch, now))
	case ActionBuyMana:
		g.apply(actions.Buy(g.player, g.cat, potionOf(g.player.Settings.ManaPotion, "mana_potion"), potionBatch, now))
	case ActionSellLoot:
		g.sellLoot(now)
	case ActionDeposit:
		g.apply(actions.Deposit(g.player, 0, now))
	}
	return false
}

// apply takes the result of a soft-fail action.
func (g *Game) apply(p player.State, e event.LogEntry) {
	g.player = p
	g.addLog(e)
}

func (g *Game) changeCount(a Action, now int64) {
	n := g.count + 1
	if a == ActionFewerTargets {
		n = g.count - 1
	}
	n = min(max(n, 1), engine.MaxConcurrent)
	if n == g.count {
		return
	}
	g.count = n
	g.notice = fmt.Sprintf("Hunting %d at once.", n)
	if !g.player.Hunting() {
		return
	}
	if m, ok := g.cat.Monster(g.player.Hunt.MonsterID); ok && !m.Boss {
		g.apply(g.sess.StartHunt(g.player, g.cat, m.ID, n, now))
	}
}

// cycleSpeed moves to the next speed step. Ticks owed at the old speed are
// processed first so a speed change never rescales past time.
func (g *Game) cycleSpeed() {
	g.step()
	next := speedSteps[0]
	for _, s := range speedSteps {
		if s > g.speed {
			next = s
			break
		}
	}
	g.speed = next
	g.notice = fmt.Sprintf("Game speed x%.0f.", next)
}

func (g *Game) addLog(e event.LogEntry) {
	g.logs = append(g.logs, e)
	if n := len(g.logs) - maxLogs; n > 0 {
		g.logs = append(g.logs[:0:0], g.logs[n:]...)
	}
}

func (g *Game) draw() {
	g.renderer.DrawStatus(render.View{
		Player:    &g.player,
		Encounter: g.sess.Encounter,
		Logs:      g.logs,
		Speed:     g.speed,
		Paused:    g.sess.Paused,
		Notice:    g.notice,
		Now:       g.nowMs(),
	})
}

// save writes the snapshot and moves the offline reference to now.
func (g *Game) save(ctx context.Context) error {
	now := g.nowMs()
	g.player.LastSaveTime = now
	return g.store.Save(ctx, g.opts.Name, store.Snapshot{Player: g.player, SavedAt: now})
}

// finish saves the character and appends the session journal. The journal
// is best-effort.
func (g *Game) finish(ctx context.Context) error {
	g.step()
	if err := g.save(ctx); err != nil {
		return fmt.Errorf("save %s: %w", g.opts.Name, err)
	}
	g.journal.EndedAt = g.nowMs()
	g.journal.LevelEnd = g.player.Level
	if err := g.store.AppendSession(ctx, g.journal); err != nil {
		g.logger.Warn("session journal", "error", err)
	}
	g.logger.Info("session ended", "level", g.player.Level, "xp", g.journal.XPGained,
		"gold", g.journal.GoldGained, "deaths", g.journal.Deaths)
	return nil
}
