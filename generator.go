package seedpaint

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/tanema/gween/ease"
)

// State is the lifecycle state of a Generator.
type State int32

const (
	StateUninitialized State = iota // created, Initialize not yet completed
	StateReady                      // Generate and Destroy are allowed
	StateGenerating                 // a generation is in progress
	StateDestroyed                  // terminal
	stateBusy                       // Initialize or Destroy in progress
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateGenerating:
		return "generating"
	case StateDestroyed:
		return "destroyed"
	case stateBusy:
		return "busy"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Sketch is an author-supplied generator: a parameter declaration plus a Draw
// function that turns a reseeded RNG into drawing calls.
//
// Draw must take every random value from Frame (never from math/rand or the
// clock) and must issue its draws in an order that depends only on the
// settings, so that a seed always reproduces the same image.
type Sketch interface {
	// Name identifies the sketch in registries and export file names.
	Name() string
	// Params declares the sketch's settings. It must include the seed
	// parameter named by GeneratorConfig.SeedParam.
	Params() []Param
	// Background is the color the surface is cleared to before Draw.
	Background() Color
	// Draw renders one image into f.Surface.
	Draw(f *Frame) error
}

// Initializer is implemented by sketches that need one-time setup against
// their surface.
type Initializer interface {
	Initialize(s Surface) error
}

// Destroyer is implemented by sketches that hold resources to release.
type Destroyer interface {
	Destroy() error
}

// EventSink is the interface for optional host integration. When set in
// GeneratorConfig, every finished generation is forwarded to it.
type EventSink interface {
	EmitGeneration(event GenerationEvent)
}

// GenerationEvent reports one finished generation. Err is nil on success, in
// which case Result is complete; on failure Result is zero.
type GenerationEvent struct {
	Sketch   string
	Result   Result
	Settings []Param
	Err      error
}

// Frame is what a Sketch sees during one generation. The draw helpers latch
// the first error: once a draw fails every later helper returns zero without
// touching the stream, and Err reports the failure.
type Frame struct {
	RNG      *RNG
	Surface  Surface
	Settings *Schema
	// Width and Height are the surface size as floats.
	Width, Height float64

	err error
}

// Err returns the first error raised by a Frame helper.
func (f *Frame) Err() error {
	return f.err
}

// Float draws from RNG.Float.
func (f *Frame) Float(min, max float64) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.RNG.Float(min, max)
	f.err = err
	return v
}

// Between draws from RNG.Float over r.
func (f *Frame) Between(r Range) float64 {
	return f.Float(r.Min, r.Max)
}

// Int draws from RNG.Int.
func (f *Frame) Int(min, max int) int {
	if f.err != nil {
		return 0
	}
	v, err := f.RNG.Int(min, max)
	f.err = err
	return v
}

// Bool draws from RNG.Bool.
func (f *Frame) Bool(p float64) bool {
	if f.err != nil {
		return false
	}
	v, err := f.RNG.Bool(p)
	f.err = err
	return v
}

// Eased draws from RNG.FloatEased.
func (f *Frame) Eased(min, max float64, fn ease.TweenFunc) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.RNG.FloatEased(min, max, fn)
	f.err = err
	return v
}

// Param reads a setting.
func (f *Frame) Param(name string) float64 {
	if f.err != nil {
		return 0
	}
	v, err := f.Settings.Get(name)
	f.err = err
	return v
}

// IntParam reads a setting as an int.
func (f *Frame) IntParam(name string) int {
	if f.err != nil {
		return 0
	}
	v, err := f.Settings.Int(name)
	f.err = err
	return v
}

// Result describes a completed generation.
type Result struct {
	Sketch string
	// Seed is the canonical seed the RNG was reseeded with.
	Seed uint64
	// Draws is the number of RNG steps the generation consumed.
	Draws int
	// Strokes and Fills count the primitives emitted, including the
	// background fill.
	Strokes int
	Fills   int
	// Digest is the surface digest when the surface is a Digester, else 0.
	Digest uint64
}

// GeneratorConfig configures a Generator. The zero value is usable.
type GeneratorConfig struct {
	// SeedParam names the setting read as the seed. Default "seed".
	SeedParam string
	// RNG is the stream to reseed on every generation. When nil the generator
	// owns a fresh one. Never share one RNG between generators that may run
	// concurrently.
	RNG *RNG
	// Debug logs per-generation timings to stderr and panics when settings
	// are written during a generation.
	Debug bool
	// Events receives a GenerationEvent after every generation, from the
	// goroutine that ran it.
	Events EventSink
}

// Generator drives a Sketch through its lifecycle:
//
//	Uninitialized --Initialize--> Ready --Generate--> Ready --Destroy--> Destroyed
//
// Each Generate reseeds the RNG from the seed setting, clears the surface to
// the sketch background, and lets the sketch draw. Calls made in the wrong
// state, including a Generate that overlaps another, fail with ErrLifecycle.
type Generator struct {
	sketch    Sketch
	surface   Surface
	schema    *Schema
	rng       *RNG
	seedParam string
	events    EventSink
	debug     bool
	state     atomic.Int32
}

// NewGenerator declares the sketch's settings at their defaults and binds it
// to surface.
func NewGenerator(sk Sketch, surface Surface, cfg GeneratorConfig) (*Generator, error) {
	if cfg.SeedParam == "" {
		cfg.SeedParam = "seed"
	}
	schema, err := NewSchema(sk.Params()...)
	if err != nil {
		return nil, fmt.Errorf("sketch %s: %w", sk.Name(), err)
	}
	if _, ok := schema.Lookup(cfg.SeedParam); !ok {
		return nil, fmt.Errorf("sketch %s: seed parameter %q not declared: %w", sk.Name(), cfg.SeedParam, ErrBadDeclaration)
	}
	rng := cfg.RNG
	if rng == nil {
		rng = NewRNG(0)
	}
	return &Generator{
		sketch:    sk,
		surface:   surface,
		schema:    schema,
		rng:       rng,
		seedParam: cfg.SeedParam,
		events:    cfg.Events,
		debug:     cfg.Debug,
	}, nil
}

// Settings returns the generator's live settings. Hosts edit them between
// generations; writes during a generation are a programming error.
func (g *Generator) Settings() *Schema { return g.schema }

// Sketch returns the bound sketch.
func (g *Generator) Sketch() Sketch { return g.sketch }

// Surface returns the bound surface.
func (g *Generator) Surface() Surface { return g.surface }

// State returns the current lifecycle state.
func (g *Generator) State() State {
	return State(g.state.Load())
}

// transition moves from one state to another or fails with ErrLifecycle.
func (g *Generator) transition(op string, from, to State) error {
	if !g.state.CompareAndSwap(int32(from), int32(to)) {
		return fmt.Errorf("%s in state %s: %w", op, g.State(), ErrLifecycle)
	}
	return nil
}

// Initialize performs one-time setup and makes the generator Ready. A failed
// Initialize leaves the generator Uninitialized.
func (g *Generator) Initialize() error {
	if err := g.transition("initialize", StateUninitialized, stateBusy); err != nil {
		return err
	}
	if in, ok := g.sketch.(Initializer); ok {
		if err := in.Initialize(g.surface); err != nil {
			g.state.Store(int32(StateUninitialized))
			return fmt.Errorf("initialize %s: %w", g.sketch.Name(), err)
		}
	}
	g.state.Store(int32(StateReady))
	return nil
}

// Generate renders one image and returns when every primitive has been
// emitted. Any error is fatal to the call: the surface content must not be
// treated as a valid image, and the generator returns to Ready.
func (g *Generator) Generate() (Result, error) {
	if err := g.transition("generate", StateReady, StateGenerating); err != nil {
		return Result{}, err
	}
	defer g.state.Store(int32(StateReady))
	return g.run()
}

// Start is the completion-callback form of Generate. The generation runs on
// its own goroutine and done is called exactly once, after every primitive
// has been emitted, with the generator already back in Ready. Until then any
// other lifecycle call fails with ErrLifecycle. The error return reports only
// a Start made in the wrong state, in which case done is never called.
func (g *Generator) Start(done func(Result, error)) error {
	if err := g.transition("generate", StateReady, StateGenerating); err != nil {
		return err
	}
	go func() {
		res, err := g.run()
		g.state.Store(int32(StateReady))
		done(res, err)
	}()
	return nil
}

func (g *Generator) run() (Result, error) {
	res, err := g.draw()
	if g.events != nil {
		g.events.EmitGeneration(GenerationEvent{
			Sketch:   g.sketch.Name(),
			Result:   res,
			Settings: g.schema.Params(),
			Err:      err,
		})
	}
	return res, err
}

func (g *Generator) draw() (Result, error) {
	name := g.sketch.Name()

	seed, err := g.schema.Get(g.seedParam)
	if err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", name, err)
	}
	g.rng.Reseed(seed)

	var (
		t0     time.Time
		stats  debugStats
		before []Param
	)
	if g.debug {
		t0 = time.Now()
		before = g.schema.Params()
	}

	// Nothing from an earlier generation may survive into this one: pixels,
	// style, and path all start from the Reset state.
	g.surface.Reset()
	digester, _ := g.surface.(Digester)
	counted := &countingSurface{Surface: g.surface}
	bounds := surfaceRect(g.surface)
	counted.SetGlobalAlpha(1)
	counted.SetFillColor(g.sketch.Background())
	counted.FillRect(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if g.debug {
		stats.clearTime = time.Since(t0)
		t0 = time.Now()
	}

	f := &Frame{
		RNG:      g.rng,
		Surface:  counted,
		Settings: g.schema,
		Width:    bounds.Width,
		Height:   bounds.Height,
	}
	err = g.sketch.Draw(f)
	if err == nil {
		err = f.Err()
	}
	if g.debug {
		stats.drawTime = time.Since(t0)
		debugCheckSettings(name, before, g.schema.Params())
	}
	if err != nil {
		return Result{}, fmt.Errorf("generate %s: %w", name, err)
	}

	res := Result{
		Sketch:  name,
		Seed:    g.rng.Seed(),
		Draws:   g.rng.Draws(),
		Strokes: counted.strokes,
		Fills:   counted.fills,
	}
	if digester != nil {
		res.Digest = digester.Digest()
	}
	if g.debug {
		stats.seed, stats.draws = res.Seed, res.Draws
		stats.strokes, stats.fills = res.Strokes, res.Fills
		g.debugLog(stats)
	}
	return res, nil
}

// Destroy releases the sketch's resources. The generator is Destroyed
// afterwards even when the sketch reports an error.
func (g *Generator) Destroy() error {
	if err := g.transition("destroy", StateReady, stateBusy); err != nil {
		return err
	}
	defer g.state.Store(int32(StateDestroyed))
	if d, ok := g.sketch.(Destroyer); ok {
		if err := d.Destroy(); err != nil {
			return fmt.Errorf("destroy %s: %w", g.sketch.Name(), err)
		}
	}
	return nil
}

// countingSurface counts the primitives a generation emits.
type countingSurface struct {
	Surface
	strokes, fills int
}

func (c *countingSurface) Stroke() {
	c.strokes++
	c.Surface.Stroke()
}

func (c *countingSurface) FillRect(x, y, w, h float64) {
	c.fills++
	c.Surface.FillRect(x, y, w, h)
}
