package seedpaint

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title. Defaults to the sketch name.
	Title string
	// Width and Height are the canvas size in pixels. Default 640x480.
	Width, Height int
	// Settings, when set, is a JSON object applied with Schema.ApplyJSON
	// before the first generation.
	Settings []byte
	// ExportDir receives PNGs saved with the S key. Default "renders".
	ExportDir string
	// ShowHUD overlays the settings and the last result.
	ShowHUD bool
	// Debug logs generation timings to stderr.
	Debug bool
}

// Run opens a window that renders sk and lets the user walk its settings:
//
//	Tab        select the next setting
//	Up/Down    nudge the selected setting one step
//	Left/Right nudge the seed
//	R          reset every setting to its default
//	S          save the current render as PNG
//	H          toggle the HUD
//
// Run blocks until the window is closed.
func Run(sk Sketch, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.Title == "" {
		cfg.Title = sk.Name()
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "renders"
	}

	canvas := NewCanvas(cfg.Width, cfg.Height)
	defer canvas.Dispose()

	surface := Tee(canvas, NewRecorder(cfg.Width, cfg.Height))
	gen, err := NewGenerator(sk, surface, GeneratorConfig{Debug: cfg.Debug})
	if err != nil {
		return err
	}
	if len(cfg.Settings) > 0 {
		if err := gen.Settings().ApplyJSON(cfg.Settings); err != nil {
			return err
		}
	}
	if err := gen.Initialize(); err != nil {
		return err
	}

	v := &viewer{gen: gen, canvas: canvas, cfg: cfg, dirty: true, hud: cfg.ShowHUD}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	runErr := ebiten.RunGame(v)
	if err := gen.Destroy(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// viewer is the ebiten.Game behind Run.
type viewer struct {
	gen    *Generator
	canvas *Canvas
	cfg    RunConfig

	dirty    bool
	export   bool
	hud      bool
	selected int
	last     Result
	valid    bool // last is the render currently on the canvas
	status   string
}

func (v *viewer) Update() error {
	params := v.gen.Settings().Params()
	nudge := func(name string, delta int) {
		if err := v.gen.Settings().Nudge(name, delta); err != nil {
			v.status = err.Error()
			return
		}
		v.dirty = true
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.selected = (v.selected + 1) % len(params)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		nudge(params[v.selected].Name, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		nudge(params[v.selected].Name, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		nudge(v.gen.seedParam, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		nudge(v.gen.seedParam, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.gen.Settings().Reset()
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		v.export = true
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.hud = !v.hud
	}

	if v.dirty {
		v.dirty = false
		v.regenerate()
	}
	return nil
}

// regenerate renders the current settings. A failed generation leaves a
// partial canvas, which is marked invalid until a later one succeeds.
func (v *viewer) regenerate() {
	res, err := v.gen.Generate()
	if err != nil {
		log.Printf("seedpaint: %v", err)
		v.last = Result{}
		v.valid = false
		v.status = err.Error()
		return
	}
	v.last = res
	v.valid = true
	v.status = ""
}

// exportPath names the file the current render is saved to. It fails while
// the canvas does not hold a complete render.
func (v *viewer) exportPath() (string, error) {
	if !v.valid {
		return "", fmt.Errorf("no valid render to save; the last generate failed")
	}
	return filepath.Join(v.cfg.ExportDir, ExportName(v.last)), nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.canvas.Image(), nil)

	if v.export {
		v.export = false
		path, err := v.exportPath()
		if err == nil {
			err = WritePNG(path, v.canvas.Snapshot())
		}
		if err != nil {
			log.Printf("seedpaint: export: %v", err)
			v.status = err.Error()
		} else {
			v.status = "saved " + path
		}
	}

	if v.hud {
		ebitenutil.DebugPrint(screen, v.hudText())
	}
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.cfg.Width, v.cfg.Height
}

// hudText lists the settings with the selected one marked, then the last
// result and any status message.
func (v *viewer) hudText() string {
	var b strings.Builder
	for i, p := range v.gen.Settings().Params() {
		mark := "  "
		if i == v.selected {
			mark = "> "
		}
		fmt.Fprintf(&b, "%s%s = %g\n", mark, p.Name, p.Value)
	}
	fmt.Fprintf(&b, "strokes %d  draws %d  digest %s\n", v.last.Strokes, v.last.Draws, FormatDigest(v.last.Digest))
	if v.status != "" {
		b.WriteString(v.status)
	}
	return b.String()
}
