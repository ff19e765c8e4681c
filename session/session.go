// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gogpu/tracekit"
	"github.com/gogpu/tracekit/glyph"
	"github.com/gogpu/tracekit/ink"
	"github.com/gogpu/tracekit/score"
	"github.com/gogpu/tracekit/words"
)

// Config tunes a session.
type Config struct {
	Score score.Config
	// Debounce is the pause after a stroke before the auto-check runs.
	Debounce time.Duration
	// Style lays out the word in layout (CSS) pixels.
	Style glyph.Style
	// LineWidth is the crayon width in layout pixels.
	LineWidth float64
	// Brush is a palette name (see BrushNames) or a hex color.
	Brush string
}

// DefaultConfig returns density scoring, a 500ms debounce and the default
// lettering and crayon.
func DefaultConfig() Config {
	return Config{
		Score:     score.DefaultConfig(),
		Debounce:  500 * time.Millisecond,
		Style:     glyph.DefaultStyle(),
		LineWidth: 16,
		Brush:     DefaultBrushName,
	}
}

// Option configures a Session during creation.
type Option func(*options)

type options struct {
	scheduler Scheduler
	surface   *ink.Surface
	onResult  func(Result)
}

// WithScheduler replaces the wall-clock timer used for the auto-check.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithSurface uses an existing surface instead of creating one.
func WithSurface(s *ink.Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithResultHandler sets the function that receives auto-check results.
// It is called on the timer goroutine without the session lock held.
func WithResultHandler(fn func(Result)) Option {
	return func(o *options) {
		o.onResult = fn
	}
}

// Session is one tracing game.
type Session struct {
	mu sync.Mutex

	cfg      Config
	lib      *words.Library
	entries  []words.Entry
	index    int
	surface  *ink.Surface
	strategy score.Strategy

	sched    Scheduler
	onResult func(Result)
	timer    Timer
	gen      uint64 // bumped on every schedule or cancel; stale timers compare unequal

	// Placement of the active word, in layout pixels. At most one is set.
	anchor    *tracekit.Point
	rects     []tracekit.Rect
	target    *score.Target
	targetGen uint64 // surface epoch the target was built at

	brushColor string
	eraser     bool
	lineWidth  float64
}

// New creates a session over the words in lib, starting at the first word.
func New(ctx context.Context, lib *words.Library, cfg Config, opts ...Option) (*Session, error) {
	o := options{scheduler: realScheduler{}}
	for _, opt := range opts {
		opt(&o)
	}
	if lib == nil {
		lib = words.NewLibrary(nil)
	}
	strategy, err := score.New(cfg.Score)
	if err != nil {
		return nil, err
	}
	if !(cfg.LineWidth > 0) {
		return nil, fmt.Errorf("session: line width %g must be positive", cfg.LineWidth)
	}
	if cfg.Brush == "" {
		cfg.Brush = DefaultBrushName
	}
	if _, err := brushColor(cfg.Brush); err != nil {
		return nil, err
	}
	entries, err := lib.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("session: load words: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("session: no words: %w", tracekit.ErrEmptyTarget)
	}

	s := &Session{
		cfg:        cfg,
		lib:        lib,
		entries:    entries,
		surface:    o.surface,
		strategy:   strategy,
		sched:      o.scheduler,
		onResult:   o.onResult,
		brushColor: cfg.Brush,
		lineWidth:  cfg.LineWidth,
	}
	if s.surface == nil {
		s.surface = ink.NewSurface()
	}
	s.applyBrush()
	return s, nil
}

// Surface returns the ink surface, e.g. for presenting the ink. Do not draw
// on it directly while the session is in use.
func (s *Session) Surface() *ink.Surface {
	return s.surface
}

// Resize resizes the surface. The ink is cleared and the pending check is
// cancelled. The current target goes stale: the next Check reports
// StatusDimensionMismatch unless the word is placed again first.
func (s *Session) Resize(cssWidth, cssHeight, dpr float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	return s.surface.Resize(cssWidth, cssHeight, dpr)
}

// Place lays out the active word with the configured style, anchored at a
// point in layout pixels. The anchor is kept for later words and resizes.
func (s *Session) Place(anchor tracekit.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = &anchor
	s.rects = nil
	return s.rebuild()
}

// SetGlyphRects places the active word by per-glyph boxes measured by the
// UI, in layout pixels. The boxes apply to the current word only.
func (s *Session) SetGlyphRects(rects []tracekit.Rect) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchor = nil
	s.rects = make([]tracekit.Rect, len(rects))
	copy(s.rects, rects)
	return s.rebuild()
}

// SetStyle changes the lettering, e.g. after a font change, and lays the
// word out again.
func (s *Session) SetStyle(st glyph.Style) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Style = st
	if s.anchor == nil && s.rects == nil {
		return nil
	}
	return s.rebuild()
}

// Style returns the current lettering.
func (s *Session) Style() glyph.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Style
}

// HandlePointer routes one pointer event to the surface. Pointer-down
// cancels a pending check; the end of a stroke schedules a new one.
func (s *Session) HandlePointer(ev ink.PointerEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ev.Kind == ink.PointerDown {
		s.cancel()
	}
	if s.surface.HandlePointer(ev) {
		s.schedule()
	}
}

// Check scores the ink now. It never fails; see Result.Status.
func (s *Session) Check() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	return s.check()
}

// Clear erases the ink and cancels the pending check.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.surface.Clear()
}

// Next moves to the following word, wrapping around.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jump((s.index + 1) % len(s.entries))
}

// Prev moves to the preceding word, wrapping around.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jump((s.index - 1 + len(s.entries)) % len(s.entries))
}

// Jump moves to word i.
func (s *Session) Jump(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("session: word %d out of range [0, %d)", i, len(s.entries))
	}
	s.jump(i)
	return nil
}

// Word returns the active word.
func (s *Session) Word() words.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.index]
}

// Index returns the position of the active word.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Len returns the number of words.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// AddWord adds a custom word to the library and makes it active.
func (s *Session) AddWord(ctx context.Context, text, imageURL string) (words.Entry, error) {
	e, err := s.lib.Add(ctx, text, imageURL)
	if err != nil {
		return words.Entry{}, err
	}
	entries, err := s.lib.Entries(ctx)
	if err != nil {
		return words.Entry{}, fmt.Errorf("session: reload words: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	i := len(entries) - 1
	for j := range entries {
		if entries[j].ID == e.ID {
			i = j
		}
	}
	s.jump(i)
	return e, nil
}

// SetBrush selects a crayon by palette name or hex color and leaves
// eraser mode.
func (s *Session) SetBrush(name string) error {
	if _, err := brushColor(name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brushColor = name
	s.eraser = false
	s.applyBrush()
	return nil
}

// SetEraser switches pointer strokes between drawing and erasing.
func (s *Session) SetEraser(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eraser = on
	s.applyBrush()
}

// SetLineWidth sets the crayon width in layout pixels.
func (s *Session) SetLineWidth(w float64) error {
	if !(w > 0) {
		return fmt.Errorf("session: line width %g must be positive", w)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineWidth = w
	s.applyBrush()
	return nil
}

func (s *Session) applyBrush() {
	col, _ := brushColor(s.brushColor)
	mode := ink.Draw
	if s.eraser {
		mode = ink.Erase
	}
	s.surface.SetBrush(ink.Brush{Color: col, Width: s.lineWidth, Mode: mode})
}

// jump activates word i: ink is cleared, the pending check cancelled and
// the target laid out again. UI-measured boxes belong to the old word and
// are dropped.
func (s *Session) jump(i int) {
	s.cancel()
	s.surface.Clear()
	s.index = i
	s.rects = nil
	if err := s.rebuild(); err != nil && !errors.Is(err, tracekit.ErrNotReady) {
		tracekit.Logger().Warn("session: layout failed", "word", s.entries[i].Text, "err", err)
	}
}

// rebuild lays out the target for the active word at the current surface
// size. On failure the target is dropped.
func (s *Session) rebuild() error {
	s.target = nil
	t, err := s.layout()
	if err != nil {
		return err
	}
	s.target = t
	s.targetGen = s.surface.Epoch()
	return nil
}

func (s *Session) layout() (*score.Target, error) {
	vp := s.surface.Viewport()
	if !vp.Valid() {
		return nil, fmt.Errorf("session: surface not sized: %w", tracekit.ErrNotReady)
	}
	text := s.entries[s.index].Text
	st := s.cfg.Style.Scaled(vp.ScaleX())

	t := &score.Target{Size: vp.Size(), Text: text}
	switch {
	case s.anchor != nil:
		line, err := glyph.Layout(text, st, vp.PointToRaster(*s.anchor))
		if err != nil {
			return nil, err
		}
		t.Regions = line.Boxes()
		t.Mask = line.RenderMask(vp.Width, vp.Height)

	case s.rects != nil:
		if len(s.rects) == 0 {
			return nil, fmt.Errorf("session: no glyph boxes for %q: %w", text, tracekit.ErrEmptyTarget)
		}
		var union image.Rectangle
		for _, r := range s.rects {
			box := vp.RectToRaster(r)
			t.Regions = append(t.Regions, box)
			union = union.Union(box)
		}
		// The mask is laid out centered in the measured boxes.
		st.Align, st.Baseline = glyph.AlignCenter, glyph.BaselineMiddle
		c := tracekit.Pt(float64(union.Min.X+union.Max.X)/2, float64(union.Min.Y+union.Max.Y)/2)
		line, err := glyph.Layout(text, st, c)
		if err != nil {
			return nil, err
		}
		t.Mask = line.RenderMask(vp.Width, vp.Height)

	default:
		return nil, fmt.Errorf("session: word not placed: %w", tracekit.ErrNotReady)
	}
	return t, nil
}

func (s *Session) check() Result {
	res := Result{Word: s.entries[s.index]}
	snap, err := s.surface.Snapshot()
	if err != nil {
		res.Status = StatusNotReady
		return res
	}
	if s.target == nil {
		if err := s.rebuild(); err != nil {
			res.Status = statusOf(err)
			return res
		}
	}
	if s.targetGen != snap.Epoch() {
		tracekit.Logger().Info("session: surface resized since layout, resetting target",
			"word", res.Word.Text, "target_epoch", s.targetGen, "surface_epoch", snap.Epoch(),
			"strokes", snap.Strokes())
		err := s.rebuild()
		if snap.Strokes() == 0 {
			// Ink drawn for the old layout was discarded by the resize.
			res.Status = StatusDimensionMismatch
			return res
		}
		if err != nil {
			res.Status = statusOf(err)
			return res
		}
	}

	r, err := s.strategy.Score(snap, s.target)
	if err != nil {
		res.Status = statusOf(err)
		if res.Status == StatusDimensionMismatch {
			_ = s.rebuild()
		}
		return res
	}
	res.Status = StatusScored
	res.Score = r.Score
	res.Complete = r.Complete()
	res.Regions = r.Regions
	return res
}

// schedule (re)starts the debounce timer.
func (s *Session) schedule() {
	s.cancel()
	gen := s.gen
	s.timer = s.sched.AfterFunc(s.cfg.Debounce, func() { s.fire(gen) })
}

// cancel stops the pending check, if any.
func (s *Session) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		// Cancelled after the timer had already fired.
		s.mu.Unlock()
		return
	}
	s.timer = nil
	res := s.check()
	fn := s.onResult
	s.mu.Unlock()

	tracekit.Logger().Debug("session: auto-check", "word", res.Word.Text, "status", res.Status, "score", res.Score)
	if fn != nil {
		fn(res)
	}
}
