package page

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// Tooltip element and classes.
const (
	TooltipElementID = "copied"

	ClassHidden   = "hidden"
	ClassAbsolute = "absolute"
	ClassLifted   = "translate-y-[-30px]"
	ClassResting  = "translate-y-[0px]"

	// DefaultCopyDelay is how long the tooltip stays up.
	DefaultCopyDelay = 800 * time.Millisecond

	// tooltipRise is how far above the pointer the tooltip is centered.
	tooltipRise = 20
)

// PointerEvent carries the page coordinates of the click that triggered a copy.
type PointerEvent struct {
	PageX float64
	PageY float64
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteText(text string) error
}

// Scheduler runs fn once after d, never synchronously. It is never cancelled.
type Scheduler func(d time.Duration, fn func())

func afterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// CopyTooltipConfig contains the dependencies of CopyTooltip.
type CopyTooltipConfig struct {
	Document  Document
	Clipboard Clipboard

	// Delay defaults to DefaultCopyDelay.
	Delay time.Duration

	// Schedule defaults to time.AfterFunc.
	Schedule Scheduler

	Logger *slog.Logger
}

// CopyTooltip copies an element's text and pops a "copied" tooltip at the
// pointer. While the tooltip is up further copies are ignored.
//
// mu serializes Copy with its cleanup so they never interleave, the same as
// a page event loop would.
type CopyTooltip struct {
	doc       Document
	clipboard Clipboard
	delay     time.Duration
	schedule  Scheduler
	logger    *slog.Logger

	mu      sync.Mutex
	canCopy bool
	pending sync.WaitGroup
}

// NewCopyTooltip creates a tooltip with an open guard.
func NewCopyTooltip(cfg CopyTooltipConfig) *CopyTooltip {
	delay := cfg.Delay
	if delay <= 0 {
		delay = DefaultCopyDelay
	}

	schedule := cfg.Schedule
	if schedule == nil {
		schedule = afterFunc
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CopyTooltip{
		doc:       cfg.Document,
		clipboard: cfg.Clipboard,
		delay:     delay,
		schedule:  schedule,
		logger:    logger.With(slog.String("component", "page.CopyTooltip")),
		canCopy:   true,
	}
}

// CanCopy reports whether the guard is open.
func (t *CopyTooltip) CanCopy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.canCopy
}

// Copy writes the text of sourceID to the clipboard and shows the tooltip
// centered on ev. It is a no-op while a previous tooltip is still up.
//
// If the tooltip element is missing the guard stays closed. Any later
// failure (missing source, clipboard refusal) is returned after the cleanup
// has been scheduled, so the guard still reopens.
func (t *CopyTooltip) Copy(sourceID string, ev PointerEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.canCopy {
		t.logger.Debug("copy ignored, tooltip still showing", slog.String("source", sourceID))
		return nil
	}

	t.canCopy = false

	tip, err := lookup(t.doc, TooltipElementID)
	if err != nil {
		return err
	}

	source, sourceErr := lookup(t.doc, sourceID)

	tip.AddClass(ClassAbsolute)
	tip.RemoveClass(ClassHidden)

	tip.SetStyle("left", px(ev.PageX-tip.OffsetWidth()/2))
	tip.SetStyle("top", px((ev.PageY-tip.OffsetHeight()/2)-tooltipRise))
	tip.AddClass(ClassLifted)

	t.pending.Add(1)
	t.schedule(t.delay, func() { t.settle(tip) })

	if sourceErr != nil {
		return sourceErr
	}

	if err := t.clipboard.WriteText(source.Text()); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}

	return nil
}

// Wait blocks until every scheduled cleanup has run.
func (t *CopyTooltip) Wait() {
	t.pending.Wait()
}

func (t *CopyTooltip) settle(tip Element) {
	defer t.pending.Done()

	t.mu.Lock()
	defer t.mu.Unlock()

	tip.RemoveClass(ClassLifted)
	tip.AddClass(ClassResting)
	tip.RemoveClass(ClassResting)
	tip.RemoveClass(ClassAbsolute)
	tip.AddClass(ClassHidden)

	t.canCopy = true
}

// px renders v as a CSS pixel length without trailing zeros.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
