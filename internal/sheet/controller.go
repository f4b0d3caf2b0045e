package sheet

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/zjrosen/sheets/internal/log"
	"github.com/zjrosen/sheets/internal/pubsub"
)

const (
	DefaultDuration  = 250 * time.Millisecond
	DefaultFrameRate = 60
)

// Config controls the expand/collapse animation.
type Config struct {
	// Duration of a full collapse-to-expand sweep. Zero settles on the first frame.
	Duration time.Duration
	// FrameRate is the number of animation frames per second.
	FrameRate int
}

// DefaultConfig returns the default animation settings.
func DefaultConfig() Config {
	return Config{
		Duration:  DefaultDuration,
		FrameRate: DefaultFrameRate,
	}
}

func (c Config) interval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}

// step is the progress advanced per frame.
func (c Config) step() float64 {
	if c.Duration <= 0 {
		return 1
	}
	s := float64(c.interval()) / float64(c.Duration)
	if s > 1 {
		return 1
	}
	return s
}

// FrameMsg advances an in-flight animation by one frame. Frames addressed to
// another controller, or issued before the latest retarget, are ignored.
type FrameMsg struct {
	ID  string
	Seq int
}

// StateEvent is published whenever the controller retargets, settles or is
// written by the host.
type StateEvent struct {
	Visibility   Visibility
	Screen       Screen
	TransitionID string
}

// Kind returns the kind of the screen carried by the event.
func (e StateEvent) Kind() Kind {
	return KindOf(e.Screen)
}

// Controller owns the sheet visibility and the screen selection.
// It has value semantics like any Bubble Tea component: every operation
// returns the updated Controller along with a command to run.
type Controller struct {
	id         string
	cfg        Config
	selector   Selector
	visibility Visibility
	progress   float64
	seq        int
	transition string
	events     *pubsub.Broker[StateEvent]
}

// New creates a collapsed controller with no screen selected.
func New(cfg Config) Controller {
	return Controller{
		id:     uuid.NewString(),
		cfg:    cfg,
		events: pubsub.NewBroker[StateEvent](),
	}
}

// ID identifies this controller in FrameMsg.
func (c Controller) ID() string { return c.id }

// Events returns the broker state changes are published on.
func (c Controller) Events() *pubsub.Broker[StateEvent] { return c.events }

// Dispose closes the event broker. The controller must not be used afterwards.
func (c Controller) Dispose() {
	if c.events != nil {
		c.events.Close()
	}
}

// SetConfig replaces the animation settings. An in-flight animation picks up
// the new step on its next frame.
func (c Controller) SetConfig(cfg Config) Controller {
	c.cfg = cfg
	return c
}

// Open selects screen and starts expanding the sheet. The returned command
// delivers the first animation frame; the caller never waits for it.
func (c Controller) Open(screen Screen) (Controller, tea.Cmd) {
	c.selector.Select(screen)
	log.Debug(log.CatSheet, "open requested", "screen", KindOf(screen), "visibility", c.visibility)

	if c.visibility == Expanded {
		// Content swap only, the sheet is already up.
		c.publish(pubsub.SettledEvent)
		return c, nil
	}
	return c.retarget(Expanding)
}

// Close starts collapsing the sheet. Closing a collapsed sheet is a no-op.
func (c Controller) Close() (Controller, tea.Cmd) {
	if c.visibility == Collapsed {
		return c.Observe(), nil
	}
	log.Debug(log.CatSheet, "close requested", "visibility", c.visibility, "progress", c.progress)
	return c.retarget(Collapsing)
}

// SetVisibility writes v directly, as a host gesture (tap outside, drag down)
// would. Any in-flight animation is cancelled. The write is itself an
// observation: a Collapsed write clears the selection, so re-expanding
// afterwards shows no screen.
func (c Controller) SetVisibility(v Visibility) (Controller, tea.Cmd) {
	log.Debug(log.CatSheet, "visibility written", "from", c.visibility, "to", v)
	c = c.Observe()

	switch v {
	case Collapsed:
		c.progress = 0
	case Expanded:
		c.progress = 1
	case Expanding, Collapsing:
		return c.retarget(v)
	}

	c.seq++
	c.visibility = v
	c = c.Observe()

	if v == Collapsed {
		c.publish(pubsub.DismissedEvent)
	} else {
		c.publish(pubsub.WrittenEvent)
	}
	return c, nil
}

// Observe applies the collapse rule: a collapsed sheet has no selection.
// It is level-triggered and safe to call on every update.
func (c Controller) Observe() Controller {
	if c.visibility == Collapsed && c.selector.Current() != nil {
		log.Debug(log.CatSheet, "clearing selection on collapse", "screen", KindOf(c.selector.Current()))
		c.selector.Clear()
	}
	return c
}

// Update advances the animation on FrameMsg and applies the collapse rule on
// every message.
func (c Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {
	c = c.Observe()

	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != c.id {
		return c, nil
	}
	if frame.Seq != c.seq || c.visibility.Settled() {
		// Superseded by a later request.
		return c, nil
	}

	switch c.visibility {
	case Expanding:
		c.progress += c.cfg.step()
		if c.progress >= 1 {
			c.progress = 1
			return c.settle(Expanded), nil
		}
	case Collapsing:
		c.progress -= c.cfg.step()
		if c.progress <= 0 {
			c.progress = 0
			return c.settle(Collapsed), nil
		}
	}
	return c, c.tick()
}

// CurrentVariant returns the screen to render, nil when none. A collapsed
// sheet always reads as none, however it got there.
func (c Controller) CurrentVariant() Screen {
	if c.visibility == Collapsed {
		return nil
	}
	return c.selector.Current()
}

// Selector returns the raw selection cell without applying the collapse rule.
func (c Controller) Selector() Selector { return c.selector }

// IsExpanded reports whether the sheet has settled fully open.
func (c Controller) IsExpanded() bool { return c.visibility == Expanded }

// Visible reports whether any part of the sheet should be drawn.
func (c Controller) Visible() bool { return c.visibility != Collapsed }

// Visibility returns the current visibility state.
func (c Controller) Visibility() Visibility { return c.visibility }

// Progress returns how far open the sheet is, from 0 to 1.
func (c Controller) Progress() float64 { return c.progress }

// TransitionID identifies the most recent open/close request.
func (c Controller) TransitionID() string { return c.transition }

func (c Controller) retarget(v Visibility) (Controller, tea.Cmd) {
	c.seq++
	c.visibility = v
	c.transition = uuid.NewString()
	c.publish(pubsub.RetargetedEvent)
	return c, c.tick()
}

func (c Controller) settle(v Visibility) Controller {
	c.visibility = v
	c = c.Observe()
	log.Debug(log.CatSheet, "settled", "visibility", v, "screen", KindOf(c.selector.Current()), "transition", c.transition)
	c.publish(pubsub.SettledEvent)
	return c
}

func (c Controller) tick() tea.Cmd {
	frame := FrameMsg{ID: c.id, Seq: c.seq}
	if c.cfg.Duration <= 0 {
		return func() tea.Msg { return frame }
	}
	return tea.Tick(c.cfg.interval(), func(time.Time) tea.Msg {
		return frame
	})
}

func (c Controller) publish(eventType pubsub.EventType) {
	if c.events == nil {
		return
	}
	c.events.Publish(eventType, StateEvent{
		Visibility:   c.visibility,
		Screen:       c.CurrentVariant(),
		TransitionID: c.transition,
	})
}
