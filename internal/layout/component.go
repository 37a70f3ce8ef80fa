// Package layout turns a Run, a Timer, and a Snapshot into an ordered
// sequence of renderer-agnostic state buffers (spec.md §4.7, §6). Every
// Component mutates an externally owned state struct in place so a
// renderer can reuse the same allocation frame after frame.
package layout

import (
	"github.com/splitcore/splitcore/internal/imagecache"
	"github.com/splitcore/splitcore/internal/run"
	"github.com/splitcore/splitcore/internal/snapshot"
	"github.com/splitcore/splitcore/internal/timefmt"
	"github.com/splitcore/splitcore/internal/timer"
	"github.com/splitcore/splitcore/internal/xtime"
)

// Context is everything a Component needs to compute its next state: the
// bound timer/run and a single atomic snapshot shared by the whole frame.
type Context struct {
	Timer    *timer.Timer
	Run      *run.Run
	Snapshot snapshot.Snapshot
	Accuracy timefmt.Accuracy
	Digits   timefmt.DigitsFormat
	Method   xtime.Method
}

// ComponentState is the marker interface every state-buffer struct
// implements, letting Layout.Update return a heterogeneous, positionally
// stable slice.
type ComponentState interface {
	isComponentState()
}

// Component is a single entry in a Layout. Update mutates state in place;
// state's concrete type must match the Component's own NewState().
type Component interface {
	NewState() ComponentState
	Update(state ComponentState, ctx *Context)
}

// ImageID is re-exported for state-buffer fields that carry an icon
// handle, so renderers only need to import layout.
type ImageID = imagecache.ID
