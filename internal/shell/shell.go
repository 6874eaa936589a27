// Package shell models a fully controlled detail overlay: a themed
// container with a title, optional subtitle and caller-supplied
// content. The caller owns the open/closed truth; the shell only
// resolves requests into render-ready views and reports dismissal
// gestures back through a callback.
package shell

import (
	"time"

	"skyglance/internal/theme"
)

// PresentationRequest describes one render of the shell. It is owned
// by the caller for the duration of a single render; the shell keeps
// nothing from it across calls.
type PresentationRequest struct {
	Open     bool
	Title    string
	Subtitle string
	Dark     bool
	Content  any
}

// Transition describes the cosmetic entrance motion for content that
// just became visible.
type Transition struct {
	Kind     string
	Duration time.Duration
}

var enterTransition = Transition{Kind: "fade-slide-up", Duration: 220 * time.Millisecond}

// View is the resolved state for one request. A non-visible view is
// the zero value.
type View struct {
	Visible    bool
	Title      string
	Subtitle   string
	Content    any
	Style      theme.Style
	Transition Transition
}

// Shell holds only the state-change callback, never visibility.
type Shell struct {
	onOpenChange func(bool)
}

// New creates a shell that reports requested open-state changes
// through onOpenChange. A nil callback is allowed; dismissal gestures
// are then dropped.
func New(onOpenChange func(bool)) *Shell {
	return &Shell{onOpenChange: onOpenChange}
}

// Render resolves a request into a view. Same request, same view: a
// closed request renders non-visible regardless of any prior gesture,
// and an open one carries the theme style and entrance transition.
func (s *Shell) Render(req PresentationRequest) View {
	if !req.Open {
		return View{}
	}
	return View{
		Visible:    true,
		Title:      req.Title,
		Subtitle:   req.Subtitle,
		Content:    req.Content,
		Style:      theme.ForDark(req.Dark),
		Transition: enterTransition,
	}
}

// Dismiss reports one user dismissal gesture against the given
// request. The callback fires with false exactly once per call, and
// only while the caller still reports the shell open; gestures against
// a closed shell do nothing.
func (s *Shell) Dismiss(req PresentationRequest) {
	if !req.Open || s.onOpenChange == nil {
		return
	}
	s.onOpenChange(false)
}
