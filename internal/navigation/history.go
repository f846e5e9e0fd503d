// Package navigation records previously visited views so "back" can retrace
// them. Views are identified by an explicit enum tagged with the parameters
// the view needs (the course id for the detail view), not by display text.
package navigation

// View identifies a screen of the application.
type View int

const (
	ViewLogin View = iota
	ViewHome
	ViewSearch
	ViewBrowse
	ViewCourseDetail
	ViewMyReviews
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewHome:
		return "home"
	case ViewSearch:
		return "search"
	case ViewBrowse:
		return "browse"
	case ViewCourseDetail:
		return "course-detail"
	case ViewMyReviews:
		return "my-reviews"
	default:
		return "unknown"
	}
}

// Entry is one recorded view. CourseID is only meaningful for
// ViewCourseDetail, where it names the course the view was showing.
type Entry struct {
	View     View
	CourseID int64
}

// History is a LIFO record of prior views. Login is always the root: entering
// it empties the stack. There is no forward/redo. Like the session, the
// history belongs to the single presentation goroutine and is not safe for
// concurrent use.
type History struct {
	stack   []Entry
	current Entry
}

// New returns a history sitting on the login view with an empty stack.
func New() *History {
	return &History{current: Entry{View: ViewLogin}}
}

// Current is the view the application is showing now.
func (h *History) Current() Entry {
	return h.current
}

// Depth reports how many views "back" can retrace.
func (h *History) Depth() int {
	return len(h.stack)
}

// Visit transitions to the given view, recording the prior view so Back can
// return to it. Entering login clears the whole stack; entering home directly
// from login also clears it, since home is the post-login root.
func (h *History) Visit(entry Entry) {
	switch {
	case entry.View == ViewLogin:
		h.stack = nil
	case entry.View == ViewHome && h.current.View == ViewLogin:
		h.stack = nil
	default:
		h.stack = append(h.stack, h.current)
	}
	h.current = entry
}

// Back pops the most recent view and re-enters it. On an empty stack it falls
// back to home rather than failing.
func (h *History) Back() Entry {
	if len(h.stack) == 0 {
		h.current = Entry{View: ViewHome}
		return h.current
	}
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	if top.View < ViewLogin || top.View > ViewMyReviews {
		// Unreadable descriptor: non-fatal, land on home.
		top = Entry{View: ViewHome}
	}
	h.current = top
	return top
}
