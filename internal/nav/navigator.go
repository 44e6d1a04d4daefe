package nav

import (
	"sync"

	"sevanear/internal/domain"
	"sevanear/internal/domain/types"
)

// ScreenFunc adapts a plain function to domain.Screen.
type ScreenFunc func(page domain.Page)

// Show calls the function.
func (f ScreenFunc) Show(page domain.Page) { f(page) }

// Navigator is the state machine over the fixed page set. It keeps the
// history stack and decides, on a back signal, whether to replay the
// previous page or hand control back to the host shell to exit.
//
// A mutex guards the stack because the terminal front-end runs fetch
// commands off the program loop. Screen callbacks run under the lock; keep
// them cheap.
type Navigator struct {
	mu     sync.Mutex
	screen domain.Screen
	stack  []domain.Page
}

// New returns a navigator showing the home page with a single-entry stack.
// A nil screen is replaced with a no-op sink.
func New(screen domain.Screen) *Navigator {
	if screen == nil {
		screen = ScreenFunc(func(domain.Page) {})
	}
	n := &Navigator{screen: screen, stack: []domain.Page{types.PageHome}}
	screen.Show(types.PageHome)
	return n
}

// Push shows page and appends it to the history stack. Forward navigation
// only; back replay goes through showDirect so cycles never build up.
func (n *Navigator) Push(page domain.Page) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, page)
	n.screen.Show(page)
}

// showDirect shows page without touching the stack.
func (n *Navigator) showDirect(page domain.Page) {
	n.screen.Show(page)
}

// Home clears the history and pushes home as the sole entry. Home is
// reachable from anywhere and must not accumulate a back-chain.
func (n *Navigator) Home() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = n.stack[:0]
	n.stack = append(n.stack, types.PageHome)
	n.screen.Show(types.PageHome)
}

// Back handles a hardware/gesture back signal. With more than one entry it
// pops the top, replays the new top, and reports true. With only home left
// it reports false, telling the host shell to exit the app; the stack is
// left unchanged.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	n.showDirect(n.stack[len(n.stack)-1])
	return true
}

// Current returns the page on top of the stack.
func (n *Navigator) Current() domain.Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the history stack size.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}
