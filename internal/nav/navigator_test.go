package nav_test

import (
	"testing"

	"sevanear/internal/domain"
	"sevanear/internal/domain/types"
	"sevanear/internal/nav"
)

// fakeScreen records every page shown.
type fakeScreen struct {
	shown []domain.Page
}

func (f *fakeScreen) Show(p domain.Page) { f.shown = append(f.shown, p) }

func (f *fakeScreen) last(t *testing.T) domain.Page {
	t.Helper()
	if len(f.shown) == 0 {
		t.Fatal("nothing shown")
	}
	return f.shown[len(f.shown)-1]
}

func TestNavigator_InitialState(t *testing.T) {
	screen := &fakeScreen{}
	n := nav.New(screen)

	if got := n.Depth(); got != 1 {
		t.Fatalf("depth = %d, want 1", got)
	}
	if got := n.Current(); got != types.PageHome {
		t.Fatalf("current = %s, want home", got)
	}
	if got := screen.last(t); got != types.PageHome {
		t.Fatalf("shown = %s, want home", got)
	}
}

func TestNavigator_PushGrowsStackByOne(t *testing.T) {
	screen := &fakeScreen{}
	n := nav.New(screen)

	pages := []domain.Page{
		types.PageServiceList,
		types.PageServiceDetail,
		types.PageAddService,
	}
	for i, p := range pages {
		n.Push(p)
		if got := n.Depth(); got != i+2 {
			t.Fatalf("after %d pushes: depth = %d, want %d", i+1, got, i+2)
		}
		if got := n.Current(); got != p {
			t.Fatalf("current = %s, want %s", got, p)
		}
		if got := screen.last(t); got != p {
			t.Fatalf("shown = %s, want %s", got, p)
		}
	}
}

func TestNavigator_BackPopsAndReplays(t *testing.T) {
	screen := &fakeScreen{}
	n := nav.New(screen)
	n.Push(types.PageServiceList)
	n.Push(types.PageServiceDetail)

	if !n.Back() {
		t.Fatal("back with depth 3 not handled")
	}
	if got := n.Depth(); got != 2 {
		t.Fatalf("depth = %d, want 2", got)
	}
	if got := n.Current(); got != types.PageServiceList {
		t.Fatalf("current = %s, want %s", got, types.PageServiceList)
	}
	// The replay must not re-push: another back lands on home.
	if !n.Back() {
		t.Fatal("back with depth 2 not handled")
	}
	if got := n.Current(); got != types.PageHome {
		t.Fatalf("current = %s, want home", got)
	}
}

func TestNavigator_BackAtRootNotHandled(t *testing.T) {
	screen := &fakeScreen{}
	n := nav.New(screen)

	if n.Back() {
		t.Fatal("back on the root stack must report not handled")
	}
	if got := n.Depth(); got != 1 {
		t.Fatalf("depth changed to %d on unhandled back", got)
	}
	if got := n.Current(); got != types.PageHome {
		t.Fatalf("current = %s after unhandled back, want home", got)
	}
}

func TestNavigator_HomeResetsStack(t *testing.T) {
	screen := &fakeScreen{}
	n := nav.New(screen)
	n.Push(types.PageServiceList)
	n.Push(types.PageServiceDetail)
	n.Push(types.PageAddService)

	n.Home()

	if got := n.Depth(); got != 1 {
		t.Fatalf("depth after home = %d, want 1", got)
	}
	if got := n.Current(); got != types.PageHome {
		t.Fatalf("current = %s, want home", got)
	}
	if n.Back() {
		t.Fatal("back right after home must report not handled")
	}
}

func TestNavigator_NilScreen(t *testing.T) {
	n := nav.New(nil)
	n.Push(types.PageServiceList)
	if got := n.Current(); got != types.PageServiceList {
		t.Fatalf("current = %s, want %s", got, types.PageServiceList)
	}
}
