package memo_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"handsfree/internal/memo"
)

func TestCellBuildsOnce(t *testing.T) {
	var cell memo.Cell[int]
	var calls int
	build := func() int {
		calls++
		return 42
	}

	if cell.Ready() {
		t.Fatal("expected empty cell before first Get")
	}
	if got := cell.Get(build); got != 42 {
		t.Fatalf("unexpected value: %d", got)
	}
	if got := cell.Get(func() int { return 7 }); got != 42 {
		t.Fatalf("expected stored value on second Get, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected one build, got %d", calls)
	}
	if !cell.Ready() {
		t.Fatal("expected cell to report ready")
	}
}

func TestCellConcurrentCallersShareResult(t *testing.T) {
	var cell memo.Cell[*[]string]
	var builds atomic.Int32
	release := make(chan struct{})

	const callers = 32
	results := make([]*[]string, callers)
	var started, done sync.WaitGroup
	started.Add(callers)
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer done.Done()
			started.Done()
			results[i] = cell.Get(func() *[]string {
				builds.Add(1)
				<-release
				v := []string{"a", "b"}
				return &v
			})
		}(i)
	}
	started.Wait()
	close(release)
	done.Wait()

	if n := builds.Load(); n != 1 {
		t.Fatalf("expected exactly one build, got %d", n)
	}
	for i, r := range results {
		if r != results[0] {
			t.Fatalf("caller %d observed a different value", i)
		}
	}
}

func TestCellPanickingBuildPublishesNothing(t *testing.T) {
	var cell memo.Cell[*int]

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the build panic to reach the caller")
			}
		}()
		cell.Get(func() *int { panic("calibration unreadable") })
	}()

	if cell.Ready() {
		t.Fatal("expected cell to stay unpublished after a panicking build")
	}
	one := 1
	if got := cell.Get(func() *int { return &one }); got != &one {
		t.Fatalf("expected the next Get to build again, got %v", got)
	}
	if !cell.Ready() {
		t.Fatal("expected cell to report ready after a successful build")
	}
}
