package reactive

import (
	"testing"
)

func TestSignalBasic(t *testing.T) {
	count := NewSignal(0)

	if count.Get() != 0 {
		t.Errorf("expected initial value 0, got %d", count.Get())
	}

	count.Set(5)
	if count.Get() != 5 {
		t.Errorf("expected value 5, got %d", count.Get())
	}

	count.Update(func(n int) int { return n * 2 })
	if count.Get() != 10 {
		t.Errorf("expected value 10, got %d", count.Get())
	}
}

func TestSignalPeekDoesNotSubscribe(t *testing.T) {
	count := NewSignal(42)
	listener := newTestListener()

	WithListener(listener, func() {
		if v := count.Peek(); v != 42 {
			t.Errorf("expected 42, got %d", v)
		}
	})

	count.Set(100)
	if listener.getDirtyCount() != 0 {
		t.Errorf("Peek should not subscribe, got %d notifications", listener.getDirtyCount())
	}
}

func TestSignalSubscription(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		_ = count.Get()
		_ = count.Get()
	})

	if count.Subscribers() != 1 {
		t.Fatalf("expected 1 deduplicated subscriber, got %d", count.Subscribers())
	}

	count.Set(1)
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.getDirtyCount())
	}

	count.Set(1)
	if listener.getDirtyCount() != 1 {
		t.Errorf("same value should not notify, got %d", listener.getDirtyCount())
	}

	count.Update(func(n int) int { return n + 1 })
	if listener.getDirtyCount() != 2 {
		t.Errorf("expected 2 notifications, got %d", listener.getDirtyCount())
	}
}

func TestSignalNoTrackingOutsideListener(t *testing.T) {
	count := NewSignal(0)
	_ = count.Get()
	if count.Subscribers() != 0 {
		t.Errorf("read outside a listener subscribed %d listeners", count.Subscribers())
	}
}

func TestSignalUntracked(t *testing.T) {
	count := NewSignal(0)
	listener := newTestListener()

	WithListener(listener, func() {
		Untracked(func() {
			_ = count.Get()
		})
	})

	if count.Subscribers() != 0 {
		t.Errorf("Untracked read subscribed %d listeners", count.Subscribers())
	}
}

func TestSignalSourceTracking(t *testing.T) {
	a := NewSignal(1)
	b := NewSignal("x")
	l := &trackingListener{testListener: testListener{id: nextID()}}

	WithListener(l, func() {
		_ = a.Get()
		_ = b.Get()
	})

	if len(l.sources) != 2 {
		t.Fatalf("expected 2 recorded sources, got %d", len(l.sources))
	}
	for _, s := range l.sources {
		s.Unsubscribe(l)
	}
	if a.Subscribers() != 0 || b.Subscribers() != 0 {
		t.Errorf("expected no subscribers after Unsubscribe, got %d and %d", a.Subscribers(), b.Subscribers())
	}
}

func TestSignalSubscribe(t *testing.T) {
	count := NewSignal(0)
	var seen []int

	unsubscribe := count.Subscribe(func(v int) { seen = append(seen, v) })
	count.Set(3)
	count.Set(3)
	count.Set(7)
	unsubscribe()
	count.Set(9)

	if len(seen) != 2 || seen[0] != 3 || seen[1] != 7 {
		t.Errorf("Subscribe saw %v, want [3 7]", seen)
	}
}

func TestSignalWithEquals(t *testing.T) {
	type point struct{ X, Y int }
	p := NewSignal(point{1, 2}).WithEquals(func(a, b point) bool { return a.X == b.X })
	listener := newTestListener()
	WithListener(listener, func() { _ = p.Get() })

	p.Set(point{1, 99})
	if listener.getDirtyCount() != 0 {
		t.Error("custom equality should treat equal X as unchanged")
	}
	p.Set(point{2, 99})
	if listener.getDirtyCount() != 1 {
		t.Errorf("expected 1 notification, got %d", listener.getDirtyCount())
	}
}

func TestDefaultEquals(t *testing.T) {
	type withSlice struct{ Items []int }

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"equal strings", "a", "a", true},
		{"structs with slices", withSlice{[]int{1}}, withSlice{[]int{1}}, true},
		{"different structs", withSlice{[]int{1}}, withSlice{[]int{2}}, false},
		{"nil values", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultEquals(tt.a, tt.b); got != tt.want {
				t.Errorf("defaultEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUseSignalStableAcrossRenders(t *testing.T) {
	owner := NewOwner(nil)
	var first, second *Signal[int]

	render := func() *Signal[int] {
		var s *Signal[int]
		WithOwner(owner, func() {
			owner.StartRender()
			s = UseSignal(10)
		})
		return s
	}

	first = render()
	first.Set(11)
	second = render()

	if first != second {
		t.Fatal("UseSignal returned a different signal on the second render")
	}
	if second.Peek() != 11 {
		t.Errorf("expected preserved value 11, got %d", second.Peek())
	}
}

func TestUseSignalOutsideRender(t *testing.T) {
	a := UseSignal(1)
	b := UseSignal(1)
	if a == b {
		t.Error("UseSignal outside a render should create independent signals")
	}
}
