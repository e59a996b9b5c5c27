package cart

import (
	"sync"
	"testing"
)

func TestStoreDispatch(t *testing.T) {
	t.Run("sequential dispatches never lose updates", func(t *testing.T) {
		s := NewStore(testRateBP)
		p := product("p1", 1999)
		for i := 0; i < 10; i++ {
			s.Dispatch(AddItem{Product: p})
		}
		got := s.Current()
		if len(got.Items) != 1 || got.Items[0].Quantity != 10 {
			t.Fatalf("got %+v, want one line with quantity 10", got.Items)
		}
	})

	t.Run("concurrent dispatches are serialized", func(t *testing.T) {
		s := NewStore(testRateBP)
		p := product("p1", 100)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Dispatch(AddItem{Product: p})
			}()
		}
		wg.Wait()

		got := s.Current()
		if len(got.Items) != 1 || got.Items[0].Quantity != 50 {
			t.Fatalf("got %+v, want one line with quantity 50", got.Items)
		}
		if got.Subtotal != 5000 {
			t.Fatalf("subtotal = %d, want 5000", got.Subtotal)
		}
	})

	t.Run("snapshots are isolated from later dispatches", func(t *testing.T) {
		s := NewStore(testRateBP)
		s.Dispatch(AddItem{Product: product("p1", 100)})
		snap := s.Current()
		s.Dispatch(UpdateQuantity{ProductID: "p1", Quantity: 9})
		if snap.Items[0].Quantity != 1 {
			t.Fatalf("earlier snapshot mutated: quantity = %d", snap.Items[0].Quantity)
		}
	})
}

func TestStoreSubscribe(t *testing.T) {
	t.Run("subscriber gets current state then every dispatch", func(t *testing.T) {
		s := NewStore(testRateBP)
		ch, cancel := s.Subscribe()
		defer cancel()

		first := <-ch
		if len(first.Items) != 0 {
			t.Fatalf("initial snapshot not empty: %+v", first.Items)
		}

		s.Dispatch(AddItem{Product: product("p1", 1999)})
		next := <-ch
		if len(next.Items) != 1 || next.Total != 2199 {
			t.Fatalf("got %+v total=%d, want one line, total 2199", next.Items, next.Total)
		}
	})

	t.Run("all subscribers observe the same state", func(t *testing.T) {
		s := NewStore(testRateBP)
		ch1, cancel1 := s.Subscribe()
		ch2, cancel2 := s.Subscribe()
		defer cancel1()
		defer cancel2()
		<-ch1
		<-ch2

		s.Dispatch(AddItem{Product: product("p1", 650)})
		a, b := <-ch1, <-ch2
		if a.Total != b.Total || len(a.Items) != len(b.Items) {
			t.Fatalf("subscribers diverged: %+v vs %+v", a, b)
		}
	})

	t.Run("canceled subscriber stops receiving", func(t *testing.T) {
		s := NewStore(testRateBP)
		ch, cancel := s.Subscribe()
		<-ch
		cancel()
		s.Dispatch(AddItem{Product: product("p1", 650)})
		select {
		case c, ok := <-ch:
			if ok {
				t.Fatalf("received %+v after cancel", c)
			}
		default:
		}
	})

	t.Run("slow subscriber never blocks dispatch", func(t *testing.T) {
		s := NewStore(testRateBP)
		_, cancel := s.Subscribe()
		defer cancel()
		// Channel buffer is 8; dispatch far more without draining.
		for i := 0; i < 100; i++ {
			s.Dispatch(AddItem{Product: product("p1", 1)})
		}
		if got := s.Current().Items[0].Quantity; got != 100 {
			t.Fatalf("quantity = %d, want 100", got)
		}
	})
}

func TestStoreCompleteCheckout(t *testing.T) {
	t.Run("clears the cart", func(t *testing.T) {
		s := NewStore(testRateBP)
		s.Dispatch(AddItem{Product: product("p1", 1999)})
		if !s.CompleteCheckout("cs_1") {
			t.Fatal("first completion did not clear")
		}
		got := s.Current()
		if len(got.Items) != 0 || got.Total != 0 {
			t.Fatalf("cart not empty after completion: %+v", got)
		}
	})

	t.Run("same provider session id clears exactly once", func(t *testing.T) {
		s := NewStore(testRateBP)
		s.Dispatch(AddItem{Product: product("p1", 1999)})
		if !s.CompleteCheckout("cs_1") {
			t.Fatal("first completion did not clear")
		}
		// Reload of the success page.
		if s.CompleteCheckout("cs_1") {
			t.Fatal("second completion cleared again")
		}
	})

	t.Run("missing session id still clears", func(t *testing.T) {
		s := NewStore(testRateBP)
		s.Dispatch(AddItem{Product: product("p1", 1999)})
		if !s.CompleteCheckout("") {
			t.Fatal("completion without id did not clear")
		}
		if got := s.Current(); len(got.Items) != 0 {
			t.Fatalf("cart not empty: %+v", got)
		}
	})
}

func TestManager(t *testing.T) {
	m := NewManager(testRateBP)

	t.Run("same session id yields the same store", func(t *testing.T) {
		if m.Get("s1") != m.Get("s1") {
			t.Fatal("two stores for one session")
		}
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		m.Get("s1").Dispatch(AddItem{Product: product("p1", 100)})
		if got := m.Get("s2").Current(); len(got.Items) != 0 {
			t.Fatalf("s2 saw s1's items: %+v", got.Items)
		}
	})

	t.Run("drop resets the session", func(t *testing.T) {
		m.Get("s3").Dispatch(AddItem{Product: product("p1", 100)})
		m.Drop("s3")
		if got := m.Get("s3").Current(); len(got.Items) != 0 {
			t.Fatalf("dropped session kept items: %+v", got.Items)
		}
	})
}
