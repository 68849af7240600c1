package status

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetUnknownDevice(t *testing.T) {
	c := NewCache()
	if got := c.Get("never-seen"); got != Unavailable {
		t.Errorf("Get() = %q, want %q", got, Unavailable)
	}
}

func TestSetOverwrites(t *testing.T) {
	c := NewCache()
	c.Set("dev1", Available)
	if got := c.Get("dev1"); got != Available {
		t.Errorf("Get() = %q, want %q", got, Available)
	}
	c.Set("dev1", Unavailable)
	if got := c.Get("dev1"); got != Unavailable {
		t.Errorf("Get() after overwrite = %q, want %q", got, Unavailable)
	}
}

// A Get issued after a Set has returned must observe that value, from any
// number of concurrent readers.
func TestConcurrentReadsAfterSet(t *testing.T) {
	c := NewCache()
	c.Set("dev1", Available)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := c.Get("dev1"); got != Available {
				t.Errorf("Get() = %q, want %q", got, Available)
			}
		}()
	}
	wg.Wait()
}

// Hammer the cache from concurrent writers and readers; run with -race.
func TestConcurrentSetGet(t *testing.T) {
	c := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("dev%d", i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if j%2 == 0 {
					c.Set(id, Available)
				} else {
					c.Set(id, Unavailable)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := c.Get(id); got != Available && got != Unavailable {
					t.Errorf("Get() = %q, want a legal status", got)
				}
			}
		}()
	}
	wg.Wait()
}
