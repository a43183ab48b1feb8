package keylock_test

import (
	"sync"
	"testing"

	"logistics/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	locker := keylock.New()

	var (
		wg      sync.WaitGroup
		active  int
		maxSeen int
		guardMu sync.Mutex
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("GU-1")
			defer unlock()

			guardMu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			guardMu.Unlock()

			guardMu.Lock()
			active--
			guardMu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locker.Len())
}

func TestLocker_IndependentKeys(t *testing.T) {
	locker := keylock.New()

	unlockA := locker.Lock("A")
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock("B")
		unlockB()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locker.Len())
	unlockA()
	assert.Equal(t, 0, locker.Len())
}
