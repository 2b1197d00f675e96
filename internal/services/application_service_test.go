package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	var km keyedMutex

	unlock := km.Lock("user-1/job-1")

	acquired := make(chan struct{})
	go func() {
		u := km.Lock("user-1/job-1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock acquired while the first was still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired after the first released")
	}
}

func TestKeyedMutexIndependentKeysDoNotBlock(t *testing.T) {
	var km keyedMutex

	unlockA := km.Lock("user-1/job-1")
	defer unlockA()

	acquired := make(chan struct{})
	go func() {
		u := km.Lock("user-2/job-1")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutexDropsIdleEntries(t *testing.T) {
	var km keyedMutex

	unlockA := km.Lock("user-1/job-1")
	unlockB := km.Lock("user-1/job-2")
	unlockA()
	unlockB()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks)
}
