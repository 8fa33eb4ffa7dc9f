package service

import (
	"context"
	"errors"
	"sync"
)

type fakeCache struct {
	mu        sync.Mutex
	data      map[string]string
	hits      int
	sets      int
	failSet   bool
	failReads bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failReads {
		return "", false
	}
	v, ok := f.data[key]
	if ok {
		f.hits++
	}
	return v, ok
}

func (f *fakeCache) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.failSet {
		return errors.New("cache unavailable")
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Ping(context.Context) error { return nil }

func (f *fakeCache) Name() string { return "fake" }

func ptr(v float64) *float64 { return &v }
