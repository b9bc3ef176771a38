/*
 * Copyright 2025 Glowsign Labs.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gateway

import (
	"context"
	"errors"
	"sync"
	"time"
)

// memKV is an in-memory kv.KVStore for tests. failing flips every operation
// into an error to exercise the degraded-store paths.
type memKV struct {
	mu      sync.Mutex
	data    map[string][]byte
	failing bool
}

var errStoreDown = errors.New("store down")

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return nil, false, errStoreDown
	}

	value, ok := m.data[key]

	return value, ok, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return errStoreDown
	}

	m.data[key] = value

	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return errStoreDown
	}

	delete(m.data, key)

	return nil
}

func (m *memKV) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return nil, errStoreDown
	}

	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *memKV) Close() error {
	return nil
}

func (m *memKV) setFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failing = failing
}

// stubTransport is a Transport for tests that records sent frames.
type stubTransport struct {
	mu          sync.Mutex
	established map[string]bool
	sent        map[string][]any
	closed      []string
	sendErr     error
}

func newStubTransport(handles ...string) *stubTransport {
	st := &stubTransport{
		established: make(map[string]bool),
		sent:        make(map[string][]any),
	}

	for _, h := range handles {
		st.established[h] = true
	}

	return st
}

func (s *stubTransport) Send(handle string, frame any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sendErr != nil {
		return s.sendErr
	}

	if !s.established[handle] {
		return ErrUnknownHandle
	}

	s.sent[handle] = append(s.sent[handle], frame)

	return nil
}

func (s *stubTransport) IsEstablished(handle string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.established[handle]
}

func (s *stubTransport) CloseHandle(handle string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.established, handle)
	s.closed = append(s.closed, handle)
}

func (s *stubTransport) sentFrames(handle string) []any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sent[handle]
}

func (s *stubTransport) closedHandles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

// fixedClock is a Clock pinned to a settable instant.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fixedClock) Ticker(d time.Duration) Ticker {
	return realClock{}.Ticker(d)
}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
