// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sync provides generic synchronized data structures.
package sync

import "sync"

// Map is a generic synchronized map. It is a wrapper around Go's standard
// sync.Map, with all the same caveats.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Load returns a value given a key and whether the key was present.
func (sm *Map[K, V]) Load(k K) (v V, ok bool) {
	vAny, ok := sm.m.Load(k)
	if !ok {
		return
	}
	return vAny.(V), true
}

// LoadOrCompute returns the value stored for a key or, if the key is absent,
// computes the value with f, stores it, and returns it.
// f may be called more than once under concurrent access but only one value
// is ever published for a key.
func (sm *Map[K, V]) LoadOrCompute(k K, f func() V) V {
	if v, ok := sm.Load(k); ok {
		return v
	}
	actual, _ := sm.m.LoadOrStore(k, f())
	return actual.(V)
}
