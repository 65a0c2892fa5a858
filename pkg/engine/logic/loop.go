// Package logic provides the serialized execution context that owns all
// client-side game state. Subsystems queue work onto the loop instead of
// mutating state from arbitrary goroutines.
package logic

import (
	"bytes"
	"log"
	"runtime"
	"strconv"
	"sync/atomic"
)

// DefaultQueueSize is the capacity of the pending-call queue.
const DefaultQueueSize = 256

// Loop is a single-goroutine execution queue. Calls pushed onto it run in
// order during the next Tick, never reentrantly inside whatever pushed them.
type Loop struct {
	calls chan func()

	// Goroutine id of whoever calls Bind; 0 until bound.
	owner atomic.Int64
}

// NewLoop creates a loop with the default queue capacity.
func NewLoop() *Loop {
	return &Loop{calls: make(chan func(), DefaultQueueSize)}
}

// Bind marks the calling goroutine as the loop's owner. The Ebiten game loop
// calls this from its first Update.
func (l *Loop) Bind() {
	l.owner.Store(goroutineID())
}

// Bound reports whether an owner goroutine has been recorded.
func (l *Loop) Bound() bool {
	return l.owner.Load() != 0
}

// AssertCurrent panics if called from a goroutine other than the owner.
// No-op until Bind has run, so construction-time wiring stays legal.
func (l *Loop) AssertCurrent() {
	owner := l.owner.Load()
	if owner == 0 {
		return
	}
	if id := goroutineID(); id != owner {
		panic("logic: called from goroutine " + strconv.FormatInt(id, 10) +
			", expected owner " + strconv.FormatInt(owner, 10))
	}
}

// PushCall queues fn to run on the loop's next Tick. Safe to call from any
// goroutine. If the queue is full the call is dropped with a logged warning
// rather than blocking the caller.
func (l *Loop) PushCall(fn func()) {
	select {
	case l.calls <- fn:
	default:
		log.Printf("logic: call queue full; dropping call")
	}
}

// Tick runs the calls that were queued when it started. Calls pushed by a
// running call stay queued for the next Tick. Must be called from the owner
// goroutine.
func (l *Loop) Tick() {
	l.AssertCurrent()
	n := len(l.calls)
	for i := 0; i < n; i++ {
		fn := <-l.calls
		fn()
	}
}

// goroutineID parses the current goroutine's id out of the runtime stack
// header ("goroutine N [running]:"). Only used for ownership asserts.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
