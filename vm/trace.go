package vm

import (
	"fmt"
	"strings"
)

// TraceEntry records one executed instruction: where it was fetched
// from, what it decoded to, and the flags left behind. This is purely
// ambient observability — never consulted by Step or Run.
type TraceEntry struct {
	PC    uint16
	Inst  Instruction
	Flags Flags
}

// ExecutionTrace is a bounded ring of TraceEntry, attached to a
// Machine only when the embedder opts in. It never grows past its
// capacity: once full, the oldest entry is evicted to make room for
// the newest, so a long-running program cannot turn tracing into an
// unbounded memory leak.
type ExecutionTrace struct {
	entries  []TraceEntry
	capacity int
	start    int // index of the oldest entry once the ring has wrapped
	full     bool
}

// NewExecutionTrace returns a trace with the given capacity, or
// DefaultTraceCapacity if capacity <= 0.
func NewExecutionTrace(capacity int) *ExecutionTrace {
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	return &ExecutionTrace{
		entries:  make([]TraceEntry, 0, capacity),
		capacity: capacity,
	}
}

// Record appends one step's outcome to the trace. flags is the
// post-execution flag snapshot, since Step records after execute runs.
func (t *ExecutionTrace) Record(pc uint16, inst Instruction, flags Flags) {
	entry := TraceEntry{PC: pc, Inst: inst, Flags: flags}
	if len(t.entries) < t.capacity {
		t.entries = append(t.entries, entry)
		return
	}
	t.entries[t.start] = entry
	t.start = (t.start + 1) % t.capacity
	t.full = true
}

// Entries returns the recorded entries in execution order, oldest
// first.
func (t *ExecutionTrace) Entries() []TraceEntry {
	if !t.full {
		out := make([]TraceEntry, len(t.entries))
		copy(out, t.entries)
		return out
	}
	out := make([]TraceEntry, 0, t.capacity)
	out = append(out, t.entries[t.start:]...)
	out = append(out, t.entries[:t.start]...)
	return out
}

// Reset clears all recorded entries without releasing the underlying
// array.
func (t *ExecutionTrace) Reset() {
	t.entries = t.entries[:0]
	t.start = 0
	t.full = false
}

// String renders the trace as one "PC=0x.... word=0x...." line per
// entry, newest last.
func (t *ExecutionTrace) String() string {
	var b strings.Builder
	for _, e := range t.Entries() {
		fmt.Fprintf(&b, "PC=0x%04X word=0x%04X\n", e.PC, e.Inst.Word)
	}
	return b.String()
}
