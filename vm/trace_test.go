package vm

import "testing"

func TestExecutionTraceRecordsUnderCapacity(t *testing.T) {
	tr := NewExecutionTrace(4)
	tr.Record(0, Instruction{Kind: KindHalt, Word: 0xf000}, Flags{})
	tr.Record(2, Instruction{Kind: KindHalt, Word: 0xf000}, Flags{Zero: true})

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].PC != 0 || entries[1].PC != 2 {
		t.Errorf("entries = %+v, want PC 0 then 2", entries)
	}
	if !entries[1].Flags.Zero {
		t.Error("second entry should have Zero set")
	}
}

func TestExecutionTraceWrapsAtCapacity(t *testing.T) {
	tr := NewExecutionTrace(3)
	for i := uint16(0); i < 5; i++ {
		tr.Record(i*2, Instruction{Word: i}, Flags{})
	}

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	wantPCs := []uint16{4, 6, 8}
	for i, want := range wantPCs {
		if entries[i].PC != want {
			t.Errorf("entries[%d].PC = %d, want %d", i, entries[i].PC, want)
		}
	}
}

func TestExecutionTraceResetClearsEntries(t *testing.T) {
	tr := NewExecutionTrace(2)
	tr.Record(0, Instruction{}, Flags{})
	tr.Record(2, Instruction{}, Flags{})
	tr.Reset()

	if len(tr.Entries()) != 0 {
		t.Errorf("len(Entries()) after Reset = %d, want 0", len(tr.Entries()))
	}

	tr.Record(4, Instruction{Word: 0x1234}, Flags{})
	entries := tr.Entries()
	if len(entries) != 1 || entries[0].PC != 4 {
		t.Errorf("entries after Reset+Record = %+v, want one entry at PC=4", entries)
	}
}

func TestExecutionTraceStringFormat(t *testing.T) {
	tr := NewExecutionTrace(2)
	tr.Record(0x10, Instruction{Word: 0xf000}, Flags{})
	want := "PC=0x0010 word=0xF000\n"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewExecutionTraceDefaultsCapacity(t *testing.T) {
	tr := NewExecutionTrace(0)
	if tr.capacity != DefaultTraceCapacity {
		t.Errorf("capacity = %d, want %d", tr.capacity, DefaultTraceCapacity)
	}
}
