package midi

import (
	"sync"
	"testing"
)

// TestLatestWins verifies the single-slot semantics: two writes before
// a poll yield only the second value, exactly once.
func TestLatestWins(t *testing.T) {
	var table Table

	table.Write(3, 10)
	table.Write(3, 99)

	v, ok := table.Poll(3)
	if !ok {
		t.Fatal("Poll reported no value after writes")
	}
	if v != 99 {
		t.Errorf("Expected latest value 99, got %d", v)
	}

	if _, ok := table.Poll(3); ok {
		t.Error("Second Poll returned a value without a new write")
	}
}

func TestPollUnwrittenCell(t *testing.T) {
	var table Table

	for cc := 0; cc < NumControls; cc++ {
		if _, ok := table.Poll(uint8(cc)); ok {
			t.Fatalf("Poll(%d) reported a value on a fresh table", cc)
		}
	}
}

func TestCellsAreIndependent(t *testing.T) {
	var table Table

	table.Write(5, 50)
	table.Write(9, 90)

	if v, ok := table.Poll(9); !ok || v != 90 {
		t.Errorf("Poll(9) = %d, %v; want 90, true", v, ok)
	}
	// Consuming cell 9 must not disturb cell 5.
	if v, ok := table.Poll(5); !ok || v != 50 {
		t.Errorf("Poll(5) = %d, %v; want 50, true", v, ok)
	}
}

func TestOutOfRangeDropped(t *testing.T) {
	var table Table

	table.Write(200, 64)

	if _, ok := table.Poll(200); ok {
		t.Error("Poll(200) returned a value for an out-of-range CC")
	}
	if got := table.Stats().Received; got != 0 {
		t.Errorf("Received = %d after dropped write, want 0", got)
	}
}

func TestStatsCountCoalescedWrites(t *testing.T) {
	var table Table

	table.Write(1, 10)
	table.Write(1, 20)
	table.Write(1, 30)
	table.Poll(1)
	table.Write(1, 40)

	stats := table.Stats()
	if stats.Received != 4 {
		t.Errorf("Received = %d, want 4", stats.Received)
	}
	// Writes 20 and 30 overwrote values no poll observed.
	if stats.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", stats.Dropped)
	}
}

// TestConcurrentWriteAndPoll hammers one cell from a writer goroutine
// while the reader polls. Every observed value must be one the writer
// stored, and once the writer is done the final value must become
// visible.
func TestConcurrentWriteAndPoll(t *testing.T) {
	var table Table

	const writes = 10000
	const cc = 42
	const final = 127

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			table.Write(cc, uint8(i%128))
		}
		table.Write(cc, final)
	}()

	writerDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(writerDone)
	}()

	for {
		if v, ok := table.Poll(cc); ok && v > 127 {
			t.Errorf("Observed value %d outside the written domain", v)
		}
		select {
		case <-writerDone:
			if v, ok := table.Poll(cc); ok && v != final {
				t.Errorf("Final poll = %d, want %d", v, final)
			}
			// The last write is visible to this or an earlier poll; either
			// way no stale value may surface now.
			if _, ok := table.Poll(cc); ok {
				t.Error("Poll returned a value after the cell was drained")
			}
			return
		default:
		}
	}
}
