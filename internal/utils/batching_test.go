package utils

import "testing"

func TestBatchBufferGetAndClear(t *testing.T) {
	b := NewBatchBuffer[string]()
	if b.HasData() {
		t.Error("fresh buffer reports data")
	}
	if got := b.GetAndClear(); got != nil {
		t.Errorf("GetAndClear on empty buffer = %v, want nil", got)
	}

	b.Add("a")
	b.Add("b")
	if b.Size() != 2 {
		t.Fatalf("Size = %d, want 2", b.Size())
	}

	// The drained batch keeps its items; the buffer starts over. The caller
	// logs and stores from the returned slice, never from the buffer.
	batch := b.GetAndClear()
	if len(batch) != 2 || batch[0] != "a" || batch[1] != "b" {
		t.Errorf("batch = %v", batch)
	}
	if b.HasData() || b.Size() != 0 {
		t.Errorf("buffer not cleared: size %d", b.Size())
	}
}
