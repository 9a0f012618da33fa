package renderer

import (
	"context"
	"testing"
)

func TestFrameBuffer_CommitRow(t *testing.T) {
	fb := NewFrameBuffer(2, 3)

	if err := fb.CommitRow(1, []uint8{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatalf("CommitRow failed: %v", err)
	}
	if r, g, b := fb.At(1, 1); r != 4 || g != 5 || b != 6 {
		t.Errorf("expected (4,5,6), got (%d,%d,%d)", r, g, b)
	}
	if r, g, b := fb.At(0, 0); r != 0 || g != 0 || b != 0 {
		t.Errorf("untouched row should stay black, got (%d,%d,%d)", r, g, b)
	}

	if err := fb.CommitRow(3, make([]uint8, 6)); err == nil {
		t.Error("expected an error for a row outside the frame")
	}
	if err := fb.CommitRow(0, make([]uint8, 3)); err == nil {
		t.Error("expected an error for a short row")
	}

	img := fb.Image()
	if c := img.RGBAAt(1, 1); c.R != 4 || c.G != 5 || c.B != 6 || c.A != 255 {
		t.Errorf("unexpected image pixel %v", c)
	}
}

func TestRowCounter_Concurrent(t *testing.T) {
	const height = 500
	scheduler := NewRowCounter(height)
	pool := NewWorkerPool(8)

	seen := make([]int, height)
	stats, err := pool.Run(context.Background(), scheduler, func(workerID, row int) (int, error) {
		seen[row]++
		return 1, nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	total := 0
	for _, ws := range stats {
		total += ws.Rows
	}
	if total != height {
		t.Errorf("expected %d rows across workers, got %d", height, total)
	}
	for row, count := range seen {
		if count != 1 {
			t.Errorf("row %d rendered %d times", row, count)
		}
	}

	if _, ok := scheduler.Next(); ok {
		t.Error("exhausted scheduler should report no more rows")
	}
}
