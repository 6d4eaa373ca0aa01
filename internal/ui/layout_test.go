package ui

import "testing"

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		width, length, want int
	}{
		{80, 17, 31},
		{80, 16, 32},
		{10, 4, 3},
		{10, 10, 0},
		{4, 10, 0},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := CenterOffset(tt.width, tt.length); got != tt.want {
			t.Fatalf("CenterOffset(%d, %d) = %d, want %d", tt.width, tt.length, got, tt.want)
		}
	}
}

func TestCompute_Geometry(t *testing.T) {
	layout := Compute(120, 40, 33)

	if layout.Title.Row != 1 || layout.Title.Height != 4 {
		t.Fatalf("Title = %+v, want row 1 height 4", layout.Title)
	}
	if layout.Overview.Row != 6 || layout.Overview.Col != 0 {
		t.Fatalf("Overview = %+v, want row 6 col 0", layout.Overview)
	}
	if layout.Overview.Width != overviewMargin+33 {
		t.Fatalf("Overview.Width = %d, want %d", layout.Overview.Width, overviewMargin+33)
	}

	if !layout.HasContent {
		t.Fatal("HasContent = false for a 120-column terminal")
	}
	wantCol := overviewMargin + 33 + contentGap
	if layout.Content.Col != wantCol {
		t.Fatalf("Content.Col = %d, want %d", layout.Content.Col, wantCol)
	}
	if layout.Content.Width != 120-wantCol-1 {
		t.Fatalf("Content.Width = %d, want %d", layout.Content.Width, 120-wantCol-1)
	}

	if layout.Status.Row != 39 {
		t.Fatalf("Status.Row = %d, want 39", layout.Status.Row)
	}
	if layout.Status.Width != 120 || layout.Status.Height != 1 {
		t.Fatalf("Status = %+v, want full width, height 1", layout.Status)
	}
}

func TestCompute_OmitsContentWhenNarrow(t *testing.T) {
	// 5 + 33 + 5 = 43 columns before the content panel even starts;
	// anything under 43 + minContentWidth + 1 drops the panel.
	tests := []struct {
		width int
		want  bool
	}{
		{120, true},
		{49, true},
		{48, false},
		{40, false},
		{10, false},
	}
	for _, tt := range tests {
		layout := Compute(tt.width, 40, 33)
		if layout.HasContent != tt.want {
			t.Fatalf("Compute(width=%d).HasContent = %v, want %v", tt.width, layout.HasContent, tt.want)
		}
	}
}

func TestCompute_StatusAlwaysOnLastRow(t *testing.T) {
	for _, height := range []int{10, 24, 40, 200} {
		layout := Compute(120, height, 33)
		if layout.Status.Row != height-1 {
			t.Fatalf("Compute(height=%d).Status.Row = %d, want %d", height, layout.Status.Row, height-1)
		}
	}
}
