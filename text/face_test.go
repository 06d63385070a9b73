package text

import (
	"testing"
)

func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12.0},
		{"size 16", 16.0},
		{"size 24", 24.0},
		{"size 48", 48.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := source.Face(tt.size)
			if err != nil {
				t.Fatalf("Face failed: %v", err)
			}
			defer func() { _ = face.Close() }()

			if face.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", face.Size(), tt.size)
			}
			if face.Source() != source {
				t.Error("Source() did not return the creating FontSource")
			}

			metrics := face.Metrics()
			if metrics.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", metrics.Ascent)
			}
			if metrics.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", metrics.Descent)
			}

			expectedLineHeight := metrics.Ascent + metrics.Descent + metrics.LineGap
			if metrics.LineHeight() != expectedLineHeight {
				t.Errorf("LineHeight() = %f, want %f", metrics.LineHeight(), expectedLineHeight)
			}
		})
	}
}

func TestFaceMetricsScale(t *testing.T) {
	source := loadTestFont(t)

	face12, err := source.Face(12)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = face12.Close() }()
	face24, err := source.Face(24)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = face24.Close() }()

	ratio := face24.Metrics().Ascent / face12.Metrics().Ascent
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("Metrics scaling incorrect: ratio = %f, want ~2.0", ratio)
	}
}

func TestFaceAdvance(t *testing.T) {
	source := loadTestFont(t)
	face, err := source.Face(24)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = face.Close() }()

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %f, want 0", got)
	}

	// Unlike ink, advances count whitespace.
	if face.Advance("A ") <= face.Advance("A") {
		t.Error("trailing space should add to the advance")
	}
	if face.Advance("AAAA") <= face.Advance("AA") {
		t.Error("advance should grow with text length")
	}
}

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestWithHinting(t *testing.T) {
	source := loadTestFont(t)
	for _, h := range []Hinting{HintingNone, HintingVertical, HintingFull} {
		face, err := source.Face(16, WithHinting(h))
		if err != nil {
			t.Fatalf("Face with %v hinting failed: %v", h, err)
		}
		if face.BBox("Hinting").Empty() {
			t.Errorf("%v hinting: expected ink", h)
		}
		_ = face.Close()
	}
}
