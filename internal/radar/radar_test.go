package radar

import (
	"math"
	"testing"
)

func TestClosedSeries_Closure(t *testing.T) {
	stats := [AxisCount]int{35, 55, 40, 50, 50, 90}

	angles, values := ClosedSeries(stats)

	if len(angles) != AxisCount+1 {
		t.Fatalf("expected %d angles, got %d", AxisCount+1, len(angles))
	}
	if len(values) != AxisCount+1 {
		t.Fatalf("expected %d values, got %d", AxisCount+1, len(values))
	}
	if angles[AxisCount] != angles[0] {
		t.Errorf("expected closing angle %v to repeat %v", angles[AxisCount], angles[0])
	}
	if values[AxisCount] != values[0] {
		t.Errorf("expected closing value %v to repeat %v", values[AxisCount], values[0])
	}
}

func TestClosedSeries_AnglesAreEvenlySpaced(t *testing.T) {
	angles, _ := ClosedSeries([AxisCount]int{})

	for k := 0; k < AxisCount; k++ {
		want := float64(k) / AxisCount * 2 * math.Pi
		if math.Abs(angles[k]-want) > 1e-12 {
			t.Errorf("angle %d: expected %v, got %v", k, want, angles[k])
		}
	}
}

func TestClosedSeries_ValuesFollowStats(t *testing.T) {
	stats := [AxisCount]int{10, 20, 30, 40, 50, 60}

	_, values := ClosedSeries(stats)

	for k := 0; k < AxisCount; k++ {
		if values[k] != float64(stats[k]) {
			t.Errorf("value %d: expected %v, got %v", k, float64(stats[k]), values[k])
		}
	}
}

func TestScale(t *testing.T) {
	testCases := []struct {
		name  string
		stats [AxisCount]int
		want  float64
	}{
		{
			name:  "all below conventional range",
			stats: [AxisCount]int{35, 55, 40, 50, 50, 90},
			want:  100,
		},
		{
			name:  "stat at exactly 100",
			stats: [AxisCount]int{100, 10, 10, 10, 10, 10},
			want:  100,
		},
		{
			name:  "stat beyond conventional range",
			stats: [AxisCount]int{255, 10, 10, 10, 10, 10},
			want:  255,
		},
		{
			name:  "all zero",
			stats: [AxisCount]int{},
			want:  100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Scale(tc.stats); got != tc.want {
				t.Errorf("Scale(%v) = %v, want %v", tc.stats, got, tc.want)
			}
		})
	}
}

func TestProject_AxisDirections(t *testing.T) {
	const cx, cy = 100, 100
	const radius = 50.0

	testCases := []struct {
		name  string
		angle float64
		wantX int
		wantY int
	}{
		{
			name:  "first axis points up",
			angle: 0,
			wantX: 100,
			wantY: 50,
		},
		{
			name:  "quarter turn points right",
			angle: math.Pi / 2,
			wantX: 150,
			wantY: 100,
		},
		{
			name:  "half turn points down",
			angle: math.Pi,
			wantX: 100,
			wantY: 150,
		},
		{
			name:  "three quarter turn points left",
			angle: 3 * math.Pi / 2,
			wantX: 50,
			wantY: 100,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := project(cx, cy, radius, tc.angle)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("project(%v) = (%d, %d), want (%d, %d)", tc.angle, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func testLabels() [AxisCount]string {
	return [AxisCount]string{"HP", "Ataque", "Defensa", "At. Especial", "Def. Especial", "Velocidad"}
}

func TestChart_Render_DefaultSize(t *testing.T) {
	img, err := NewChart().Render([AxisCount]int{35, 55, 40, 50, 50, 90}, testLabels())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != DefaultWidth || bounds.Dy() != DefaultHeight {
		t.Errorf("expected %dx%d, got %dx%d", DefaultWidth, DefaultHeight, bounds.Dx(), bounds.Dy())
	}
}

func TestChart_Render_CustomSize(t *testing.T) {
	c := &Chart{Width: 200, Height: 200}

	img, err := c.Render([AxisCount]int{50, 50, 50, 50, 50, 50}, testLabels())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 200 {
		t.Errorf("expected 200x200, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestChart_Render_BackgroundIsWhite(t *testing.T) {
	img, err := NewChart().Render([AxisCount]int{35, 55, 40, 50, 50, 90}, testLabels())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	r, g, b, _ := img.At(1, 1).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("expected white corner pixel, got rgb(%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestChart_Render_PolygonCoversCenter(t *testing.T) {
	img, err := NewChart().Render([AxisCount]int{100, 100, 100, 100, 100, 100}, testLabels())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	r, g, b, _ := img.At(DefaultWidth/2, DefaultHeight/2).RGBA()
	if r == 0xffff && g == 0xffff && b == 0xffff {
		t.Error("expected filled polygon over the center, got pure white")
	}
}

func TestChart_Render_ExtremeStats(t *testing.T) {
	testCases := []struct {
		name  string
		stats [AxisCount]int
	}{
		{name: "all zero", stats: [AxisCount]int{}},
		{name: "maximum", stats: [AxisCount]int{255, 255, 255, 255, 255, 255}},
		{name: "mixed extremes", stats: [AxisCount]int{0, 255, 0, 255, 0, 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img, err := NewChart().Render(tc.stats, testLabels())
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if img.Bounds().Dx() != DefaultWidth {
				t.Errorf("expected width %d, got %d", DefaultWidth, img.Bounds().Dx())
			}
		})
	}
}
