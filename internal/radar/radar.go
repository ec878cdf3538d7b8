package radar

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// AxisCount is the number of axes in the stat polygon.
const AxisCount = 6

// Default raster size, a 4x3 inch figure at 100 dpi.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// ringTicks are the radial gridline values. They stay fixed even when the
// scale stretches past 100.
var ringTicks = []float64{20, 40, 60, 80, 100}

var (
	gridColor      = drawing.Color{R: 200, G: 200, B: 200, A: 255}
	ringLabelColor = drawing.Color{R: 120, G: 120, B: 120, A: 255}
)

// ClosedSeries expands six stats into a closed polar series. Both returned
// slices carry AxisCount+1 elements, angles step by 1/AxisCount of a full
// turn, and the last element of each repeats the first so the plotted
// polygon closes on itself.
func ClosedSeries(stats [AxisCount]int) (angles, values []float64) {
	angles = make([]float64, AxisCount+1)
	values = make([]float64, AxisCount+1)

	for k := 0; k < AxisCount; k++ {
		angles[k] = float64(k) / AxisCount * 2 * math.Pi
		values[k] = float64(stats[k])
	}
	angles[AxisCount] = angles[0]
	values[AxisCount] = values[0]

	return angles, values
}

// Scale returns the radial extent of the chart: the conventional 100-point
// stat range, stretched when a stat exceeds it so the polygon stays inside
// the rim.
func Scale(stats [AxisCount]int) float64 {
	scale := 100.0
	for _, v := range stats {
		if float64(v) > scale {
			scale = float64(v)
		}
	}
	return scale
}

// Chart renders the six-axis stat polygon to a static bitmap.
type Chart struct {
	Width  int
	Height int
}

// NewChart returns a chart with the default raster size.
func NewChart() *Chart {
	return &Chart{Width: DefaultWidth, Height: DefaultHeight}
}

// Render draws the stats as a translucent filled polygon over circular
// gridlines and returns the finished bitmap. Labels annotate the axes in
// stat order, starting at the top and proceeding clockwise.
func (c *Chart) Render(stats [AxisCount]int, labels [AxisCount]string) (image.Image, error) {
	r, err := chart.PNG(c.Width, c.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create raster renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart font: %w", err)
	}

	r.SetFillColor(chart.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(c.Width, 0)
	r.LineTo(c.Width, c.Height)
	r.LineTo(0, c.Height)
	r.Close()
	r.Fill()

	cx := c.Width / 2
	cy := c.Height / 2
	// Rim radius leaves room outside the gridlines for axis labels.
	rim := float64(min(c.Width, c.Height))/2 - 36
	scale := Scale(stats)

	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1)
	for _, tick := range ringTicks {
		r.Circle(rim*tick/scale, cx, cy)
		r.Stroke()
	}

	angles, values := ClosedSeries(stats)

	for k := 0; k < AxisCount; k++ {
		x, y := project(cx, cy, rim, angles[k])
		r.MoveTo(cx, cy)
		r.LineTo(x, y)
		r.Stroke()
	}

	r.SetStrokeColor(chart.ColorBlue)
	r.SetStrokeWidth(2)
	r.SetFillColor(chart.ColorBlue.WithAlpha(64))
	for k := 0; k <= AxisCount; k++ {
		radius := rim * math.Max(values[k], 0) / scale
		x, y := project(cx, cy, radius, angles[k])
		if k == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.Close()
	r.FillStroke()

	r.SetFont(font)
	r.SetFontColor(chart.ColorBlack)
	r.SetFontSize(10)
	for k := 0; k < AxisCount; k++ {
		drawAxisLabel(r, cx, cy, rim+8, angles[k], labels[k])
	}

	r.SetFontSize(8)
	r.SetFontColor(ringLabelColor)
	for _, tick := range ringTicks {
		label := strconv.Itoa(int(tick))
		box := r.MeasureText(label)
		r.Text(label, cx+4, cy-int(rim*tick/scale)+box.Height()/2)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart bitmap: %w", err)
	}

	return img, nil
}

// project maps a polar point onto screen coordinates. The first axis
// (angle zero) points straight up and angles advance clockwise.
func project(cx, cy int, radius, angle float64) (int, int) {
	screen := angle - math.Pi/2
	x := float64(cx) + radius*math.Cos(screen)
	y := float64(cy) + radius*math.Sin(screen)
	return int(math.Round(x)), int(math.Round(y))
}

// drawAxisLabel places text just outside the rim, pushed outward along the
// axis direction so it clears the gridlines on every side of the chart.
func drawAxisLabel(r chart.Renderer, cx, cy int, radius, angle float64, label string) {
	x, y := project(cx, cy, radius, angle)
	box := r.MeasureText(label)

	screen := angle - math.Pi/2
	cos := math.Cos(screen)
	sin := math.Sin(screen)

	tx := x - box.Width()/2 + int(cos*float64(box.Width())/2)
	ty := y + box.Height()/2 + int(sin*float64(box.Height())/2)
	r.Text(label, tx, ty)
}
