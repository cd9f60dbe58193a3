package audioviz

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	marginLeft   = 40
	marginTop    = 20
	marginRight  = 10
	marginBottom = 20
)

var (
	background = color.RGBA{255, 255, 255, 255}
	frameColor = color.RGBA{136, 136, 136, 255}
	traceColor = color.RGBA{31, 119, 180, 255}
	labelColor = color.RGBA{0, 0, 0, 255}
)

type PlotOptions struct {
	Width, Height int
	Title         string
}

var DefaultPlotOptions = PlotOptions{Width: 1200, Height: 400}

// plotArea is where samples land; the frame is drawn one pixel outside it.
func (o PlotOptions) plotArea() image.Rectangle {
	return image.Rect(marginLeft, marginTop, o.Width-marginRight, o.Height-marginBottom)
}

// Plot draws samples left to right, value 255 at the top and 0 at the
// bottom. With more samples than columns each column shows the span
// between the smallest and largest sample that falls into it.
func Plot(samples []byte, opt PlotOptions) *image.RGBA {
	if opt.Width <= marginLeft+marginRight+1 || opt.Height <= marginTop+marginBottom+1 {
		opt.Width, opt.Height = DefaultPlotOptions.Width, DefaultPlotOptions.Height
	}
	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	area := opt.plotArea()
	frame(img, area.Inset(-1), frameColor)

	yOf := func(v byte) int {
		return area.Max.Y - 1 - int(v)*(area.Dy()-1)/255
	}
	cols := area.Dx()
	prev := -1
	for col := 0; col < cols && len(samples) > 0; col++ {
		lo, hi := columnRange(len(samples), cols, col)
		mn, mx := samples[lo], samples[lo]
		for _, v := range samples[lo:hi] {
			mn, mx = min(mn, v), max(mx, v)
		}
		top, bot := yOf(mx), yOf(mn)
		// Join to the previous column so single-sample columns stay connected.
		if prev >= 0 {
			top, bot = min(top, prev), max(bot, prev)
		}
		for y := top; y <= bot; y++ {
			img.SetRGBA(area.Min.X+col, y, traceColor)
		}
		prev = yOf(samples[hi-1])
	}

	label(img, 4, area.Min.Y+10, "255")
	label(img, 4, area.Max.Y, "0")
	label(img, area.Min.X, opt.Height-4, "0")
	n := strconv.Itoa(len(samples))
	label(img, area.Max.X-7*len(n), opt.Height-4, n)
	if opt.Title != "" {
		label(img, area.Min.X, marginTop-6, opt.Title)
	}
	return img
}

// columnRange returns the sample indexes [lo, hi) shown in column col.
func columnRange(n, cols, col int) (lo, hi int) {
	lo = col * n / cols
	return lo, max((col+1)*n/cols, lo+1)
}

func frame(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}

// label draws s with its baseline at y.
func label(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
