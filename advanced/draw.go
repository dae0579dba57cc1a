package advanced

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/covercircle/geom"
)

// Padding around the drawing, in pixels
const drawPadding = 40

// Render the cloud: the minimum cover circle, the hull, hull vertices in white
// and interior points in grey. Scale is pixels per unit.
func (c *Cloud) Render(scale float64) *gg.Context {
	circle := c.MinimumCoverCircle()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	extend := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, p := range c.window {
		extend(p.X, p.Y)
	}
	if !circle.IsEmpty() {
		r := circle.Radius()
		extend(circle.Center.X-r, circle.Center.Y-r)
		extend(circle.Center.X+r, circle.Center.Y+r)
	}
	if len(c.window) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)
	ctx.Translate(drawPadding, drawPadding)
	ctx.Scale(scale, scale)
	ctx.Translate(-minX, -minY)

	if !circle.IsEmpty() {
		ctx.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius())
		ctx.SetRGBA(1, 0.6, 0, 0.25)
		ctx.FillPreserve()
		ctx.SetRGB(1, 0.6, 0)
		ctx.SetLineWidth(2)
		ctx.Stroke()
	}

	vertices := c.hull.vertices
	if len(vertices) > 1 {
		ctx.MoveTo(vertices[0].X, vertices[0].Y)
		for _, p := range vertices[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()
		ctx.SetRGBA(0, 0.5, 0, 0.5)
		ctx.FillPreserve()
		ctx.SetRGB(0, 1, 1)
		ctx.SetLineWidth(2)
		ctx.Stroke()
	}

	// Dots are sized in pixels, so undo the scale
	dot := 3 / scale
	drawDots := func(points []geom.Point) {
		for _, p := range points {
			ctx.DrawCircle(p.X, p.Y, dot)
		}
		ctx.Fill()
	}
	ctx.SetRGB(0.6, 0.6, 0.6)
	drawDots(c.interior.Points())
	ctx.SetRGB(1, 1, 1)
	drawDots(vertices)
	return ctx
}

func (c *Cloud) SavePNG(path string, scale float64) error {
	return c.Render(scale).SavePNG(path)
}

// Print a rendered PNG to an iTerm terminal.
func PrintImage(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

// Helper to draw and print the cloud in the terminal (iTerm only) for debugging.
func (c *Cloud) dbgDraw(scale float64) {
	const path = "/tmp/cloud.png"
	if err := c.SavePNG(path, scale); err != nil {
		return
	}
	PrintImage(path, os.Stdout)
}
