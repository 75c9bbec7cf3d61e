package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/pongsolo/utils"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Luminosity weights for RGB components
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

// Raster is a coarse character grid standing in for a 2D drawing surface.
// Each cell covers a Width/Cols by Height/Rows block of logical space and is
// painted by any shape overlapping it; later fills win.
type Raster struct {
	Cols, Rows    int
	Width, Height float64
	cells         [][]utils.Color
}

func NewRaster(cols, rows int, width, height float64) *Raster {
	if cols <= 0 || rows <= 0 {
		panic("Raster needs at least one row and one column")
	}
	cells := make([][]utils.Color, rows)
	for j := range cells {
		cells[j] = make([]utils.Color, cols)
	}
	return &Raster{Cols: cols, Rows: rows, Width: width, Height: height, cells: cells}
}

func (r *Raster) cellWidth() float64  { return r.Width / float64(r.Cols) }
func (r *Raster) cellHeight() float64 { return r.Height / float64(r.Rows) }

// cellRange returns the half-open cell index range touched by [from, to).
func cellRange(from, to, size float64, count int) (int, int) {
	first := int(math.Floor(from / size))
	last := int(math.Ceil(to / size))
	if first < 0 {
		first = 0
	}
	if last > count {
		last = count
	}
	return first, last
}

// FillRect paints every cell the rectangle overlaps.
func (r *Raster) FillRect(x, y, w, h float64, c utils.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	i0, i1 := cellRange(x, x+w, r.cellWidth(), r.Cols)
	j0, j1 := cellRange(y, y+h, r.cellHeight(), r.Rows)
	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			r.cells[j][i] = c
		}
	}
}

// FillCircle paints every cell whose nearest point lies inside the circle.
func (r *Raster) FillCircle(x, y, radius float64, c utils.Color) {
	cw, ch := r.cellWidth(), r.cellHeight()
	i0, i1 := cellRange(x-radius, x+radius, cw, r.Cols)
	j0, j1 := cellRange(y-radius, y+radius, ch, r.Rows)
	for j := j0; j < j1; j++ {
		for i := i0; i < i1; i++ {
			nearestX := utils.Clamp(x, float64(i)*cw, float64(i+1)*cw)
			nearestY := utils.Clamp(y, float64(j)*ch, float64(j+1)*ch)
			dx, dy := nearestX-x, nearestY-y
			if dx*dx+dy*dy < radius*radius {
				r.cells[j][i] = c
			}
		}
	}
}

// At returns the colour of cell (col, row).
func (r *Raster) At(col, row int) utils.Color {
	return r.cells[row][col]
}

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel utils.Color) uint8 {
	gray := RFactor*float64(pixel.R) + GFactor*float64(pixel.G) + BFactor*float64(pixel.B)
	return uint8(math.Min(255, math.Round(gray)))
}

// grayToAscii maps a grayscale value to an ASCII character
func grayToAscii(gray uint8) byte {
	index := int(gray) * (len(asciiChars) - 1) / 255
	return asciiChars[index]
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel utils.Color) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// Plain renders the grid as bare characters, one line per row.
func (r *Raster) Plain() string {
	var ascii strings.Builder
	for j, row := range r.cells {
		for _, cell := range row {
			ascii.WriteByte(grayToAscii(rgbToGray(cell)))
		}
		if j < len(r.cells)-1 {
			ascii.WriteString("\n")
		}
	}
	return ascii.String()
}

// String renders the grid with a truecolor escape per cell.
func (r *Raster) String() string {
	var ascii strings.Builder
	for j, row := range r.cells {
		for _, cell := range row {
			ascii.WriteString(rgbToAnsi(cell))
			ascii.WriteByte(grayToAscii(rgbToGray(cell)))
		}
		ascii.WriteString("\033[0m") // Reset color at the end of each row
		if j < len(r.cells)-1 {
			ascii.WriteString("\n")
		}
	}
	return ascii.String()
}
