package render

import (
	"strings"
	"testing"

	"github.com/lguibr/pongsolo/game"
	"github.com/lguibr/pongsolo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = utils.Color{}
	white = utils.Color{R: 255, G: 255, B: 255}
)

func TestGrayToAscii(t *testing.T) {
	assert.Equal(t, byte(' '), grayToAscii(rgbToGray(black)))
	assert.Equal(t, byte('@'), grayToAscii(rgbToGray(white)))
	assert.Equal(t, byte(' '), grayToAscii(rgbToGray(utils.MustParseHexColor("#111"))))
}

func TestRgbToAnsi(t *testing.T) {
	assert.Equal(t, "\033[38;2;255;48;112m", rgbToAnsi(utils.MustParseHexColor("#ff3070")))
}

func TestRaster_FillRect(t *testing.T) {
	raster := NewRaster(10, 5, 100, 50) // 10x10 logical units per cell

	raster.FillRect(15, 0, 4, 10, white)

	assert.Equal(t, white, raster.At(1, 0), "thin shapes still mark the cell they overlap")
	assert.Equal(t, black, raster.At(2, 0))
	assert.Equal(t, black, raster.At(1, 1), "touching the next row's edge does not paint it")

	raster.FillRect(-50, 45, 500, 500, white)
	for i := 0; i < 10; i++ {
		assert.Equal(t, white, raster.At(i, 4), "shapes are clipped to the grid")
	}
}

func TestRaster_FillCircle(t *testing.T) {
	raster := NewRaster(10, 10, 100, 100)

	raster.FillCircle(50, 50, 10, white)

	for _, cell := range [][2]int{{4, 4}, {5, 5}, {4, 5}, {5, 4}} {
		assert.Equal(t, white, raster.At(cell[0], cell[1]), "cell %v", cell)
	}
	// Neighbours only touch the circle's rim.
	assert.Equal(t, black, raster.At(3, 4))
	assert.Equal(t, black, raster.At(6, 6))
}

func TestRaster_Output(t *testing.T) {
	raster := NewRaster(3, 2, 3, 2)
	raster.FillRect(1, 0, 1, 1, white)

	assert.Equal(t, " @ \n   ", raster.Plain())

	colored := raster.String()
	lines := strings.Split(colored, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "\033[0m"))
	assert.Contains(t, lines[0], rgbToAnsi(white)+"@")
}

func TestRaster_DrawsGame(t *testing.T) {
	cfg := utils.DefaultConfig()
	sim := game.NewSimulation(cfg, game.NewSequenceSource(0.9, 0.5))
	raster := NewRaster(80, 25, cfg.SurfaceWidth, cfg.SurfaceHeight)

	game.Draw(sim, raster, game.NewPalette(cfg))

	ballColor := utils.MustParseHexColor(cfg.BallColor)
	playerColor := utils.MustParseHexColor(cfg.PlayerColor)
	assert.Equal(t, ballColor, raster.At(40, 12), "ball at the centre")
	assert.Equal(t, playerColor, raster.At(1, 12), "player paddle on the left")
	assert.Equal(t, utils.MustParseHexColor(cfg.NetColor), raster.At(39, 0))
	assert.Equal(t, utils.MustParseHexColor(cfg.BackgroundColor), raster.At(20, 20))
}
