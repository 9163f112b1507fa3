package gui

import (
	"fmt"
	"image/color"
	_ "image/png" // PNG sprites

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp" // BMP sprites

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Flat colors used when no sprite is configured.
var (
	colorBackground = color.RGBA{230, 230, 230, 255}
	colorShip       = color.RGBA{40, 70, 160, 255}
	colorAlien      = color.RGBA{40, 150, 60, 255}
	colorBullet     = color.RGBA{60, 60, 60, 255}
	colorButton     = color.RGBA{0, 135, 0, 255}
	colorShade      = color.RGBA{0, 0, 0, 110}
)

// Sprites holds the optional entity images. Nil entries are drawn as
// flat rectangles.
type Sprites struct {
	Ship       *ebiten.Image
	Alien      *ebiten.Image
	Bullet     *ebiten.Image
	Background *ebiten.Image
}

// LoadSprites loads every configured image. A missing or undecodable file is
// logged and falls back to a rectangle.
func LoadSprites(assets config.AssetsConfig, logger *log.Logger) Sprites {
	load := func(name, path string) *ebiten.Image {
		if path == "" {
			return nil
		}
		img, err := loadImage(path)
		if err != nil {
			logger.Warn("sprite unavailable", "sprite", name, "error", err)
			return nil
		}
		logger.Debug("sprite loaded", "sprite", name, "path", path)
		return img
	}

	return Sprites{
		Ship:       load("ship", assets.Ship),
		Alien:      load("alien", assets.Alien),
		Bullet:     load("bullet", assets.Bullet),
		Background: load("background", assets.Background),
	}
}

func loadImage(path string) (*ebiten.Image, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return img, nil
}

// drawEntity draws img stretched over r, or a filled rectangle when img is nil.
func drawEntity(dst, img *ebiten.Image, r core.Rect, fallback color.Color) {
	if img == nil {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, false)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	dst.DrawImage(img, op)
}

// parseColor converts a hex color from the config, falling back to def.
func parseColor(hex string, def color.Color) color.Color {
	if hex == "" {
		return def
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return def
	}
	return c
}
