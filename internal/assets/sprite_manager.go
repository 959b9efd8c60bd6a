package assets

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type spriteKey struct {
	size  int
	color color.RGBA
}

// SpriteManager создаёт и кэширует процедурные спрайты сфер.
type SpriteManager struct {
	sprites map[spriteKey]*ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager() *SpriteManager {
	return &SpriteManager{
		sprites: make(map[spriteKey]*ebiten.Image),
	}
}

// Sphere возвращает спрайт сферы размера size×size, создавая его при первом запросе.
func (m *SpriteManager) Sphere(size int, base color.RGBA) *ebiten.Image {
	if size < 1 {
		size = 1
	}
	key := spriteKey{size: size, color: base}
	if img, ok := m.sprites[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(SphereImage(size, base))
	m.sprites[key] = img
	log.Printf("Generated sphere sprite %dx%d", size, size)
	return img
}

// Cleanup освобождает все спрайты.
func (m *SpriteManager) Cleanup() {
	for key, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, key)
	}
}

// SphereImage рисует затенённую сферу: диффузный свет сверху слева и блик.
func SphereImage(size int, base color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	// Направление света, нормированное
	lx, ly, lz := -0.45, -0.55, 0.70
	ln := math.Sqrt(lx*lx + ly*ly + lz*lz)
	lx, ly, lz = lx/ln, ly/ln, lz/ln

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			nx := (float64(x) + 0.5 - r) / r
			ny := (float64(y) + 0.5 - r) / r
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)
			diffuse := math.Max(0, nx*lx+ny*ly+nz*lz)
			highlight := math.Pow(diffuse, 24)
			shade := 0.25 + 0.75*diffuse

			// Мягкий край шириной в один пиксель
			edge := math.Min(1, (1-math.Sqrt(d2))*r)

			img.SetRGBA(x, y, color.RGBA{
				R: channel(base.R, shade, highlight, edge),
				G: channel(base.G, shade, highlight, edge),
				B: channel(base.B, shade, highlight, edge),
				A: uint8(255 * edge * float64(base.A) / 255),
			})
		}
	}
	return img
}

// channel возвращает premultiplied-значение канала.
func channel(c uint8, shade, highlight, alpha float64) uint8 {
	v := float64(c)*shade + 255*highlight
	if v > 255 {
		v = 255
	}
	return uint8(v * alpha)
}
