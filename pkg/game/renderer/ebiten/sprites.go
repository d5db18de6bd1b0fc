package ebiten

import (
	"io/fs"
	"os"

	// PNG decoder for sprite files
	_ "image/png"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// spriteCacheBytes bounds the decoded sprites kept in memory, costed at 4 bytes per pixel.
const spriteCacheBytes = 64 << 20

type imageLoader func(fsys fs.FS, name string) (*ebiten.Image, error)

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, name)
	return img, err
}

// spriteCache loads <id>.png from the assets directory on first use. Ids without a
// readable file are remembered and drawn as fallback rectangles.
type spriteCache struct {
	fsys    fs.FS
	load    imageLoader
	images  *ristretto.Cache[string, *ebiten.Image]
	missing mapset.Set[string]
	log     logrus.FieldLogger
}

func newSpriteCache(dir string, log logrus.FieldLogger) (*spriteCache, error) {
	return newSpriteCacheFS(os.DirFS(dir), loadImage, log)
}

func newSpriteCacheFS(fsys fs.FS, load imageLoader, log logrus.FieldLogger) (*spriteCache, error) {
	images, err := ristretto.NewCache[string, *ebiten.Image](&ristretto.Config[string, *ebiten.Image]{
		NumCounters: 1000,
		MaxCost:     spriteCacheBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &spriteCache{
		fsys:    fsys,
		load:    load,
		images:  images,
		missing: mapset.New[string](),
		log:     log,
	}, nil
}

// Get returns the image for id, or nil when it has none.
func (c *spriteCache) Get(id string) *ebiten.Image {
	if c.missing.Has(id) {
		return nil
	}
	if img, ok := c.images.Get(id); ok {
		return img
	}

	img, err := c.load(c.fsys, id+".png")
	if err != nil {
		c.missing.Put(id)
		c.log.WithError(err).WithField("sprite", id).Warn("sprite missing, drawing placeholder")
		return nil
	}
	b := img.Bounds()
	c.images.Set(id, img, int64(b.Dx()*b.Dy()*4))
	c.images.Wait()
	return img
}

// Missing reports how many ids fell back to placeholders.
func (c *spriteCache) Missing() int {
	return c.missing.Size()
}

func (c *spriteCache) Close() {
	c.images.Close()
}
