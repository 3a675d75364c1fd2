package retrospector

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrTileSize reports a construction-time configuration error: the tile
	// dimensions are not positive or do not evenly divide the atlas
	// dimensions.
	ErrTileSize = errors.New("tile size does not evenly partition atlas")

	// ErrImageMismatch reports a construction-time configuration error: the
	// decoded image does not match the declared format tag or dimensions.
	ErrImageMismatch = errors.New("decoded image does not match declaration")

	// ErrOutOfBounds reports a lookup outside a grid: a sprite address
	// beyond the atlas grid, or a cell address beyond a tile map. The
	// queried value is unaffected.
	ErrOutOfBounds = errors.New("address outside grid")
)

// Sprite is one addressable tile of an [Atlas]: an immutable view holding
// the tile's offset and size within the shared atlas texture. The view does
// not own pixel data, so copying a Sprite never copies pixels, and it stays
// valid as long as the atlas it came from.
type Sprite struct {
	tile *ebiten.Image // sub-image sharing the atlas texture

	// SX, SY are the tile's top-left corner within the atlas image.
	SX, SY int
	// Width, Height are the uniform tile dimensions of the atlas.
	Width, Height int
}

// Atlas partitions a single decoded image into a fixed grid of equally
// sized tiles. The atlas is the sole owner of the decoded texture; sprites
// reference it without copying. Atlases are built once per art asset and
// queried every frame, so the full sprite grid is computed eagerly at
// construction and lookups are O(1) with no per-frame arithmetic.
type Atlas struct {
	texture    *ebiten.Image
	tileWidth  int
	tileHeight int
	columns    int
	rows       int
	sprites    []Sprite // row-major: index = col + row*columns
}

// NewAtlas decodes data as one image of the declared format and size and
// partitions it into tileWidth x tileHeight tiles.
//
// Construction fails with [ErrTileSize] when the tile dimensions are not
// positive or do not evenly divide width and height, and with
// [ErrImageMismatch] when the bytes do not decode, decode to a different
// format than the tag (e.g. "png", "gif"), or decode to different
// dimensions than declared. No partial atlas is ever returned.
func NewAtlas(data []byte, format string, width, height, tileWidth, tileHeight int) (*Atlas, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("retrospector: tile size %dx%d: %w", tileWidth, tileHeight, ErrTileSize)
	}
	if width%tileWidth != 0 || height%tileHeight != 0 {
		return nil, fmt.Errorf("retrospector: atlas %dx%d with %dx%d tiles: %w",
			width, height, tileWidth, tileHeight, ErrTileSize)
	}

	decoded, decodedFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("retrospector: decode atlas image: %w (%v)", ErrImageMismatch, err)
	}
	if decodedFormat != format {
		return nil, fmt.Errorf("retrospector: atlas declared %q but decoded %q: %w",
			format, decodedFormat, ErrImageMismatch)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return nil, fmt.Errorf("retrospector: atlas declared %dx%d but decoded %dx%d: %w",
			width, height, bounds.Dx(), bounds.Dy(), ErrImageMismatch)
	}

	a := &Atlas{
		texture:    ebiten.NewImageFromImage(decoded),
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		columns:    width / tileWidth,
		rows:       height / tileHeight,
	}
	a.sprites = make([]Sprite, 0, a.columns*a.rows)
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.columns; col++ {
			sx := col * tileWidth
			sy := row * tileHeight
			tile := a.texture.SubImage(image.Rect(sx, sy, sx+tileWidth, sy+tileHeight)).(*ebiten.Image)
			a.sprites = append(a.sprites, Sprite{
				tile:   tile,
				SX:     sx,
				SY:     sy,
				Width:  tileWidth,
				Height: tileHeight,
			})
		}
	}
	return a, nil
}

// Columns returns the number of tile columns in the grid.
func (a *Atlas) Columns() int { return a.columns }

// Rows returns the number of tile rows in the grid.
func (a *Atlas) Rows() int { return a.rows }

// TileWidth returns the uniform tile width in pixels.
func (a *Atlas) TileWidth() int { return a.tileWidth }

// TileHeight returns the uniform tile height in pixels.
func (a *Atlas) TileHeight() int { return a.tileHeight }

// Sprite returns the precomputed tile at (col, row). It fails with
// [ErrOutOfBounds] when the address lies outside the grid; the atlas
// remains valid.
func (a *Atlas) Sprite(col, row int) (Sprite, error) {
	if col < 0 || col >= a.columns || row < 0 || row >= a.rows {
		return Sprite{}, fmt.Errorf("retrospector: sprite (%d, %d) in %dx%d atlas grid: %w",
			col, row, a.columns, a.rows, ErrOutOfBounds)
	}
	return a.sprites[col+row*a.columns], nil
}

// SpriteAt returns the tile at the row-major linear index
// col + row*columns. It fails with [ErrOutOfBounds] when index is negative
// or at least columns*rows.
func (a *Atlas) SpriteAt(index int) (Sprite, error) {
	if index < 0 || index >= len(a.sprites) {
		return Sprite{}, fmt.Errorf("retrospector: sprite index %d of %d: %w",
			index, len(a.sprites), ErrOutOfBounds)
	}
	return a.sprites[index], nil
}
