// Package retrospector is a minimal 2D rendering and input loop for
// [Ebitengine] surfaces.
//
// Retrospector owns a frame loop, a keyboard level tracker, and a sprite
// atlas for blitting rectangular tiles of a single image. It deliberately
// provides no scene graph, physics, or asset pipeline: it is the substrate
// an application's per-tick update/render callback pair runs on.
//
// # Quick start
//
// Implement [App] for your game object and hand it to [Run]:
//
//	type game struct {
//		atlas *retrospector.Atlas
//		at    retrospector.Location
//	}
//
//	func (g *game) Update(elapsedTime float64, keys *retrospector.KeyState) {
//		if keys.IsDown(retrospector.KeyArrowRight) {
//			g.at.DX += 2
//		}
//	}
//
//	func (g *game) Render(r *retrospector.Renderer) {
//		r.Clear()
//		sprite, _ := g.atlas.Sprite(0, 0)
//		r.DrawImage(sprite, g.at)
//	}
//
//	func main() {
//		atlas, err := retrospector.NewAtlas(tiles, "png", 64, 32, 32, 32)
//		if err != nil {
//			log.Fatal(err)
//		}
//		err = retrospector.Run(&game{atlas: atlas}, retrospector.Config{
//			Title: "my game", Width: 352, Height: 352,
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Tick contract
//
// Each tick invokes exactly once, in order: App.Update with the elapsed
// time in milliseconds and a key-state snapshot fixed for the whole tick,
// then App.Render against the [Renderer]. Tick N completes before tick N+1
// begins; there is no overlap and no reentrancy. The loop has no stop API:
// it runs until the host window is torn down.
//
// # Sprite atlases
//
// [NewAtlas] decodes one image and partitions it into a uniform grid of
// tiles addressable by (column, row) or by row-major linear index. Every
// [Sprite] is a non-owning view into the atlas texture; pixel data is never
// copied.
//
// [Ebitengine]: https://ebitengine.org
package retrospector
