// Package backend defines the native drawing capability behind a device
// context.
//
// A Renderer binds a Context to a Target (a memory image, a window
// surface, a printer page). The Context is a transform-aware drawing
// surface with a state stack, clipping, composition modes, paths and
// text. Concrete backends live in sub-packages:
//
//   - backend/raster: software rendering into any draw.Image
//   - backend/recording: records calls as typed commands (tests, replay)
//
// # Registry
//
// Renderers are looked up through an explicit Registry owned by the
// application:
//
//	reg := backend.NewRegistry("raster")
//	raster.Register(reg)
//	recording.Register(reg)
//
//	r, err := reg.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx, err := r.NewContext(image.NewRGBA(image.Rect(0, 0, 640, 480)))
//
// # Optional capabilities
//
// Contexts may also implement Snapshotter (read back surface pixels,
// needed as a blit source) and Pager (paged output).
package backend
