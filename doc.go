// Package prism is a renderer-agnostic UI/graphics toolkit core for mobile
// games. It lets application code build buttons, panels, sliders, and HUDs
// without depending on a concrete renderer, by routing all object creation
// through a backend-neutral factory.
//
// Two backends implement the factory contract:
//
//   - prism/scene2d renders through [Ebitengine] as a retained 2D scene
//     graph with vector path rasterization, TTF text, and shader filters.
//   - prism/overlay3d synthesizes the same contracts on CPU-raster overlay
//     surfaces (via [gg]) composited above a host 3D scene.
//
// # Getting a factory
//
// Applications initialize an [Engine] once at startup and widgets obtain the
// active factory through it (or through [Active] for the [Default] engine):
//
//	import _ "github.com/phanxgames/prism/scene2d"
//
//	if err := prism.Default.Init(prism.Backend2D); err != nil {
//		log.Fatal(err)
//	}
//	f := prism.Active()
//	panel := f.NewContainer()
//	label := f.NewText("Hello", prism.TextStyle{FontSize: 24})
//	panel.AddChild(label)
//
// The overlay backend is linked only when its package is imported, and is
// reachable solely through [Engine.InitOverlay]; see that method for the
// failure semantics.
//
// # Concurrency
//
// Prism is single-threaded by design, like the UI loops it serves. No type
// in this module is safe for concurrent use, and none blocks. Drive
// everything from the host's frame callback.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package prism
