// Package overlay3d renders display objects onto a CPU raster surface
// that the host application layers over its primary scene. Importing the
// package registers it with the engine:
//
//	import _ "github.com/phanxgames/prism/overlay3d"
//
// after which prism.Engine.InitOverlay (or Switch to
// prism.BackendOverlay) can construct its factory.
package overlay3d

import "github.com/phanxgames/prism"

func init() {
	prism.Register(prism.BackendOverlay, newFactory)
}
