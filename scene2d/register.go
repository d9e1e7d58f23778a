// Package scene2d is the ebiten-backed 2D backend. Importing it registers
// the backend with prism; applications that only need the side effect use a
// blank import:
//
//	import _ "github.com/phanxgames/prism/scene2d"
//
// Display objects are created through the prism.Factory obtained from an
// engine, never directly. Rendering happens through a Renderer driven from
// the application's ebiten draw callback.
package scene2d

import "github.com/phanxgames/prism"

func init() {
	prism.Register(prism.Backend2D, func() (prism.Factory, error) {
		return factory2d{}, nil
	})
}
