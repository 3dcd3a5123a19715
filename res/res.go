// Package res provides the embedded default shader resource.
package res

import _ "embed"

// BasicShader is the two-section shader resource drawn by the example:
// a pass-through position vertex stage and a fragment stage that outputs
// the u_Color uniform.
//
//go:embed shaders/Basic.shader
var BasicShader string
