package shader

import _ "embed"

// SceneVertexShader transforms colored cube vertices by projection, view and model.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader writes the interpolated vertex color.
//
//go:embed scene.frag
var SceneFragmentShader string
