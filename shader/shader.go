package shader

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShaderSourceGL = `#version 410 core
out vec4 color;
void main() {
    color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// ──────────────────────────────────── GLES ──────────────────────────────────────

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShaderSourceGLES = `#version 300 es
precision mediump float;
out vec4 color;
void main() {
    color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// ─────────────────────────────── WebGL2 (translated) ────────────────────────────

// The WebGL2 sources carry no layout qualifiers; the translator assigns
// attribute locations and position is bound to 0 before linking.
const vertexShaderSourceWebGL2 = `#version 300 es
in vec2 position;
void main() {
    gl_Position = vec4(position, 0.0, 1.0);
}
`

const fragmentShaderSourceWebGL2 = `#version 300 es
precision mediump float;
out vec4 color;
void main() {
    color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// PositionAttribute is the vertex input every stage reads the quad corner from.
const PositionAttribute = "position"

// Sources holds a vertex/fragment pair.
type Sources struct {
	Vertex   string
	Fragment string
}

// Native returns sources that compile directly on the current context.
func Native(isGLES bool) Sources {
	if isGLES {
		return Sources{Vertex: vertexShaderSourceGLES, Fragment: fragmentShaderSourceGLES}
	}
	return Sources{Vertex: vertexShaderSourceGL, Fragment: fragmentShaderSourceGL}
}

// WebGL2 returns the portable pair fed to the shader translator.
func WebGL2() Sources {
	return Sources{Vertex: vertexShaderSourceWebGL2, Fragment: fragmentShaderSourceWebGL2}
}
