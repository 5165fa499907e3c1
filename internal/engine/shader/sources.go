package shader

// Textured2D draws screen-space quads sampling a texture, tinted per vertex.
// Solid shapes sample a white texel.
// Vertex layout: position(3) + uv(2) + color(4).
const (
	Textured2DVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`
	Textured2DFragment = `#version 410 core
uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = texture(uTexture, vTexCoord) * vColor;
}
`
)

// Lit3D draws world-space geometry with a fixed directional light.
// Vertex layout: position(3) + normal(3) + color(4).
const (
	Lit3DVertex = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec4 vColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vNormal = aNormal;
	vColor = aColor;
}
`
	Lit3DFragment = `#version 410 core
uniform vec3 uLightDir;

in vec3 vNormal;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	FragColor = vec4(vColor.rgb * (0.55 + 0.45 * diffuse), vColor.a);
}
`
)
