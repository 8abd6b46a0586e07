package renderer

// terrainVertexShader transforms world-space terrain vertices and
// forwards normals and UVs for lighting and projection texturing.
const terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec2 vUV;
out float vHeight;

void main() {
    gl_Position = uViewProj * vec4(aPos, 1.0);
    vNormal = aNormal;
    vUV = aUV;
    vHeight = aPos.y;
}
`

// terrainFragmentShader applies a single directional light. When a
// projection texture is bound it supplies the albedo; otherwise the
// surface is shaded by height between two base colors.
const terrainFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec2 vUV;
in float vHeight;

uniform vec3 uLightDir;
uniform vec3 uLowColor;
uniform vec3 uHighColor;
uniform float uHeightSpan;
uniform int uUseTexture;
uniform sampler2D uAlbedo;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uLightDir)), 0.0);
    float light = 0.25 + 0.75 * diffuse;

    vec3 albedo;
    if (uUseTexture == 1) {
        albedo = texture(uAlbedo, vUV).rgb;
    } else {
        float t = clamp(vHeight / max(uHeightSpan, 0.001), 0.0, 1.0);
        albedo = mix(uLowColor, uHighColor, t);
    }

    FragColor = vec4(albedo * light, 1.0);
}
`
