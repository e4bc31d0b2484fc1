package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Background vertex shader: fullscreen unit quad.
const bgVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 ndc = aPos * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Background fragment shader: vertical gradient, top colour to bottom colour.
const bgFragSrc = `#version 410 core

uniform vec3 uTop;
uniform vec3 uBottom;

in vec2 vUV;
out vec4 FragColor;

void main() {
    FragColor = vec4(mix(uTop, uBottom, vUV.y), 1.0);
}
` + "\x00"

// Panel vertex shader: one rounded rectangle per draw, placed in screen
// pixel space via uniforms.
const panelVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec4 uRect; // x, y, w, h in pixels
uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 px = uRect.xy + aPos * uRect.zw;
    vec2 ndc = (px / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Panel fragment shader: rounded-rect SDF with fill, border ring, and an
// optional top sheen for the glass look.
const panelFragSrc = `#version 410 core

uniform vec4 uRect;
uniform float uRadius;
uniform vec4 uFill;
uniform vec4 uBorderCol;
uniform float uBorderW;
uniform float uSheen;

in vec2 vUV;
out vec4 FragColor;

float roundedBox(vec2 p, vec2 halfSize, float r) {
    vec2 q = abs(p) - halfSize + vec2(r);
    return length(max(q, vec2(0.0))) + min(max(q.x, q.y), 0.0) - r;
}

void main() {
    vec2 halfSize = uRect.zw * 0.5;
    vec2 p = (vUV - vec2(0.5)) * uRect.zw;
    float d = roundedBox(p, halfSize, uRadius);
    if (d > 0.0) discard;

    vec4 col = uFill;
    if (uSheen > 0.0) {
        float sheen = uSheen * max(0.0, 1.0 - vUV.y * 2.0);
        col.rgb += vec3(sheen);
        col.a = max(col.a, sheen);
    }
    if (d > -uBorderW) {
        col = uBorderCol;
    }
    // Soft edge: fade the outermost pixel.
    col.a *= clamp(-d, 0.0, 1.0);
    FragColor = col;
}
` + "\x00"

// Cell vertex shader: point sprites in screen pixel space with
// per-vertex pos/size/color/shape kind.
const cellVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;   // centre, pixels
layout(location = 1) in float aSize; // pixels
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aKind;

uniform vec2 uResolution;

out vec4 vColor;
out float vKind;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, floor(aSize + 0.5));
    vColor = aColor;
    vKind = aKind;
}
` + "\x00"

// Cell fragment shader: shape selected by kind (rounded snake segment,
// glossy food sphere, bordered obstacle block, or soft shadow blob).
const cellFragSrc = `#version 410 core

in vec4 vColor;
in float vKind;
out vec4 FragColor;

float roundedBox(vec2 p, vec2 halfSize, float r) {
    vec2 q = abs(p) - halfSize + vec2(r);
    return length(max(q, vec2(0.0))) + min(max(q.x, q.y), 0.0) - r;
}

void main() {
    vec2 p = gl_PointCoord - vec2(0.5); // -0.5..0.5
    vec3 col = vColor.rgb;
    float a = vColor.a;

    if (vKind < 0.5) {
        // Snake segment: rounded square, corner radius a third of the size.
        float d = roundedBox(p, vec2(0.5), 1.0 / 3.0);
        if (d > 0.0) discard;
    } else if (vKind < 1.5) {
        // Food: glossy sphere with an off-centre highlight.
        float dist = length(p) * 2.0;
        if (dist > 1.0) discard;
        vec2 hi = p - vec2(-0.13, -0.18);
        float gloss = max(0.0, 1.0 - length(hi) * 3.4);
        col = mix(col, vec3(1.0), gloss * 0.35);
        col *= 0.85 + 0.15 * (1.0 - dist);
    } else if (vKind < 2.5) {
        // Obstacle: rounded square, tighter corners.
        float d = roundedBox(p, vec2(0.5), 0.25);
        if (d > 0.0) discard;
    } else {
        // Shadow: soft dark ellipse.
        float dist = length(p) * 2.0;
        float fall = clamp(1.0 - dist, 0.0, 1.0);
        a *= fall * fall * 2.0;
        if (a < 0.01) discard;
    }

    FragColor = vec4(col, a);
}
` + "\x00"

// Text vertex shader: screen-space textured quads for font rendering.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// Text fragment shader: font atlas sampling with color tint.
const textFragSrc = `#version 410 core

uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    vec4 t = texture(uFontTex, vUV);
    if (t.a < 0.01) discard;
    FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
