//go:build !android

package glhost

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Disc vertex shader: point sprites sized to the circle's outer radius in
// viewport pixels, plus one pixel of padding for the antialiased edge.
const discVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in float aOuter;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aInner;

uniform vec2 uResolution;
uniform float uScale;

out vec4 vColor;
out float vOuter;
out float vInner;
out float vSize;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vSize = (2.0 * aOuter + 2.0) * uScale;
    gl_PointSize = max(1.0, vSize);
    vOuter = aOuter * uScale;
    vInner = aInner * uScale;
    vColor = aColor;
}
` + "\x00"

// Disc fragment shader: filled disc when vInner is zero, ring otherwise.
const discFragSrc = `#version 410 core

in vec4 vColor;
in float vOuter;
in float vInner;
in float vSize;
out vec4 FragColor;

void main() {
    float d = length(gl_PointCoord - vec2(0.5)) * vSize;
    float cover = clamp(vOuter + 0.5 - d, 0.0, 1.0);
    if (vInner > 0.0) {
        cover *= clamp(d - vInner + 0.5, 0.0, 1.0);
    }
    if (cover <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * cover);
}
` + "\x00"

// Line vertex shader: CPU-expanded quads, one colour per vertex.
const lineVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

uniform vec2 uResolution;

out vec4 vColor;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vColor = aColor;
}
` + "\x00"

const lineFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
` + "\x00"

// Gradient vertex shader: rectangle corners in viewport pixels.
const gradVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform vec2 uResolution;

out vec2 vPos;

void main() {
    vec2 ndc = (aPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    vPos = aPos;
}
` + "\x00"

// Gradient fragment shader: two-stop radial blend, clamped past the outer circle.
const gradFragSrc = `#version 410 core

uniform vec2 uCenter;
uniform float uR0;
uniform float uR1;
uniform vec4 uInner;
uniform vec4 uOuter;

in vec2 vPos;
out vec4 FragColor;

void main() {
    float span = max(uR1 - uR0, 0.0001);
    float t = clamp((length(vPos - uCenter) - uR0) / span, 0.0, 1.0);
    FragColor = mix(uInner, uOuter, t);
}
` + "\x00"

// Text vertex shader: glyph quads in viewport pixels.
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
