package app

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// compileShader compiles a single shader stage from GLSL source and
// returns its handle, or the info log on failure.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %s", log)
	}

	return shader, nil
}

// linkProgram links a vertex/fragment pair into a program. The stages
// are detached and deleted regardless of the link outcome.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %v", err)
	}

	fragment, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return 0, fmt.Errorf("fragment shader: %v", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	gl.DetachShader(program, fragment)
	gl.DetachShader(program, vertex)

	gl.DeleteShader(fragment)
	gl.DeleteShader(vertex)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link shader program: %s", log)
	}

	return program, nil
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength)+1)
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength)+1)
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}
