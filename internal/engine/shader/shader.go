// Package shader compiles the GLSL programs used by the window renderer.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/donkey/pkg/math"
)

// Program is a linked GL program with a uniform location cache.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// New compiles and links a program from vertex and fragment sources.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the cached location of name, or -1 if inactive.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// SetInt uploads an integer, e.g. a sampler unit.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Uniform(name), v)
}

// Delete releases the program. Safe to call twice.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name, or -1.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
