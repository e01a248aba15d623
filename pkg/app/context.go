// Package app owns the SDL windows, the OpenGL pipeline and the
// per-frame loop. Every handle lives on an explicit Context; acquisition
// order is fixed and Close releases in strict reverse order.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Config contains window placement and resource locations
type Config struct {
	WindowWidth  int32
	WindowHeight int32
	MainX, MainY int32 // main (GL) window position
	InfoX, InfoY int32 // debug (text) window position

	ResourceDir    string // empty means the executable's base directory
	FontPath       string // relative to ResourceDir
	FontSize       int
	VertexShader   string // relative to ResourceDir
	FragmentShader string // relative to ResourceDir
}

// DefaultConfig returns the stock two-window layout
func DefaultConfig() Config {
	return Config{
		WindowWidth:    900,
		WindowHeight:   900,
		MainX:          20,
		MainY:          20,
		InfoX:          940,
		InfoY:          20,
		FontPath:       filepath.Join("resources", "fonts", "IosevkaNerdFont-Regular.ttf"),
		FontSize:       24,
		VertexShader:   filepath.Join("resources", "shaders", "shader.vert"),
		FragmentShader: filepath.Join("resources", "shaders", "shader.frag"),
	}
}

// Context owns every window, GL and font handle for the sandbox
type Context struct {
	config Config

	sdlReady bool
	ttfReady bool
	font     *ttf.Font

	mainWindow *sdl.Window
	glContext  sdl.GLContext

	program     uint32
	vbo         uint32
	ebo         uint32
	vao         uint32
	viewUniform int32

	infoWindow *sdl.Window
	renderer   *sdl.Renderer
}

// NewContext initializes SDL, SDL_ttf, both windows, the GL pipeline and
// the debug renderer. On any failure everything acquired so far is
// released before the error is returned.
func NewContext(config Config) (*Context, error) {
	ctx := &Context{config: config}
	if err := ctx.init(); err != nil {
		ctx.Close()
		return nil, err
	}
	return ctx, nil
}

func (c *Context) init() error {
	if err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL: %v", err)
	}
	c.sdlReady = true

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("failed to initialize SDL_ttf: %v", err)
	}
	c.ttfReady = true

	baseDir := c.config.ResourceDir
	if baseDir == "" {
		var err error
		if baseDir, err = BaseDir(); err != nil {
			return err
		}
	}

	font, err := ttf.OpenFont(filepath.Join(baseDir, c.config.FontPath), c.config.FontSize)
	if err != nil {
		return fmt.Errorf("failed to open font %s: %v", c.config.FontPath, err)
	}
	c.font = font

	// Attributes must be set before the GL window exists
	attributes := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_FLAGS, 0},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 4},
		{sdl.GL_CONTEXT_MINOR_VERSION, 6},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_DEPTH_SIZE, 24},
		{sdl.GL_STENCIL_SIZE, 8},
	}
	for _, a := range attributes {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("failed to set GL attribute %d: %v", a.attr, err)
		}
	}

	c.mainWindow, err = sdl.CreateWindow("Main",
		c.config.MainX, c.config.MainY,
		c.config.WindowWidth, c.config.WindowHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create main window: %v", err)
	}

	c.glContext, err = c.mainWindow.GLCreateContext()
	if err != nil {
		return fmt.Errorf("failed to create OpenGL context: %v", err)
	}

	if err := gl.InitWithProcAddrFunc(sdl.GLGetProcAddress); err != nil {
		return fmt.Errorf("failed to load OpenGL functions: %v", err)
	}

	vertexSource, err := LoadResource(baseDir, c.config.VertexShader)
	if err != nil {
		return err
	}
	fragmentSource, err := LoadResource(baseDir, c.config.FragmentShader)
	if err != nil {
		return err
	}

	c.program, err = linkProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return err
	}
	c.viewUniform = gl.GetUniformLocation(c.program, gl.Str("view\x00"))

	c.createQuad()

	c.infoWindow, err = sdl.CreateWindow("Info",
		c.config.InfoX, c.config.InfoY,
		c.config.WindowWidth, c.config.WindowHeight,
		sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("failed to create info window: %v", err)
	}

	c.renderer, err = sdl.CreateRenderer(c.infoWindow, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %v", err)
	}

	return nil
}

// createQuad uploads the static quad geometry and records the attribute
// layout (interleaved position + color) in a vertex array object.
func (c *Context) createQuad() {
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)
}

// Close releases all handles in reverse order of acquisition. Safe to
// call on a partially initialized context and safe to call twice.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Destroy()
		c.renderer = nil
	}
	if c.infoWindow != nil {
		c.infoWindow.Destroy()
		c.infoWindow = nil
	}

	// GL object deletion needs the context current
	if c.mainWindow != nil && c.glContext != nil {
		c.mainWindow.GLMakeCurrent(c.glContext)
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
		c.ebo = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
	if c.program != 0 {
		gl.DeleteProgram(c.program)
		c.program = 0
	}

	if c.glContext != nil {
		sdl.GLDeleteContext(c.glContext)
		c.glContext = nil
	}
	if c.mainWindow != nil {
		c.mainWindow.Destroy()
		c.mainWindow = nil
	}
	if c.font != nil {
		c.font.Close()
		c.font = nil
	}
	if c.ttfReady {
		ttf.Quit()
		c.ttfReady = false
	}
	if c.sdlReady {
		sdl.Quit()
		c.sdlReady = false
	}
}
