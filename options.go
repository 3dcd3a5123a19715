package glquad

// Profile selects the OpenGL context profile.
type Profile int

const (
	// ProfileCore requests a core context. No default vertex array exists,
	// so the quad is always drawn through its own.
	ProfileCore Profile = iota
	// ProfileCompatibility requests a compatibility context.
	ProfileCompatibility
)

func (p Profile) String() string {
	if p == ProfileCompatibility {
		return "compatibility"
	}
	return "core"
}

// Config holds window, context and rendering settings.
type Config struct {
	Width, Height int
	Title         string
	Hidden        bool

	VersionMajor, VersionMinor int
	Profile                    Profile
	SwapInterval               int

	ShaderPath   string
	ColorUniform string
	ClearColor   [4]float32

	// HotReload rebuilds the program when the shader resource changes.
	HotReload bool
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns a 640x480 window with a GL 3.3 core context and vsync.
func DefaultConfig() Config {
	return Config{
		Width:        640,
		Height:       480,
		Title:        "Hello World",
		VersionMajor: 3,
		VersionMinor: 3,
		Profile:      ProfileCore,
		SwapInterval: 1,
		ShaderPath:   "res/shaders/Basic.shader",
		ColorUniform: "u_Color",
		ClearColor:   [4]float32{0, 0, 0, 1},
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithHidden creates the window invisible, for offscreen capture.
func WithHidden(hidden bool) Option {
	return func(c *Config) { c.Hidden = hidden }
}

// WithVersion sets the requested OpenGL context version.
func WithVersion(major, minor int) Option {
	return func(c *Config) { c.VersionMajor, c.VersionMinor = major, minor }
}

// WithProfile sets the context profile.
func WithProfile(p Profile) Option {
	return func(c *Config) { c.Profile = p }
}

// WithSwapInterval sets the buffer swap interval; 0 disables vsync.
func WithSwapInterval(n int) Option {
	return func(c *Config) { c.SwapInterval = n }
}

// WithShaderPath sets the shader resource path.
func WithShaderPath(path string) Option {
	return func(c *Config) { c.ShaderPath = path }
}

// WithColorUniform sets the name of the animated vec4 uniform.
func WithColorUniform(name string) Option {
	return func(c *Config) { c.ColorUniform = name }
}

// WithClearColor sets the frame clear color.
func WithClearColor(rgba [4]float32) Option {
	return func(c *Config) { c.ClearColor = rgba }
}

// WithHotReload enables rebuilding the program when the shader resource changes.
func WithHotReload(on bool) Option {
	return func(c *Config) { c.HotReload = on }
}
