// Package config provides configuration loading and access for the landing engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Layout    LayoutConfig    `yaml:"layout"`
	Sphere    SphereConfig    `yaml:"sphere"`
	Hero      HeroConfig      `yaml:"hero"`
	Blob      BlobConfig      `yaml:"blob"`
	Sections  []SectionConfig `yaml:"sections"`
	Contact   ContactConfig   `yaml:"contact"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	HighDPI    bool   `yaml:"high_dpi"`
	Background string `yaml:"background"` // hex colour of the page
}

// FieldConfig holds particle field parameters.
// Speeds and forces are expressed per reference frame (see ReferenceFPS).
type FieldConfig struct {
	Cap           int     `yaml:"cap"`            // Maximum particle count
	Density       float64 `yaml:"density"`        // Viewport px² per particle
	MaxSpeed      float64 `yaml:"max_speed"`      // Initial per-axis speed bound
	RadiusMin     float64 `yaml:"radius_min"`     // Dot radius range
	RadiusMax     float64 `yaml:"radius_max"`
	OpacityMin    float64 `yaml:"opacity_min"`    // Dot opacity range
	OpacityMax    float64 `yaml:"opacity_max"`
	LinkDistance  float64 `yaml:"link_distance"`  // Max distance for a connecting line
	LinkAlpha     float64 `yaml:"link_alpha"`     // Line alpha at zero distance
	LinkWidth     float64 `yaml:"link_width"`     // Line width in CSS px
	WrapMargin    float64 `yaml:"wrap_margin"`    // Off-screen margin before wrapping
	PointerRadius float64 `yaml:"pointer_radius"` // Repulsion radius
	PointerForce  float64 `yaml:"pointer_force"`  // Peak repulsion per reference frame
	Damping       float64 `yaml:"damping"`        // Velocity factor per reference frame
	MaxDelta      float64 `yaml:"max_delta"`      // Clamp for frame delta (seconds)
	ReferenceFPS  float64 `yaml:"reference_fps"`  // Frame rate the per-frame constants assume
}

// OffsetConfig anchors a point of the tracked element to a point of the viewport.
// Target and Viewport are fractions: 0 = start (top), 1 = end (bottom).
type OffsetConfig struct {
	Target   float64 `yaml:"target"`
	Viewport float64 `yaml:"viewport"`
}

// RangeConfig is the scroll range tracked for a section.
type RangeConfig struct {
	Start OffsetConfig `yaml:"start"`
	End   OffsetConfig `yaml:"end"`
}

// TableConfig is a breakpoint table: ascending breakpoints with one output each.
type TableConfig struct {
	Breakpoints []float64 `yaml:"breakpoints"`
	Values      []float64 `yaml:"values"`
}

// ChannelsConfig holds the breakpoint table of every derived visual channel.
type ChannelsConfig struct {
	BackgroundOpacity TableConfig `yaml:"background_opacity"`
	ContentOpacity    TableConfig `yaml:"content_opacity"`
	LogoScale         TableConfig `yaml:"logo_scale"`
	LogoOpacity       TableConfig `yaml:"logo_opacity"`
	TextOffset        TableConfig `yaml:"text_offset"`
	TextOpacity       TableConfig `yaml:"text_opacity"`
	TagsOpacity       TableConfig `yaml:"tags_opacity"`
}

// ScrollConfig holds scroll mapping and navigation parameters.
type ScrollConfig struct {
	Range        RangeConfig    `yaml:"range"`
	Channels     ChannelsConfig `yaml:"channels"`
	ActiveProbe  float64        `yaml:"active_probe"`  // Viewport fraction probed for the active section
	NavThreshold float64        `yaml:"nav_threshold"` // Nav shows once scrollY > this * viewport height
	SmoothRate   float64        `yaml:"smooth_rate"`   // Exponential approach rate for scroll-to (1/s)
	WheelStep    float64        `yaml:"wheel_step"`    // Pixels per wheel notch
}

// LayoutConfig holds block heights in viewport-height units.
type LayoutConfig struct {
	HeroVH    float64 `yaml:"hero_vh"`
	SectionVH float64 `yaml:"section_vh"`
	FooterVH  float64 `yaml:"footer_vh"`
}

// LightConfig describes a coloured point light around the hero sphere.
type LightConfig struct {
	Color     string     `yaml:"color"`
	Intensity float64    `yaml:"intensity"`
	Position  [3]float64 `yaml:"position"`
	Distance  float64    `yaml:"distance"`
}

// SphereConfig holds the hero sphere follower parameters.
type SphereConfig struct {
	Model            string        `yaml:"model"` // glTF file; empty or missing = primitive sphere
	Radius           float64       `yaml:"radius"`
	Color            string        `yaml:"color"`
	FollowRange      float64       `yaml:"follow_range"`
	FollowSpeed      float64       `yaml:"follow_speed"`
	RotationRange    float64       `yaml:"rotation_range"`
	RotationSpeed    float64       `yaml:"rotation_speed"`
	AutoSpinSpeed    float64       `yaml:"auto_spin_speed"`
	MaxDelta         float64       `yaml:"max_delta"`
	ReferenceFPS     float64       `yaml:"reference_fps"`
	CameraDistance   float64       `yaml:"camera_distance"`
	MobileDistance   float64       `yaml:"mobile_distance"`
	MobileBreakpoint int           `yaml:"mobile_breakpoint"`
	FOV              float64       `yaml:"fov"`
	Lights           []LightConfig `yaml:"lights"`
}

// HeroConfig holds the landing hero text and entrance timing.
type HeroConfig struct {
	FirstName    string     `yaml:"first_name"`
	LastName     string     `yaml:"last_name"`
	Subtitle     string     `yaml:"subtitle"`
	Delay        float64    `yaml:"delay"`         // Seconds before the first letter starts
	Stagger      float64    `yaml:"stagger"`       // Seconds between consecutive letters
	Duration     float64    `yaml:"duration"`      // Seconds per letter
	Ease         [4]float64 `yaml:"ease"`          // Cubic-bezier control points
	LetterOffset float64    `yaml:"letter_offset"` // Initial downward offset in px
}

// BlobConfig holds the looping decorative blob behind each section.
type BlobConfig struct {
	Duration float64   `yaml:"duration"`
	Times    []float64 `yaml:"times"`
	X        []float64 `yaml:"x"`
	Y        []float64 `yaml:"y"`
	Scale    []float64 `yaml:"scale"`
	Radius   float64   `yaml:"radius"`
	Alpha    float64   `yaml:"alpha"`
}

// SectionConfig describes one scroll section of the timeline.
type SectionConfig struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Role        string   `yaml:"role"`
	Period      string   `yaml:"period"`
	Type        string   `yaml:"type"` // experience | education
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
	Color       string   `yaml:"color"`
	Gradient    []string `yaml:"gradient"` // from, via, to
	DarkText    bool     `yaml:"dark_text"`
	Logo        string   `yaml:"logo"`
	LogoText    string   `yaml:"logo_text"`
}

// LinkConfig is a labelled external link.
type LinkConfig struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// ContactConfig holds the footer content.
type ContactConfig struct {
	Email    string       `yaml:"email"`
	Links    []LinkConfig `yaml:"links"`
	Location string       `yaml:"location"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int     `yaml:"perf_window"`  // Frames averaged by the perf collector
	LogInterval float64 `yaml:"log_interval"` // Seconds between perf log lines

	BookmarkHistory int `yaml:"bookmark_history"` // Stats windows averaged by the bookmark detector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    float32        // Screen.Width as float32
	ScreenH32    float32        // Screen.Height as float32
	FrameDT      float64        // 1 / Screen.TargetFPS
	SectionIndex map[string]int // id -> declaration index
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Merge overlays YAML data onto cfg. Only keys present in data are overwritten;
// lists (sections, lights, tables) are replaced as a whole.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// validate checks values that would otherwise break the engine at runtime.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Field.Density <= 0 {
		return fmt.Errorf("field.density must be positive, got %v", c.Field.Density)
	}
	if c.Field.Cap < 0 {
		return fmt.Errorf("field.cap must not be negative, got %d", c.Field.Cap)
	}
	if c.Field.RadiusMax < c.Field.RadiusMin {
		return fmt.Errorf("field.radius_max %v below radius_min %v", c.Field.RadiusMax, c.Field.RadiusMin)
	}
	if c.Field.OpacityMax < c.Field.OpacityMin {
		return fmt.Errorf("field.opacity_max %v below opacity_min %v", c.Field.OpacityMax, c.Field.OpacityMin)
	}
	if c.Layout.SectionVH <= 0 {
		return fmt.Errorf("layout.section_vh must be positive, got %v", c.Layout.SectionVH)
	}

	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections[%d]: empty id", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)

	// Per-frame constants default to the display rate they were tuned at
	if c.Field.ReferenceFPS <= 0 {
		c.Field.ReferenceFPS = 60
	}
	if c.Sphere.ReferenceFPS <= 0 {
		c.Sphere.ReferenceFPS = 60
	}
	if c.Scroll.ActiveProbe == 0 {
		c.Scroll.ActiveProbe = 0.5
	}

	c.Derived.SectionIndex = make(map[string]int, len(c.Sections))
	for i, s := range c.Sections {
		c.Derived.SectionIndex[s.ID] = i
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
