// Package sceneconfig loads the scalar render parameters spec.md §6
// exposes through World's fluent builder from a YAML document, so a scene
// can be tuned from the command line without recompiling it.
package sceneconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dlford-labs/pathtrace/pkg/camera"
	"github.com/dlford-labs/pathtrace/pkg/core"
)

// Config is the YAML shape consumed by Load. Camera is optional: a zero
// value means the caller supplies its own camera.
type Config struct {
	Width           int `yaml:"width"`
	SamplesPerPixel int `yaml:"samples_per_pixel"`
	MaxDepth        int `yaml:"max_depth"`

	Camera *CameraConfig `yaml:"camera,omitempty"`
}

// CameraConfig mirrors camera.Config's fields in YAML-friendly form.
type CameraConfig struct {
	LookFrom    [3]float64 `yaml:"look_from"`
	LookAt      [3]float64 `yaml:"look_at"`
	Up          [3]float64 `yaml:"up"`
	VFov        float64    `yaml:"vfov"`
	AspectRatio float64    `yaml:"aspect_ratio"`
	Aperture    float64    `yaml:"aperture"`
	FocusDist   float64    `yaml:"focus_dist"`
}

// Load reads and parses a scene-parameter YAML document.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sceneconfig: failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildCamera converts the parsed camera block into a camera.Camera. It
// returns nil, nil when the document has no camera block.
func (c *Config) BuildCamera() (*camera.Camera, error) {
	if c.Camera == nil {
		return nil, nil
	}
	cc := c.Camera
	if cc.AspectRatio <= 0 {
		return nil, fmt.Errorf("sceneconfig: camera.aspect_ratio must be > 0, got %f", cc.AspectRatio)
	}
	if cc.FocusDist <= 0 {
		return nil, fmt.Errorf("sceneconfig: camera.focus_dist must be > 0, got %f", cc.FocusDist)
	}

	return camera.New(camera.Config{
		LookFrom:    vec3From(cc.LookFrom),
		LookAt:      vec3From(cc.LookAt),
		Up:          vec3From(cc.Up),
		VFov:        cc.VFov,
		AspectRatio: cc.AspectRatio,
		Aperture:    cc.Aperture,
		FocusDist:   cc.FocusDist,
	}), nil
}

func vec3From(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
