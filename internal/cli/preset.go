package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Preset mirrors the generate command's configuration surface in a TOML
// file, so a set of tuned parameters can be reused across exports.
type Preset struct {
	HorizImage string `toml:"horiz_image"`
	VertImage  string `toml:"vert_image"`
	Output     string `toml:"output"`

	WidthInPixels          int     `toml:"width_in_pixels"`
	CellSize               float64 `toml:"cell_size"`
	WallWidth              float64 `toml:"wall_width"`
	BottomThk              float64 `toml:"bottom_thk"`
	LayerHeight            float64 `toml:"layer_height"`
	DoHorizImage           *bool   `toml:"do_horiz_image"`
	DoVertImage            *bool   `toml:"do_vert_image"`
	NumberOfColorsOverride int     `toml:"number_of_colors_override"`
	PlusWalls              bool    `toml:"plus_walls"`
	AdaptiveLevels         bool    `toml:"adaptive_levels"`
}

// loadPreset reads and decodes a TOML preset file.
func loadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset %s: %w", path, err)
	}
	return p, nil
}

// apply overlays the preset onto opts. A preset value is used only when it
// is set in the file and its flag was not given explicitly, so flags win
// over presets and presets win over built-in defaults.
func (p Preset) apply(opts *generateOpts, flagChanged func(string) bool) {
	if p.HorizImage != "" && !flagChanged("horiz") {
		opts.horizImage = p.HorizImage
	}
	if p.VertImage != "" && !flagChanged("vert") {
		opts.vertImage = p.VertImage
	}
	if p.Output != "" && !flagChanged("output") {
		opts.output = p.Output
	}
	if p.WidthInPixels != 0 && !flagChanged("width") {
		opts.params.WidthInPixels = p.WidthInPixels
	}
	if p.CellSize != 0 && !flagChanged("cell-size") {
		opts.params.CellSize = p.CellSize
	}
	if p.WallWidth != 0 && !flagChanged("wall-width") {
		opts.params.WallWidth = p.WallWidth
	}
	if p.BottomThk != 0 && !flagChanged("bottom") {
		opts.params.BottomThk = p.BottomThk
	}
	if p.LayerHeight != 0 && !flagChanged("layer-height") {
		opts.params.LayerHeight = p.LayerHeight
	}
	if p.DoHorizImage != nil && !flagChanged("do-horiz") {
		opts.params.DoHorizImage = *p.DoHorizImage
	}
	if p.DoVertImage != nil && !flagChanged("do-vert") {
		opts.params.DoVertImage = *p.DoVertImage
	}
	if p.NumberOfColorsOverride != 0 && !flagChanged("colors") {
		opts.params.NumberOfColorsOverride = p.NumberOfColorsOverride
	}
	if p.PlusWalls && !flagChanged("plus-walls") {
		opts.params.PlusWalls = true
	}
	if p.AdaptiveLevels && !flagChanged("adaptive-levels") {
		opts.adaptive = true
	}
}
