package config

import (
	"fmt"

	"beautty"
)

// StyleSpec is a style as written in a config file. Nil fields are unset,
// so a sheet entry only overrides what it names.
type StyleSpec struct {
	Foreground      *string  `toml:"fg" yaml:"fg"`
	Background      *string  `toml:"bg" yaml:"bg"`
	Emphasis        []string `toml:"emphasis" yaml:"emphasis"`
	Padding         []int    `toml:"padding" yaml:"padding"`
	Margin          []int    `toml:"margin" yaml:"margin"`
	Border          *bool    `toml:"border" yaml:"border"`
	BorderVariant   *string  `toml:"border_variant" yaml:"border_variant"`
	BorderThickness *int     `toml:"border_thickness" yaml:"border_thickness"`
	BorderRadius    *bool    `toml:"border_radius" yaml:"border_radius"`
	BorderColor     *string  `toml:"border_color" yaml:"border_color"`
	Width           *string  `toml:"width" yaml:"width"`
	Height          *string  `toml:"height" yaml:"height"`
	MinWidth        *int     `toml:"min_width" yaml:"min_width"`
	MinHeight       *int     `toml:"min_height" yaml:"min_height"`
	MaxWidth        *int     `toml:"max_width" yaml:"max_width"`
	MaxHeight       *int     `toml:"max_height" yaml:"max_height"`
	Display         *string  `toml:"display" yaml:"display"`
	Direction       *string  `toml:"direction" yaml:"direction"`
	Justify         *string  `toml:"justify" yaml:"justify"`
	Align           *string  `toml:"align" yaml:"align"`
	Grow            *float64 `toml:"grow" yaml:"grow"`
	Shrink          *float64 `toml:"shrink" yaml:"shrink"`
	Basis           *string  `toml:"basis" yaml:"basis"`
	Header          *string  `toml:"header" yaml:"header"`
}

// Style converts the spec. Unknown values are skipped and reported as
// warnings; they never fail the conversion.
func (sp StyleSpec) Style() (beautty.Style, []string) {
	var s beautty.Style
	var warnings []string
	warn := func(field, value string) {
		warnings = append(warnings, fmt.Sprintf("%s: unknown value %q", field, value))
	}

	color := func(field string, v *string, set func(beautty.Color)) {
		if v == nil {
			return
		}
		if c, ok := beautty.ParseColor(*v); ok {
			set(c)
		} else {
			warn(field, *v)
		}
	}
	color("fg", sp.Foreground, func(c beautty.Color) { s = s.Foreground(c) })
	color("bg", sp.Background, func(c beautty.Color) { s = s.Background(c) })
	color("border_color", sp.BorderColor, func(c beautty.Color) { s = s.BorderColor(c) })

	if sp.Emphasis != nil {
		var attrs beautty.Attribute
		for _, name := range sp.Emphasis {
			if a, ok := beautty.ParseAttribute(name); ok {
				attrs = attrs.With(a)
			} else {
				warn("emphasis", name)
			}
		}
		s = s.Emphasis(attrs)
	}
	if sp.Padding != nil {
		s = s.Padding(sp.Padding...)
	}
	if sp.Margin != nil {
		s = s.Margin(sp.Margin...)
	}
	if sp.Border != nil {
		s = s.Border(*sp.Border)
	}
	if sp.BorderVariant != nil {
		if v, ok := beautty.ParseBorderVariant(*sp.BorderVariant); ok {
			s = s.BorderVariant(v)
		} else {
			warn("border_variant", *sp.BorderVariant)
		}
	}
	if sp.BorderThickness != nil {
		s = s.BorderThickness(*sp.BorderThickness)
	}
	if sp.BorderRadius != nil {
		s = s.BorderRadius(*sp.BorderRadius)
	}

	dim := func(field string, v *string, set func(beautty.Dimension)) {
		if v == nil {
			return
		}
		if d, ok := beautty.ParseDimension(*v); ok {
			set(d)
		} else {
			warn(field, *v)
		}
	}
	dim("width", sp.Width, func(d beautty.Dimension) { s = s.Width(d) })
	dim("height", sp.Height, func(d beautty.Dimension) { s = s.Height(d) })
	dim("basis", sp.Basis, func(d beautty.Dimension) { s = s.Basis(d) })

	if sp.MinWidth != nil {
		s = s.MinWidth(*sp.MinWidth)
	}
	if sp.MinHeight != nil {
		s = s.MinHeight(*sp.MinHeight)
	}
	if sp.MaxWidth != nil {
		s = s.MaxWidth(*sp.MaxWidth)
	}
	if sp.MaxHeight != nil {
		s = s.MaxHeight(*sp.MaxHeight)
	}

	if sp.Display != nil {
		if d, ok := beautty.ParseDisplay(*sp.Display); ok {
			s = s.Display(d)
		} else {
			warn("display", *sp.Display)
		}
	}
	if sp.Direction != nil {
		if d, ok := beautty.ParseDirection(*sp.Direction); ok {
			s = s.Direction(d)
		} else {
			warn("direction", *sp.Direction)
		}
	}
	if sp.Justify != nil {
		if j, ok := beautty.ParseJustify(*sp.Justify); ok {
			s = s.Justify(j)
		} else {
			warn("justify", *sp.Justify)
		}
	}
	if sp.Align != nil {
		if a, ok := beautty.ParseAlign(*sp.Align); ok {
			s = s.Align(a)
		} else {
			warn("align", *sp.Align)
		}
	}
	if sp.Grow != nil {
		s = s.Grow(*sp.Grow)
	}
	if sp.Shrink != nil {
		s = s.Shrink(*sp.Shrink)
	}
	if sp.Header != nil {
		s = s.Header(*sp.Header)
	}
	return s, warnings
}
