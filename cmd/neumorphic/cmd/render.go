package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/neumorphic/pkg/neumorphic"
	"github.com/go-drift/neumorphic/pkg/raster"
	"github.com/go-drift/neumorphic/pkg/rendering"
	"github.com/go-drift/neumorphic/pkg/theme"
)

type renderOptions struct {
	width, height int
	out           string
	shape         string
	lightSource   string
	elevation     float64
	cornerRadius  float64
	oval          bool
	dark          bool
	baseColor     string
	presetFile    string
	preset        string
	scale         int
}

func newRenderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a neumorphic sample surface to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.width, "width", 256, "output width in pixels")
	flags.IntVar(&opts.height, "height", 256, "output height in pixels")
	flags.StringVarP(&opts.out, "out", "o", "neumorphic.png", "output PNG path")
	flags.StringVar(&opts.shape, "shape", "flat", "shape variant: flat or pressed")
	flags.StringVar(&opts.lightSource, "light-source", "top_left", "light direction: top_left, top_right, bottom_left, bottom_right")
	flags.Float64Var(&opts.elevation, "elevation", 0, "shadow elevation in pixels (0 uses the theme default)")
	flags.Float64Var(&opts.cornerRadius, "corner-radius", 0, "corner radius in pixels (0 uses the theme default)")
	flags.BoolVar(&opts.oval, "oval", false, "use an oval outline instead of rounded corners")
	flags.BoolVar(&opts.dark, "dark", false, "use the dark theme")
	flags.StringVar(&opts.baseColor, "base", "", "base surface color as #RRGGBB (overrides the theme palette)")
	flags.StringVar(&opts.presetFile, "preset-file", "", "YAML preset file to load styles from")
	flags.StringVar(&opts.preset, "preset", "", "preset name to render (requires --preset-file)")
	flags.IntVar(&opts.scale, "scale", 2, "supersampling factor")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	logger := loggerFromContext(cmd.Context())

	brightness := theme.BrightnessLight
	if opts.dark {
		brightness = theme.BrightnessDark
	}
	th := theme.ForBrightness(brightness)
	if opts.baseColor != "" {
		base, err := theme.ParseHexColor(opts.baseColor)
		if err != nil {
			return fmt.Errorf("invalid --base color: %w", err)
		}
		th = theme.FromBase(base, brightness)
	}

	style, err := resolveStyle(opts, th)
	if err != nil {
		return err
	}
	logger.Debug("resolved style",
		"shape", style.Shape,
		"corner", style.Corner,
		"lightSource", style.LightSource,
		"elevation", style.Elevation,
	)

	scale := opts.scale
	if scale < 1 {
		scale = 1
	}
	canvas := raster.NewCanvas(opts.width*scale, opts.height*scale)
	canvas.Clear(th.BaseColor)

	// Inset the surface so the background shadows have room to fall off.
	margin := style.Elevation * 3
	bounds := rendering.RectFromLTWH(
		margin, margin,
		float64(opts.width)-2*margin,
		float64(opts.height)-2*margin,
	)

	decoration := neumorphic.Decoration{
		Style:        scaleStyle(style, float64(scale)),
		SurfaceColor: th.BaseColor,
	}
	decoration.Paint(canvas, scaleRect(bounds, float64(scale)), nil)

	img := raster.Downsample(canvas.Image(), scale)
	if err := raster.WritePNG(opts.out, img); err != nil {
		return err
	}
	logger.Info("rendered", "out", opts.out, "width", opts.width, "height", opts.height, "shape", style.Shape.String())
	return nil
}

// resolveStyle builds the style from a preset when requested, otherwise
// from the theme defaults overridden by flags.
func resolveStyle(opts renderOptions, th *theme.Theme) (neumorphic.Style, error) {
	if opts.presetFile != "" {
		styles, err := theme.LoadPresets(opts.presetFile)
		if err != nil {
			return neumorphic.Style{}, err
		}
		if opts.preset == "" {
			return neumorphic.Style{}, fmt.Errorf("--preset-file requires --preset to pick a style")
		}
		style, ok := styles[opts.preset]
		if !ok {
			return neumorphic.Style{}, fmt.Errorf("preset %q not found in %s", opts.preset, opts.presetFile)
		}
		return style, nil
	}

	shape, _ := neumorphic.ParseShapeVariant(opts.shape)
	corner := neumorphic.RoundedCorner(th.CornerRadius)
	if opts.cornerRadius > 0 {
		corner = neumorphic.RoundedCorner(opts.cornerRadius)
	}
	if opts.oval {
		corner = neumorphic.OvalCorner()
	}

	style := th.StyleWith(shape, corner)
	if opts.elevation > 0 {
		style.Elevation = opts.elevation
	}
	if source, ok := neumorphic.ParseLightSource(opts.lightSource); ok {
		style.LightSource = source
	}
	return style.Normalize(), nil
}

// scaleStyle scales the style's pixel-valued fields for supersampled
// rendering.
func scaleStyle(style neumorphic.Style, factor float64) neumorphic.Style {
	style.Elevation *= factor
	if style.Corner.IsOval() {
		style.Corner = neumorphic.OvalCorner()
	} else {
		style.Corner = neumorphic.RoundedCorner(style.Corner.Radius() * factor)
	}
	return style
}

func scaleRect(r rendering.Rect, factor float64) rendering.Rect {
	return rendering.Rect{
		Left:   r.Left * factor,
		Top:    r.Top * factor,
		Right:  r.Right * factor,
		Bottom: r.Bottom * factor,
	}
}
