package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colorimetry/color"
	"github.com/kpfaulkner/colorimetry/options"
	"github.com/kpfaulkner/colorimetry/photometry"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

var errUnknownColourName = errors.New("unknown colour name")

func main() {
	xyzArg := flag.String("xyz", "", "D65 XYZ tristimulus as x,y,z")
	tempArg := flag.Uint("temp", 0, "colour temperature in Kelvin")
	magArg := flag.String("mag", "", "apparent star magnitude")
	nameArg := flag.String("name", "", "CSS colour name")
	whiteArg := flag.String("white", "", "also adapt -xyz to this white (D50, D60, D65, E, DCI)")
	configArg := flag.String("config", "", "options file (.toml or .yaml)")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	opts := options.NewConvertOptions(nil)
	if *configArg != "" {
		var err error
		if opts, err = options.Load(*configArg); err != nil {
			log.Fatalf("unable to load options: %v", err)
		}
		if opts.Debug {
			log.SetLevel(log.DebugLevel)
		}
	}

	var err error
	switch {
	case *xyzArg != "":
		err = convertXYZ(os.Stdout, *xyzArg, *whiteArg)
	case *tempArg != 0:
		if *tempArg > 0xFFFF {
			err = fmt.Errorf("%w: %dK", color.ErrColorTempOutOfRange, *tempArg)
			break
		}
		err = convertTemp(os.Stdout, color.NewColorTemp(uint16(*tempArg)), opts)
	case *magArg != "":
		err = convertMagnitude(os.Stdout, *magArg, opts)
	case *nameArg != "":
		err = convertName(os.Stdout, *nameArg)
	default:
		fmt.Printf("one of -xyz, -temp, -mag or -name must be specified\n")
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		log.Errorf("conversion failed: %v", err)
		os.Exit(1)
	}
}

func parseXYZ(arg string) (color.XYZ[color.D65], error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return color.XYZ[color.D65]{}, fmt.Errorf("expected x,y,z got %q", arg)
	}

	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return color.XYZ[color.D65]{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return color.NewXYZ[color.D65](v[0], v[1], v[2]), nil
}

func convertXYZ(w io.Writer, arg string, whiteName string) error {
	xyz, err := parseXYZ(arg)
	if err != nil {
		return err
	}
	log.Debugf("converting %v", xyz)

	linear := color.LinearSRGBFromXYZ(xyz)
	srgb := linear.ToSRGB()
	fmt.Fprintf(w, "%v\n", xyz)
	fmt.Fprintf(w, "xyY        %v\n", xyz.ToXYY())
	fmt.Fprintf(w, "linear     %+v\n", linear)
	fmt.Fprintf(w, "sRGB       %+v\n", srgb)
	fmt.Fprintf(w, "sRGB24     %+v\n", srgb.ToSRGB24())
	fmt.Fprintf(w, "LMS        %+v\n", color.LMSFromXYZ(xyz))
	fmt.Fprintf(w, "D50        %v\n", color.AdaptD65ToD50(xyz))

	if whiteName == "" {
		return nil
	}
	white, err := color.WhitePointByName(whiteName)
	if err != nil {
		return err
	}
	x, y, z, err := color.AdaptTo(xyz, white)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10s (%.6f, %.6f, %.6f)\n", strings.ToUpper(whiteName), x, y, z)
	return nil
}

func convertTemp(w io.Writer, ct color.ColorTemp, opts *options.ConvertOptions) error {
	xyz, err := ct.ToXYZ(opts.Luminance)
	if err != nil {
		return err
	}

	linear := color.LinearSRGBFromXYZ(xyz)
	linear.SetMaxBrightness()
	fmt.Fprintf(w, "%v %v\n", ct, xyz.Chromaticity())
	fmt.Fprintf(w, "sRGB24     %+v\n", linear.ToSRGB().ToSRGB24())
	return nil
}

func convertMagnitude(w io.Writer, arg string, opts *options.ConvertOptions) error {
	m, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("magnitude: %w", err)
	}

	dm, err := opts.DisplayMapping()
	if err != nil {
		return err
	}

	mag := photometry.StarMagnitude(m)
	irradiance := mag.Irradiance()
	fmt.Fprintf(w, "magnitude  %g\n", m)
	fmt.Fprintf(w, "brightness %g\n", mag.Brightness())
	fmt.Fprintf(w, "irradiance %g W/m^2\n", irradiance)
	fmt.Fprintf(w, "level      %g\n", dm.Level(irradiance))
	return nil
}

func convertName(w io.Writer, name string) error {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownColourName, name)
	}

	srgb := color.SRGB24FromColor(c)
	xyz := color.SRGB24ToXYZ(srgb)
	fmt.Fprintf(w, "%s %+v\n", name, srgb)
	fmt.Fprintf(w, "%v\n", xyz)
	fmt.Fprintf(w, "LMS        %+v\n", color.LMSFromXYZ(xyz))
	fmt.Fprintf(w, "ACES       %+v\n", color.AcesFromXYZ(color.Adapt[color.D60](xyz)))
	return nil
}
