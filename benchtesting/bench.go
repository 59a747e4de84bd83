package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/kpfaulkner/colorimetry/color"
	"github.com/kpfaulkner/colorimetry/photometry"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	count := flag.Int("n", 10_000_000, "conversions per run")
	mem := flag.Bool("mem", false, "heap profile instead of cpu")
	flag.Parse()

	//p := profile.Start(profile.MemProfileRate(1), profile.ProfilePath("."))
	var p interface{ Stop() }
	if *mem {
		p = profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	} else {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer p.Stop()

	if *count <= 0 {
		log.Errorf("count must be positive, got %d", *count)
		return
	}

	start := time.Now()
	var checksum uint64
	for i := 0; i < *count; i++ {
		v := float32(i%4096) / 4096
		xyz := color.NewXYZ[color.D65](v, 1-v, v*0.5)
		srgb := color.XYZToSRGB24(xyz)
		checksum += uint64(srgb.R) + uint64(srgb.G) + uint64(srgb.B)
	}
	fmt.Printf("XYZ to sRGB24 x%d took %d ms (checksum %d)\n", *count, time.Since(start).Milliseconds(), checksum)

	start = time.Now()
	white := photometry.StarMagnitude(0).Irradiance()
	var total float64
	for i := 0; i < *count; i++ {
		m := photometry.StarMagnitude(float64(i%3000) / 100)
		total += photometry.ColorLevel(m.Irradiance(), white)
	}
	fmt.Printf("magnitude to level x%d took %d ms (sum %g)\n", *count, time.Since(start).Milliseconds(), total)

	start = time.Now()
	for k := color.MinColorTemp; k <= color.MaxColorTemp; k++ {
		if _, err := k.ToCIEXY(); err != nil {
			log.Errorf("planckian locus at %v: %v", k, err)
			return
		}
	}
	fmt.Printf("planckian locus sweep took %d ms\n", time.Since(start).Milliseconds())
}
