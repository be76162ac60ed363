// Command absorb prints the normal-incidence sound absorption curve of a
// rigidly backed porous material layer.
//
// Usage:
//
//	absorb [flags]
//
// Examples:
//
//	absorb -model delany-bazley -sigma 25000 -thickness 0.05
//	absorb -model delany-bazley -variant miki -sigma 25000 -thickness 0.025
//	absorb -model johnson-champoux -sigma 35000 -phi 0.65 -viscous-length 7.5e-3 -thermal-length 5e-3 -thickness 0.05
//	absorb -model biot-allard -sigma 10000 -phi 0.95 -tortuosity 1.1 -shape square -thickness 0.05
//	absorb -model johnson-champoux -sigma 35000 -phi 0.65 -viscous-length 7.5e-3 -thermal-length 5e-3 -thickness 0.05 -csv curve.csv
//	absorb -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-absorb/air"
	"github.com/cwbudde/algo-absorb/porous"
)

type evaluator interface {
	Evaluate(freqs []float64) (porous.Response, error)
}

type modelEntry struct {
	name       string
	variants   []string
	defVariant string
	build      func(p params) (evaluator, error)
}

type params struct {
	air                 air.Properties
	variant             string
	shape               porous.PoreShape
	flowResistivity     float64
	porosity            float64
	tortuosity          float64
	viscousLength       float64
	thermalLength       float64
	thermalPermeability float64
}

var registry = []modelEntry{
	{
		name:       "delany-bazley",
		variants:   []string{"default", "miki", "allard-champoux"},
		defVariant: "default",
		build: func(p params) (evaluator, error) {
			var v porous.DelanyBazleyVariant
			switch p.variant {
			case "default":
				v = porous.DelanyBazleyDefault
			case "miki":
				v = porous.DelanyBazleyMiki
			case "allard-champoux":
				v = porous.DelanyBazleyAllardChampoux
			default:
				return nil, fmt.Errorf("unknown delany-bazley variant %q", p.variant)
			}
			return porous.DelanyBazley{
				Air:             p.air,
				FlowResistivity: p.flowResistivity,
				Variant:         v,
			}, nil
		},
	},
	{
		name:       "rayleigh",
		variants:   []string{"default"},
		defVariant: "default",
		build: func(p params) (evaluator, error) {
			if p.variant != "default" {
				return nil, fmt.Errorf("unknown rayleigh variant %q", p.variant)
			}
			return porous.Rayleigh{
				Air:             p.air,
				FlowResistivity: p.flowResistivity,
				Porosity:        p.porosity,
			}, nil
		},
	},
	{
		name:       "biot-allard",
		variants:   []string{"default"},
		defVariant: "default",
		build: func(p params) (evaluator, error) {
			if p.variant != "default" {
				return nil, fmt.Errorf("unknown biot-allard variant %q", p.variant)
			}
			return porous.BiotAllard{
				Air: p.air,
				Material: porous.Material{
					FlowResistivity: p.flowResistivity,
					Porosity:        p.porosity,
					Tortuosity:      p.tortuosity,
					Shape:           p.shape,
				},
			}, nil
		},
	},
	{
		name:       "johnson-champoux",
		variants:   []string{"default", "allard", "lafarge"},
		defVariant: "default",
		build: func(p params) (evaluator, error) {
			var v porous.JohnsonChampouxVariant
			switch p.variant {
			case "default":
				v = porous.JohnsonChampouxDefault
			case "allard":
				v = porous.JohnsonChampouxAllard
			case "lafarge":
				v = porous.JohnsonChampouxLafarge
			default:
				return nil, fmt.Errorf("unknown johnson-champoux variant %q", p.variant)
			}
			return porous.JohnsonChampoux{
				Air: p.air,
				Material: porous.Material{
					FlowResistivity:     p.flowResistivity,
					Porosity:            p.porosity,
					Tortuosity:          p.tortuosity,
					ViscousLength:       p.viscousLength,
					ThermalLength:       p.thermalLength,
					ThermalPermeability: p.thermalPermeability,
				},
				Variant: v,
			}, nil
		},
	},
}

var shapes = map[string]porous.PoreShape{
	"circle":      porous.ShapeCircle,
	"square":      porous.ShapeSquare,
	"triangle":    porous.ShapeEquilateralTriangle,
	"rectangular": porous.ShapeRectangular,
}

type curveRow struct {
	FrequencyHz float64 `csv:"frequency_hz"`
	Absorption  float64 `csv:"absorption"`
}

func main() {
	model := flag.String("model", "delany-bazley", "absorption model (use -list to see available)")
	variant := flag.String("variant", "", "model variant (defaults to the model's base formulation)")
	shapeName := flag.String("shape", "circle", "pore cross-section shape for biot-allard (circle, square, triangle, rectangular)")

	sigma := flag.Float64("sigma", 25000, "static air flow resistivity in Pa.s/m2")
	phi := flag.Float64("phi", 0.95, "open porosity, 0 < phi <= 1")
	tortuosity := flag.Float64("tortuosity", 1, "tortuosity, >= 1")
	viscousLength := flag.Float64("viscous-length", 0, "viscous characteristic length in m")
	thermalLength := flag.Float64("thermal-length", 0, "thermal characteristic length in m")
	thermalPerm := flag.Float64("thermal-permeability", 0, "static thermal permeability in m2 (lafarge variant)")
	thickness := flag.Float64("thickness", 0.05, "layer thickness in m")

	temp := flag.Float64("temp", 20, "air temperature in degC")
	humidity := flag.Float64("humidity", 50, "relative humidity in percent")
	pressure := flag.Float64("pressure", 101325, "atmospheric pressure in Pa")

	fMin := flag.Float64("fmin", 100, "sweep start frequency in Hz")
	fMax := flag.Float64("fmax", 10000, "sweep end frequency in Hz")
	fStep := flag.Float64("fstep", 1, "sweep frequency step in Hz")

	csvPath := flag.String("csv", "", "write the full absorption curve to this CSV file")
	list := flag.Bool("list", false, "list available models and variants")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: absorb [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the normal-incidence absorption curve of a rigidly backed porous layer.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  absorb -model delany-bazley -sigma 25000 -thickness 0.05\n")
		fmt.Fprintf(os.Stderr, "  absorb -model johnson-champoux -sigma 35000 -phi 0.65 -viscous-length 7.5e-3 -thermal-length 5e-3 -thickness 0.05\n")
		fmt.Fprintf(os.Stderr, "  absorb -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entry, ok := findModel(*model)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown model %q (use -list to see available)\n", *model)
		os.Exit(1)
	}

	shape, ok := shapes[strings.ToLower(strings.TrimSpace(*shapeName))]
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown pore shape %q\n", *shapeName)
		os.Exit(1)
	}

	ambient, err := air.Calculate(*temp, *humidity, *pressure)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	v := *variant
	if v == "" {
		v = entry.defVariant
	}

	eval, err := entry.build(params{
		air:                 ambient,
		variant:             strings.ToLower(strings.TrimSpace(v)),
		shape:               shape,
		flowResistivity:     *sigma,
		porosity:            *phi,
		tortuosity:          *tortuosity,
		viscousLength:       *viscousLength,
		thermalLength:       *thermalLength,
		thermalPermeability: *thermalPerm,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	freqs, err := porous.Sweep(*fMin, *fMax, *fStep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	resp, err := eval.Evaluate(freqs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	alpha, err := resp.Absorption(*thickness, ambient.Impedance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(entry.name, v, ambient, *thickness, freqs, alpha)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, freqs, alpha); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote %d points to %s\n", len(freqs), *csvPath)
	}
}

func findModel(name string) (modelEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return modelEntry{}, false
}

func printList() {
	names := make([]string, len(registry))
	byName := make(map[string]modelEntry, len(registry))
	for i, e := range registry {
		names[i] = e.name
		byName[e.name] = e
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("%s (variants: %s)\n", n, strings.Join(byName[n].variants, ", "))
	}
}

// displayFreqs are the octave-band centers used for the console table.
var displayFreqs = []float64{125, 250, 500, 1000, 2000, 4000, 8000}

func printSummary(model, variant string, ambient air.Properties, thickness float64, freqs, alpha []float64) {
	fmt.Printf("model: %s (%s), thickness %.3g m\n", model, variant, thickness)
	fmt.Printf("air:   c = %.1f m/s, rho = %.4f kg/m3, Z = %.1f Pa.s/m\n\n",
		ambient.SoundSpeed, ambient.Density, ambient.Impedance)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tAbsorption\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------------\t----------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, f := range displayFreqs {
		i, ok := nearestIndex(freqs, f)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(tw, "%.0f\t%.4f\n", freqs[i], alpha[i]); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	peak := floats.MaxIdx(alpha)
	fmt.Printf("\npeak:  %.4f at %.0f Hz\n", alpha[peak], freqs[peak])
}

// nearestIndex returns the index of the sweep point closest to f, or
// false when f lies outside the sweep range.
func nearestIndex(freqs []float64, f float64) (int, bool) {
	if len(freqs) == 0 || f < freqs[0] || f > freqs[len(freqs)-1] {
		return 0, false
	}
	best, bestDist := 0, f-freqs[0]
	if bestDist < 0 {
		bestDist = -bestDist
	}
	for i, v := range freqs {
		d := f - v
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

func writeCSV(path string, freqs, alpha []float64) error {
	rows := make([]curveRow, len(freqs))
	for i := range freqs {
		rows[i] = curveRow{FrequencyHz: freqs[i], Absorption: alpha[i]}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}
