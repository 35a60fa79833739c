// Command bufinfo inspects the sample buffer kernels and runs a probe tone
// through an effect chain.
//
// Usage:
//
//	bufinfo [flags]
//
// Examples:
//
//	bufinfo -list
//	bufinfo -gain 0.5
//	bufinfo -stages "gain:2 biquad:0.2929,0.5858,0.2929,0,0.1716" -size 512
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-audiobuf/dsp/analysis"
	"github.com/cwbudde/algo-audiobuf/dsp/buffer"
	"github.com/cwbudde/algo-audiobuf/dsp/bufops"
	"github.com/cwbudde/algo-audiobuf/dsp/effectchain"
	"github.com/cwbudde/algo-audiobuf/internal/kernel/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func main() {
	list := flag.Bool("list", false, "list registered kernels and the one selected for this CPU")
	gain := flag.Float64("gain", 1, "gain of a single gain stage (ignored with -stages)")
	stages := flag.String("stages", "", `chain spec, e.g. "gain:2 biquad:b0,b1,b2,a1,a2"`)
	size := flag.Int("size", 1024, "block size hint in samples")
	freq := flag.Float64("freq", 1000, "probe tone frequency in Hz")
	rate := flag.Float64("rate", 48000, "probe sample rate in Hz")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bufinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs a probe tone through an effect chain and prints its levels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bufinfo -list\n")
		fmt.Fprintf(os.Stderr, "  bufinfo -gain 0.5\n")
		fmt.Fprintf(os.Stderr, "  bufinfo -stages \"gain:2 gain:0.25\" -size 256\n")
	}
	flag.Parse()

	if *list {
		if err := printKernels(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "error: -size must be > 0: %d\n", *size)
		os.Exit(2)
	}

	spec := *stages
	if spec == "" {
		spec = fmt.Sprintf("gain:%g", *gain)
	}

	if err := runProbe(os.Stdout, spec, *size, *freq, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printKernels(w io.Writer) error {
	features := cpu.DetectFeatures()
	selected := bufops.KernelName()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSIMD\tPriority\tSupported\tSelected\n")
	fmt.Fprintf(tw, "------\t----\t--------\t---------\t--------\n")

	for _, e := range registry.Global.ListEntries() {
		mark := ""
		if e.Name == selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, cpu.Supports(features, e.SIMDLevel), mark)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	_, err := fmt.Fprintf(w, "\narch: %s\n", features.Architecture)
	return err
}

func runProbe(w io.Writer, spec string, size int, freq, rate float64) error {
	chain := effectchain.New(effectchain.WithBufferSize(size))
	if err := chain.Configure(effectchain.DefaultRegistry(), spec); err != nil {
		return err
	}

	pool := buffer.NewPool()
	block := pool.Get(chain.BufferSize())
	defer pool.Put(block)

	samples := block.Samples()
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/rate))
	}

	before := analysis.Measure(samples)
	if err := chain.Process(samples); err != nil {
		return err
	}
	after := analysis.Measure(samples)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Stages\t%d\n", chain.Len())
	fmt.Fprintf(tw, "Block\t%d\n", len(samples))
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "\tPeak\tPeak [dB]\tRMS\tRMS [dB]\n")
	fmt.Fprintf(tw, "before\t%.6f\t%.2f\t%.6f\t%.2f\n", before.Peak, before.PeakDB, before.RMS, before.RMSDB)
	fmt.Fprintf(tw, "after\t%.6f\t%.2f\t%.6f\t%.2f\n", after.Peak, after.PeakDB, after.RMS, after.RMSDB)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
