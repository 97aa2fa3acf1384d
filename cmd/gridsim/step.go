package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsim/internal/host"
	"github.com/vovakirdan/gridsim/internal/render"
	"github.com/vovakirdan/gridsim/internal/sim"
)

var (
	flagStepFormat string
	flagIn         string
	flagASCII      bool
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance a state document by one frame",
	Long: `Read a {input, state} document, advance it by one frame and write the
resulting {state, draw_calls} document to stdout.

The input vector is in host coordinates: positive y points up.
Malformed documents are rejected and nothing is written.

Examples:
  gridsim step --in request.json
  gridsim step --format yaml < request.yaml
  gridsim step --in request.json --ascii`,
	Args: cobra.NoArgs,
	Run:  runStep,
}

func init() {
	stepCmd.Flags().StringVar(&flagStepFormat, "format", "json", "Document format: json or yaml")
	stepCmd.Flags().StringVarP(&flagIn, "in", "i", "", "Read the request from a file instead of stdin")
	stepCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Also print the resulting frame as text to stderr")
}

func runStep(cmd *cobra.Command, args []string) {
	format, err := host.ParseFormat(flagStepFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if flagIn != "" {
		f, openErr := os.Open(flagIn)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	out, err := host.Step(format, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)

	if flagASCII {
		printFrame(format, out)
	}
}

// printFrame decodes an encoded FrameOutput and prints it as text.
func printFrame(format host.Format, encoded []byte) {
	var frame sim.FrameOutput
	if err := host.Decode(format, encoded, &frame); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	canvas, err := render.Rasterize(frame.DrawCalls, sim.TileSize, frame.State.Grid.Width, frame.State.Grid.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, render.ASCII(canvas))
}
