// Package host is the boundary between the simulation and whatever drives it.
// It marshals whole State/Vector2 values in and out, flips the host's vertical
// axis into simulation coordinates, and fails fast on malformed input.
package host

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsim/internal/sim"
)

// Format is an interchange encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("host: unknown format %q", s)
	}
}

// Request is one host call: the raw host input and the state to advance.
type Request struct {
	Input sim.Vector2 `json:"input" yaml:"input"`
	State sim.State   `json:"state" yaml:"state"`
}

// FromHostInput converts a host input vector (Y grows upward) into simulation
// coordinates (Y grows downward). Apply it exactly once per frame.
func FromHostInput(v sim.Vector2) sim.Vector2 {
	return sim.NewVector2(v.X, -v.Y)
}

// InitState encodes the initial world state.
func InitState(format Format) ([]byte, error) {
	return Encode(format, sim.InitState())
}

// GameLoop decodes a host input and state, advances one frame and encodes
// the resulting FrameOutput.
func GameLoop(format Format, input, state []byte) ([]byte, error) {
	var in sim.Vector2
	if err := Decode(format, input, &in); err != nil {
		return nil, fmt.Errorf("host: decode input: %w", err)
	}
	var st sim.State
	if err := Decode(format, state, &st); err != nil {
		return nil, fmt.Errorf("host: decode state: %w", err)
	}
	return Encode(format, sim.GameLoop(FromHostInput(in), st))
}

// Step runs a combined Request document through one frame.
func Step(format Format, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("host: read request: %w", err)
	}
	var req Request
	if err := Decode(format, data, &req); err != nil {
		return nil, fmt.Errorf("host: decode request: %w", err)
	}
	return Encode(format, sim.GameLoop(FromHostInput(req.Input), req.State))
}

// Encode marshals v in the given format.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("host: encode json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("host: encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("host: unknown format %q", format)
	}
}

// Decode unmarshals data into v. Unknown fields, trailing documents and empty
// input are all errors.
func Decode(format Format, data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty document")
	}

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return err
		}
		if dec.More() {
			return errors.New("trailing data after document")
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return err
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return errors.New("trailing data after document")
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
