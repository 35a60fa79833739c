package effectchain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errEmptySpec = errors.New("empty stage spec")

// StageSpec is the parsed form of one "type:p1,p2,..." token.
type StageSpec struct {
	Type   string
	Params []float32
}

// ParseStages parses a whitespace-separated list of stage tokens such as
//
//	gain:2 biquad:0.1,0.2,0.1,-0.5,0.2 gain:0.5
//
// Parameters must be finite numbers.
func ParseStages(spec string) ([]StageSpec, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, errEmptySpec
	}

	specs := make([]StageSpec, 0, len(fields))
	for _, field := range fields {
		s, err := parseStage(field)
		if err != nil {
			return nil, fmt.Errorf("effectchain: parse %q: %w", field, err)
		}
		specs = append(specs, s)
	}

	return specs, nil
}

func parseStage(token string) (StageSpec, error) {
	stageType, rawParams, _ := strings.Cut(token, ":")
	if stageType == "" {
		return StageSpec{}, errors.New("missing stage type")
	}

	s := StageSpec{Type: stageType}
	if rawParams == "" {
		return s, nil
	}

	for _, raw := range strings.Split(rawParams, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
		if err != nil {
			return StageSpec{}, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return StageSpec{}, fmt.Errorf("non-finite parameter %q", raw)
		}
		s.Params = append(s.Params, float32(v))
	}

	return s, nil
}

// Configure parses spec and appends one stage per token, built through reg
// with the chain's current context. On error no stage is added.
func (c *Chain) Configure(reg *Registry, spec string) error {
	specs, err := ParseStages(spec)
	if err != nil {
		return err
	}

	stages := make([]Stage, 0, len(specs))
	for _, s := range specs {
		st, err := reg.Build(c.Context(), s.Type, s.Params)
		if err != nil {
			return fmt.Errorf("effectchain: configure %s: %w", s.Type, err)
		}
		stages = append(stages, st)
	}

	c.stages = append(c.stages, stages...)

	return nil
}
