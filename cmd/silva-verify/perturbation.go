package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mzanella-labs/silva/internal/hyperrect"
	"github.com/mzanella-labs/silva/internal/interval"
	"github.com/mzanella-labs/silva/internal/perturbation"
)

// perturbationOptions collects the flags naming an adversarial region,
// mirroring the reference options.c grouping of a perturbation kind with
// its kind-specific data.
type perturbationOptions struct {
	kind      string
	magnitude float64
	clipMin   float64
	clipMax   float64
	boxPath   string
}

func (o perturbationOptions) resolve() (perturbation.Perturbation, error) {
	switch o.kind {
	case "l_inf":
		return perturbation.NewLInf(o.magnitude), nil
	case "l_inf-clip-all":
		return perturbation.NewLInfClipAll(o.magnitude, o.clipMin, o.clipMax), nil
	case "from_file":
		box, err := readBoxFile(o.boxPath)
		if err != nil {
			return perturbation.Perturbation{}, err
		}
		return perturbation.NewFromFile(box), nil
	default:
		return perturbation.Perturbation{}, fmt.Errorf("silva-verify: unsupported perturbation kind %q", o.kind)
	}
}

// readBoxFile parses whitespace-separated "[l;u]" tokens, the same
// rendering hyperrect.Box.Dump produces, into an explicit box for the
// from_file perturbation kind.
func readBoxFile(path string) (hyperrect.Box, error) {
	tokens, err := readTokens(path)
	if err != nil {
		return nil, err
	}

	box := make(hyperrect.Box, len(tokens))
	for i, tok := range tokens {
		var l, u float64
		if _, err := fmt.Sscanf(tok, "[%g;%g]", &l, &u); err != nil {
			return nil, fmt.Errorf("silva-verify: malformed perturbation box token %q: %w", tok, err)
		}
		box[i] = interval.Interval{L: l, U: u}
	}
	return box, nil
}

func readTokens(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("silva-verify: cannot read perturbation file: %w", err)
	}
	return strings.Fields(string(content)), nil
}
