package generate

import (
	"fmt"
	"io"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/serialize"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

const methodFile = "File"

// File builds a graph from the edge-list format spec §6 "file" describes,
// read from r. Every parsed edge starts at wMax, matching InitMax; mcmc.Run
// overwrites this per cfg.Init before the first proposal regardless, so the
// placeholder value only matters to a caller that inspects the graph before
// calling Run (e.g. the CLI's pre-run --check pass).
func File[T weight.Real](r io.Reader, wMax T) (*graphcore.Graph[T], error) {
	g, err := serialize.ReadEdgeList(r, wMax)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFile, err)
	}
	return g, nil
}
