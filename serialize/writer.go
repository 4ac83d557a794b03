package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lukasgeis/negative-edge-weights/graphcore"
	"github.com/lukasgeis/negative-edge-weights/weight"
)

// WriteEdgeList writes g in the "tail head weight" format spec §6 defines,
// one edge per line in edge-id order (stable across runs for a fixed
// graph, satisfying spec §6's "stable format" requirement). Integers
// format as plain decimal; floats use the shortest round-trippable
// representation (strconv.FormatFloat with precision -1), each at the bit
// width its own type carries. No header line is written.
func WriteEdgeList[T weight.Real](w io.Writer, g *graphcore.Graph[T]) error {
	bw := bufio.NewWriter(w)
	for e := 0; e < g.M(); e++ {
		line := formatEdge(g.Tail(e), g.Head(e), g.Weight(e))
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("serialize: writing edge %d: %w", e, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("serialize: flushing edge list: %w", err)
	}
	return nil
}

func formatEdge[T weight.Real](tail, head int, w T) string {
	return fmt.Sprintf("%d %d %s\n", tail, head, formatWeight(w))
}

func formatWeight[T weight.Real](w T) string {
	switch v := any(w).(type) {
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
