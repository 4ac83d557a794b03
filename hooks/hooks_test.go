package hooks_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/lukasgeis/negative-edge-weights/hooks"
)

type spy struct {
	rounds []hooks.Round[int64]
}

func (s *spy) OnProposal(r hooks.Round[int64]) { s.rounds = append(s.rounds, r) }

func TestNoOpDoesNothing(t *testing.T) {
	require.NotPanics(t, func() {
		hooks.NoOp[int64]{}.OnProposal(hooks.Round[int64]{})
	})
}

func TestMultiFansOutInOrder(t *testing.T) {
	a, b := &spy{}, &spy{}
	m := hooks.Multi[int64]{a, b}
	r := hooks.Round[int64]{Index: 1, Decision: hooks.Accept}
	m.OnProposal(r)

	require.Len(t, a.rounds, 1)
	require.Len(t, b.rounds, 1)
	require.Equal(t, r, a.rounds[0])
}

func TestCountersRecordsVerdicts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := hooks.NewCounters[int64](reg)

	c.OnProposal(hooks.Round[int64]{Decision: hooks.Accept, ReachedCount: 3})
	c.OnProposal(hooks.Round[int64]{Decision: hooks.Reject, ReachedCount: 1})

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
