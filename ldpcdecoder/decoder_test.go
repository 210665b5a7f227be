package ldpcdecoder_test

import (
	"testing"

	"github.com/KuantumBS/ldpc/ldpcdecoder"
	"github.com/KuantumBS/ldpc/syndrome"
	"github.com/stretchr/testify/require"
)

// repetitionNonzeros describes H = [[1,1,0],[0,1,1]].
func repetitionNonzeros() [][2]int {
	return [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}
}

// hammingNonzeros describes the standard 3x7 Hamming[7,4] check matrix whose
// column j is the binary representation of j+1 (row 0 holds the low bit).
func hammingNonzeros() [][2]int {
	return [][2]int{
		{0, 0}, {0, 2}, {0, 4}, {0, 6},
		{1, 1}, {1, 2}, {1, 5}, {1, 6},
		{2, 3}, {2, 4}, {2, 5}, {2, 6},
	}
}

// Scenario 1: repetition code, syndrome [1,0].
func TestDecode_RepetitionCode_SyndromeOneZero(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	got, err := d.Decode([]byte{1, 0})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 0}, got)
	require.True(t, d.Converged())
}

// Scenario 2: repetition code, all-zero syndrome converges at iteration 1.
func TestDecode_RepetitionCode_ZeroSyndrome(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	got, err := d.Decode([]byte{0, 0})
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0}, got)
	require.True(t, d.Converged())
	require.Equal(t, 1, d.Iter())
}

// Scenario 3: repetition code, received word [1,1,0].
func TestDecode_RepetitionCode_ReceivedWord(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("received"),
	)
	require.NoError(t, err)

	got, err := d.Decode([]byte{1, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 1, 1}, got)
	require.True(t, d.Converged())
}

// Scenario 4: Hamming[7,4], syndrome = column 5 of H, MSL kernel.
func TestDecode_Hamming_SingleBitError(t *testing.T) {
	d, err := ldpcdecoder.New(3, 7, hammingNonzeros(),
		ldpcdecoder.WithErrorRate(0.05),
		ldpcdecoder.WithBPMethod("msl"),
		ldpcdecoder.WithMSScalingFactor(1.0),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	// Column 5 of H: rows {1,2} are set, row 0 is clear -> [0,1,1].
	got, err := d.Decode([]byte{0, 1, 1})
	require.NoError(t, err)
	require.True(t, d.Converged())
	require.LessOrEqual(t, d.Iter(), 7)

	want := make([]byte, 7)
	want[5] = 1
	require.Equal(t, want, got)
}

// Scenario 5: ambiguous input on a square matrix with Auto input type.
func TestDecode_AmbiguousInput(t *testing.T) {
	square := [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	d, err := ldpcdecoder.New(4, 4, square,
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithInputType("auto"),
	)
	require.NoError(t, err)

	_, err = d.Decode([]byte{1, 0, 1, 0})
	require.ErrorIs(t, err, syndrome.ErrAmbiguousInput)
}

// Scenario 6: SI recovery — the final decode, once converged, must be
// consistent with the original syndrome regardless of whether plain BP or
// the SI loop produced it.
func TestSIDecode_RepetitionCode_ConsistentWithSyndrome(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(5),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	got, err := d.SIDecode([]byte{1, 1})
	require.NoError(t, err)
	require.True(t, d.Converged())
	require.Equal(t, []byte{0, 1, 0}, got)
}

func TestSIDecode_AlreadyConverged_MatchesPlainDecode(t *testing.T) {
	newDecoder := func() *ldpcdecoder.Decoder {
		d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
			ldpcdecoder.WithErrorRate(0.1),
			ldpcdecoder.WithBPMethod("psl"),
			ldpcdecoder.WithSchedule("parallel"),
			ldpcdecoder.WithMaxIter(10),
			ldpcdecoder.WithInputType("syndrome"),
		)
		require.NoError(t, err)
		return d
	}

	plain, err := newDecoder().Decode([]byte{1, 0})
	require.NoError(t, err)

	si, err := newDecoder().SIDecode([]byte{1, 0})
	require.NoError(t, err)

	require.Equal(t, plain, si)
}

func TestDecode_Idempotent(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithSchedule("parallel"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	first, err := d.Decode([]byte{1, 0})
	require.NoError(t, err)
	second, err := d.Decode([]byte{1, 0})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestUpdateChannelProbs_MatchesConstructionWithProbs(t *testing.T) {
	probs := []float64{0.1, 0.1, 0.1}

	withProbs, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithChannelProbs(probs),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	withUpdate, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.5),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)
	require.NoError(t, withUpdate.UpdateChannelProbs(probs))

	a, err := withProbs.Decode([]byte{1, 0})
	require.NoError(t, err)
	b, err := withUpdate.Decode([]byte{1, 0})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestResetInactivatedChecks_RestoresDefaultBehavior(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("psl"),
		ldpcdecoder.WithMaxIter(10),
		ldpcdecoder.WithInputType("syndrome"),
	)
	require.NoError(t, err)

	baseline, err := d.Decode([]byte{1, 0})
	require.NoError(t, err)

	require.NoError(t, d.SetInactivatedChecks([]int{1}))
	require.Equal(t, []int{1}, d.InactivatedChecks())

	d.ResetInactivatedChecks()
	require.Empty(t, d.InactivatedChecks())

	after, err := d.Decode([]byte{1, 0})
	require.NoError(t, err)
	require.Equal(t, baseline, after)
}

func TestNew_MissingChannelConfig(t *testing.T) {
	_, err := ldpcdecoder.New(2, 3, repetitionNonzeros())
	require.ErrorIs(t, err, ldpcdecoder.ErrNoErrorRate)
}

func TestNew_InvalidMaxIter(t *testing.T) {
	_, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithMaxIter(-1),
	)
	require.Error(t, err)
}

func TestGetters_ReflectConfiguration(t *testing.T) {
	d, err := ldpcdecoder.New(2, 3, repetitionNonzeros(),
		ldpcdecoder.WithErrorRate(0.1),
		ldpcdecoder.WithBPMethod("msl"),
		ldpcdecoder.WithSchedule("serial"),
		ldpcdecoder.WithMSScalingFactor(0.75),
		ldpcdecoder.WithMaxIter(12),
	)
	require.NoError(t, err)

	require.Equal(t, "min_sum_log", d.BPMethod())
	require.Equal(t, "serial", d.Schedule())
	require.Equal(t, 0.75, d.MSScalingFactor())
	require.Equal(t, 12, d.MaxIter())
	require.Len(t, d.ChannelProbs(), 3)
}
