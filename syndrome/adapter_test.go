package syndrome_test

import (
	"testing"

	"github.com/KuantumBS/ldpc/sparsemod2"
	"github.com/KuantumBS/ldpc/syndrome"
	"github.com/stretchr/testify/require"
)

// repetitionH builds the non-square 2x3 repetition-code parity-check
// matrix: H = [[1,1,0],[0,1,1]].
func repetitionH(t *testing.T) *sparsemod2.Matrix {
	t.Helper()
	mat, err := sparsemod2.NewMatrix(2, 3, [][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}})
	require.NoError(t, err)
	return mat
}

// squareH builds a square 3x3 matrix so Auto becomes ambiguous.
func squareH(t *testing.T) *sparsemod2.Matrix {
	t.Helper()
	mat, err := sparsemod2.NewMatrix(3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}})
	require.NoError(t, err)
	return mat
}

func TestNormalize_AutoInfersReceivedByLength(t *testing.T) {
	h := repetitionH(t)
	synd := make([]byte, 2)
	received := make([]byte, 3)

	resolved, err := syndrome.Normalize(h, []byte{0, 1, 0}, syndrome.Auto, synd, received)
	require.NoError(t, err)
	require.Equal(t, syndrome.Received, resolved)
	require.Equal(t, []byte{0, 1, 0}, received)
	require.Equal(t, []byte{1, 1}, synd) // H*[0,1,0] = [1,1]
}

func TestNormalize_AutoInfersSyndromeByLength(t *testing.T) {
	h := repetitionH(t)
	synd := make([]byte, 2)
	received := make([]byte, 3)

	resolved, err := syndrome.Normalize(h, []byte{1, 0}, syndrome.Auto, synd, received)
	require.NoError(t, err)
	require.Equal(t, syndrome.Syndrome, resolved)
	require.Equal(t, []byte{1, 0}, synd)
}

func TestNormalize_AmbiguousOnSquareMatrix(t *testing.T) {
	h := squareH(t)
	synd := make([]byte, 3)
	received := make([]byte, 3)

	_, err := syndrome.Normalize(h, []byte{1, 0, 1}, syndrome.Auto, synd, received)
	require.ErrorIs(t, err, syndrome.ErrAmbiguousInput)
}

func TestNormalize_ExplicitTypeOnSquareMatrixIsNotAmbiguous(t *testing.T) {
	h := squareH(t)
	synd := make([]byte, 3)
	received := make([]byte, 3)

	resolved, err := syndrome.Normalize(h, []byte{1, 0, 1}, syndrome.Syndrome, synd, received)
	require.NoError(t, err)
	require.Equal(t, syndrome.Syndrome, resolved)
	require.Equal(t, []byte{1, 0, 1}, synd)
}

func TestNormalize_InvalidLength(t *testing.T) {
	h := repetitionH(t)
	synd := make([]byte, 2)
	received := make([]byte, 3)

	_, err := syndrome.Normalize(h, []byte{1, 0, 1, 1}, syndrome.Auto, synd, received)
	require.ErrorIs(t, err, syndrome.ErrInvalidInputLength)
}

func TestRecover_ReceivedXorsBackIn(t *testing.T) {
	bpDecoding := []byte{0, 1, 0}
	received := []byte{0, 1, 1}
	out := make([]byte, 3)

	err := syndrome.Recover(syndrome.Received, bpDecoding, received, out)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 1}, out)
}

func TestRecover_SyndromePassesThrough(t *testing.T) {
	bpDecoding := []byte{1, 0, 1}
	out := make([]byte, 3)

	err := syndrome.Recover(syndrome.Syndrome, bpDecoding, nil, out)
	require.NoError(t, err)
	require.Equal(t, bpDecoding, out)
}
