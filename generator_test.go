package randtok_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randtok/randtok"
)

// sequencePick returns a picker replaying the given indices, then cycling.
func sequencePick(indices ...int) randtok.PickFunc {
	i := 0

	return func(_ int) int {
		idx := indices[i%len(indices)]
		i++

		return idx
	}
}

// cyclePick returns a picker walking 0,1,...,n-1,0,1,... for whatever bound
// it is called with.
func cyclePick() randtok.PickFunc {
	i := 0

	return func(n int) int {
		idx := i % n
		i++

		return idx
	}
}

func TestNew_EmptyCharset(t *testing.T) {
	_, err := randtok.New([]byte{})
	assert.ErrorIs(t, err, randtok.ErrEmptyCharset)

	_, err = randtok.NewString("")
	assert.ErrorIs(t, err, randtok.ErrEmptyCharset)

	_, err = randtok.NewRunes("")
	assert.ErrorIs(t, err, randtok.ErrEmptyCharset)

	// terminator in first position leaves no usable symbols
	_, err = randtok.NewTerminated([]byte{0, 'a', 'b'}, 0)
	assert.ErrorIs(t, err, randtok.ErrEmptyCharset)
}

func TestGenerate_SymbolsComeFromCharset(t *testing.T) {
	g, err := randtok.NewString(randtok.Alphanumeric)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 16, 255} {
		out := g.Generate(n)
		assert.Len(t, out, n)

		for _, b := range out {
			assert.Contains(t, []byte(randtok.Alphanumeric), b)
		}
	}
}

func TestGenerate_ZeroLengthSkipsPicker(t *testing.T) {
	picked := false

	g, err := randtok.NewString("abc", randtok.WithPick(func(n int) int {
		picked = true

		return 0
	}))
	require.NoError(t, err)

	out := g.Generate(0)
	assert.Empty(t, out)
	assert.False(t, picked, "picker must not run for a zero-length request")
}

func TestGenerate_FixedPicker(t *testing.T) {
	g, err := randtok.NewString("abc", randtok.WithPick(func(_ int) int { return 0 }))
	require.NoError(t, err)

	assert.Equal(t, "aaaaaa", randtok.String(g, 6))
}

func TestGenerate_CyclicPicker(t *testing.T) {
	g, err := randtok.NewString("abcd", randtok.WithPick(cyclePick()))
	require.NoError(t, err)

	assert.Equal(t, "abcdabcdab", randtok.String(g, 10))
}

func TestGenerate_PickerSequenceScenario(t *testing.T) {
	// charset "ab" with picks 1,0,1 spells "bab"
	g, err := randtok.NewString("ab", randtok.WithPick(sequencePick(1, 0, 1)))
	require.NoError(t, err)

	assert.Equal(t, "bab", randtok.String(g, 3))
}

func TestFill_WritesExactlyTheBuffer(t *testing.T) {
	g, err := randtok.NewString("xyz", randtok.WithPick(func(_ int) int { return 2 }))
	require.NoError(t, err)

	buf := make([]byte, 5)
	g.Fill(buf)

	assert.Equal(t, "zzzzz", string(buf))
}

func TestFill_SubsliceLeavesTailUntouched(t *testing.T) {
	g, err := randtok.NewString("a", randtok.WithPick(func(_ int) int { return 0 }))
	require.NoError(t, err)

	buf := []byte("......")
	g.Fill(buf[:3])

	assert.Equal(t, "aaa...", string(buf))
}

func TestNew_CopiesCharset(t *testing.T) {
	src := []byte("abc")

	g, err := randtok.New(src, randtok.WithPick(func(_ int) int { return 0 }))
	require.NoError(t, err)

	src[0] = 'Z' // caller scribbles over its own buffer

	assert.Equal(t, "aa", randtok.String(g, 2))
}

func TestConstructionForms_Equivalent(t *testing.T) {
	pick := func(_ int) int { return 0 }

	fromSlice, err := randtok.New([]byte("abc"), randtok.WithPick(pick))
	require.NoError(t, err)

	fromString, err := randtok.NewString("abc", randtok.WithPick(pick))
	require.NoError(t, err)

	fromTerminated, err := randtok.NewTerminated([]byte{'a', 'b', 'c', 0, 'X'}, 0, randtok.WithPick(pick))
	require.NoError(t, err)

	generators := []*randtok.ByteGenerator{fromSlice, fromString, fromTerminated}

	for _, g := range generators {
		assert.Equal(t, 3, g.Len())
	}

	// identical picker walk must spell identical output across all forms
	for _, g := range generators {
		assert.Equal(t, "aaaa", randtok.String(g, 4))
	}
}

func TestNewTerminated_NoTerminatorUsesWholeBuffer(t *testing.T) {
	g, err := randtok.NewTerminated([]byte("abc"), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Len())
}

func TestMaterialize_CustomContainerType(t *testing.T) {
	type token []byte

	g, err := randtok.NewString("k", randtok.WithPick(func(_ int) int { return 0 }))
	require.NoError(t, err)

	out := randtok.Materialize[token](g, 4)

	assert.IsType(t, token{}, out)
	assert.Equal(t, token("kkkk"), out)
}

func TestRuneString_WideAlphabet(t *testing.T) {
	g, err := randtok.NewRunes("日月", randtok.WithPick(cyclePick()))
	require.NoError(t, err)

	out := randtok.RuneString(g, 4)

	assert.Equal(t, "日月日月", out)
	assert.Equal(t, 2, g.Len())
}

func TestSeed_InvokesInjectedFunction(t *testing.T) {
	calls := 0

	g, err := randtok.NewString("a",
		randtok.WithSeed(func() { calls++ }),
		randtok.WithPick(func(_ int) int { return 0 }),
	)
	require.NoError(t, err)

	// custom pair: construction must not have seeded
	require.Zero(t, calls)

	g.Seed()
	g.Seed()

	assert.Equal(t, 2, calls)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() {
		g := randtok.Must(randtok.NewString(randtok.Hex))
		assert.Equal(t, 16, g.Len())
	})

	assert.Panics(t, func() {
		randtok.Must(randtok.NewString(""))
	})
}

func TestDefaultRandomness_ProducesValidTokens(t *testing.T) {
	// default seed/pick end to end: output length and membership only,
	// the values themselves are whatever the shared source yields
	g, err := randtok.NewString(randtok.Hex)
	require.NoError(t, err)

	out := randtok.String(g, 64)
	require.Len(t, out, 64)

	for _, b := range []byte(out) {
		assert.Contains(t, []byte(randtok.Hex), b)
	}
}
