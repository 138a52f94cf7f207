package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/rattrig/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestVectorsCommand(t *testing.T) {
	out, _, err := execute(t, "", "vectors", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"dot          11",
		"cross        -2",
		"quad1        5",
		"quad2        25",
		"spread       4/125",
		"",
	}, "\n"), out)
}

func TestVectorsFromStdin(t *testing.T) {
	out, _, err := execute(t, "1 2\n\n3 4\n", "vectors")
	require.NoError(t, err)
	assert.Contains(t, out, "spread       4/125")
}

func TestVectorsIntDomainPromotesSpread(t *testing.T) {
	out, _, err := execute(t, "", "--domain", "int", "vectors", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "dot          11")
	assert.Contains(t, out, "spread       4/125")

	_, _, err = execute(t, "", "--domain", "int", "vectors", "1/2", "2", "3", "4")
	assert.EqualError(t, err, `invalid integer "1/2"`)
}

func TestVectorsFloatDomain(t *testing.T) {
	out, _, err := execute(t, "", "-d", "float", "vectors", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "spread       0.032")
}

func TestVectorsZeroVector(t *testing.T) {
	out, _, err := execute(t, "", "vectors", "0", "0", "1", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
	// The total formulas are still reported
	assert.Contains(t, out, "dot          0")
	assert.NotContains(t, out, "spread")
}

func TestTriangleCommand(t *testing.T) {
	out, _, err := execute(t, "", "triangle", "5", "25", "20")
	require.NoError(t, err)
	assert.Equal(t, "archimedes   400\nspread law   4/5\n", out)

	out, _, err = execute(t, "", "triangle", "1/2", "1/4", "1/6")
	require.NoError(t, err)
	assert.Contains(t, out, "archimedes   23/144")

	_, _, err = execute(t, "", "triangle", "0", "5", "3")
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestTriangleOutOfRangeIsLogged(t *testing.T) {
	out, stderr, err := execute(t, "", "-v", "triangle", "1", "1", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "spread law   -45/4")
	assert.Contains(t, stderr, "do not form a triangle")
}

func TestTripleQuadCommand(t *testing.T) {
	out, _, err := execute(t, "", "triple-quad", "5", "25", "4/125")
	require.NoError(t, err)
	assert.Equal(t, "triple quad  416\n", out)

	out, _, err = execute(t, "", "--domain", "int", "triple-quad", "1", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "triple quad  0\n", out)
}

func TestPointsCommand(t *testing.T) {
	out, _, err := execute(t, "0 0\n3 0\n0 4\n", "points")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"qa           25",
		"qb           16",
		"qc           9",
		"quadrea      576",
		"sa           1",
		"sb           16/25",
		"sc           9/25",
		"",
	}, "\n"), out)

	_, _, err = execute(t, "", "points", "1", "1", "1", "1", "2", "3")
	assert.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestDrawing(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "points.png")
	_, stderr, err := execute(t, "", "points", "0", "0", "3", "0", "0", "4", "--png", filename, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote drawing")

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestBadInput(t *testing.T) {
	_, _, err := execute(t, "", "--domain", "complex", "vectors", "1", "2", "3", "4")
	assert.EqualError(t, err, `unknown domain "complex" (want int, rat or float)`)

	_, _, err = execute(t, "", "triangle", "1", "2")
	assert.EqualError(t, err, "expected 3 numbers, got 2")

	_, _, err = execute(t, "", "vectors", "1", "2", "3", "4", "5")
	assert.Error(t, err)
}

func TestVeryVerboseLogsInputs(t *testing.T) {
	_, stderr, err := execute(t, "", "-V", "triple-quad", "5", "25", "4/125")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "s3=4/125")
}

func TestDrawingTooLargeIsAnError(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "huge.png")
	assert.NotPanics(t, func() {
		_, _, err := execute(t, "", "points", "0", "0", "1000000000000000000", "0", "0", "1", "--png", filename)
		assert.EqualError(t, err, "drawing too large: 4e+19x40")
	})
	_, err := os.Stat(filename)
	assert.True(t, os.IsNotExist(err))
}

func TestImgcatWithoutPNG(t *testing.T) {
	// --imgcat without --png only warns
	_, stderr, err := execute(t, "", "--imgcat", "-v", "vectors", "1", "2", "3", "4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "--imgcat needs --png")
}

func TestColor(t *testing.T) {
	out, _, err := execute(t, "", "--color", "triangle", "1", "1", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[36m")
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, "-45/4")

	out, _, err = execute(t, "", "--color", "points", "0", "0", "1", "1", "3", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[31m")

	out, _, err = execute(t, "", "--color", "triangle", "5", "25", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[32m")
	assert.NotContains(t, out, "\x1b[31m")

	// Off by default
	out, _, err = execute(t, "", "triangle", "5", "25", "20")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}
