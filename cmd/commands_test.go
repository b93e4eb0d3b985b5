package main

import (
	"testing"

	"github.com/brandquad/printcolor"
	"github.com/brandquad/printcolor/colorutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCMYK(t *testing.T) {
	c, err := parseCMYK("0, 95,100,0")
	require.NoError(t, err)
	assert.Equal(t, colorutils.CMYK{M: 95, Y: 100}, c)

	_, err = parseCMYK("0,95,100")
	assert.ErrorIs(t, err, printcolor.ErrInvalidInput)
	_, err = parseCMYK("0,95,x,0")
	assert.ErrorIs(t, err, printcolor.ErrInvalidInput)
}

func TestOptionalFloat(t *testing.T) {
	var o optionalFloat
	assert.Equal(t, "", o.String())
	require.NoError(t, o.Set("12.5"))
	require.NotNil(t, o.v)
	assert.Equal(t, 12.5, *o.v)
	assert.Equal(t, "12.5", o.String())
	assert.Error(t, o.Set("abc"))
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, "#000000", contrastColor("#FFFF00"))
	assert.Equal(t, "#FFFFFF", contrastColor("#0000FF"))
	assert.Equal(t, "#FFFFFF", contrastColor("not a color"))
}

func TestCommandsResolve(t *testing.T) {
	svc := printcolor.New(printcolor.Config{})
	out, chips, err := commands["resolve"](svc, []string{"485", "C"})
	require.NoError(t, err)
	match, ok := out.(printcolor.MatchResult)
	require.True(t, ok)
	assert.Equal(t, "Pantone 485 C", match.Name)
	require.Len(t, chips, 1)
	assert.Equal(t, match.Hex, chips[0].hex)

	_, _, err = commands["resolve"](svc, nil)
	assert.Error(t, err)
}
