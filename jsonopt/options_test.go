package jsonopt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/measure"
)

func TestNewDefaults(t *testing.T) {
	o := jsonopt.New()
	require.Equal(t, jsonopt.LF, o.EOL)
	require.Equal(t, 120, o.MaxTotalLineLength)
	require.Equal(t, 4, o.IndentSpaces)
	require.Equal(t, jsonopt.TreatAsError, o.CommentPolicy)
	require.False(t, o.AllowTrailingCommas)
	require.NotNil(t, o.StringWidth)
	require.Equal(t, 3, o.StringWidth("abc"))
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := jsonopt.New(
		jsonopt.WithIndentSpaces(2),
		jsonopt.WithMaxTotalLineLength(80),
		jsonopt.WithCommentPolicy(jsonopt.Preserve),
		jsonopt.WithAllowTrailingCommas(true),
	)
	require.Equal(t, 2, o.IndentSpaces)
	require.Equal(t, 80, o.MaxTotalLineLength)
	require.Equal(t, jsonopt.Preserve, o.CommentPolicy)
	require.True(t, o.AllowTrailingCommas)
}

func TestWithStringWidthOverride(t *testing.T) {
	o := jsonopt.New(jsonopt.WithStringWidth(measure.EastAsian))
	require.Equal(t, 4, o.StringWidth("日本"))
}

func TestEOLBytes(t *testing.T) {
	require.Equal(t, "\n", jsonopt.LF.Bytes())
	require.Equal(t, "\r\n", jsonopt.CRLF.Bytes())
}

func TestNilStringWidthFallsBackToDefault(t *testing.T) {
	o := jsonopt.New(jsonopt.WithStringWidth(nil))
	require.NotNil(t, o.StringWidth)
	require.Equal(t, 1, o.StringWidth("x"))
}
