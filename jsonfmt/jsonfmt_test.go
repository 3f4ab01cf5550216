package jsonfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/jsonfmt/jsonfmt"
)

func TestReformatScalar(t *testing.T) {
	out, err := jsonfmt.Reformat([]byte(`42`))
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestReformatSimpleObjectInline(t *testing.T) {
	out, err := jsonfmt.Reformat([]byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	require.Equal(t, "{ \"a\": 1, \"b\": 2 }\n", out)
}

func TestReformatEmptyContainers(t *testing.T) {
	out, err := jsonfmt.Reformat([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)

	out, err = jsonfmt.Reformat([]byte(`[]`))
	require.NoError(t, err)
	require.Equal(t, "[]\n", out)
}

func TestReformatRejectsInvalidJSON(t *testing.T) {
	_, err := jsonfmt.Reformat([]byte(`{"a":}`))
	require.Error(t, err)
}

func TestReformatRejectsCommentsByDefault(t *testing.T) {
	_, err := jsonfmt.Reformat([]byte("// c\n1"))
	require.Error(t, err)
}

func TestReformatPreservesCommentsWhenPolicySet(t *testing.T) {
	out, err := jsonfmt.Reformat([]byte("1 // trailing\n"), jsonfmt.WithCommentPolicy(jsonfmt.Preserve))
	require.NoError(t, err)
	require.Contains(t, out, "// trailing")
}

func TestReformatIsIdempotent(t *testing.T) {
	first, err := jsonfmt.Reformat([]byte(`{"a":[1,2,3],"b":"x"}`))
	require.NoError(t, err)
	second, err := jsonfmt.Reformat([]byte(first))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMinifyStripsOptionalWhitespace(t *testing.T) {
	out, err := jsonfmt.Minify([]byte("{\n  \"a\": 1\n}\n"))
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1}\n", out)
}

func TestMinifyRejectsCommentsByDefault(t *testing.T) {
	_, err := jsonfmt.Minify([]byte("{\n  // c\n  \"a\": 1\n}\n"))
	require.Error(t, err)
}

func TestMinifyRemovesCommentsWhenPolicySetToRemove(t *testing.T) {
	out, err := jsonfmt.Minify([]byte("{\n  // c\n  \"a\": 1\n}\n"), jsonfmt.WithCommentPolicy(jsonfmt.Remove))
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1}\n", out)
}

func TestMinifyPreservesCommentsWhenPolicySetToPreserve(t *testing.T) {
	out, err := jsonfmt.Minify([]byte("{\n  // c\n  \"a\": 1\n}\n"), jsonfmt.WithCommentPolicy(jsonfmt.Preserve))
	require.NoError(t, err)
	require.Contains(t, out, "// c")
	require.Contains(t, out, `"a":1`)
}

func TestMinifyPreservesBlankLinesWhenRequested(t *testing.T) {
	out, err := jsonfmt.Minify([]byte("1\n\n"), jsonfmt.WithPreserveBlankLines(true))
	require.NoError(t, err)
	require.Equal(t, "1\n\n", out)
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	require.NoError(t, jsonfmt.Validate([]byte(`{"a": 1}`)))
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	require.Error(t, jsonfmt.Validate([]byte(`{"a":}`)))
}

func TestValidateRejectsSecondTopLevelValue(t *testing.T) {
	require.Error(t, jsonfmt.Validate([]byte(`1 2`)))
}

func TestSerializeMap(t *testing.T) {
	out, err := jsonfmt.Serialize(map[string]int{"a": 1}, 0)
	require.NoError(t, err)
	require.Equal(t, "{ \"a\": 1 }\n", out)
}

func TestSerializeSlice(t *testing.T) {
	out, err := jsonfmt.Serialize([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	require.Equal(t, "[ 1, 2, 3 ]\n", out)
}

func TestSerializeNilRootErrors(t *testing.T) {
	_, err := jsonfmt.Serialize(nil, 0)
	require.Error(t, err)
}

func TestFormatterReusesResolvedOptions(t *testing.T) {
	f := jsonfmt.NewFormatter(jsonfmt.WithIndentSpaces(2))
	out1, err := f.Reformat([]byte(`{"a":1}`))
	require.NoError(t, err)
	out2, err := f.Reformat([]byte(`{"b":2}`))
	require.NoError(t, err)
	require.Contains(t, out1, `"a"`)
	require.Contains(t, out2, `"b"`)
}

func TestFormatterMinify(t *testing.T) {
	f := jsonfmt.NewFormatter()
	out, err := f.Minify([]byte("{\n  \"a\": 1\n}\n"))
	require.NoError(t, err)
	require.Equal(t, "{\"a\":1}\n", out)
}

func TestFormatterValidate(t *testing.T) {
	f := jsonfmt.NewFormatter()
	require.NoError(t, f.Validate([]byte(`1`)))
	require.Error(t, f.Validate([]byte(`1 2`)))
}
