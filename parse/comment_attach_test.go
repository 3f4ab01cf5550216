package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
)

func preserveOpts(opts ...jsonopt.Option) []jsonopt.Option {
	return append([]jsonopt.Option{jsonopt.WithCommentPolicy(jsonopt.Preserve)}, opts...)
}

// A comment on the same row as the value it precedes attaches as that
// value's PrefixComment rather than becoming a standalone sibling.
func TestPrefixCommentSameRowAsNextValue(t *testing.T) {
	top := mustParse(t, "{\n/* c */ \"a\": 1\n}", preserveOpts()...)
	obj := onlyValue(t, top)
	require.Len(t, obj.Children, 1)
	require.Equal(t, "/* c */", obj.Children[0].PrefixComment)
}

// A comment on its own line, separated from the next real token by a line
// break, is a standalone sibling, not a prefix candidate.
func TestCommentOnOwnLineBecomesStandalone(t *testing.T) {
	top := mustParse(t, "{\n// c\n\"a\": 1\n}", preserveOpts()...)
	obj := onlyValue(t, top)
	require.Len(t, obj.Children, 2)
	require.Equal(t, item.LineComment, obj.Children[0].Kind)
	require.Equal(t, "// c", obj.Children[0].Value)
	require.Equal(t, `"a"`, obj.Children[1].Name)
	require.Equal(t, "", obj.Children[1].PrefixComment)
}

// A comment sharing its row with an upcoming closing bracket is never taken
// as a prefix candidate: there is no element left to attach it to, so it is
// always a standalone sibling even though it sits on the same line as the
// next real token.
func TestCommentBeforeClosingBracketIsAlwaysStandalone(t *testing.T) {
	top := mustParse(t, "[1\n/* c */]", preserveOpts()...)
	arr := onlyValue(t, top)
	require.Len(t, arr.Children, 2)
	require.Equal(t, item.Number, arr.Children[0].Kind)
	require.Equal(t, item.BlockComment, arr.Children[1].Kind)
	require.Equal(t, "/* c */", arr.Children[1].Value)
}

// A comment between an object member's name and its value, spanning the
// colon, becomes the member's MiddleComment.
func TestMiddleCommentBetweenNameAndValue(t *testing.T) {
	top := mustParse(t, `{"a" /* mid */ : 1}`, preserveOpts()...)
	obj := onlyValue(t, top)
	member := obj.Children[0]
	require.Equal(t, "/* mid */", member.MiddleComment)
	require.False(t, member.MiddleCommentHasNewline)
}

// Middle comments found both before and after the colon are concatenated
// with a newline, which forces MiddleCommentHasNewline.
func TestMiddleCommentBeforeAndAfterColonJoins(t *testing.T) {
	top := mustParse(t, "{\"a\" /* one */ : /* two */ 1}", preserveOpts()...)
	obj := onlyValue(t, top)
	member := obj.Children[0]
	require.Equal(t, "/* one */\n/* two */", member.MiddleComment)
	require.True(t, member.MiddleCommentHasNewline)
}

// A comment immediately following a value on the same row attaches as its
// PostfixComment.
func TestPostfixCommentSameRow(t *testing.T) {
	top := mustParse(t, "{\"a\": 1 // trailing\n}", preserveOpts()...)
	obj := onlyValue(t, top)
	member := obj.Children[0]
	require.Equal(t, "// trailing", member.PostfixComment)
	require.True(t, member.IsPostCommentLineStyle)
}

// A comment following the comma after a value, still on the value's row,
// also attaches as PostfixComment, and the comment is spliced out of the
// stream so the enclosing container's comma-state machine still sees the
// comma as the very next token.
func TestPostfixCommentAfterCommaSameRow(t *testing.T) {
	top := mustParse(t, "[1, // trailing\n2]", preserveOpts()...)
	arr := onlyValue(t, top)
	require.Len(t, arr.Children, 2)
	require.Equal(t, "// trailing", arr.Children[0].PostfixComment)
	require.True(t, arr.Children[0].IsPostCommentLineStyle)
	require.Equal(t, "2", arr.Children[1].Value)
	require.Equal(t, "", arr.Children[1].PrefixComment)
}

// A block comment sharing a value's row but itself spanning multiple
// physical lines is never attached as that value's PostfixComment: it is
// always a standalone sibling, even though its opening line matches the
// value's row.
func TestMultiLineBlockCommentAfterValueIsStandalone(t *testing.T) {
	top := mustParse(t, "[1 /* a\nb */, 2]", preserveOpts()...)
	arr := onlyValue(t, top)
	require.Len(t, arr.Children, 3)
	require.Equal(t, item.Number, arr.Children[0].Kind)
	require.Equal(t, "", arr.Children[0].PostfixComment)
	require.Equal(t, item.BlockComment, arr.Children[1].Kind)
	require.Equal(t, "/* a\nb */", arr.Children[1].Value)
	require.Equal(t, item.Number, arr.Children[2].Kind)
	require.Equal(t, "2", arr.Children[2].Value)
}

// The same rule applies when the multi-line comment follows the comma after
// a value rather than the value itself.
func TestMultiLineBlockCommentAfterCommaIsStandalone(t *testing.T) {
	top := mustParse(t, "[1, /* a\nb */ 2]", preserveOpts()...)
	arr := onlyValue(t, top)
	require.Len(t, arr.Children, 3)
	require.Equal(t, item.Number, arr.Children[0].Kind)
	require.Equal(t, "", arr.Children[0].PostfixComment)
	require.Equal(t, item.BlockComment, arr.Children[1].Kind)
	require.Equal(t, "/* a\nb */", arr.Children[1].Value)
	require.Equal(t, item.Number, arr.Children[2].Kind)
	require.Equal(t, "2", arr.Children[2].Value)
}

// A comment on the row after a value, even right after its comma, does not
// attach as postfix: it belongs to whatever comes next.
func TestCommentOnNextRowIsNotPostfix(t *testing.T) {
	top := mustParse(t, "[1,\n// c\n2]", preserveOpts()...)
	arr := onlyValue(t, top)
	require.Equal(t, "", arr.Children[0].PostfixComment)
	var sawStandalone bool
	for _, c := range arr.Children {
		if c.Kind == item.LineComment {
			sawStandalone = true
		}
	}
	require.True(t, sawStandalone)
}

// Leading and trailing standalone comments around the sole top-level value
// are preserved in document order.
func TestLeadingAndTrailingTopLevelComments(t *testing.T) {
	top := mustParse(t, "// lead\n1\n// trail\n", preserveOpts()...)
	require.Len(t, top, 3)
	require.Equal(t, item.LineComment, top[0].Kind)
	require.Equal(t, item.Number, top[1].Kind)
	require.Equal(t, item.LineComment, top[2].Kind)
}

// Under CommentPolicy Remove, comments never reach the tree at all, not
// even as standalone siblings.
func TestCommentPolicyRemoveDropsStandaloneComments(t *testing.T) {
	top := mustParse(t, "{\n// c\n\"a\": 1\n}", jsonopt.WithCommentPolicy(jsonopt.Remove))
	obj := onlyValue(t, top)
	require.Len(t, obj.Children, 1)
	require.Equal(t, `"a"`, obj.Children[0].Name)
}
