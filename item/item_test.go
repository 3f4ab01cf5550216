package item_test

import (
	"testing"

	"github.com/simon-lentz/jsonfmt/item"
)

func TestKindString(t *testing.T) {
	cases := map[item.Kind]string{
		item.Null:         "Null",
		item.True:         "True",
		item.False:        "False",
		item.String:       "String",
		item.Number:       "Number",
		item.Object:       "Object",
		item.Array:        "Array",
		item.BlankLine:    "BlankLine",
		item.LineComment:  "LineComment",
		item.BlockComment: "BlockComment",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsContainer(t *testing.T) {
	for _, k := range []item.Kind{item.Object, item.Array} {
		if !k.IsContainer() {
			t.Errorf("%v.IsContainer() = false, want true", k)
		}
	}
	for _, k := range []item.Kind{item.String, item.Number, item.True, item.False, item.Null} {
		if k.IsContainer() {
			t.Errorf("%v.IsContainer() = true, want false", k)
		}
	}
}

func TestIsStandaloneComment(t *testing.T) {
	for _, k := range []item.Kind{item.BlankLine, item.LineComment, item.BlockComment} {
		if !k.IsStandaloneComment() {
			t.Errorf("%v.IsStandaloneComment() = false, want true", k)
		}
	}
	if item.Object.IsStandaloneComment() {
		t.Errorf("Object.IsStandaloneComment() = true, want false")
	}
}

func TestIsValue(t *testing.T) {
	v := &item.Item{Kind: item.Number}
	if !v.IsValue() {
		t.Errorf("Number item.IsValue() = false, want true")
	}
	c := &item.Item{Kind: item.LineComment}
	if c.IsValue() {
		t.Errorf("LineComment item.IsValue() = true, want false")
	}
}

func TestHasComments(t *testing.T) {
	plain := &item.Item{Kind: item.Number, Value: "1"}
	if plain.HasComments() {
		t.Errorf("HasComments() = true, want false")
	}
	withPrefix := &item.Item{Kind: item.Number, Value: "1", PrefixComment: "/* c */"}
	if !withPrefix.HasComments() {
		t.Errorf("HasComments() = false, want true")
	}
	withMiddle := &item.Item{Kind: item.Number, Value: "1", MiddleComment: "/* m */"}
	if !withMiddle.HasComments() {
		t.Errorf("HasComments() = false, want true")
	}
	withPostfix := &item.Item{Kind: item.Number, Value: "1", PostfixComment: "// p"}
	if !withPostfix.HasComments() {
		t.Errorf("HasComments() = false, want true")
	}
}
