// Package jsonopt defines the formatter's configuration surface:
// a plain, immutable-after-construction Options struct built with a
// functional-option pattern. It is a separate package, one tier below
// jsonfmt, so every pipeline stage (scan, parse, widthpass, table, layout)
// can depend on the option types it needs without importing the public
// jsonfmt package itself.
package jsonopt

import "github.com/simon-lentz/jsonfmt/measure"

// EOLStyle selects the line terminator written between output lines.
type EOLStyle uint8

const (
	LF EOLStyle = iota
	CRLF
)

// Bytes returns the literal EOL bytes for the style.
func (e EOLStyle) Bytes() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// CommentPolicy controls how the parser treats comments in the input.
type CommentPolicy uint8

const (
	// TreatAsError rejects any comment found in the input with a positional
	// error. This is the default, matching a strict-JSON reader.
	TreatAsError CommentPolicy = iota

	// Remove silently discards comments; none appear in the output.
	Remove

	// Preserve keeps every comment attached to its owning element.
	Preserve
)

// NumberAlignment selects how a table or compact-multiline column of
// numbers is padded to share a width.
type NumberAlignment uint8

const (
	Left NumberAlignment = iota
	Right
	Decimal
	Normalize
)

// CommaPlacement selects where a table row's trailing comma sits relative
// to its value/comment padding.
type CommaPlacement uint8

const (
	BeforePadding CommaPlacement = iota
	AfterPadding
	BeforePaddingExceptNumbers
)

// Options holds every tunable knob of the formatter. The zero value is not
// meaningful on its own; always build one with New, which fills in
// defaults before applying the supplied Option values.
type Options struct {
	EOL EOLStyle

	MaxTotalLineLength        int
	MaxInlineComplexity       int
	MaxCompactArrayComplexity int
	MaxTableRowComplexity     int
	MaxPropNamePadding        int
	MinCompactArrayRowItems   int
	AlwaysExpandDepth         int

	IndentSpaces   int
	UseTabToIndent bool
	PrefixString   string

	NestedBracketPadding       bool
	SimpleBracketPadding       bool
	ColonPadding               bool
	CommaPadding               bool
	CommentPadding             bool
	ColonBeforePropNamePadding bool

	TableCommaPlacement CommaPlacement
	NumberListAlignment NumberAlignment

	CommentPolicy       CommentPolicy
	PreserveBlankLines  bool
	AllowTrailingCommas bool

	// StringWidth measures the rendered width of a string for layout
	// decisions. Defaults to measure.Runes.
	StringWidth measure.Func
}

// Option mutates an Options value under construction.
type Option func(*Options)

// New builds an Options value from the formatter's documented defaults,
// then applies opts in order.
func New(opts ...Option) Options {
	o := Options{
		EOL:                        LF,
		MaxTotalLineLength:         120,
		MaxInlineComplexity:        2,
		MaxCompactArrayComplexity:  2,
		MaxTableRowComplexity:      2,
		MaxPropNamePadding:         16,
		MinCompactArrayRowItems:    3,
		AlwaysExpandDepth:          -1,
		IndentSpaces:               4,
		UseTabToIndent:             false,
		PrefixString:               "",
		NestedBracketPadding:       true,
		SimpleBracketPadding:       true,
		ColonPadding:               true,
		CommaPadding:               true,
		CommentPadding:             true,
		ColonBeforePropNamePadding: false,
		TableCommaPlacement:        BeforePaddingExceptNumbers,
		NumberListAlignment:        Left,
		CommentPolicy:              TreatAsError,
		PreserveBlankLines:         false,
		AllowTrailingCommas:        false,
		StringWidth:                measure.Runes,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.StringWidth == nil {
		o.StringWidth = measure.Runes
	}
	return o
}

func WithEOLStyle(v EOLStyle) Option       { return func(o *Options) { o.EOL = v } }
func WithMaxTotalLineLength(v int) Option  { return func(o *Options) { o.MaxTotalLineLength = v } }
func WithMaxInlineComplexity(v int) Option { return func(o *Options) { o.MaxInlineComplexity = v } }
func WithMaxCompactArrayComplexity(v int) Option {
	return func(o *Options) { o.MaxCompactArrayComplexity = v }
}
func WithMaxTableRowComplexity(v int) Option { return func(o *Options) { o.MaxTableRowComplexity = v } }
func WithMaxPropNamePadding(v int) Option    { return func(o *Options) { o.MaxPropNamePadding = v } }
func WithMinCompactArrayRowItems(v int) Option {
	return func(o *Options) { o.MinCompactArrayRowItems = v }
}
func WithAlwaysExpandDepth(v int) Option { return func(o *Options) { o.AlwaysExpandDepth = v } }
func WithIndentSpaces(v int) Option      { return func(o *Options) { o.IndentSpaces = v } }
func WithUseTabToIndent(v bool) Option   { return func(o *Options) { o.UseTabToIndent = v } }
func WithPrefixString(v string) Option   { return func(o *Options) { o.PrefixString = v } }
func WithNestedBracketPadding(v bool) Option {
	return func(o *Options) { o.NestedBracketPadding = v }
}
func WithSimpleBracketPadding(v bool) Option {
	return func(o *Options) { o.SimpleBracketPadding = v }
}
func WithColonPadding(v bool) Option   { return func(o *Options) { o.ColonPadding = v } }
func WithCommaPadding(v bool) Option   { return func(o *Options) { o.CommaPadding = v } }
func WithCommentPadding(v bool) Option { return func(o *Options) { o.CommentPadding = v } }
func WithColonBeforePropNamePadding(v bool) Option {
	return func(o *Options) { o.ColonBeforePropNamePadding = v }
}
func WithTableCommaPlacement(v CommaPlacement) Option {
	return func(o *Options) { o.TableCommaPlacement = v }
}
func WithNumberListAlignment(v NumberAlignment) Option {
	return func(o *Options) { o.NumberListAlignment = v }
}
func WithCommentPolicy(v CommentPolicy) Option { return func(o *Options) { o.CommentPolicy = v } }
func WithPreserveBlankLines(v bool) Option {
	return func(o *Options) { o.PreserveBlankLines = v }
}
func WithAllowTrailingCommas(v bool) Option {
	return func(o *Options) { o.AllowTrailingCommas = v }
}
func WithStringWidth(f measure.Func) Option { return func(o *Options) { o.StringWidth = f } }
