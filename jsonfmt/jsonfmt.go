// Package jsonfmt is the public entry point for the human-oriented JSONC
// formatter: a scanner, a comment-attaching parser, a width-measurement
// pass, a table-template engine, and a layout selector, composed into a
// pure synchronous text-in/text-out transform.
package jsonfmt

import (
	"github.com/simon-lentz/jsonfmt/ferr"
	"github.com/simon-lentz/jsonfmt/item"
	"github.com/simon-lentz/jsonfmt/jsonopt"
	"github.com/simon-lentz/jsonfmt/layout"
	"github.com/simon-lentz/jsonfmt/nativevalue"
	"github.com/simon-lentz/jsonfmt/parse"
	"github.com/simon-lentz/jsonfmt/widthpass"
)

// Options and Option are re-exported from jsonopt so callers never import
// that package directly; jsonopt exists purely to break an import cycle
// between this package and the pipeline stages that need its types.
type Options = jsonopt.Options
type Option = jsonopt.Option

var New = jsonopt.New

// Re-export every With* constructor so callers write jsonfmt.WithIndentSpaces
// instead of reaching into jsonopt themselves.
var (
	WithEOLStyle                   = jsonopt.WithEOLStyle
	WithMaxTotalLineLength         = jsonopt.WithMaxTotalLineLength
	WithMaxInlineComplexity        = jsonopt.WithMaxInlineComplexity
	WithMaxCompactArrayComplexity  = jsonopt.WithMaxCompactArrayComplexity
	WithMaxTableRowComplexity      = jsonopt.WithMaxTableRowComplexity
	WithMaxPropNamePadding         = jsonopt.WithMaxPropNamePadding
	WithMinCompactArrayRowItems    = jsonopt.WithMinCompactArrayRowItems
	WithAlwaysExpandDepth          = jsonopt.WithAlwaysExpandDepth
	WithIndentSpaces               = jsonopt.WithIndentSpaces
	WithUseTabToIndent             = jsonopt.WithUseTabToIndent
	WithPrefixString               = jsonopt.WithPrefixString
	WithNestedBracketPadding       = jsonopt.WithNestedBracketPadding
	WithSimpleBracketPadding       = jsonopt.WithSimpleBracketPadding
	WithColonPadding               = jsonopt.WithColonPadding
	WithCommaPadding               = jsonopt.WithCommaPadding
	WithCommentPadding             = jsonopt.WithCommentPadding
	WithColonBeforePropNamePadding = jsonopt.WithColonBeforePropNamePadding
	WithTableCommaPlacement        = jsonopt.WithTableCommaPlacement
	WithNumberListAlignment        = jsonopt.WithNumberListAlignment
	WithCommentPolicy              = jsonopt.WithCommentPolicy
	WithPreserveBlankLines         = jsonopt.WithPreserveBlankLines
	WithAllowTrailingCommas        = jsonopt.WithAllowTrailingCommas
	WithStringWidth                = jsonopt.WithStringWidth
)

const (
	LF   = jsonopt.LF
	CRLF = jsonopt.CRLF

	TreatAsError = jsonopt.TreatAsError
	Remove       = jsonopt.Remove
	Preserve     = jsonopt.Preserve

	Left      = jsonopt.Left
	Right     = jsonopt.Right
	Decimal   = jsonopt.Decimal
	Normalize = jsonopt.Normalize

	BeforePadding              = jsonopt.BeforePadding
	AfterPadding               = jsonopt.AfterPadding
	BeforePaddingExceptNumbers = jsonopt.BeforePaddingExceptNumbers
)

// Formatter bundles a resolved Options value so a caller reformatting many
// documents with the same settings builds it once instead of re-applying
// the same option list on every call.
type Formatter struct {
	opts Options
}

// NewFormatter resolves opts once and returns a reusable Formatter.
func NewFormatter(opts ...Option) *Formatter {
	return &Formatter{opts: jsonopt.New(opts...)}
}

// Reformat re-renders text as human-oriented JSONC under f's options.
func (f *Formatter) Reformat(text []byte) (string, error) {
	return reformat(text, f.opts)
}

// Serialize renders a live Go value as human-oriented JSONC under f's
// options. recursionLimit bounds nesting depth (0 selects the default of
// 100); nil roots and values of an unrepresentable kind return an error.
func (f *Formatter) Serialize(v any, recursionLimit int) (string, error) {
	return serialize(v, recursionLimit, f.opts)
}

// Minify renders text with every layout collapsed to the narrowest form
// the options allow (inline-first); comments and blank lines are kept or
// dropped according to f's CommentPolicy and PreserveBlankLines.
func (f *Formatter) Minify(text []byte) (string, error) {
	return reformat(text, minifyOptions(f.opts))
}

// Validate parses text and discards the result, reporting only whether it
// is well-formed under f's comment policy.
func (f *Formatter) Validate(text []byte) error {
	return Validate(text, func(o *Options) { *o = f.opts })
}

// Reformat re-renders text as human-oriented JSONC under the default
// options modified by opts.
func Reformat(text []byte, opts ...Option) (string, error) {
	return reformat(text, jsonopt.New(opts...))
}

// Serialize renders a live Go value as human-oriented JSONC.
func Serialize(v any, recursionLimit int, opts ...Option) (string, error) {
	return serialize(v, recursionLimit, jsonopt.New(opts...))
}

// Minify renders text with the most compact layout the options allow;
// comments and blank lines follow the CommentPolicy and
// PreserveBlankLines options.
func Minify(text []byte, opts ...Option) (string, error) {
	return reformat(text, minifyOptions(jsonopt.New(opts...)))
}

// Validate reports whether text is a well-formed document under opts,
// without producing output.
func Validate(text []byte, opts ...Option) error {
	resolved := jsonopt.New(opts...)
	p, err := parse.New(text, resolved)
	if err != nil {
		return err
	}
	_, err = p.Parse()
	return err
}

func reformat(text []byte, opts Options) (string, error) {
	p, err := parse.New(text, opts)
	if err != nil {
		return "", err
	}
	top, err := p.Parse()
	if err != nil {
		return "", err
	}
	for _, it := range top {
		widthpass.Run(it, opts.StringWidth)
	}
	return layout.Emit(top, opts)
}

func serialize(v any, recursionLimit int, opts Options) (string, error) {
	if v == nil {
		return "", ferr.New(ferr.EInternal, "cannot serialize a nil root value")
	}
	root, err := nativevalue.Convert(v, recursionLimit)
	if err != nil {
		return "", err
	}
	widthpass.Run(root, opts.StringWidth)
	return layout.Emit([]*item.Item{root}, opts)
}

// minifyOptions derives a narrow-everything variant of opts: every layout
// budget maximized so the inline layout always wins wherever nothing
// forces a line break. CommentPolicy and PreserveBlankLines are left
// exactly as the caller set them, so minify only ever breaks a line for
// comments/blank lines the caller asked to keep, never strips comments
// the caller asked to preserve or silently accepts ones the default
// policy would reject.
func minifyOptions(opts Options) Options {
	opts.MaxInlineComplexity = 1 << 30
	opts.MaxTotalLineLength = 1 << 30
	opts.AlwaysExpandDepth = -1
	opts.NestedBracketPadding = false
	opts.SimpleBracketPadding = false
	opts.ColonPadding = false
	opts.CommaPadding = false
	opts.CommentPadding = false
	return opts
}
