package hcl_adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/kballard/go-shellquote"
	"github.com/specialistvlad/rteopts/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with non-nil,
// zero-width expression objects, so a simple nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	// A real attribute occupies bytes in the file, while a placeholder for an
	// omitted optional attribute has a zero-width range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// stringList evaluates an attribute holding a list of strings. When
// splitString is set, a single string is accepted as well and split into
// words with shell quoting rules. Omitted and null attributes yield nil.
func stringList(ctx context.Context, expr hcl.Expression, attrName string, splitString bool) ([]string, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	if splitString && val.Type() == cty.String {
		words, err := shellquote.Split(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("attribute '%s': %w", attrName, err)
		}
		ctxlog.FromContext(ctx).Debug("Split flag string into words.", "attribute", attrName, "words", len(words))
		return words, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("attribute '%s' must be a list of strings: %w", attrName, err)
	}
	out := []string{}
	if err := gocty.FromCtyValue(listVal, &out); err != nil {
		return nil, fmt.Errorf("attribute '%s': %w", attrName, err)
	}
	return out, nil
}

// address evaluates a memory address or size given as a number or as a
// string in any base strconv understands ("0x20000000", "0o777", "1024").
func address(expr hcl.Expression, attrName string) (uint64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() {
		return 0, fmt.Errorf("attribute '%s' must not be null", attrName)
	}

	if val.Type() == cty.String {
		u, err := strconv.ParseUint(val.AsString(), 0, 64)
		if err != nil {
			return 0, fmt.Errorf("attribute '%s': %w", attrName, err)
		}
		return u, nil
	}

	var u uint64
	if err := gocty.FromCtyValue(val, &u); err != nil {
		return 0, fmt.Errorf("attribute '%s': %w", attrName, err)
	}
	return u, nil
}
