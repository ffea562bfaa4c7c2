package townfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/signalnine/townscore/engine"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// decodeScoring overlays the attributes of a scoring block on base. A
// by-count table given in the file replaces the default table entirely.
func decodeScoring(body hcl.Body, base engine.ScoringContext) (engine.ScoringContext, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to decode scoring block: %w", diags)
	}

	// Sorted so the first reported error does not depend on map order.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]cty.Value, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return base, fmt.Errorf("scoring.%s: %w", name, diags)
		}
		values[name] = val
	}
	if len(values) == 0 {
		return base, nil
	}

	obj := cty.ObjectVal(values)
	data, err := ctyjson.Marshal(obj, obj.Type())
	if err != nil {
		return base, fmt.Errorf("failed to encode scoring block: %w", err)
	}

	ctx := base.Clone()
	if _, ok := values["almshouse_by_count"]; ok {
		ctx.AlmshouseByCount = nil
	}
	if _, ok := values["tavern_by_count"]; ok {
		ctx.TavernByCount = nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ctx); err != nil {
		return base, fmt.Errorf("invalid scoring block: %w", err)
	}
	return ctx, nil
}
