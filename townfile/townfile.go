// Package townfile loads towns, building choices and rule overrides from HCL
// files and writes score reports.
package townfile

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/signalnine/townscore/board"
	"github.com/signalnine/townscore/building"
	"github.com/signalnine/townscore/engine"
)

// File is everything one town file describes.
type File struct {
	Path    string
	Config  building.Config
	Scoring engine.ScoringContext
	Towns   []Town
}

// Town is a named grid.
type Town struct {
	Name string
	Grid *board.Grid
}

// Options tune loading. The zero value accepts any positive grid size.
type Options struct {
	Sizes  board.SizePolicy
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Load parses and validates the town file at path.
func Load(path string, opts Options) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(parser, hclFile.Body, path, opts)
}

// Parse is Load for in-memory source; filename only labels diagnostics.
func Parse(src []byte, filename string, opts Options) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(parser, hclFile.Body, filename, opts)
}

func decode(parser *hclparse.Parser, body hcl.Body, path string, opts Options) (*File, error) {
	logger := opts.logger()

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	file := &File{
		Path:    path,
		Config:  building.DefaultConfig(),
		Scoring: engine.DefaultScoringContext(),
	}

	if root.Buildings != nil {
		if err := root.Buildings.apply(&file.Config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if root.Scoring != nil {
		ctx, err := decodeScoring(root.Scoring.Remain, file.Scoring)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		file.Scoring = ctx
	}
	if err := validate(file.Config, file.Scoring); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(root.Towns))
	for _, tb := range root.Towns {
		if _, dup := seen[tb.Name]; dup {
			return nil, fmt.Errorf("%s: town %q defined twice", path, tb.Name)
		}
		seen[tb.Name] = struct{}{}

		town, err := tb.build(file.Config, opts.Sizes)
		if err != nil {
			return nil, fmt.Errorf("%s: town %q: %w", path, tb.Name, err)
		}
		file.Towns = append(file.Towns, town)
	}

	logger.Debug("town file loaded",
		"path", path,
		"towns", len(file.Towns),
		"buildings", file.Config.String(),
		"files_parsed", len(parser.Files()),
	)
	return file, nil
}

// validate folds the validation lists of cfg and ctx into one error.
func validate(cfg building.Config, ctx engine.ScoringContext) error {
	var errs []error
	for _, e := range cfg.Validate() {
		errs = append(errs, e)
	}
	for _, e := range ctx.Validate() {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Opponent returns the town facing towns[i] in a two-town file, or nil.
func (f *File) Opponent(i int) *board.Grid {
	if len(f.Towns) != 2 {
		return nil
	}
	return f.Towns[1-i].Grid
}
