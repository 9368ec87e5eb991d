package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panels/pkg/buildinfo"
	"github.com/matzehuels/panels/pkg/cache"
	"github.com/matzehuels/panels/pkg/io"
	"github.com/matzehuels/panels/pkg/scene"
	"github.com/matzehuels/panels/pkg/viewable"
)

// Output formats of the build command.
const (
	formatTree = "tree" // component tree repr
	formatJSON = "json" // scene graph JSON
	formatDOT  = "dot"  // scene graph in Graphviz DOT
	formatSVG  = "svg"  // DOT rendered by Graphviz
)

// artifactTTL is how long rendered SVGs stay cached.
const artifactTTL = 7 * 24 * time.Hour

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output  string // output file path; stdout when empty
	format  string // one of the format constants
	noCache bool   // bypass the artifact cache
}

// buildResult is the output of one build.
type buildResult struct {
	data       []byte
	components int
	nodes      int
	cached     bool
}

var validFormats = map[string]bool{formatTree: true, formatJSON: true, formatDOT: true, formatSVG: true}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{format: formatTree}

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Materialize a dashboard description and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'tree', 'json', 'dot', or 'svg')", opts.format)
			}
			return c.runBuild(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: tree, json, dot, svg")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the SVG cache")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, path string, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	res, err := build(ctx, path, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(res.data)
		return err
	}
	if err := os.WriteFile(opts.output, res.data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done("Built " + path)
	printSuccess("Wrote %s", opts.format)
	printFile(opts.output)
	fmt.Println(formatStats(res.components, res.nodes, res.cached))
	return nil
}

// build loads the description at path, materializes it into an in-memory
// scene and encodes the scene in the requested format.
func build(ctx context.Context, path string, opts buildOpts) (*buildResult, error) {
	logger := loggerFromContext(ctx)

	d, err := io.ImportTOML(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded dashboard", "path", path, "title", d.Title)

	mem := scene.NewMemory()
	doc := scene.NewDocument(mem, logger)
	root, err := viewable.Render(doc, d.Root)
	if err != nil {
		return nil, fmt.Errorf("materialize %s: %w", path, err)
	}

	res := &buildResult{components: len(d.Root.Select(nil)), nodes: mem.Len()}
	switch opts.format {
	case formatTree:
		res.data = []byte(d.Root.Repr(0) + "\n")
	case formatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(root, &buf); err != nil {
			return nil, err
		}
		res.data = buf.Bytes()
	case formatDOT:
		res.data = []byte(scene.ToDOT(root))
	case formatSVG:
		res.data, res.cached, err = renderSVG(ctx, scene.ToDOT(root), opts.noCache)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// renderSVG renders dot through Graphviz, reusing an artifact cached by an
// earlier build of the same scene with the same release.
func renderSVG(ctx context.Context, dot string, noCache bool) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	store, err := newCache(noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	keyer := cache.NewScopedKeyer(nil, buildinfo.CacheScope())
	key := keyer.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Format: formatSVG})

	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "err", err)
	} else if ok {
		logger.Debug("svg cache hit", "key", key)
		return data, true, nil
	}

	data, err := scene.RenderSVG(ctx, dot)
	if err != nil {
		return nil, false, err
	}
	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return data, false, nil
}
