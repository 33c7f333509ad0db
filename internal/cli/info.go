package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pkgstat/internal/config"
	pkgerrors "github.com/matzehuels/pkgstat/pkg/errors"
	"github.com/matzehuels/pkgstat/pkg/registry"
)

// maxListed caps the versions and dependencies shown in the summary.
const maxListed = 8

// infoOpts holds options for the info command.
type infoOpts struct {
	registry string
	label    string
	json     bool
}

// infoCommand creates the info command for fetching package metadata.
func (c *CLI) infoCommand() *cobra.Command {
	var opts infoOpts

	cmd := &cobra.Command{
		Use:   "info <package>",
		Short: "Fetch and summarize a package's registry metadata",
		Long: `Fetch a package's metadata document from an npm-compatible registry.

A spinner runs while the request is in flight. On a terminal progress lines are
rewritten in place; when output is redirected every update is appended instead.`,
		Example: `  pkgstat info left-pad
  pkgstat info @babel/core --registry http://localhost:4873/
  pkgstat info react --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInfo(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.registry, "registry", "", "registry base URL (overrides config)")
	cmd.Flags().StringVar(&opts.label, "label", "", "group label prefixed to status lines (overrides config)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the raw metadata document")

	return cmd
}

func (c *CLI) runInfo(ctx context.Context, name string, opts infoOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	applyInfoOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	r := c.newRenderer(cfg)
	fetcher, err := registry.New(cfg.Registry, registry.NPMEncoder{},
		registry.WithReporter(r),
		registry.WithLogger(logger),
		registry.WithUserAgent(cfg.UserAgent),
		registry.WithHeaders(cfg.Headers),
	)
	if err != nil {
		return err
	}

	target, err := fetcher.Resolve(name)
	if err != nil {
		return err
	}

	u := newUI(c.out)
	prog := newProgress(logger)

	sp := r.StartSpinner(cfg.Label, fmt.Sprintf("Fetching %s", name))
	defer r.StopSpinner(sp, "", "")
	// Secondary line under the spinner; the fetcher rewrites it with progress.
	r.AppendLine(cfg.Label, fmt.Sprintf("Resolved %s", target))

	meta, err := fetcher.Fetch(ctx, name)
	if ctx.Err() != nil {
		r.ForceExit(true)
		return ctx.Err()
	}
	if err != nil {
		r.StopSpinner(sp, cfg.Label, u.failure("%s: %s", name, pkgerrors.UserMessage(err)))
		return err
	}
	r.StopSpinner(sp, cfg.Label, u.success("Fetched %s", name))
	prog.done(fmt.Sprintf("Fetched %s", name))

	if opts.json {
		return c.writeJSON(meta)
	}
	printSummary(u, meta)
	return nil
}

func applyInfoOverrides(cfg *config.Config, opts infoOpts) {
	if opts.registry != "" {
		cfg.Registry = opts.registry
	}
	if opts.label != "" {
		cfg.Label = opts.label
	}
}

// writeJSON prints the metadata document indented.
func (c *CLI) writeJSON(meta *registry.Metadata) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, meta.Raw(), "", "  "); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeFormat, err, "format metadata")
	}
	buf.WriteByte('\n')
	_, err := c.out.Write(buf.Bytes())
	return err
}

func printSummary(u *ui, meta *registry.Metadata) {
	title := meta.Name()
	if v := meta.LatestVersion(); v != "" {
		title += "@" + v
	}
	if title != "" {
		u.printTitle(title)
	}
	u.printKeyValue("description", meta.Description())
	u.printKeyValue("license", meta.License())
	u.printKeyValue("author", meta.Author())
	u.printLink("homepage", meta.Homepage())
	u.printLink("repository", meta.Repository())
	u.printList("dependencies", meta.Dependencies(), maxListed)
	u.printList("versions", latestFirst(meta.Versions()), maxListed)
}

// latestFirst reverses the sorted version list so later entries are shown first.
func latestFirst(versions []string) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[len(versions)-1-i] = v
	}
	return out
}
