package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/postarr/internal/artwork"
	"github.com/vmunix/postarr/internal/history"
	"github.com/vmunix/postarr/internal/orchestrator"
	"github.com/vmunix/postarr/internal/outcome"
	"github.com/vmunix/postarr/internal/policy"
)

var applyCmd = &cobra.Command{
	Use:   "apply <records.json>...",
	Short: "Deliver artwork records",
	Long: `Deliver the artwork records in one or more JSON files. Each file is an
independent run; several files run concurrently. Use "-" to read stdin.

Examples:
  postarr apply set.json                       # Upload to Plex
  postarr apply --filters poster,background set.json
  postarr apply --exclude S00,1234567 set.json # Skip specials and one asset id
  postarr apply --sink filesystem --stage set.json
  postarr apply a.json b.json c.json           # Three concurrent runs`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApplyCmd,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().Bool("force", false, "Deliver even when the artwork is already in place")
	applyCmd.Flags().Bool("stage", false, "Stage seasons and episodes missing from the library (filesystem sink)")
	applyCmd.Flags().Bool("temp", false, "Write into assets.temp_dir instead of assets.base_dir")
	applyCmd.Flags().Int("year", 0, "Override the year used for library lookups")
	applyCmd.Flags().StringSlice("filters", nil, "Artwork types to deliver (default: per-source config)")
	applyCmd.Flags().StringSlice("exclude", nil, "Asset ids or season/episode codes (S01, S01E03) to skip")
	applyCmd.Flags().String("sink", "plex", "Delivery target: plex or filesystem")
	applyCmd.Flags().Int("parallel", 4, "Maximum concurrent runs")
}

// runFunc executes one run; *orchestrator.Orchestrator.Run in production.
type runFunc func(context.Context, orchestrator.Request) (*outcome.Summary, error)

// fileResult is the result of one record file.
type fileResult struct {
	File    string           `json:"file"`
	RunID   string           `json:"run_id,omitempty"`
	Summary *outcome.Summary `json:"summary,omitempty"`
	Error   string           `json:"error,omitempty"`
}

func runApplyCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	stage, _ := cmd.Flags().GetBool("stage")
	temp, _ := cmd.Flags().GetBool("temp")
	year, _ := cmd.Flags().GetInt("year")
	filters, _ := cmd.Flags().GetStringSlice("filters")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	sinkName, _ := cmd.Flags().GetString("sink")
	parallel, _ := cmd.Flags().GetInt("parallel")

	pol, err := policy.New(filters, exclude)
	if err != nil {
		return err
	}
	if err := policy.ValidateYear(year); err != nil {
		return err
	}
	sinkKind, err := orchestrator.ParseSinkKind(sinkName)
	if err != nil {
		return err
	}

	a, err := loadApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	template := orchestrator.Request{
		Policy: pol,
		Options: orchestrator.Options{
			Force:        force,
			Stage:        stage,
			Temp:         temp,
			YearOverride: year,
			Sink:         sinkKind,
		},
	}
	p := &printer{w: os.Stdout, prefix: len(args) > 1, quiet: jsonOutput}
	results, err := applyFiles(ctx, a.orchestrator().Run, a.history, args, template, parallel, p)

	if jsonOutput {
		printJSON(results)
	}
	return err
}

// applyFiles runs every file as an independent run. The first error is
// returned after all runs finished.
func applyFiles(ctx context.Context, run runFunc, hist *history.Store, files []string, template orchestrator.Request, parallel int, p *printer) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i, file := range files {
		g.Go(func() error {
			res, err := applyFile(ctx, run, hist, file, template, p)
			results[i] = res
			if err != nil {
				results[i].Error = err.Error()
				p.line(file, fmt.Sprintf("❌ %v", err))
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func applyFile(ctx context.Context, run runFunc, hist *history.Store, file string, template orchestrator.Request, p *printer) (fileResult, error) {
	res := fileResult{File: file}

	records, err := readRecords(file)
	if err != nil {
		return res, err
	}

	req := template
	req.Records = records

	var runID string
	if hist != nil {
		r, err := hist.StartRun(ctx, file, string(req.Options.Sink))
		if err != nil {
			return res, fmt.Errorf("journal run: %w", err)
		}
		runID = r.ID
		res.RunID = runID
	}

	req.Reporter = func(o outcome.Outcome) {
		p.line(file, o.String())
		if hist != nil {
			if err := hist.AddOutcome(ctx, runID, o); err != nil {
				p.line(file, fmt.Sprintf("⚠️ journal: %v", err))
			}
		}
	}

	summary, runErr := run(ctx, req)
	res.Summary = summary
	if hist != nil && summary != nil {
		// The run context may already be cancelled; the journal entry is
		// still worth finishing.
		if err := hist.FinishRun(context.WithoutCancel(ctx), runID, summary); err != nil {
			p.line(file, fmt.Sprintf("⚠️ journal: %v", err))
		}
	}
	if runErr != nil {
		return res, runErr
	}
	p.line(file, summary.Line())
	return res, nil
}

func readRecords(file string) ([]artwork.Record, error) {
	var r io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open records: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	records, err := artwork.DecodeJSON(r)
	if err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

// printer serializes the output of concurrent runs.
type printer struct {
	mu     sync.Mutex
	w      io.Writer
	prefix bool
	quiet  bool
}

func (p *printer) line(file, s string) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.prefix {
		fmt.Fprintf(p.w, "[%s] %s\n", file, s)
		return
	}
	fmt.Fprintln(p.w, s)
}
