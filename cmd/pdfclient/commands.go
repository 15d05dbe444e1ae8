package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pdf-analyzer-client/internal/config"
	"pdf-analyzer-client/internal/domain"
	"pdf-analyzer-client/internal/service"
	"pdf-analyzer-client/internal/workflow"

	"golang.org/x/sync/errgroup"
)

const usage = `usage: pdfclient <command> [arguments]

commands:
  check                                   check analyzer connectivity and health
  run <file.pdf>                          upload, analyze and fetch results for a file
  analyze <pdf-id>                        analyze an uploaded document and fetch its results
  results <pdf-id>                        fetch results for an analyzed document
  export [-format json|csv] [-o path] <pdf-id>
                                          download analysis results
`

type cli struct {
	analyzer  domain.AnalyzerAPI
	inspector domain.PDFInspector
	logger    domain.Logger
	stdout    io.Writer
	stderr    io.Writer
}

func newCLI(container *config.Container, stdout, stderr io.Writer) *cli {
	return &cli{
		analyzer:  container.Analyzer,
		inspector: container.PDFInspector,
		logger:    container.Logger,
		stdout:    stdout,
		stderr:    stderr,
	}
}

func (c *cli) run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(c.stderr, usage)
		return 2
	}

	ctx := context.Background()
	var err error

	switch args[0] {
	case "check":
		err = c.check(ctx)
	case "run":
		err = c.runWorkflow(ctx, args[1:])
	case "analyze":
		err = c.analyze(ctx, args[1:])
	case "results":
		err = c.results(ctx, args[1:])
	case "export":
		err = c.export(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(c.stdout, usage)
		return 0
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if err != nil {
		fmt.Fprintln(c.stderr, "error:", err)
		return 1
	}
	return 0
}

func (c *cli) check(ctx context.Context) error {
	var (
		conn   *domain.ConnectivityResponse
		health *domain.HealthResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		conn, err = c.analyzer.CheckConnectivity(gctx)
		if err != nil {
			return fmt.Errorf("connectivity: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		health, err = c.analyzer.Health(gctx)
		if err != nil {
			return fmt.Errorf("health: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, conn.Message)
	fmt.Fprintf(c.stdout, "health: %s\n", health.Status)
	return nil
}

// runWorkflow drives a fresh controller through select, upload and analyze.
func (c *cli) runWorkflow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("run expects exactly one file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ctrl := workflow.NewController(c.analyzer, c.logger)
	ctrl.SelectFile(service.Describe(c.inspector, c.logger, filepath.Base(args[0]), data))

	<-ctrl.Upload(ctx)
	if snap := ctrl.Snapshot(); snap.DocumentID != nil {
		<-ctrl.Analyze(ctx)
	}
	return c.report(ctrl)
}

// analyze re-runs analysis for an uploaded document and fetches its results.
func (c *cli) analyze(ctx context.Context, args []string) error {
	ctrl, err := c.controllerFor(args)
	if err != nil {
		return err
	}
	<-ctrl.Analyze(ctx)
	return c.report(ctrl)
}

func (c *cli) results(ctx context.Context, args []string) error {
	ctrl, err := c.controllerFor(args)
	if err != nil {
		return err
	}
	<-ctrl.FetchResults(ctx)
	return c.report(ctrl)
}

func (c *cli) controllerFor(args []string) (*workflow.Controller, error) {
	id, err := parseID(args)
	if err != nil {
		return nil, err
	}
	ctrl := workflow.NewController(c.analyzer, c.logger)
	if err := ctrl.UseDocument(id); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// report prints the final snapshot and fails unless the session is usable.
func (c *cli) report(ctrl *workflow.Controller) error {
	snap := ctrl.Snapshot()
	if err := c.printJSON(snap); err != nil {
		return err
	}
	if snap.State == domain.StateFailed || snap.DocumentID == nil {
		return fmt.Errorf("workflow did not complete: %s", lastStatus(snap))
	}
	return nil
}

func (c *cli) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	formatFlag := fs.String("format", "json", "Export format (json or csv)")
	output := fs.String("o", "", "Output path (default: server-supplied filename)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	format, err := domain.ParseExportFormat(*formatFlag)
	if err != nil {
		return err
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	file, err := c.analyzer.ExportResults(ctx, id, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	path := *output
	if path == "" {
		path = file.Filename
	}
	if path == "-" {
		_, err = c.stdout.Write(file.Data)
		return err
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(c.stdout, "wrote %s (%d bytes)\n", path, len(file.Data))
	return nil
}

func (c *cli) printJSON(v interface{}) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a single pdf id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDocumentID, args[0])
	}
	return id, nil
}

func lastStatus(snap domain.Snapshot) string {
	if snap.AnalysisStatus != "" {
		return snap.AnalysisStatus
	}
	return snap.UploadStatus
}
