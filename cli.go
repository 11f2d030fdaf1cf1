package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v2"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
	"github.com/anatolykoptev/go_ytnotes/internal/notesserver"
	"github.com/anatolykoptev/go_ytnotes/internal/toolutil"
)

// newCLIApp creates the CLI application. With no command it serves the HTTP API.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "go_ytnotes",
		Usage:   "Turn YouTube videos into structured study notes",
		Version: version,
		Action:  serveAction,
		Commands: []*cli.Command{
			serveCmd(),
			mcpCmd(),
			notesCmd(os.Stdout),
		},
	}
	// Disable default exit error handler so errors reach main.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Serve the JSON HTTP API on $PORT (default 5000)",
		Action: serveAction,
	}
}

func serveAction(_ *cli.Context) error {
	c, analyzer, err := initEngine()
	if err != nil {
		return err
	}

	slog.Info("starting go_ytnotes http", slog.String("port", c.Port), slog.String("version", version))
	srv := notesserver.NewServer(c.Port, notesserver.NewHandler(analyzer), serverWriteTimeout(c))
	return notesserver.Run(srv)
}

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the youtube_notes MCP tool on $MCP_PORT (default 8892)",
		Action: func(_ *cli.Context) error {
			c, analyzer, err := initEngine()
			if err != nil {
				return err
			}

			slog.Info("starting go_ytnotes mcp", slog.String("port", c.MCPPort))

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "go_ytnotes",
				Version: version,
			}, nil)
			notesserver.RegisterTools(server, analyzer)
			slog.Info("tools registered", slog.Int("count", 1))

			return mcpserver.Run(server, mcpserver.Config{
				Name:         "go_ytnotes",
				Version:      version,
				Port:         c.MCPPort,
				WriteTimeout: serverWriteTimeout(c),
				Metrics:      engine.FormatMetrics,
			})
		},
	}
}

func notesCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "notes",
		Usage:     "Print study notes for one video",
		ArgsUsage: "<youtube-url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "Render notes as HTML"},
			&cli.BoolFlag{Name: "json", Usage: "Print the full JSON result"},
		},
		Action: func(c *cli.Context) error {
			_, analyzer, err := initEngine()
			if err != nil {
				return err
			}
			return runNotes(c, analyzer, out)
		},
	}
}

// runNotes analyzes the first argument and writes Markdown, HTML or JSON to out.
func runNotes(c *cli.Context, analyzer notesserver.Analyzer, out io.Writer) error {
	res, err := analyzer.Analyze(c.Context, c.Args().First())
	if err != nil {
		return outputError(err)
	}

	format := ""
	if c.Bool("html") {
		format = toolutil.FormatHTML
	}
	if err := toolutil.ApplyFormat(res, format); err != nil {
		return outputError(err)
	}

	switch {
	case c.Bool("json"):
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case c.Bool("html"):
		_, err = io.WriteString(out, res.NotesHTML)
	default:
		_, err = fmt.Fprintln(out, res.Notes)
	}
	return err
}

// outputError formats a pipeline error for the CLI.
func outputError(err error) error {
	pErr := engine.AsPipelineError(err)
	return cli.Exit(fmt.Sprintf("[%s] %s", pErr.Code, pErr.Message), 1)
}

// serverWriteTimeout leaves room for the YouTube round trips and the model call.
func serverWriteTimeout(c engine.Config) time.Duration {
	return c.LLMTimeout + 3*c.FetchTimeout
}
