package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/christoph-blessing/sinzlab-tools/internal/config"
	"github.com/christoph-blessing/sinzlab-tools/internal/dispatch"
	"github.com/christoph-blessing/sinzlab-tools/internal/errors"
	"github.com/christoph-blessing/sinzlab-tools/internal/record"
	"github.com/christoph-blessing/sinzlab-tools/internal/table"
	"github.com/christoph-blessing/sinzlab-tools/internal/ui"
	"github.com/christoph-blessing/sinzlab-tools/internal/util"
)

// app bundles the collaborators a fleet command needs. Tests construct it
// with a fake runner and buffers.
type app struct {
	cfg     *config.Config
	runner  dispatch.Runner
	out     io.Writer
	errOut  io.Writer
	color   bool
	spinner bool
}

// newApp loads and validates configuration and wires the real SSH transport.
func newApp() (*app, error) {
	cfgPath, err := config.Find(configFlag)
	if err != nil {
		return nil, err
	}
	if cfgPath == "" {
		return nil, errors.New(errors.ErrConfig,
			"No config file found",
			"Run 'sinzlab-tools config init' to create "+config.ConfigFileName)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	isTTY := ui.IsTerminal()
	return &app{
		cfg:     cfg,
		runner:  dispatch.NewSSHRunner(cfg.User),
		out:     os.Stdout,
		errOut:  os.Stderr,
		color:   colorEnabled(cfg.Output.Color, isTTY),
		spinner: isTTY,
	}, nil
}

// colorEnabled resolves the configured color mode against the terminal.
// The --no-color flag wins over everything.
func colorEnabled(mode string, isTTY bool) bool {
	if noColorFlag {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		return isTTY
	}
}

// parseFunc turns one host's captured stdout into records. It receives the
// host so container parsing can issue follow-up inspect calls.
type parseFunc func(ctx context.Context, host, stdout string) []record.Record

// runTable is the shared fleet workflow: dispatch the command to every
// resolved host, parse each success into records, render one merged table,
// and report per-host failures on stderr. The returned error is non-nil
// only when every host failed.
func (a *app) runTable(ctx context.Context, command string, fields record.FieldSet, parse parseFunc) error {
	hosts := a.cfg.Resolve(hostsFlag)
	if len(hosts) == 0 {
		return errNoHosts()
	}

	results := a.dispatch(ctx, hosts, command)

	hostRecords := make(record.HostRecords, len(results))
	var failures []string
	for _, host := range sortedHosts(results) {
		result := results[host]
		if result.Failed() {
			hostRecords[host] = nil
			failures = append(failures, host+": "+failureDetail(result))
			continue
		}
		hostRecords[host] = parse(ctx, host, string(result.Stdout))
	}

	fmt.Fprint(a.out, table.Render(fields, hostRecords, table.WithColor(a.color)))

	a.reportFailures(failures)
	if len(failures) == len(results) {
		return errors.New(errors.ErrExec,
			"All hosts failed",
			"Check connectivity: ssh "+a.cfg.User+"@"+hosts[0])
	}
	return nil
}

// runStatus dispatches a command whose output nobody tabulates (login,
// pull) and prints one status line per host instead.
func (a *app) runStatus(ctx context.Context, command string) error {
	hosts := a.cfg.Resolve(hostsFlag)
	if len(hosts) == 0 {
		return errNoHosts()
	}

	results := a.dispatch(ctx, hosts, command)

	var failures []string
	for _, host := range sortedHosts(results) {
		result := results[host]
		if result.Failed() {
			failures = append(failures, host+": "+failureDetail(result))
			fmt.Fprintf(a.out, "%s %s\n", a.statusSymbol(ui.SymbolFail, ui.ColorError), host)
			continue
		}
		fmt.Fprintf(a.out, "%s %s\n", a.statusSymbol(ui.SymbolSuccess, ui.ColorSuccess), host)
	}

	a.reportFailures(failures)
	if len(failures) == len(results) {
		return errors.New(errors.ErrExec,
			"All hosts failed",
			"Check connectivity: ssh "+a.cfg.User+"@"+hosts[0])
	}
	return nil
}

// dispatch fans the command out, animating a spinner when attached to a
// terminal.
func (a *app) dispatch(ctx context.Context, hosts []string, command string) map[string]*dispatch.HostResult {
	d := dispatch.New(a.runner, dispatch.WithTimeout(a.cfg.Timeout))

	var spin *ui.Spinner
	if a.spinner {
		spin = ui.NewSpinner(fmt.Sprintf("Running on %d %s",
			len(hosts), util.Pluralize(len(hosts), "host", "hosts")))
		spin.Start()
	}

	results := d.Dispatch(ctx, hosts, command)

	if spin != nil {
		spin.Stop()
	}
	return results
}

func (a *app) statusSymbol(symbol string, color lipgloss.Color) string {
	if !a.color {
		return symbol
	}
	return lipgloss.NewStyle().Foreground(color).Render(symbol)
}

func (a *app) reportFailures(failures []string) {
	for _, failure := range failures {
		fmt.Fprintf(a.errOut, "%s %s\n", ui.SymbolFail, failure)
	}
}

func errNoHosts() error {
	return errors.New(errors.ErrConfig,
		"No hosts to run on",
		"Check the --hosts flag or the hosts entry in "+config.ConfigFileName)
}

// failureDetail condenses a failed result into one line.
func failureDetail(result *dispatch.HostResult) string {
	if result.Err != nil {
		return strings.TrimSpace(result.Err.Error())
	}
	detail := fmt.Sprintf("exit %d", result.ExitCode)
	if stderr := strings.TrimSpace(string(result.Stderr)); stderr != "" {
		if line, _, found := strings.Cut(stderr, "\n"); found {
			stderr = line
		}
		detail += ": " + stderr
	}
	return detail
}

func sortedHosts(results map[string]*dispatch.HostResult) []string {
	hosts := make([]string, 0, len(results))
	for host := range results {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}
