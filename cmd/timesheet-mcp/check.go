// Package main provides the entry point for the timesheet-mcp CLI.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hourstack/timesheet-mcp/internal/config"
	"github.com/hourstack/timesheet-mcp/internal/output"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// checkStatus represents the result of a single connectivity check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of one check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// checkReport holds all check results.
type checkReport struct {
	Version string        `json:"version"`
	Checks  []checkResult `json:"checks"`
	Failed  int           `json:"failed"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check configuration and Timesheet API connectivity",
		Long: `Check timesheet-mcp configuration and Timesheet API connectivity.

Runs a series of checks:
  CONFIG  - configuration loads, an API token is present
  API     - the token authenticates and the profile is reachable
  WIDGETS - embedded widget bundles load

Each check reports pass, warn, or fail. Exit code is non-zero when any
check fails.

Examples:
  timesheet-mcp check          # Run all checks
  timesheet-mcp check --json   # Output results as JSON`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	jsonMode := isJSONMode(cmd)
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))

	report := &checkReport{Version: buildVersion()}
	report.Checks = gatherChecks(cmd.Context())
	for _, check := range report.Checks {
		if check.Status == checkFail {
			report.Failed++
		}
	}

	if jsonMode {
		if err := printer.WriteJSON(report); err != nil {
			return output.NewSystemErrorWithCause("writing JSON", err)
		}
	} else {
		printReport(printer, report)
	}

	if report.Failed > 0 {
		return output.NewSystemError(fmt.Sprintf("%d check(s) failed", report.Failed))
	}
	return nil
}

func gatherChecks(ctx context.Context) []checkResult {
	var checks []checkResult

	cfg, err := config.Load()
	if err != nil {
		return append(checks, checkResult{
			Name:    "configuration",
			Status:  checkFail,
			Message: err.Error(),
		})
	}
	checks = append(checks, checkResult{
		Name:    "configuration",
		Status:  checkPass,
		Message: "loaded",
	})

	checks = append(checks, checkToken(cfg))
	checks = append(checks, checkAPI(ctx, cfg))
	checks = append(checks, checkWidgets())
	return checks
}

func checkToken(cfg *config.Config) checkResult {
	if cfg.APIToken == "" {
		return checkResult{
			Name:    "api token",
			Status:  checkWarn,
			Message: "TIMESHEET_API_TOKEN is not set",
			Hint:    "stdio transport needs it; HTTP clients can send their own bearer token",
		}
	}
	return checkResult{Name: "api token", Status: checkPass, Message: "present"}
}

func checkAPI(ctx context.Context, cfg *config.Config) checkResult {
	if cfg.APIToken == "" {
		return checkResult{
			Name:    "api connectivity",
			Status:  checkWarn,
			Message: "skipped (no token)",
		}
	}

	opts := []timesheet.Option{}
	if cfg.APIURL != "" {
		opts = append(opts, timesheet.WithBaseURL(cfg.APIURL))
	}
	client := timesheet.New(cfg.APIToken, opts...)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	profile, err := client.GetProfile(ctx)
	if err != nil {
		result := checkResult{
			Name:    "api connectivity",
			Status:  checkFail,
			Message: err.Error(),
		}
		if timesheet.IsAuthError(err) {
			result.Hint = "the token was rejected; generate a new API key in Timesheet settings"
		}
		return result
	}
	return checkResult{
		Name:    "api connectivity",
		Status:  checkPass,
		Message: "authenticated as " + profile.Email,
	}
}

func checkWidgets() checkResult {
	registry, err := widgets.Load()
	if err != nil {
		return checkResult{Name: "widgets", Status: checkFail, Message: err.Error()}
	}
	return checkResult{
		Name:    "widgets",
		Status:  checkPass,
		Message: fmt.Sprintf("%d bundles embedded", len(registry.All())),
	}
}

func printReport(printer *output.Printer, report *checkReport) {
	printer.Section("Timesheet MCP " + report.Version)
	for _, check := range report.Checks {
		label := "ok"
		switch check.Status {
		case checkWarn:
			label = "warn"
		case checkFail:
			label = "FAIL"
		}
		printer.Print("  [%s] %-18s %s\n", label, check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("         hint: %s\n", check.Hint)
		}
	}
}
