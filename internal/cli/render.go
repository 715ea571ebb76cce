package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/reldir/pkg/commands/cleanup"
	"github.com/arthur-debert/reldir/pkg/commands/rollback"
	"github.com/arthur-debert/reldir/pkg/commands/status"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// renderResult writes a command result to stdout in the format chosen
// by the --format persistent flag.
func renderResult(cmd *cobra.Command, result interface{}, text string) error {
	format, _ := cmd.Root().PersistentFlags().GetString("format")

	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result as json: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result as yaml: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	case "text":
		fmt.Fprintln(cmd.OutOrStdout(), text)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}

	return nil
}

func rollbackText(result *rollback.RollbackResult) string {
	if result.DryRun {
		return fmt.Sprintf("DRY RUN: would move current from %s to %s",
			result.Previous, formatBold(result.Target))
	}
	return fmt.Sprintf("current moved from %s to %s", result.Previous, formatBold(result.Target))
}

func cleanupText(result *cleanup.CleanupResult) string {
	var b strings.Builder

	if result.DryRun {
		b.WriteString("DRY RUN: ")
	}
	b.WriteString(result.Message)

	for _, failure := range result.Failed {
		fmt.Fprintf(&b, "\n  failed: %s (%s)", failure.Path, failure.Error)
	}

	return b.String()
}

func statusText(result *status.StatusResult) string {
	var b strings.Builder

	for _, release := range result.Releases {
		name := release.Name
		marker := "  "
		if release.Current {
			name = styleCurrent.Render(name)
			marker = "* "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", marker, name,
			styleModTime.Render(release.ModTime.Format("2006-01-02 15:04:05")))
	}

	b.WriteString(result.Message)
	return b.String()
}
