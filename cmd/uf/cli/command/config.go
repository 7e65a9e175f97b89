package command

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/uf-cli/uf/internal/config"
	"github.com/uf-cli/uf/uf"
)

// Config creates the config command
func Config() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved rules file and its rules",
		Long: `Show which rules file uf would use and the rules parsed from it, in the
order they are tried. Exits non-zero when the file is missing or malformed,
with the same error the open flow would report.`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

// runConfig executes the config command
func runConfig(cmd *cobra.Command, args []string) error {
	globalConfig := GetGlobalConfig(cmd)

	path, err := config.Resolve(globalConfig.ConfigFile)
	if err != nil {
		return err
	}
	fmt.Printf("Rules file: %s\n", path)

	rules, err := uf.Load(path)
	if err != nil {
		return err
	}
	if rules.IsEmpty() {
		fmt.Println("No rules configured; every lookup will fail until a rule is added.")
		return nil
	}

	renderRules(rules)
	return nil
}

func renderRules(rules uf.RuleSet) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"LINE", "KIND", "PATTERN", "PROGRAM"})
	for _, rule := range rules {
		t.AppendRow(table.Row{rule.Line, formatKind(rule.Kind), rule.Pattern, rule.Program})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func formatKind(kind uf.RuleKind) string {
	switch kind {
	case uf.MimeRule:
		return color.Cyan.Sprint(string(kind))
	case uf.ExtRule:
		return color.Green.Sprint(string(kind))
	}
	return string(kind)
}
