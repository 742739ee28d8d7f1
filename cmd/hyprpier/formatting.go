package hyprpier

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/style"
)

// helpFuncs are the template functions used by MsgUsageTemplate. Help is
// bold only when stdout would get terminal output.
func helpFuncs() template.FuncMap {
	styled := style.DetectFormat(os.Stdout) == style.FormatTerminal
	bold := func(s string) string {
		if !styled {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      bold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs())
}
