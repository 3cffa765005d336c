package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"lifedash/internal/config"
	"lifedash/internal/store"
)

// App carries everything a command handler needs. In and Out are injected
// so confirmation prompts stay testable; Now supplies "today" to the
// derived views.
type App struct {
	Store     *store.Store
	Config    *config.Config
	In        io.Reader
	Out       io.Writer
	Now       func() time.Time
	AssumeYes bool

	scanner *bufio.Scanner
}

// Run dispatches a subcommand. args excludes the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "dashboard":
		return a.runDashboard(ctx, rest)
	case "finance":
		return a.runFinance(ctx, rest)
	case "task":
		return a.runTask(ctx, rest)
	case "goal":
		return a.runGoal(ctx, rest)
	case "exam":
		return a.runExam(ctx, rest)
	case "skill":
		return a.runSkill(ctx, rest)
	case "journal":
		return a.runJournal(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "import":
		return a.runImport(ctx, rest)
	case "reset":
		return a.runReset(ctx, rest)
	case "overview":
		return a.runOverview(ctx, rest)
	case "help", "-h", "--help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprint(a.Out, `Usage: lifedash <command> [flags]

Commands:
  dashboard   show today's overview
  finance     add | list | summary | delete
  task        add | list | toggle | delete
  goal        add | list | toggle | delete
  exam        add | list | stats | delete
  skill       list | set | adjust
  journal     write | show | recent
  export      write a dated backup of all data
  import      replace all data from a backup file
  reset       wipe everything back to the seed document
  overview    record counts per collection
`)
}

// confirm asks a yes/no question, defaulting to no. --yes short-circuits.
func (a *App) confirm(prompt string) bool {
	if a.AssumeYes {
		return true
	}
	if a.scanner == nil {
		a.scanner = bufio.NewScanner(a.In)
	}
	fmt.Fprintf(a.Out, "%s [y/N]: ", prompt)
	if !a.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.scanner.Text()))
	return answer == "y" || answer == "yes"
}
