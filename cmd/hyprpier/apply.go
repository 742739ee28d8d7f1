package hyprpier

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/hyprland"
	"github.com/arthur-debert/hyprpier/pkg/switcher"
)

func newApplyCmd() *cobra.Command {
	var (
		auto      bool
		noRuntime bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:               "apply [profile]",
		Short:             MsgApplyShort,
		Long:              MsgApplyLong,
		Example:           MsgApplyExample,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if auto && len(args) > 0 {
				return errors.New(errors.ErrValidation, MsgErrNameWithAuto)
			}
			if !auto && len(args) == 0 {
				return errors.New(errors.ErrValidation, MsgErrNameRequired)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if auto {
				return a.applyAuto(cmd, out, dryRun)
			}

			name := args[0]
			if dryRun {
				p, err := a.loadProfile(name)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, hyprland.Render(p))
				return err
			}

			if _, err := a.loadProfile(name); err != nil {
				return err
			}
			if err := a.engine.ApplyNamed(cmd.Context(), name, switcher.ApplyOptions{NoRuntime: noRuntime}); err != nil {
				return err
			}
			fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgApplied, name)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, MsgFlagAuto)
	cmd.Flags().BoolVar(&noRuntime, "no-runtime", false, MsgFlagNoRuntime)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}

func (a *app) applyAuto(cmd *cobra.Command, out io.Writer, dryRun bool) error {
	ctx := cmd.Context()

	if dryRun {
		d, err := a.engine.Plan(ctx)
		if err != nil {
			return err
		}
		a.printDecision(out, d)
		if d.HasTarget() {
			fmt.Fprintf(out, MsgWouldApply+"\n", d.Target, reasonLabel(d.Reason))
		}
		return nil
	}

	outcome, err := a.engine.ResolveAndApply(ctx)
	if err != nil {
		return err
	}
	a.printDecision(out, outcome.Decision)

	switch outcome.Action {
	case switcher.ActionApplied:
		fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgApplied, outcome.Target)))
	case switcher.ActionUnchanged:
		fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgAlreadyActive, outcome.Target)))
	}
	return nil
}

// printDecision explains which rule picked the target, or why none was found
func (a *app) printDecision(out io.Writer, d switcher.Decision) {
	switch d.Reason {
	case switcher.ReasonDock:
		fmt.Fprintf(out, MsgDetectedDock+"\n", d.Dock.Name, d.Dock.UUID)
	case switcher.ReasonUndocked:
		if len(d.Docks) == 0 {
			fmt.Fprintf(out, MsgNoDockUndocked+"\n", d.Target)
		} else {
			fmt.Fprintf(out, MsgUnlinkedUndocked+"\n", d.Target)
		}
	default:
		if len(d.Docks) == 0 {
			fmt.Fprintln(out, a.render.RenderWarning(MsgNoTargetNoDock))
			return
		}
		fmt.Fprintln(out, a.render.RenderWarning(MsgNoTargetUnlinked))
		for _, dock := range d.Docks {
			fmt.Fprintf(out, MsgDockItem+"\n", dock.Name, dock.UUID)
		}
	}
}

func reasonLabel(r switcher.Reason) string {
	if r == switcher.ReasonDock {
		return "linked dock"
	}
	return "undocked"
}
