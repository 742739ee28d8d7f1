package hyprpier

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/hyprland"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/profile"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profile",
		Short:   MsgProfileShort,
		GroupID: "core",
	}

	cmd.AddCommand(newCaptureCmd())
	cmd.AddCommand(newRenameCmd())
	return cmd
}

func newCaptureCmd() *cobra.Command {
	var (
		force       bool
		description string
	)

	cmd := &cobra.Command{
		Use:   "capture <profile>",
		Short: MsgCaptureShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if err := profile.ValidateName(name); err != nil {
				return err
			}
			if !force && a.profiles.Exists(name) {
				return errors.Newf(errors.ErrValidation, MsgErrProfileExists, name).
					WithDetail("profile", name)
			}

			p, err := hyprland.NewDetector(a.hyprctl).Capture(cmd.Context(), name)
			if err != nil {
				return err
			}
			if description != "" {
				p.Description = &description
			}
			if err := p.Validate(); err != nil {
				return err
			}
			if err := a.profiles.Save(p); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.render.RenderSuccess(fmt.Sprintf(MsgCaptured, len(p.Monitors), name)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringVarP(&description, "description", "d", "", MsgFlagDesc)
	return cmd
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "rename <old> <new>",
		Short:             MsgRenameShort,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			oldName, newName := args[0], args[1]
			p, err := a.loadProfile(oldName)
			if err != nil {
				return err
			}
			if err := profile.ValidateName(newName); err != nil {
				return err
			}
			if a.profiles.Exists(newName) {
				return errors.Newf(errors.ErrValidation, MsgErrRenameTarget, newName).
					WithDetail("profile", newName)
			}

			p.Name = newName
			if err := a.profiles.Save(p); err != nil {
				return err
			}
			if err := a.profiles.Delete(oldName); err != nil {
				return err
			}
			err = a.metadata.Update(func(m *metadata.Metadata) error {
				m.RenameProfile(oldName, newName)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.render.RenderSuccess(fmt.Sprintf(MsgRenamed, oldName, newName)))
			return nil
		},
	}
}
