package hyprpier

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/profile"
)

func newLinkCmd() *cobra.Command {
	var dock string

	cmd := &cobra.Command{
		Use:               "link <profile>",
		Short:             MsgLinkShort,
		Long:              MsgLinkLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			if err := a.requireProfile(name); err != nil {
				return err
			}
			if dock == "" {
				if dock, err = a.singleDock(); err != nil {
					return err
				}
			}

			var (
				previous    string
				wasLinked   bool
				wasUndocked bool
			)
			err = a.metadata.Update(func(m *metadata.Metadata) error {
				undocked, ok := m.Undocked()
				wasUndocked = ok && undocked == name
				previous, wasLinked = m.BindDock(dock, name)
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgLinked, dock, name)))
			if wasLinked && previous != name {
				fmt.Fprintf(out, MsgRelinked+"\n", previous)
			}
			if wasUndocked {
				fmt.Fprintf(out, MsgClearedUndocked+"\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dock, "dock", "", MsgFlagDock)
	return cmd
}

func newUnlinkCmd() *cobra.Command {
	var (
		dock        string
		profileName string
	)

	cmd := &cobra.Command{
		Use:     "unlink",
		Short:   MsgUnlinkShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dock != "" && profileName != "" {
				return errors.New(errors.ErrValidation, MsgErrUnlinkTarget)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			if dock == "" && profileName == "" {
				if dock, err = a.singleDock(); err != nil {
					return err
				}
			}

			var removed []string
			err = a.metadata.Update(func(m *metadata.Metadata) error {
				if profileName != "" {
					removed = m.ProfileDocks(profileName)
				} else if _, ok := m.DockProfile(dock); ok {
					removed = []string{dock}
				}
				for _, uuid := range removed {
					m.UnlinkDock(uuid)
				}
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(removed) == 0 {
				fmt.Fprintln(out, a.render.RenderWarning(MsgNothingUnlinked))
				return nil
			}
			for _, uuid := range removed {
				fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgUnlinked, uuid)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dock, "dock", "", MsgFlagDock)
	cmd.Flags().StringVar(&profileName, "profile", "", MsgFlagProfile)
	return cmd
}

func newUndockedCmd() *cobra.Command {
	var clearUndocked bool

	cmd := &cobra.Command{
		Use:               "undocked [profile]",
		Short:             MsgUndockedShort,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearUndocked && len(args) > 0 {
				return errors.New(errors.ErrValidation, MsgErrUndockedArgs)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case clearUndocked:
				err = a.metadata.Update(func(m *metadata.Metadata) error {
					m.ClearUndocked()
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, a.render.RenderSuccess(MsgUndockedCleared))

			case len(args) == 1:
				name := args[0]
				if err := a.requireProfile(name); err != nil {
					return err
				}
				var dropped int
				err = a.metadata.Update(func(m *metadata.Metadata) error {
					dropped = len(m.ProfileDocks(name))
					m.SetUndocked(name)
					return nil
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgUndockedSet, name)))
				if dropped > 0 {
					fmt.Fprintf(out, MsgUndockedDropped+"\n", dropped, name)
				}

			default:
				meta, err := a.metadata.Load()
				if err != nil {
					return err
				}
				name, ok := meta.Undocked()
				if !ok {
					fmt.Fprintln(out, MsgNoUndocked)
					return nil
				}
				fmt.Fprintln(out, a.render.RenderSuccess(fmt.Sprintf(MsgUndockedSet, name)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearUndocked, "clear", false, MsgFlagClear)
	return cmd
}

// requireProfile fails unless name is valid and stored
func (a *app) requireProfile(name string) error {
	if err := profile.ValidateName(name); err != nil {
		return err
	}
	if !a.profiles.Exists(name) {
		return errors.Newf(errors.ErrNotFound, "Profile not found: %s", name).
			WithDetail("profile", name)
	}
	return nil
}

// singleDock returns the unique_id of the only connected dock
func (a *app) singleDock() (string, error) {
	docks, err := a.devices.DetectDocks()
	if err != nil {
		return "", err
	}
	switch len(docks) {
	case 0:
		return "", errors.New(errors.ErrNotFound, MsgErrNoDock)
	case 1:
	default:
		return "", errors.New(errors.ErrValidation, MsgErrManyDocks).
			WithDetail("docks", len(docks))
	}
	if docks[0].UUID == "" {
		return "", errors.Newf(errors.ErrValidation, MsgErrDockNoUUID, docks[0].Name).
			WithDetail("dock", docks[0].Name)
	}
	return docks[0].UUID, nil
}
