package hyprpier

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/hyprpier/pkg/errors"
	"github.com/arthur-debert/hyprpier/pkg/metadata"
	"github.com/arthur-debert/hyprpier/pkg/style"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			names, err := a.profiles.List()
			if err != nil {
				return err
			}
			meta, err := a.metadata.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.render.RenderProfiles(profileEntries(names, meta)))
			if len(names) == 0 {
				fmt.Fprintln(out, MsgCreateProfiles)
			}
			return nil
		},
	}
}

func profileEntries(names []string, meta *metadata.Metadata) []style.ProfileEntry {
	active, _ := meta.Active()
	undocked, hasUndocked := meta.Undocked()

	entries := make([]style.ProfileEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, style.ProfileEntry{
			Name:     name,
			Active:   name == active,
			Docks:    meta.ProfileDocks(name),
			Undocked: hasUndocked && name == undocked,
		})
	}
	return entries
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Short:   MsgCurrentShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			name, ok, err := a.engine.Active()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoActiveProfile)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgActiveProfile+"\n", name)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:               "show <profile>",
		Short:             MsgShowShort,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			p, err := a.loadProfile(args[0])
			if err != nil {
				return err
			}

			var data []byte
			if asYAML {
				data, err = yaml.Marshal(p)
			} else {
				data, err = json.MarshalIndent(p, "", "  ")
				data = append(data, '\n')
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "Failed to serialize profile")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, MsgFlagYAML)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <profile>",
		Aliases:           []string{"rm"},
		Short:             MsgDeleteShort,
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
			if err := a.profiles.Delete(name); err != nil {
				return err
			}
			err = a.metadata.Update(func(m *metadata.Metadata) error {
				m.ForgetProfile(name)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.render.RenderSuccess(fmt.Sprintf(MsgDeleted, name)))
			return nil
		},
	}
}
