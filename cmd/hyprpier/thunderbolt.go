package hyprpier

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThunderboltCmd() *cobra.Command {
	var (
		list   bool
		status bool
	)

	cmd := &cobra.Command{
		Use:     "thunderbolt",
		Aliases: []string{"tb"},
		Short:   MsgTBShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if status {
				fmt.Fprintln(out, a.render.RenderSecurity(a.devices.SecurityMode()))
				if !list {
					return nil
				}
				fmt.Fprintln(out)
			}

			devices, err := a.devices.ListAllDevices()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, a.render.RenderDevices(devices))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, MsgFlagTBList)
	cmd.Flags().BoolVarP(&status, "status", "s", false, MsgFlagTBStatus)
	return cmd
}
