package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"handsfree/internal/config"
)

func newDevicesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List configured devices and the spatial index built over them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			idx := cfg.Index()
			out := cmd.OutOrStdout()

			if asJSON {
				return writeJSON(out, cfg.Document().Base.Devices)
			}

			if idx.Len() == 0 {
				fmt.Fprintln(out, "No devices configured")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Min", "Max", "Center"},
				deviceRows(idx.Items()),
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d devices, %d leaves, depth %d\n", idx.Len(), idx.Leaves(), idx.Depth())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print devices as JSON")
	return cmd
}

func deviceRows(devices []config.Device) [][]string {
	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{
			d.Name,
			formatVector(d.Min),
			formatVector(d.Max),
			formatVector(d.Bounds().Center()),
		})
	}
	return rows
}
