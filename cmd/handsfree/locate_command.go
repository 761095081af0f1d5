package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"handsfree/internal/config"
)

func newLocateCommand(ctx *commandContext) *cobra.Command {
	var pointFlag string
	var pixelFlag string
	var camera int

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Find the devices at a point or along a camera pixel ray",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if pointFlag != "" {
				p, err := parsePoint(pointFlag)
				if err != nil {
					return fmt.Errorf("--point: %w", err)
				}
				found := cfg.Index().ItemsAt(p)
				if len(found) == 0 {
					fmt.Fprintf(out, "No device contains %s\n", formatVector(p))
					return nil
				}
				for _, d := range found {
					fmt.Fprintln(out, d.Name)
				}
				return nil
			}

			cal, ok := cfg.Camera(camera)
			if !ok {
				return fmt.Errorf("--camera: expected 1 or 2, got %d", camera)
			}
			u, v, err := parsePixel(pixelFlag)
			if err != nil {
				return fmt.Errorf("--pixel: %w", err)
			}
			return printRayHits(cmd, cfg, cal, u, v)
		},
	}

	cmd.Flags().StringVar(&pointFlag, "point", "", "World point as x,y,z")
	cmd.Flags().IntVar(&camera, "camera", 1, "Camera number (1 or 2)")
	cmd.Flags().StringVar(&pixelFlag, "pixel", "", "Pixel as u,v on the chosen camera")
	cmd.MarkFlagsMutuallyExclusive("point", "pixel")
	cmd.MarkFlagsOneRequired("point", "pixel")
	return cmd
}

func printRayHits(cmd *cobra.Command, cfg *config.Config, cal config.CameraCalibration, u, v float64) error {
	origin, dir, err := cal.PixelRay(u, v)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	hits := cfg.Index().Raycast(origin, dir)
	if len(hits) == 0 {
		fmt.Fprintf(out, "No device along ray from %s towards %s\n", formatVector(origin), formatVector(dir))
		return nil
	}
	rows := make([][]string, 0, len(hits))
	for _, hit := range hits {
		rows = append(rows, []string{
			hit.Item.Name,
			strconv.FormatFloat(hit.Distance, 'f', 3, 64),
			formatVector(origin.Add(dir.Mul(hit.Distance))),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Device", "Distance", "Entry"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	))
	return nil
}
