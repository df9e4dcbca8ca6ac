package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/billyrieger/hashlife/internal/io/render"
)

var flagZoom uint

var renderCmd = &cobra.Command{
	Use:   "render <file> <out.png>",
	Short: "Rasterize a pattern's bounding box to a PNG",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagVerbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		u, err := loadPattern(args[0], logger)
		if err != nil {
			return err
		}

		box, ok := u.BoundingBox()
		if !ok {
			return fmt.Errorf("render: pattern is empty, nothing to rasterize")
		}

		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()

		return render.Write(out, u, render.BBox{
			XMin: box.XMin, YMin: box.YMin, XMax: box.XMax, YMax: box.YMax,
		}, flagZoom)
	},
}

func init() {
	renderCmd.Flags().UintVar(&flagZoom, "zoom", 0, "pixel covers a 2^zoom x 2^zoom cell block")
}
