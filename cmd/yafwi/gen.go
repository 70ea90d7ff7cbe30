package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
)

var genUnsigned bool

func init() {
	genCmd.Flags().BoolVarP(&genUnsigned, "unsigned", "u", false, "generate the unsigned type")
}

var genCmd = &cobra.Command{
	Use:   "gen <width>",
	Short: "Generate a fixed-width type of any width",
	Example: `  yafwi gen 24
  yafwi gen 1 --unsigned`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", args[0], err)
		}
		reg := activeRegistry()
		t, err := reg.Generate(uint(width), genUnsigned)
		if err != nil {
			return err
		}
		return writeTable(cmd.OutOrStdout(), limitsHeader, limitsRows(reg, []*yafwi.Type{t}, false))
	},
}
