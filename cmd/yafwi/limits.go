package main

import (
	"github.com/spf13/cobra"

	"github.com/buhanec/yafwi"
)

var limitsGroup bool

func init() {
	limitsCmd.Flags().BoolVar(&limitsGroup, "group", false, "group digits of 64-bit bounds with thousands separators")
}

var limitsCmd = &cobra.Command{
	Use:   "limits [type...]",
	Short: "Show the range of fixed-width types",
	Long: `Show width, signedness and range of the named types. Without arguments
every predefined type is listed, followed by the types declared in yafwi.toml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := activeRegistry()
		list, err := limitsTypes(reg, args)
		if err != nil {
			return err
		}
		return writeTable(cmd.OutOrStdout(), limitsHeader, limitsRows(reg, list, limitsGroup))
	},
}

func limitsTypes(reg *yafwi.Registry, names []string) ([]*yafwi.Type, error) {
	if len(names) == 0 {
		return reg.Types(), nil
	}
	out := make([]*yafwi.Type, 0, len(names))
	for _, name := range names {
		t, err := resolveType(reg, name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func limitsRows(reg *yafwi.Registry, list []*yafwi.Type, group bool) [][]string {
	aliases := aliasIndex(reg)
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, typeRow(t, aliases[t], group))
	}
	return rows
}
