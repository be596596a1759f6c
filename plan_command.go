package main

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/ByLCY/cryptogram/layout"
	"github.com/ByLCY/cryptogram/quotes"
)

func newPlanCommand(flags *cliFlags) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "plan [quotes.yml]",
		Short: "打印页数与拼版顺序，不生成文件",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			kind, err := cfg.Kind()
			if err != nil {
				return err
			}
			n := count
			if len(args) == 1 {
				texts, err := quotes.LoadFile(args[0])
				if err != nil {
					return err
				}
				n = len(texts)
			} else if !cmd.Flags().Changed("count") {
				return errors.New("需要引文文件或 --count")
			}
			out, err := planTable(kind, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "不读取文件，直接按引文数量规划")
	return cmd
}

// planTable 列出每一面的纸号、正反面、位置、逻辑页号与内容角色；同一面的纸号与正反面合并显示。
func planTable(kind layout.Kind, quoteCount int) (string, error) {
	profile := kind.Profile()
	idx, err := layout.ComputeIndex(quoteCount, profile.SubpagePerSide)
	if err != nil {
		return "", err
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Sheet", "Side", "Position", "Page", "Slot"})
	for _, side := range layout.Impose(kind, idx) {
		for i, n := range side.Indices {
			tw.AppendRow(table.Row{
				side.Sheet,
				string(side.Side),
				profile.Positions[i].Name,
				n,
				layout.ResolveSlot(n, idx).String(),
			})
		}
		tw.AppendSeparator()
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Sheet", AutoMerge: true, Align: text.AlignRight},
		{Name: "Side", AutoMerge: true},
		{Name: "Page", Align: text.AlignRight},
	})

	summary := fmt.Sprintf("%s: quotes=%d text=%d blank=%d total=%d sides=%d",
		kind, idx.Quotes, idx.TextPages, idx.Blank, idx.Total, idx.Sheets)
	return summary + "\n" + tw.Render(), nil
}
