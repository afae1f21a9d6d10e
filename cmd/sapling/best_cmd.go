package main

import (
	"fmt"

	"github.com/pbanos/sapling"
	"github.com/spf13/cobra"
)

type bestCmdConfig struct {
	inputConfig
}

func bestCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &bestCmdConfig{inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "best",
		Short: "Print the best query to split a set",
		Long:  `Print the query with the highest information gain to split a set of data, the one at the root of the tree grown from it`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := config.commandContext(cmd)
			defer cancel()
			ds, err := config.dataset(ctx, config.dataInput)
			if err != nil {
				config.exit(2, err)
			}
			gain, q, err := sapling.BestQuery(ds.Rows)
			if err != nil {
				config.exit(3, fmt.Errorf("looking for the best query: %v", err))
			}
			if q == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No query provides information on the label")
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (information gain %v)\n", q.Describe(ds.Header), gain)
		},
	}
	config.addFlags(cmd, "to split")
	return cmd
}
