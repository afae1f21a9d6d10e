package main

import (
	"fmt"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/report"
	"github.com/spf13/cobra"
)

type looCmdConfig struct {
	inputConfig
	plotOutput string
}

func looCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &looCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "loo",
		Short: "Estimate the accuracy of the trees grown from a set",
		Long:  `Estimate the accuracy of the trees grown from a set of data with leave-one-out cross-validation: a tree is grown without each sample and scored on it`,
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := config.commandContext(cmd)
			defer cancel()
			ds, err := config.dataset(ctx, config.dataInput)
			if err != nil {
				config.exit(2, err)
			}
			config.Logf("Running leave-one-out cross-validation over %d samples...", ds.Count())
			e, err := sapling.LeaveOneOut(ctx, ds.Rows)
			if err != nil {
				config.exit(3, fmt.Errorf("running leave-one-out cross-validation: %v", err))
			}
			config.Logf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %v (%d of %d samples predicted right)\n", e.Accuracy, e.Hits, len(e.Scores))
			if config.plotOutput != "" {
				config.Logf("Plotting scores to %s...", config.plotOutput)
				err = report.PlotScores(e.Scores, config.plotOutput)
				if err != nil {
					config.exit(4, fmt.Errorf("plotting scores: %v", err))
				}
			}
		},
	}
	config.addFlags(cmd, "to evaluate")
	cmd.PersistentFlags().StringVarP(&(config.plotOutput), "plot", "p", "", "path to an image file (.png, .svg or .pdf) where a chart of the score of every sample will be drawn")
	return cmd
}
