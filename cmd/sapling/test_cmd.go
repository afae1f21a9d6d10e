package main

import (
	"fmt"

	"github.com/pbanos/sapling"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	inputConfig
	testInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training set of data and test its performance against a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.exit(1, err)
			}
			ctx, cancel := config.commandContext(cmd)
			defer cancel()
			trainingSet, err := config.dataset(ctx, config.dataInput)
			if err != nil {
				config.exit(2, err)
			}
			testingSet, err := config.dataset(ctx, config.testInput)
			if err != nil {
				config.exit(3, err)
			}
			t, err := sapling.Grow(ctx, trainingSet)
			if err != nil {
				config.exit(4, fmt.Errorf("growing the tree: %v", err))
			}
			config.Logf("Testing tree against testset with %d samples...", testingSet.Count())
			e, err := sapling.Test(ctx, t, testingSet.Rows)
			if err != nil {
				config.exit(5, fmt.Errorf("testing tree: %v", err))
			}
			config.Logf("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %v (%d of %d samples predicted right)\n", e.Accuracy, e.Hits, len(e.Scores))
		},
	}
	config.addFlags(cmd, "to use to grow the tree")
	cmd.PersistentFlags().StringVarP(&(config.testInput), "test", "t", "", "path to a file or PostgreSQL DB connection URL with the data to test the tree against, read like the input (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput == "" {
		return fmt.Errorf("required test flag was not set")
	}
	return nil
}
