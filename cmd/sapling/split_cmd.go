package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/csv"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	inputConfig
	setOutput        string
	splitOutput      string
	splitProbability int
	seed             int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into two sets",
		Long:  `Split a set into an output set and a split set, for example to hold out a testing set, writing both as CSV`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				config.exit(1, err)
			}
			ctx, cancel := config.commandContext(cmd)
			defer cancel()
			ds, err := config.dataset(ctx, config.dataInput)
			if err != nil {
				config.exit(2, err)
			}
			seed := config.seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			config.Logf("Splitting input set with seed %d...", seed)
			output, split := splitRows(ds.Rows, config.splitProbability, rand.New(rand.NewSource(seed)))
			err = config.writeSet(config.setOutput, "output", ds, output, cmd.OutOrStdout())
			if err != nil {
				config.exit(3, err)
			}
			err = config.writeSet(config.splitOutput, "split", ds, split, cmd.OutOrStdout())
			if err != nil {
				config.exit(4, err)
			}
			config.Logf("Done")
			config.Logf("Input set with %d samples was split into sets with %d and %d samples", ds.Count(), len(output), len(split))
		},
	}
	config.addFlags(cmd, "to split")
	cmd.PersistentFlags().StringVarP(&(config.setOutput), "output", "o", "", "path to a file to dump the output set (defaults to STDOUT)")
	cmd.PersistentFlags().IntVarP(&(config.splitProbability), "split-probability", "p", 20, "probability as percent integer that a sample of the set will be assigned to the split set")
	cmd.PersistentFlags().StringVarP(&(config.splitOutput), "split-output", "s", "", "path to a file to dump the output of the split set (required)")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the random assignment of samples (defaults to 0: seeded with the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.splitOutput == "" {
		return fmt.Errorf("required split-output flag was not set")
	}
	if scc.splitProbability <= 0 || scc.splitProbability > 100 {
		return fmt.Errorf("split-probability flag was set to an invalid value: it must be set to an integer between 1 and 100")
	}
	return nil
}

// splitRows assigns every row to the split set with the given percent
// probability, and to the output set otherwise. Both keep the rows' order.
func splitRows(rows []dataset.Row, splitProbability int, randomizer *rand.Rand) (output, split []dataset.Row) {
	for _, r := range rows {
		if (100 * randomizer.Float32()) > float32(splitProbability) {
			output = append(output, r)
		} else {
			split = append(split, r)
		}
	}
	return output, split
}

func (scc *splitCmdConfig) writeSet(path, name string, ds *dataset.Dataset, rows []dataset.Row, stdout io.Writer) error {
	w := stdout
	if path != "" {
		scc.Logf("Creating %s to dump %s set...", path, name)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	} else {
		scc.Logf("Using STDOUT to dump %s set...", name)
	}
	err := csv.Write(w, ds.Header, rows)
	if err != nil {
		return fmt.Errorf("writing %s set: %v", name, err)
	}
	return nil
}
