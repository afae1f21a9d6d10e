package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/tree"
	treejson "github.com/pbanos/sapling/tree/json"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	inputConfig
	output string
	format string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputConfig: inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a decision tree from a set of data to predict its last column and print it.`,
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
			config.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", ds.Count(), len(ds.Header)-1, ds.Label())
			t, err := sapling.Grow(ctx, ds)
			if err != nil {
				config.exit(3, fmt.Errorf("growing the tree: %v", err))
			}
			leaves, decisions := t.Size()
			config.Logf("Done: tree with %d decision nodes and %d leaves, %d levels deep", decisions, leaves, t.Depth())
			err = outputTree(config.output, config.format, t, cmd.OutOrStdout())
			if err != nil {
				config.exit(4, err)
			}
		},
	}
	config.addFlags(cmd, "to use to grow the tree")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "text", "format in which the tree is written: text or json")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.format != "text" && gcc.format != "json" {
		return fmt.Errorf("format flag was set to an invalid value %q: it must be text or json", gcc.format)
	}
	return nil
}

func outputTree(outputPath, format string, t *tree.Tree, stdout io.Writer) error {
	w := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating %s to write the tree: %v", outputPath, err)
		}
		defer f.Close()
		w = f
	}
	if format == "json" {
		err := treejson.Write(w, t)
		if err != nil {
			return fmt.Errorf("writing the tree as JSON: %v", err)
		}
		return nil
	}
	_, err := io.WriteString(w, t.String())
	if err != nil {
		return fmt.Errorf("writing the tree: %v", err)
	}
	return nil
}
