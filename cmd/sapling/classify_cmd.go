package main

import (
	"fmt"
	"io"

	"github.com/pbanos/sapling"
	"github.com/pbanos/sapling/dataset/inputsample"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/tree"
	"github.com/spf13/cobra"
)

type classifyCmdConfig struct {
	inputConfig
}

type stdoutFeatureValueRequester struct {
	io.Writer
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{inputConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a sample answering questions",
		Long:  `Grow a tree from a set of data and use it to classify a sample answering a reduced set of questions about its features`,
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
			config.Logf("Growing tree from a set with %d samples to predict %s ...", ds.Count(), ds.Label())
			t, err := sapling.Grow(ctx, ds)
			if err != nil {
				config.exit(3, fmt.Errorf("growing the tree: %v", err))
			}
			out := cmd.OutOrStdout()
			counts, err := t.Classify(inputsample.New(cmd.InOrStdin(), ds.Features, stdoutFeatureValueRequester{out}))
			if err != nil {
				config.exit(4, fmt.Errorf("classifying the sample: %v", err))
			}
			predicted, _ := tree.PredictedValue(counts)
			fmt.Fprintf(out, "Predicted %s is %s\n", ds.Label(), predicted)
			fmt.Fprintf(out, "Confidence(%%) %s\n", tree.FormatConfidence(tree.Confidence(counts)))
		},
	}
	config.addFlags(cmd, "to use to grow the tree (required, STDIN is used to answer questions)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.dataInput == "" {
		return fmt.Errorf("required input flag was not set")
	}
	return nil
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(sfvr, "Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Fprintf(sfvr, "Please provide the sample's %s:\n(valid values are real numbers)\n", f.Name())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string, reason error) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Fprintf(sfvr, "%v is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	case *feature.ContinuousFeature:
		fmt.Fprintf(sfvr, "%v is not a valid value for the sample's %s. Please provide a real number.\n", value, f.Name())
	default:
		return fmt.Errorf("unknown feature type %T: %v", f, reason)
	}
	return nil
}
