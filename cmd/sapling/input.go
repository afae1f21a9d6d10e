package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pbanos/sapling/dataset"
	"github.com/pbanos/sapling/dataset/csv"
	"github.com/pbanos/sapling/dataset/sqlset"
	"github.com/pbanos/sapling/dataset/sqlset/pgadapter"
	"github.com/pbanos/sapling/dataset/sqlset/sqlite3adapter"
	"github.com/pbanos/sapling/dataset/text"
	"github.com/pbanos/sapling/feature"
	"github.com/pbanos/sapling/feature/yaml"
	"github.com/spf13/cobra"
)

// inputConfig holds the flags to read a dataset, shared by all the commands
// that take one.
type inputConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
	table         string
	label         string
	maxDBConns    int
}

func (ic *inputConfig) addFlags(cmd *cobra.Command, usage string) {
	cmd.PersistentFlags().StringVarP(&(ic.dataInput), "input", "i", "", "path to an input whitespace-separated text, CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with data "+usage+" (defaults to STDIN, interpreted as whitespace-separated text)")
	ic.addSourceFlags(cmd)
}

func (ic *inputConfig) addSourceFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&(ic.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features on the input (optional, features are inferred from the data otherwise)")
	cmd.PersistentFlags().StringVar(&(ic.table), "table", "samples", "name of the table to read from SQLite3 and PostgreSQL inputs")
	cmd.PersistentFlags().StringVar(&(ic.label), "label", "", "name of the label column on SQLite3 and PostgreSQL inputs (defaults to the table's last column)")
	cmd.PersistentFlags().IntVar(&(ic.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
}

// features returns the features described by the metadata file, or none if
// no metadata file was given.
func (ic *inputConfig) features() ([]feature.Feature, error) {
	if ic.metadataInput == "" {
		return nil, nil
	}
	ic.Logf("Reading features from metadata at %s...", ic.metadataInput)
	return yaml.ReadFeaturesFromFile(ic.metadataInput)
}

// dataset reads the dataset at the given input, selecting how from the
// input's form.
func (ic *inputConfig) dataset(ctx context.Context, input string) (*dataset.Dataset, error) {
	features, err := ic.features()
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasPrefix(input, "postgres://") || strings.HasPrefix(input, "postgresql://"):
		ic.Logf("Creating PostgreSQL adapter for url %s to read dataset...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, err
		}
		if ic.maxDBConns > 0 {
			adapter.DB().SetMaxOpenConns(ic.maxDBConns)
		}
		return ic.sqlDataset(ctx, adapter, features)
	case strings.HasSuffix(input, ".db"):
		ic.Logf("Creating SQLite3 adapter for file %s to read dataset...", input)
		adapter, err := sqlite3adapter.New(input, ic.maxDBConns)
		if err != nil {
			return nil, err
		}
		return ic.sqlDataset(ctx, adapter, features)
	}
	var r io.Reader
	if input == "" {
		ic.Logf("Reading dataset from STDIN...")
		r = os.Stdin
	} else {
		ic.Logf("Opening %s to read dataset...", input)
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening dataset at %s: %v", input, err)
		}
		defer f.Close()
		r = f
	}
	var ds *dataset.Dataset
	if strings.HasSuffix(input, ".csv") {
		ds, err = csv.Read(r, features)
	} else {
		ds, err = text.Read(r, features)
	}
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	ic.Logf("Read dataset %v", ds)
	return ds, nil
}

func (ic *inputConfig) sqlDataset(ctx context.Context, adapter sqlset.Adapter, features []feature.Feature) (*dataset.Dataset, error) {
	defer adapter.Close()
	ds, err := sqlset.Read(ctx, adapter, ic.table, ic.label, features)
	if err != nil {
		return nil, fmt.Errorf("reading dataset from table %s: %w", ic.table, err)
	}
	ic.Logf("Read dataset %v", ds)
	return ds, nil
}
