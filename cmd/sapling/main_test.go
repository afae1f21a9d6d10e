package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/sapling/dataset/sqlset/sqlite3adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sizeColor = `size color label
big red yes
big blue yes
small red no
small blue no
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	cmd := cliParser()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "sapling v0.1.0\n", run(t, "", "version"))
}

func TestGrow(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	expected := `Is size == small?
|--> True:
    Confidence(%) {no: 100}
|--> False:
    Confidence(%) {yes: 100}
`
	assert.Equal(t, expected, run(t, "", "grow", "-i", input))
}

func TestGrowJSONToFile(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	output := filepath.Join(t.TempDir(), "tree.json")
	assert.Empty(t, run(t, "", "grow", "-i", input, "-f", "json", "-o", output))
	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"label": "label"`)
	assert.Contains(t, string(content), `"kind": "decision"`)
}

func TestGrowCSVWithMetadata(t *testing.T) {
	input := writeFile(t, "size_color.csv", strings.ReplaceAll(sizeColor, " ", ","))
	metadata := writeFile(t, "metadata.yml", "features:\n  size:\n    - big\n    - small\n  color:\n    - red\n    - blue\n")
	assert.Contains(t, run(t, "", "grow", "-i", input, "-m", metadata), "Is size == small?")
}

func TestGrowSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "size_color.db")
	a, err := sqlite3adapter.New(path, 1)
	require.NoError(t, err)
	_, err = a.DB().Exec(`CREATE TABLE shapes (id INTEGER PRIMARY KEY, label TEXT, size TEXT, color TEXT)`)
	require.NoError(t, err)
	_, err = a.DB().Exec(`INSERT INTO shapes (label, size, color) VALUES
		('yes', 'big', 'red'), ('yes', 'big', 'blue'), ('no', 'small', 'red'), ('no', 'small', 'blue')`)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	out := run(t, "", "grow", "-i", path, "--table", "shapes", "--label", "label")
	assert.True(t, strings.HasPrefix(out, "Is size == small?\n"), "got %s", out)
}

func TestLeaveOneOut(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	plot := filepath.Join(t.TempDir(), "scores.png")
	out := run(t, "", "loo", "-i", input, "--plot", plot)
	assert.Equal(t, "Accuracy: 1 (4 of 4 samples predicted right)\n", out)
	_, err := os.Stat(plot)
	assert.NoError(t, err)
}

func TestTest(t *testing.T) {
	training := writeFile(t, "training.txt", sizeColor)
	testSet := writeFile(t, "testing.txt", "size color label\nbig green yes\nsmall green yes\n")
	assert.Equal(t, "Accuracy: 0.5 (1 of 2 samples predicted right)\n", run(t, "", "test", "-i", training, "-t", testSet))
}

func TestBest(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	assert.Contains(t, run(t, "", "best", "-i", input), "Is size == small? (information gain ")

	constant := writeFile(t, "constant.txt", "size label\nbig yes\nsmall yes\n")
	assert.Equal(t, "No query provides information on the label\n", run(t, "", "best", "-i", constant))
}

func TestClassify(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	out := run(t, "huge\nsmall\n", "classify", "-i", input)
	assert.Contains(t, out, "Please provide the sample's size:\n(valid values are [big small])\n")
	assert.Contains(t, out, "huge is not a valid value for the sample's size.")
	assert.Contains(t, out, "Predicted label is no\n")
	assert.Contains(t, out, "Confidence(%) {no: 100}\n")
	assert.NotContains(t, out, "color")
}

func TestSplit(t *testing.T) {
	input := writeFile(t, "size_color.txt", sizeColor)
	dir := t.TempDir()
	output := filepath.Join(dir, "output.csv")
	split := filepath.Join(dir, "split.csv")
	run(t, "", "split", "-i", input, "-o", output, "-s", split, "-p", "100", "--seed", "7")

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "size,color,label\n", string(content))
	content, err = os.ReadFile(split)
	require.NoError(t, err)
	assert.Equal(t, strings.ReplaceAll(sizeColor, " ", ","), string(content))
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&growCmdConfig{format: "xml"}).Validate())
	assert.NoError(t, (&growCmdConfig{format: "json"}).Validate())
	assert.Error(t, (&classifyCmdConfig{}).Validate())
	assert.Error(t, (&testCmdConfig{}).Validate())
	assert.Error(t, (&splitCmdConfig{splitProbability: 20}).Validate())
	assert.Error(t, (&splitCmdConfig{splitOutput: "x.csv", splitProbability: 0}).Validate())
	assert.NoError(t, (&splitCmdConfig{splitOutput: "x.csv", splitProbability: 20}).Validate())
}
