package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbanos/sapling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metadata = `features:
  radius: continuous
  color:
    - red
    - blue
  label:
    - "yes"
    - "no"
`

func TestReadFeatures(t *testing.T) {
	features, err := ReadFeatures([]byte(metadata))
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, feature.NewDiscreteFeature("color", []string{"red", "blue"}), features[0])
	assert.Equal(t, "label", features[1].Name())
	assert.Equal(t, feature.NewContinuousFeature("radius"), features[2])
}

func TestReadFeaturesInvalid(t *testing.T) {
	cases := map[string]string{
		"no features":    "labels: []\n",
		"unknown kind":   "features:\n  radius: discrete\n",
		"bad value type": "features:\n  radius: 3\n",
		"not yaml":       "features: [\n",
	}
	for name, md := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadFeatures([]byte(md))
			assert.Error(t, err)
		})
	}
}

func TestReadFeaturesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte(metadata), 0o644))
	features, err := ReadFeaturesFromFile(path)
	require.NoError(t, err)
	assert.Len(t, features, 3)

	_, err = ReadFeaturesFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
