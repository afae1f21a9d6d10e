package inputsample

import (
	"strings"
	"testing"

	"github.com/pbanos/sapling/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	requested []string
	rejected  []string
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, value string, _ error) error {
	rr.rejected = append(rr.rejected, value)
	return nil
}

func features() []feature.Feature {
	return []feature.Feature{
		feature.NewDiscreteFeature("color", []string{"red", "blue"}),
		feature.NewContinuousFeature("radius"),
		feature.NewDiscreteFeature("label", []string{"yes", "no"}),
	}
}

func TestValueAtReadsLazily(t *testing.T) {
	rr := &recordingRequester{}
	s := New(strings.NewReader("4.5\nred\n"), features(), rr)

	v, err := s.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	v, err = s.ValueAt(0)
	require.NoError(t, err)
	assert.Equal(t, "red", v)

	v, err = s.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	assert.Equal(t, []string{"radius", "color"}, rr.requested)
	assert.Empty(t, rr.rejected)
}

func TestValueAtRejectsInvalidValues(t *testing.T) {
	rr := &recordingRequester{}
	s := New(strings.NewReader("green\n  blue \n"), features(), rr)
	v, err := s.ValueAt(0)
	require.NoError(t, err)
	assert.Equal(t, "blue", v)
	assert.Equal(t, []string{"green"}, rr.rejected)
}

func TestValueAtErrors(t *testing.T) {
	s := New(strings.NewReader("nan-ish\n"), features(), &recordingRequester{})
	_, err := s.ValueAt(1)
	assert.Error(t, err, "expected EOF error")

	_, err = s.ValueAt(2)
	assert.Error(t, err, "label column cannot be read")
	_, err = s.ValueAt(-1)
	assert.Error(t, err)
}

func TestQueryOnInputSample(t *testing.T) {
	s := New(strings.NewReader("3\n"), features(), &recordingRequester{})
	ok, err := feature.NewQuery(1, feature.Less, 5.0).Perform(s)
	require.NoError(t, err)
	assert.True(t, ok)
}
