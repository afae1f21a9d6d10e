/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/pbanos/sapling/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each feature with its name and either a
string value of 'continuous' for continuous features or a list of valid values
for discrete features. Features are returned sorted by name, datasets align
them to their columns by name.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features map[string]interface{}
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	names := make([]string, 0, len(metadata.Features))
	for fn := range metadata.Features {
		names = append(names, fn)
	}
	sort.Strings(names)
	features := []feature.Feature{}
	for _, fn := range names {
		switch values := metadata.Features[fn].(type) {
		case string:
			if values != "continuous" {
				return nil, fmt.Errorf("invalid declaration %q for feature %s: expected 'continuous' or a list of values", values, fn)
			}
			features = append(features, feature.NewContinuousFeature(fn))
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewDiscreteFeature(fn, stringVs))
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", values, fn)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}
