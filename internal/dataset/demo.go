package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yml
var demoYAML []byte

// DemoSpec returns the built-in dataset used when no dataset is configured.
func DemoSpec() (Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(demoYAML, &spec); err != nil {
		return Spec{}, fmt.Errorf("decoding demo dataset: %w", err)
	}
	return spec, nil
}
