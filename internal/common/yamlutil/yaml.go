package yamlutil

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

// Marshal encodes data as a YAML document with two-space indentation
func Marshal(data map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("%w: yaml: %s", errors.ErrEncodeFailed, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: yaml: %s", errors.ErrEncodeFailed, err.Error())
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a YAML mapping into a map
func Unmarshal(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	return result, nil
}
