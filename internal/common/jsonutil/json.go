package jsonutil

import (
	"encoding/json"
	"fmt"

	"github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

// Marshal encodes data as indented JSON followed by a newline
func Marshal(data map[string]interface{}) ([]byte, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: json: %s", errors.ErrEncodeFailed, err.Error())
	}
	return append(jsonData, '\n'), nil
}

// Unmarshal decodes a JSON object into a map
func Unmarshal(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, err.Error())
	}
	return result, nil
}
