package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	defaultInputName  = "input"
	defaultOutputName = "output"
)

// Metadata описание модели, которое лежит рядом с файлом .onnx.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
	InputName   string   `json:"input_name,omitempty"`
	OutputName  string   `json:"output_name,omitempty"`
}

// LoadMetadata читает JSON с описанием модели и проставляет имена тензоров по умолчанию.
func LoadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}
	if meta.InputName == "" {
		meta.InputName = defaultInputName
	}
	if meta.OutputName == "" {
		meta.OutputName = defaultOutputName
	}
	if err := meta.Validate(); err != nil {
		return Metadata{}, fmt.Errorf("invalid metadata %s: %w", path, err)
	}
	return meta, nil
}

// Validate проверяет, что формы тензоров заданы и положительны.
func (m Metadata) Validate() error {
	if len(m.InputShape) == 0 || len(m.OutputShape) == 0 {
		return errors.New("input_shape and output_shape are required")
	}
	for _, d := range append(append([]int64{}, m.InputShape...), m.OutputShape...) {
		if d <= 0 {
			return fmt.Errorf("non-positive dimension %d", d)
		}
	}
	if len(m.Classes) > 0 && int64(len(m.Classes)) != elements(m.OutputShape) {
		return fmt.Errorf("%d classes for output of %d values", len(m.Classes), elements(m.OutputShape))
	}
	return nil
}

// InputLen число элементов входного тензора.
func (m Metadata) InputLen() int {
	return int(elements(m.InputShape))
}

func elements(shape []int64) int64 {
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}
