package inference

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"skin-vision/internal/domain/port"
)

// Runtime окружение onnxruntime. Одно на процесс, общее для всех моделей.
type Runtime struct{}

// NewRuntime инициализирует onnxruntime. libPath — путь к разделяемой
// библиотеке; пустая строка оставляет путь по умолчанию.
func NewRuntime(libPath string) (*Runtime, error) {
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	}
	return &Runtime{}, nil
}

// Close уничтожает окружение. Модели нужно закрыть раньше.
func (rt *Runtime) Close() error {
	return ort.DestroyEnvironment()
}

// OnnxModel модель с заранее выделенными входным и выходным тензорами.
type OnnxModel struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// LoadModel открывает сессию для modelPath по описанию из metadataPath.
func (rt *Runtime) LoadModel(modelPath, metadataPath string) (*OnnxModel, error) {
	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(metadata.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{metadata.InputName}, []string{metadata.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session for %s: %w", modelPath, err)
	}

	return &OnnxModel{
		session:      session,
		Metadata:     metadata,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict прогоняет один пример и возвращает копию выходного тензора.
func (m *OnnxModel) Predict(ctx context.Context, input []float32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data := m.inputTensor.GetData()
	if len(input) != len(data) {
		return nil, fmt.Errorf("expected %d input values, got %d", len(data), len(input))
	}
	copy(data, input)

	if err := m.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	return slices.Clone(m.outputTensor.GetData()), nil
}

// Close освобождает сессию и тензоры.
func (m *OnnxModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if m.session != nil {
		errs = append(errs, m.session.Destroy())
		m.session = nil
	}
	if m.inputTensor != nil {
		errs = append(errs, m.inputTensor.Destroy())
		m.inputTensor = nil
	}
	if m.outputTensor != nil {
		errs = append(errs, m.outputTensor.Destroy())
		m.outputTensor = nil
	}
	return errors.Join(errs...)
}

// Проверка реализации интерфейса
var _ port.Model = (*OnnxModel)(nil)
