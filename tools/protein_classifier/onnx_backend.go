package protein_classifier

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"prot_classifier_go/kmer_analyzer"
)

// Tensor names of the exported boosted-tree graph.
const (
	ONNXInputName  = "input"
	ONNXOutputName = "probabilities"
)

// ONNXClassifier evaluates the classifier through onnxruntime instead of the
// JSON tree dump. The session binds one input and one output tensor, so
// calls are serialized.
type ONNXClassifier struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	dim          int
	numClass     int
}

// NewONNXClassifier opens modelPath with a [1, dim] float input and a
// [1, numClass] probability output. libPath overrides the onnxruntime shared
// library location when set.
func NewONNXClassifier(modelPath, libPath string, dim, numClass int) (*ONNXClassifier, error) {
	if modelPath == "" {
		return nil, fmt.Errorf("onnx model path is empty")
	}
	if libPath != "" {
		ort.SetSharedLibraryPath(libPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(dim)))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(numClass)))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{ONNXInputName}, []string{ONNXOutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXClassifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		dim:          dim,
		numClass:     numClass,
	}, nil
}

func (c *ONNXClassifier) NumClass() int { return c.numClass }

// PredictProba copies the dense feature vector into the bound input tensor
// and runs the session.
func (c *ONNXClassifier) PredictProba(fv kmer_analyzer.FeatureVector) ([]float64, error) {
	if fv.Dim != c.dim {
		return nil, fmt.Errorf("feature vector has %d dims, model expects %d", fv.Dim, c.dim)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.inputTensor.GetData(), fv.Dense32())
	if err := c.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	out := c.outputTensor.GetData()
	probs := make([]float64, len(out))
	for i, v := range out {
		probs[i] = float64(v)
	}
	return probs, nil
}

// Close destroys the tensors, the session and the ONNX environment.
func (c *ONNXClassifier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inputTensor != nil {
		c.inputTensor.Destroy()
		c.inputTensor = nil
	}
	if c.outputTensor != nil {
		c.outputTensor.Destroy()
		c.outputTensor = nil
	}
	if c.session != nil {
		c.session.Destroy()
		c.session = nil
	}
	ort.DestroyEnvironment()
}
