package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"retailcli/pkg/contracts/domain"
)

// supportedExtensions lists the input formats the loader understands.
var supportedExtensions = []string{".csv", ".txt", ".xlsx"}

// InputValidator validates the source dataset file before loading.
type InputValidator struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewInputValidator creates a new input validator.
func NewInputValidator(logger *slog.Logger) *InputValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &InputValidator{
		logger:   logger,
		validate: validator.New(),
	}
}

// ValidateInputFile checks that the input file exists, is a regular file,
// is not empty, and carries a supported extension.
func (v *InputValidator) ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file not specified")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input file does not exist",
			slog.String("path", path))
		return fmt.Errorf("input file %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("input file %s is empty", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return nil
		}
	}

	v.logger.Error("Unsupported input file extension",
		slog.String("path", path),
		slog.String("extension", ext))
	return fmt.Errorf("unsupported input extension %q (want one of %s)",
		ext, strings.Join(supportedExtensions, ", "))
}

// ValidateRecord checks a parsed transaction against the fixed schema.
// Rows that fail here are structurally invalid and fail the whole load.
func (v *InputValidator) ValidateRecord(t *domain.Transaction) error {
	if err := v.validate.Struct(t); err != nil {
		return fmt.Errorf("record does not conform to schema: %w", err)
	}
	return nil
}
