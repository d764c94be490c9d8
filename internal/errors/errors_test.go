package errors

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *PipelineError
		want string
	}{
		{
			name: "without cause",
			err:  New(StageLoad, CodeSchemaInvalid, "bad header"),
			want: "load: bad header",
		},
		{
			name: "with cause",
			err:  Wrap(StageExport, CodeExportFailed, "write failed", goerrors.New("disk full")),
			want: "export: write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestPipelineError_Unwrap(t *testing.T) {
	cause := goerrors.New("underlying")
	err := LoadFailed("cannot open", cause)

	assert.ErrorIs(t, err, cause)

	var pe *PipelineError
	require.True(t, goerrors.As(err, &pe))
	assert.Equal(t, CodeLoadFailed, pe.Code)
	assert.Equal(t, StageLoad, pe.Stage)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeRowMalformed, CodeOf(RowMalformed(42, goerrors.New("boom"))))
	assert.Equal(t, CodeExportFailed, CodeOf(ExportFailed("country summary", goerrors.New("boom"))))
	assert.Empty(t, CodeOf(goerrors.New("plain")))
	assert.Empty(t, CodeOf(nil))
}

func TestStageOf_WrappedDeeper(t *testing.T) {
	inner := SchemaInvalid("expected 8 columns, got 3")
	outer := fmt.Errorf("loading dataset: %w", inner)

	assert.Equal(t, StageLoad, StageOf(outer))
	assert.Equal(t, CodeSchemaInvalid, CodeOf(outer))
}

func TestRowMalformed_MentionsLine(t *testing.T) {
	err := RowMalformed(17, goerrors.New("bad quantity"))
	assert.Contains(t, err.Error(), "line 17")
}
