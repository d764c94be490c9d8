package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailcli/pkg/contracts/domain"
)

func TestInputValidator_ValidateInputFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(valid, []byte("InvoiceNo\n"), 0644))
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	wrongExt := filepath.Join(dir, "data.parquet")
	require.NoError(t, os.WriteFile(wrongExt, []byte("x"), 0644))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"valid csv", valid, ""},
		{"unspecified", "", "not specified"},
		{"missing", filepath.Join(dir, "nope.csv"), "does not exist"},
		{"directory", dir, "directory"},
		{"empty file", empty, "empty"},
		{"unsupported extension", wrongExt, "unsupported input extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInputValidator(nil).ValidateInputFile(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputValidator_ValidateRecord(t *testing.T) {
	validTx := domain.Transaction{
		InvoiceID:    "536365",
		StockCode:    "85123A",
		Quantity:     6,
		RawTimestamp: "12/1/2010 8:26",
		UnitPrice:    2.55,
		Country:      "United Kingdom",
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{"valid", func(tx *domain.Transaction) {}, false},
		{"zero quantity is structurally valid", func(tx *domain.Transaction) { tx.Quantity = 0 }, false},
		{"missing invoice id", func(tx *domain.Transaction) { tx.InvoiceID = "" }, true},
		{"missing stock code", func(tx *domain.Transaction) { tx.StockCode = "" }, true},
		{"missing timestamp", func(tx *domain.Transaction) { tx.RawTimestamp = "" }, true},
		{"missing country", func(tx *domain.Transaction) { tx.Country = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTx
			tt.mutate(&tx)
			err := NewInputValidator(nil).ValidateRecord(&tx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
