package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"retailcli/internal/config"
	apperrors "retailcli/internal/errors"
	"retailcli/pkg/contracts/domain"
)

const csvHeader = "InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country\n"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testInput() config.InputConfig {
	return config.InputConfig{Encoding: "utf-8", Delimiter: ","}
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRows int
		wantErr  bool
		wantCode string
	}{
		{
			name: "valid rows",
			content: csvHeader +
				"536365,85123A,WHITE HANGING HEART,6,12/1/2010 8:26,2.55,17850,United Kingdom\n" +
				"C536379,D,Discount,-1,12/1/2010 9:41,27.50,14527,United Kingdom\n",
			wantRows: 2,
		},
		{
			name: "missing customer id is null not error",
			content: csvHeader +
				"536414,22139,RETROSPOT TEA SET,56,12/1/2010 11:52,1.25,,United Kingdom\n",
			wantRows: 1,
		},
		{
			name: "customer id in excel float form",
			content: csvHeader +
				"536365,85123A,WHITE HANGING HEART,6,12/1/2010 8:26,2.55,17850.0,United Kingdom\n",
			wantRows: 1,
		},
		{
			name:     "malformed quantity fails whole load",
			content:  csvHeader + "536365,85123A,DESC,six,12/1/2010 8:26,2.55,17850,United Kingdom\n",
			wantErr:  true,
			wantCode: apperrors.CodeRowMalformed,
		},
		{
			name:     "short row fails whole load",
			content:  csvHeader + "536365,85123A,DESC\n",
			wantErr:  true,
			wantCode: apperrors.CodeRowMalformed,
		},
		{
			name:     "non numeric customer id fails whole load",
			content:  csvHeader + "536365,85123A,DESC,6,12/1/2010 8:26,2.55,abc,United Kingdom\n",
			wantErr:  true,
			wantCode: apperrors.CodeRowMalformed,
		},
		{
			name:     "wrong header fails load",
			content:  "A,B,C,D,E,F,G,H\n536365,85123A,DESC,6,12/1/2010 8:26,2.55,17850,United Kingdom\n",
			wantErr:  true,
			wantCode: apperrors.CodeSchemaInvalid,
		},
		{
			name:     "wrong column count fails load",
			content:  "InvoiceNo,StockCode\n",
			wantErr:  true,
			wantCode: apperrors.CodeSchemaInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(nil, testInput())
			rows, err := loader.Load(writeTempCSV(t, tt.content))

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestLoader_PreservesRawValues(t *testing.T) {
	content := csvHeader +
		"C536379,D,Discount,-1,12/1/2010 9:41,27.50,14527,United Kingdom\n"
	loader := NewLoader(nil, testInput())

	rows, err := loader.Load(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	tx := rows[0]
	assert.Equal(t, "C536379", tx.InvoiceID)
	assert.True(t, tx.IsCancellation())
	assert.Equal(t, int64(-1), tx.Quantity)
	assert.Equal(t, "12/1/2010 9:41", tx.RawTimestamp)
	assert.Equal(t, 27.50, tx.UnitPrice)
	assert.Equal(t, domain.Int64Of(14527), tx.CustomerID)
	assert.Equal(t, "United Kingdom", tx.Country)
}

func TestLoader_MissingCustomerIsNull(t *testing.T) {
	content := csvHeader +
		"536414,22139,RETROSPOT TEA SET,56,12/1/2010 11:52,1.25,,United Kingdom\n"
	loader := NewLoader(nil, testInput())

	rows, err := loader.Load(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.False(t, rows[0].CustomerID.Valid)
	_, err = rows[0].CustomerID.Value()
	assert.ErrorIs(t, err, domain.ErrNullValue)
}

func TestLoader_DeclaredEncoding(t *testing.T) {
	// A description with a non-ASCII byte that only decodes correctly
	// through the declared codepage.
	raw := csvHeader +
		"536367,84879,POUPÉE RUSSE,8,12/1/2010 8:34,1.69,13047,France\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(raw)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "latin.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0644))

	loader := NewLoader(nil, config.InputConfig{Encoding: "windows-1252", Delimiter: ","})
	rows, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "POUPÉE RUSSE", rows[0].Description)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(nil, testInput())
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeLoadFailed, apperrors.CodeOf(err))
	assert.Equal(t, apperrors.StageLoad, apperrors.StageOf(err))
}

func TestLoader_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{
		"InvoiceNo", "StockCode", "Description", "Quantity",
		"InvoiceDate", "UnitPrice", "CustomerID", "Country",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{
		"536365", "85123A", "WHITE HANGING HEART", "6",
		"12/1/2010 8:26", "2.55", "17850", "United Kingdom",
	}))
	// Trailing cells empty: no customer, country present.
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{
		"536414", "22139", "", "56",
		"12/1/2010 11:52", "1.25", "", "United Kingdom",
	}))

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	loader := NewLoader(nil, testInput())
	rows, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.Int64Of(17850), rows[0].CustomerID)
	assert.False(t, rows[1].CustomerID.Valid)
	assert.Empty(t, rows[1].Description)
}
