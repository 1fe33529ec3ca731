package importer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/common"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"
	"github.com/fjacquet/fincontroller/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportCommand_Args(t *testing.T) {
	assert.Equal(t, "import <file.csv>", Cmd.Use)
	assert.Error(t, Cmd.Args(Cmd, []string{}))
	assert.NoError(t, Cmd.Args(Cmd, []string{"a.csv"}))
}

func TestRun(t *testing.T) {
	csvFile := writeCSV(t, "id,type,date,amount,category,description\n"+
		"7,receita,05/10/2025,3500.00,salário,Salário\n"+
		"8,despesa,06/10/2025,120.75,alimentação,\"Mercado, feira\"\n")
	mock := &store.MockStore{}
	svc := service.New(manager.New(mock, nil), nil)
	logger := logging.NewMockLogger()
	var buf bytes.Buffer

	require.NoError(t, Run(&buf, svc, csvFile, logger))
	assert.Contains(t, buf.String(), "2 transação(ões) importada(s)")
	assert.True(t, logger.HasEntry("INFO", "Transactions imported"))

	all := svc.All()
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ID(), "imported rows get new ids")
	assert.Equal(t, models.Food, all[1].Category())
	assert.Equal(t, "Mercado, feira", all[1].Description())
	assert.Len(t, mock.Records, 2)
}

func TestRun_RoundTripWithExport(t *testing.T) {
	source := service.New(manager.New(nil, nil), nil)
	_, err := source.Add(parser.Input{Amount: "42,50", Kind: "despesa", Date: "03/10/2025", Category: "lazer", Description: "Cinema"})
	require.NoError(t, err)

	csvFile := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, common.WriteTransactionsToCSV(source.All(), csvFile, nil))

	target := service.New(manager.New(nil, nil), nil)
	require.NoError(t, Run(&bytes.Buffer{}, target, csvFile, nil))

	require.Len(t, target.All(), 1)
	assert.True(t, source.All()[0].Equal(target.All()[0]))
}

func TestRun_InvalidRowImportsNothing(t *testing.T) {
	csvFile := writeCSV(t, "id,type,date,amount,category,description\n"+
		"1,receita,05/10/2025,10,,\n"+
		"2,despesa,31/02/2025,5,,\n")
	svc := service.New(manager.New(nil, nil), nil)

	err := Run(&bytes.Buffer{}, svc, csvFile, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidDate)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Empty(t, svc.All())
}

func TestRun_MissingFile(t *testing.T) {
	svc := service.New(manager.New(nil, nil), nil)
	err := Run(&bytes.Buffer{}, svc, filepath.Join(t.TempDir(), "none.csv"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
