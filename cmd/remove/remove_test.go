package remove

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"
	"github.com/fjacquet/fincontroller/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, mock *store.MockStore) *service.TransactionService {
	t.Helper()
	svc := service.New(manager.New(mock, nil), nil)
	for _, amount := range []string{"10", "20"} {
		_, err := svc.Add(parser.Input{Amount: amount, Kind: "despesa", Date: "01/10/2025"})
		require.NoError(t, err)
	}
	return svc
}

func TestRun(t *testing.T) {
	mock := &store.MockStore{}
	svc := newService(t, mock)
	logger := logging.NewMockLogger()
	var buf bytes.Buffer

	require.NoError(t, Run(&buf, svc, 1, logger))
	assert.Equal(t, "Transação 1 removida.\n", buf.String())
	assert.Len(t, svc.All(), 1)
	assert.Len(t, mock.Records, 1)
	assert.True(t, logger.HasEntry("INFO", "Transaction removed"))
}

func TestRun_NotFound(t *testing.T) {
	svc := newService(t, &store.MockStore{})

	err := Run(&bytes.Buffer{}, svc, 7, nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Len(t, svc.All(), 2)
}

func TestRun_SaveFailure(t *testing.T) {
	mock := &store.MockStore{}
	svc := newService(t, mock)
	mock.SaveError = errors.New("disk full")

	err := Run(&bytes.Buffer{}, svc, 2, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
