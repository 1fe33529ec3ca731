package show

import (
	"bytes"
	"testing"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand_Args(t *testing.T) {
	assert.Equal(t, "show <id>", Cmd.Use)
	assert.Error(t, Cmd.Args(Cmd, []string{}))
	assert.NoError(t, Cmd.Args(Cmd, []string{"1"}))
}

func TestRun(t *testing.T) {
	svc := service.New(manager.New(nil, nil), nil)
	_, err := svc.Add(parser.Input{Amount: "42", Kind: "despesa", Date: "03/10/2025", Category: "lazer", Description: "Cinema"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, svc, 1))
	assert.Equal(t, "ID 1 | despesa | 42.00 | 03/10/2025 | lazer | Cinema\n", buf.String())

	err = Run(&buf, svc, 9)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "9")
}
