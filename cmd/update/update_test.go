package update

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/parser"
	"github.com/fjacquet/fincontroller/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestRun(t *testing.T) {
	tests := []struct {
		name            string
		id              int
		opts            Options
		wantCategory    models.Category
		wantDescription string
		errIs           error
		errMsg          string
	}{
		{name: "category", id: 1, opts: Options{Category: ptr("Lazer")}, wantCategory: models.Leisure, wantDescription: "Cinema"},
		{name: "description", id: 1, opts: Options{Description: ptr("Teatro")}, wantCategory: models.Food, wantDescription: "Teatro"},
		{name: "blank description restores default", id: 1, opts: Options{Description: ptr(" ")}, wantCategory: models.Food, wantDescription: models.DefaultDescription},
		{name: "other of the wrong set is remapped", id: 1, opts: Options{Category: ptr("outros")}, wantCategory: models.ExpenseOther, wantDescription: "Cinema"},
		{name: "both", id: 1, opts: Options{Category: ptr("lazer"), Description: ptr("Show")}, wantCategory: models.Leisure, wantDescription: "Show"},
		{name: "nothing to update", id: 1, errMsg: "nothing to update"},
		{name: "missing id", id: 5, opts: Options{Category: ptr("lazer")}, errIs: apperror.ErrNotFound},
		{name: "income category on expense", id: 1, opts: Options{Category: ptr("salário")}, errIs: apperror.ErrKindCategoryMismatch},
		{name: "unknown category", id: 1, opts: Options{Category: ptr("viagem")}, errIs: apperror.ErrInvalidCategory},
		{name: "description too long", id: 1, opts: Options{Description: ptr(strings.Repeat("x", models.MaxDescriptionLength+1))}, errIs: apperror.ErrInvalidDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(manager.New(nil, nil), nil)
			_, err := svc.Add(parser.Input{Amount: "30", Kind: "despesa", Date: "02/10/2025", Category: "alimentação", Description: "Cinema"})
			require.NoError(t, err)

			var buf bytes.Buffer
			err = Run(&buf, svc, tt.id, tt.opts, nil)

			stored, getErr := svc.Get(1)
			require.NoError(t, getErr)

			switch {
			case tt.errIs != nil:
				assert.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, models.Food, stored.Category())
				assert.Equal(t, "Cinema", stored.Description())
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Contains(t, buf.String(), "Transação atualizada: ID 1")
				assert.Equal(t, tt.wantCategory, stored.Category())
				assert.Equal(t, tt.wantDescription, stored.Description())
			}
		})
	}
}

func TestRun_CategoryErrorListsValidCategories(t *testing.T) {
	tests := []struct {
		name     string
		category string
		errIs    error
	}{
		{name: "income category on expense", category: "salário", errIs: apperror.ErrKindCategoryMismatch},
		{name: "unknown category", category: "viagem", errIs: apperror.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.New(manager.New(nil, nil), nil)
			_, err := svc.Add(parser.Input{Amount: "30", Kind: "despesa", Date: "02/10/2025", Category: "lazer"})
			require.NoError(t, err)

			err = Run(&bytes.Buffer{}, svc, 1, Options{Category: ptr(tt.category)}, nil)
			assert.ErrorIs(t, err, tt.errIs)
			assert.Contains(t, err.Error(), "categorias de despesa: alimentação, transporte")
			assert.Contains(t, err.Error(), "vestuário, outros")
		})
	}
}

func TestRun_NotFoundHasNoCategoryHint(t *testing.T) {
	svc := service.New(manager.New(nil, nil), nil)

	err := Run(&bytes.Buffer{}, svc, 3, Options{Category: ptr("lazer")}, nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.NotContains(t, err.Error(), "categorias")
}
