package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fjacquet/fincontroller/internal/apperror"
	"github.com/fjacquet/fincontroller/internal/filter"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 0, 0, 0, 0, time.UTC)
}

func fields(amount string, kind models.Kind, d int, category models.Category, description string) models.Fields {
	return models.Fields{
		Amount:      decimal.RequireFromString(amount),
		Kind:        kind,
		Date:        day(d),
		Category:    category,
		Description: description,
	}
}

func seeded(t *testing.T, s store.Store) *Manager {
	t.Helper()
	m := New(s, logging.NewMockLogger())
	for _, f := range []models.Fields{
		fields("3500.00", models.Income, 5, models.Wage, "Salário"),
		fields("120.75", models.Expense, 6, models.Food, "Mercado"),
		fields("80", models.Expense, 7, models.Transportation, "Uber"),
	} {
		_, err := m.Create(f)
		require.NoError(t, err)
	}
	return m
}

func ids(list []models.Transaction) []int {
	out := []int{}
	for _, t := range list {
		out = append(out, t.ID())
	}
	return out
}

func TestManager_CreateAssignsSequentialIDs(t *testing.T) {
	mock := &store.MockStore{}
	m := seeded(t, mock)

	assert.Equal(t, []int{1, 2, 3}, ids(m.All()))
	assert.Equal(t, 3, mock.SaveCalls)
	assert.Len(t, mock.Records, 3)
}

func TestManager_SequenceIsPerManager(t *testing.T) {
	a := seeded(t, nil)
	b := New(nil, nil)

	tx, err := b.Create(fields("1", models.Income, 1, models.Gift, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, tx.ID())
	assert.Equal(t, 3, a.Sequence().Current())

	a.Sequence().Reset()
	tx, err = New(nil, nil).Create(fields("1", models.Income, 1, models.Gift, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, tx.ID())
}

func TestManager_CreateRejected(t *testing.T) {
	mock := &store.MockStore{}
	m := New(mock, nil)

	_, err := m.Create(fields("10", models.Income, 1, models.Food, ""))
	assert.ErrorIs(t, err, apperror.ErrKindCategoryMismatch)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, mock.SaveCalls)
}

func TestManager_AllReturnsCopy(t *testing.T) {
	m := seeded(t, nil)

	all := m.All()
	require.NoError(t, all[0].SetDescription("changed"))
	all[1] = all[2]

	fresh := m.All()
	assert.Equal(t, "Salário", fresh[0].Description())
	assert.Equal(t, 2, fresh[1].ID())
}

func TestManager_Get(t *testing.T) {
	m := seeded(t, nil)

	tx, err := m.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Mercado", tx.Description())

	_, err = m.Get(99)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "99")
}

func TestManager_Remove(t *testing.T) {
	mock := &store.MockStore{}
	m := seeded(t, mock)

	require.NoError(t, m.Remove(2))
	assert.Equal(t, []int{1, 3}, ids(m.All()))
	assert.Len(t, mock.Records, 2)

	err := m.Remove(2)
	var notFound *apperror.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 2, notFound.ID)
	assert.Equal(t, []int{1, 3}, ids(m.All()), "failed removal leaves the collection intact")
}

func TestManager_UpdateCategory(t *testing.T) {
	mock := &store.MockStore{}
	m := seeded(t, mock)
	calls := mock.SaveCalls

	require.NoError(t, m.UpdateCategory(2, models.Leisure))
	tx, _ := m.Get(2)
	assert.Equal(t, models.Leisure, tx.Category())
	assert.Equal(t, calls+1, mock.SaveCalls)
	assert.Equal(t, "lazer", mock.Records[1].Category)

	err := m.UpdateCategory(2, models.Wage)
	assert.ErrorIs(t, err, apperror.ErrKindCategoryMismatch)
	tx, _ = m.Get(2)
	assert.Equal(t, models.Leisure, tx.Category())
	assert.Equal(t, calls+1, mock.SaveCalls, "rejected update is not persisted")

	assert.ErrorIs(t, m.UpdateCategory(42, models.Food), apperror.ErrNotFound)
}

func TestManager_UpdateDescription(t *testing.T) {
	m := seeded(t, nil)

	require.NoError(t, m.UpdateDescription(1, "Bônus"))
	tx, _ := m.Get(1)
	assert.Equal(t, "Bônus", tx.Description())

	long := fmt.Sprintf("%091d", 0)
	assert.ErrorIs(t, m.UpdateDescription(1, long), apperror.ErrInvalidDescription)
	tx, _ = m.Get(1)
	assert.Equal(t, "Bônus", tx.Description())

	assert.ErrorIs(t, m.UpdateDescription(7, "x"), apperror.ErrNotFound)
}

func TestManager_SaveFailureIsReturned(t *testing.T) {
	mock := &store.MockStore{SaveError: errors.New("disk full")}
	logger := logging.NewMockLogger()
	m := New(mock, logger)

	_, err := m.Create(fields("10", models.Income, 1, models.Gift, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, m.Len(), "in-memory mutation stays applied")
	assert.True(t, logger.HasEntry("ERROR", "Failed to save transactions"))
}

func TestManager_CreateAll(t *testing.T) {
	mock := &store.MockStore{}
	m := New(mock, nil)
	_, err := m.Create(fields("1", models.Income, 1, models.Gift, ""))
	require.NoError(t, err)

	created, err := m.CreateAll([]models.Fields{
		fields("20", models.Expense, 2, models.Food, "Feira"),
		fields("30", models.Income, 3, models.Sale, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(created))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, mock.SaveCalls, "one save for the whole batch")
	assert.Len(t, mock.Records, 3)
}

func TestManager_CreateAllRejectsWholeBatch(t *testing.T) {
	mock := &store.MockStore{}
	m := New(mock, nil)

	_, err := m.CreateAll([]models.Fields{
		fields("20", models.Expense, 2, models.Food, ""),
		fields("5", models.Income, 3, models.Food, ""),
	})
	assert.ErrorIs(t, err, apperror.ErrKindCategoryMismatch)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Sequence().Current())
	assert.Equal(t, 0, mock.SaveCalls)
}

func TestManager_CreateAllIgnoresIDs(t *testing.T) {
	m := New(nil, nil)
	f := fields("20", models.Expense, 2, models.Food, "")
	f.ID = 40

	created, err := m.CreateAll([]models.Fields{f})
	require.NoError(t, err)
	assert.Equal(t, 1, created[0].ID())

	empty, err := m.CreateAll(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestManager_FiltersAndSorts(t *testing.T) {
	m := seeded(t, nil)

	assert.Equal(t, []int{2, 3}, ids(m.FilterByKind(models.Expense)))
	assert.Equal(t, []int{3}, ids(m.FilterByCategory(models.Transportation)))
	assert.Equal(t, []int{2, 3}, ids(m.FilterByAmountRange(
		decimal.NewNullDecimal(decimal.NewFromInt(80)),
		decimal.NewNullDecimal(decimal.RequireFromString("120.75")))))
	assert.Equal(t, []int{2, 3}, ids(m.FilterByDateRange(day(6), time.Time{})))
	assert.Equal(t, []int{3, 2, 1}, ids(m.SortByAmount(filter.Ascending)))
	assert.Equal(t, []int{3, 2, 1}, ids(m.SortByDate(filter.Descending)))
	assert.Equal(t, []int{3, 2, 1}, ids(m.SortByID(filter.Descending)))
	assert.Equal(t, []int{1, 2, 3}, ids(m.All()))
}

func TestManager_RoundTripThroughJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	original := seeded(t, store.NewJSONStore(path, nil))
	require.NoError(t, original.Remove(1))

	reloaded := New(store.NewJSONStore(path, nil), nil)
	report := reloaded.Load()
	require.NoError(t, report.Warning)
	assert.Equal(t, 2, report.Loaded)

	want := original.All()
	got := reloaded.All()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "%s != %s", want[i], got[i])
	}

	tx, err := reloaded.Create(fields("5", models.Expense, 8, models.Bills, ""))
	require.NoError(t, err)
	assert.Equal(t, 4, tx.ID(), "sequence continues past restored ids")
}

func TestManager_LoadExplicitIDs(t *testing.T) {
	mock := &store.MockStore{Records: []models.Record{
		{Amount: json.Number("10"), Kind: "receita", Date: "01/10/2025", Category: "outros", ID: 50},
		{Amount: json.Number("20"), Kind: "despesa", Date: "02/10/2025", Category: "outros", ID: 7},
	}}
	m := New(mock, nil)

	report := m.Load()
	require.NoError(t, report.Warning)

	all := m.All()
	assert.Equal(t, []int{50, 7}, ids(all), "stored order is preserved")
	assert.Equal(t, models.ExpenseOther, all[1].Category())

	tx, err := m.Create(fields("1", models.Income, 1, models.Gift, ""))
	require.NoError(t, err)
	assert.Equal(t, 51, tx.ID())
}

func TestManager_LoadMissingStore(t *testing.T) {
	logger := logging.NewMockLogger()
	m := New(store.NewJSONStore(filepath.Join(t.TempDir(), "none.json"), nil), logger)

	report := m.Load()
	assert.NoError(t, report.Warning)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, logger.GetEntriesByLevel("WARN"))
}

func TestManager_LoadCorruptStore(t *testing.T) {
	valid := models.Record{Amount: json.Number("10"), Kind: "receita", Date: "01/10/2025", Category: "presente", ID: 1}

	tests := []struct {
		name     string
		records  []models.Record
		loadErr  error
		wantKind error
	}{
		{name: "store error", loadErr: &apperror.StoreError{FilePath: "x.json", Reason: "malformed JSON"}},
		{name: "bad kind", records: []models.Record{valid, {Amount: json.Number("1"), Kind: "lucro", Date: "01/10/2025", ID: 2}}, wantKind: apperror.ErrInvalidKind},
		{name: "bad date", records: []models.Record{{Amount: json.Number("1"), Kind: "receita", Date: "31/02/2025", ID: 2}}, wantKind: apperror.ErrInvalidDate},
		{name: "zero amount", records: []models.Record{{Amount: json.Number("0"), Kind: "receita", Date: "01/10/2025", ID: 2}}, wantKind: apperror.ErrInvalidAmount},
		{name: "mismatched category", records: []models.Record{{Amount: json.Number("1"), Kind: "receita", Date: "01/10/2025", Category: "lazer", ID: 2}}, wantKind: apperror.ErrKindCategoryMismatch},
		{name: "duplicate id", records: []models.Record{valid, valid}, wantKind: apperror.ErrInvalidID},
		{name: "missing id", records: []models.Record{{Amount: json.Number("1"), Kind: "receita", Date: "01/10/2025"}}, wantKind: apperror.ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logging.NewMockLogger()
			mock := &store.MockStore{LoadError: tt.loadErr}
			m := New(mock, logger)
			_, err := m.Create(fields("1", models.Income, 1, models.Gift, ""))
			require.NoError(t, err)
			mock.Records = tt.records
			before := m.Sequence().Current()

			report := m.Load()
			require.Error(t, report.Warning)
			var storeErr *apperror.StoreError
			assert.True(t, errors.As(report.Warning, &storeErr))
			if tt.wantKind != nil {
				assert.ErrorIs(t, report.Warning, tt.wantKind)
			}

			assert.Equal(t, 0, m.Len())
			assert.Equal(t, before, m.Sequence().Current(), "sequence untouched by a rejected store")
			assert.True(t, logger.HasEntry("WARN", "Ignoring unusable transaction store"))
		})
	}
}

func TestManager_LoadLongDescription(t *testing.T) {
	long := strings.Repeat("a", 120)
	mock := &store.MockStore{Records: []models.Record{
		{Amount: json.Number("3500"), Kind: "receita", Date: "05/10/2025", Category: "salário", ID: 1},
		{Amount: json.Number("120.75"), Kind: "despesa", Date: "06/10/2025", Category: "alimentação", Description: long, ID: 2},
	}}
	m := New(mock, nil)

	report := m.Load()
	require.NoError(t, report.Warning)
	assert.Equal(t, 2, report.Loaded)

	restored, err := m.Get(2)
	require.NoError(t, err)
	assert.Equal(t, long, restored.Description())

	_, err = m.Create(fields("10", models.Expense, 7, models.Leisure, ""))
	require.NoError(t, err)
	assert.Len(t, mock.Records, 3, "existing records survive the next save")
	assert.Equal(t, long, mock.Records[1].Description)

	err = m.UpdateDescription(2, long)
	assert.ErrorIs(t, err, apperror.ErrInvalidDescription)
}

func TestManager_LoadWarningNamesStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"amount": 0, "transaction_type": "receita", "transaction_date": "01/10/2025", "transaction_id": 1}]`), 0600))

	report := New(store.NewJSONStore(path, nil), nil).Load()
	require.Error(t, report.Warning)
	assert.ErrorIs(t, report.Warning, apperror.ErrInvalidAmount)

	var storeErr *apperror.StoreError
	require.True(t, errors.As(report.Warning, &storeErr))
	assert.Equal(t, path, storeErr.FilePath)
	assert.Contains(t, report.Warning.Error(), path)
}

func TestManager_LoadWithoutStore(t *testing.T) {
	m := New(nil, nil)
	report := m.Load()
	assert.NoError(t, report.Warning)
	assert.Equal(t, 0, report.Loaded)
}

func TestManager_LoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	require.NoError(t, os.Mkdir(path, 0750))

	report := New(store.NewJSONStore(path, nil), nil).Load()
	assert.Error(t, report.Warning)
}
