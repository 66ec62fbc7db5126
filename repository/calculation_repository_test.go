package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calculator-api/domain"
)

func testCalculation(i int, tool string) domain.Calculation {
	return domain.Calculation{
		ID:        fmt.Sprintf("calc-%d", i),
		Tool:      tool,
		Input:     json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)),
		Result:    json.RawMessage(`{"ok":true}`),
		CreatedAt: time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
	}
}

// exerciseRepository runs the behaviour shared by every CalculationRepository.
func exerciseRepository(t *testing.T, repo CalculationRepository) {
	t.Helper()
	ctx := context.Background()

	empty, err := repo.List(ctx, domain.CalculationFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	tools := []string{"inflation", "break-even", "inflation", "text-cipher", "inflation"}
	for i, tool := range tools {
		require.NoError(t, repo.Save(ctx, testCalculation(i, tool)))
	}

	all, err := repo.List(ctx, domain.CalculationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "calc-4", all[0].ID)
	assert.Equal(t, "calc-0", all[4].ID)
	assert.JSONEq(t, `{"n":4}`, string(all[0].Input))
	assert.True(t, all[0].CreatedAt.Equal(time.Date(2026, 1, 1, 0, 0, 4, 0, time.UTC)))

	inflation, err := repo.List(ctx, domain.CalculationFilter{Tool: "inflation"})
	require.NoError(t, err)
	require.Len(t, inflation, 3)
	for _, c := range inflation {
		assert.Equal(t, "inflation", c.Tool)
	}

	limited, err := repo.List(ctx, domain.CalculationFilter{Tool: "inflation", Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "calc-4", limited[0].ID)
	assert.Equal(t, "calc-2", limited[1].ID)
}

func TestCalculationRepositoryMemory(t *testing.T) {
	exerciseRepository(t, NewCalculationRepositoryMemory(0))
}

func TestCalculationRepositoryMemory_DropsOldest(t *testing.T) {
	repo := NewCalculationRepositoryMemory(2)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, testCalculation(i, "inflation")))
	}

	all, err := repo.List(ctx, domain.CalculationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "calc-2", all[0].ID)
	assert.Equal(t, "calc-1", all[1].ID)
}

func TestSQLiteCalculationRepository(t *testing.T) {
	repo, err := NewSQLiteCalculationRepository(filepath.Join(t.TempDir(), "data", "history.db"))
	require.NoError(t, err)
	defer repo.Close()

	exerciseRepository(t, repo)
}

func TestSQLiteCalculationRepository_DuplicateID(t *testing.T) {
	repo, err := NewSQLiteCalculationRepository(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, testCalculation(1, "inflation")))
	assert.Error(t, repo.Save(ctx, testCalculation(1, "inflation")))
}

func TestSQLiteCalculationRepository_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	repo, err := NewSQLiteCalculationRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, testCalculation(7, "break-even")))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteCalculationRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.List(ctx, domain.CalculationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "calc-7", all[0].ID)
}
