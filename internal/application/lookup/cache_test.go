package lookup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-admin/internal/application/lookup"
)

func TestCache_MemorizaPorClave(t *testing.T) {
	calls := map[string]int{}
	c := lookup.New[string](func(_ context.Context, key string) ([]string, error) {
		calls[key]++
		return []string{key + "-rojo", key + "-azul"}, nil
	})

	first, err := c.Get(context.Background(), "p1")
	require.NoError(t, err)
	second, err := c.Get(context.Background(), "p1")
	require.NoError(t, err)
	_, err = c.Get(context.Background(), "p2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls["p1"])
	assert.Equal(t, 1, calls["p2"])
}

func TestCache_NoMemorizaFallos(t *testing.T) {
	fail := true
	calls := 0
	c := lookup.New[string](func(_ context.Context, _ string) ([]string, error) {
		calls++
		if fail {
			return nil, errors.New("backend caído")
		}
		return []string{"verde"}, nil
	})

	got, err := c.Get(context.Background(), "p1")
	require.Error(t, err)
	assert.Empty(t, got)

	fail = false
	got, err = c.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"verde"}, got)
	assert.Equal(t, 2, calls)
}

func TestCache_ClaveVaciaNoConsulta(t *testing.T) {
	c := lookup.New[string](func(_ context.Context, _ string) ([]string, error) {
		t.Fatal("no debe consultar")
		return nil, nil
	})
	got, err := c.Get(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCache_CopiaDefensiva(t *testing.T) {
	c := lookup.New[string](func(_ context.Context, _ string) ([]string, error) {
		return []string{"a"}, nil
	})
	got, _ := c.Get(context.Background(), "k")
	got[0] = "mutado"
	again, _ := c.Get(context.Background(), "k")
	assert.Equal(t, []string{"a"}, again)
}

func TestCache_ForgetVuelveAConsultar(t *testing.T) {
	calls := map[string]int{}
	c := lookup.New[string](func(_ context.Context, key string) ([]string, error) {
		calls[key]++
		return []string{key}, nil
	})
	ctx := context.Background()
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")

	c.Forget("a")
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")
	assert.Equal(t, 2, calls["a"])
	assert.Equal(t, 1, calls["b"])

	c.Forget("")
	_, _ = c.Get(ctx, "a")
	_, _ = c.Get(ctx, "b")
	assert.Equal(t, 3, calls["a"])
	assert.Equal(t, 2, calls["b"])
}
