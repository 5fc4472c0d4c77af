package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()

	require.NotNil(t, store)
	assert.Empty(t, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("calculator.default_base", "HEX"))

	val, ok := store.Get("calculator.default_base")
	assert.True(t, ok)
	assert.Equal(t, "HEX", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Coercion(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("calculator.default_base", 16))
	require.NoError(t, store.Set("display.show_steps", "false"))

	assert.Equal(t, "16", store.GetString("calculator.default_base"))
	assert.False(t, store.GetBool("display.show_steps"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("display.theme", "mono"))
	require.NoError(t, store.Set("calculator.default_base", "BIN"))

	assert.Equal(t, []string{"calculator.default_base", "display.theme"}, store.Keys())
}

func TestConfigStore_LoadRestoresLastSave(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("display.theme", "mono"))

	store.values["display.theme"] = "default"
	require.NoError(t, store.Load())

	assert.Equal(t, "mono", store.GetString("display.theme"))

	store.values["display.theme"] = "default"
	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	assert.Equal(t, "default", store.GetString("display.theme"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = store.Set(key, id)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetString(key)
			_ = store.Keys()
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		assert.Equal(t, fmt.Sprint(i), store.GetString(fmt.Sprintf("key-%d", i)))
	}
}
