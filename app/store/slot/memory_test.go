package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory(nil)
	_, err := m.Read(t.Context())
	require.ErrorIs(t, err, ErrEmpty)

	src := []byte("[]")
	require.NoError(t, m.Write(t.Context(), src))
	src[0] = 'x'
	data, err := m.Read(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "write keeps a copy")
	assert.Equal(t, 1, m.Writes())

	m = NewMemory([]byte("abc"))
	data, err = m.Read(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
	assert.Equal(t, 0, m.Writes())
}

func TestNewRedis_BadURL(t *testing.T) {
	r, err := NewRedis("not-a-url://", "")
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "invalid redis URL")
}
