package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateGameDTO(t *testing.T) {
	query, err := url.ParseQuery("height=8&width=10&mine_count=12&extra=1")
	require.NoError(t, err)

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)
	assert.Equal(t, 8, dto.Height)
	assert.Equal(t, 10, dto.Width)
	assert.Equal(t, 12, dto.MineCount)
	assert.Nil(t, dto.Seed)
}

func TestParseCreateGameDTOSeed(t *testing.T) {
	query, err := url.ParseQuery("height=8&width=8&mine_count=8&seed=42")
	require.NoError(t, err)

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)
	require.NotNil(t, dto.Seed)
	assert.Equal(t, uint64(42), *dto.Seed)
}

func TestParseCreateGameDTORequiresFields(t *testing.T) {
	query, err := url.ParseQuery("height=8&width=8")
	require.NoError(t, err)

	_, err = ParseCreateGameDTO(query)
	assert.Error(t, err)
}
