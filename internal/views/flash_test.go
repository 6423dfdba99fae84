package views_test

import (
	"testing"

	"github.com/lumenledger/backend/internal/sharedprops"
	"github.com/lumenledger/backend/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringRef(s string) *string {
	return &s
}

func TestFlashEmpty(t *testing.T) {
	flash := views.NewFlash(&sharedprops.Snapshot{})

	_, ok := flash.Success()
	assert.False(t, ok)
	assert.False(t, flash.HasMessages())
	assert.Empty(t, flash.All())
}

func TestFlashAccessors(t *testing.T) {
	flash := views.NewFlash(&sharedprops.Snapshot{
		Flash: sharedprops.Flash{
			Success: stringRef("saved"),
			Warning: stringRef("careful"),
		},
	})

	message, ok := flash.Success()
	require.True(t, ok)
	assert.Equal(t, "saved", message)

	message, ok = flash.Warning()
	require.True(t, ok)
	assert.Equal(t, "careful", message)

	_, ok = flash.Error()
	assert.False(t, ok)

	assert.True(t, flash.HasMessages())
}

func TestFlashAllOrder(t *testing.T) {
	flash := views.NewFlash(&sharedprops.Snapshot{
		Flash: sharedprops.Flash{
			Message: stringRef("m"),
			Success: stringRef("s"),
			Error:   stringRef("e"),
			Info:    stringRef("i"),
			Warning: stringRef("w"),
		},
	})

	assert.Equal(t, []views.Message{
		{Type: "success", Message: "s"},
		{Type: "error", Message: "e"},
		{Type: "info", Message: "i"},
		{Type: "warning", Message: "w"},
		{Type: "message", Message: "m"},
	}, flash.All())
}
