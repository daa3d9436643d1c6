package parser

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKindMatchesWrappedAssemblerError(t *testing.T) {
	base := NewError(7, ErrorUnknownLabel, "nowhere", "undefined label %q", "nowhere")
	wrapped := fmt.Errorf("assemble: %w", base)

	assert.True(t, IsKind(wrapped, ErrorUnknownLabel))
	assert.False(t, IsKind(wrapped, ErrorUnknownInstruction))
	assert.False(t, IsKind(errors.New("unrelated"), ErrorUnknownLabel))
}

func TestWarningListAddAccumulatesFormattedMessages(t *testing.T) {
	wl := &WarningList{}
	wl.Add(3, "%q directive is not emitted", ".float")
	wl.Add(9, "register %s may be clobbered", "$1")

	require := assert.New(t)
	require.Len(wl.Warnings, 2)
	require.Equal(3, wl.Warnings[0].Line)
	require.Equal(`".float" directive is not emitted`, wl.Warnings[0].Message)
	require.Equal("line 9: warning: register $1 may be clobbered", wl.Warnings[1].String())
}
