package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := New(KindAccount)
	b := New(KindAccount)

	assert.True(t, strings.HasPrefix(a, "acct-"))
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("acct-")+8)
}

func TestKind(t *testing.T) {
	kind, err := Kind("debt-12345678")
	require.NoError(t, err)
	assert.Equal(t, "debt", kind)
}

func TestKind_Invalid(t *testing.T) {
	for _, bad := range []string{"", "nodash", "-12345678"} {
		_, err := Kind(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
