package to_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GeneralEmbeddedCLibraries/fsm/fsmcore/to"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "hello", to.Coalesce("", "", "hello", "", "world"))

	empty := struct{ Some string }{""}
	v := struct{ Some string }{"Values"}
	assert.Equal(t, v, to.Coalesce(empty, v))

	assert.Equal(t, 123, *to.Coalesce(nil, to.Ptr(123), nil, to.Ptr(456)))

	assert.Empty(t, to.Coalesce[string]())
	assert.Empty(t, to.Coalesce[string]("", ""))
	assert.Nil(t, to.Coalesce[*int]())
	assert.Nil(t, to.Coalesce[*int](nil, nil))
}

func TestCoalesceFunc(t *testing.T) {
	assert.Equal(t, "fallback", to.CoalesceFunc(
		nil,
		func() string { return "" },
		func() string { return "fallback" },
		func() string { return "unreached" },
	))
	assert.Empty(t, to.CoalesceFunc[string]())
}
