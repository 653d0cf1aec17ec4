package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/brewery/pkg/ptr"
)

func TestValueOr(t *testing.T) {
	assert.Equal(t, 7, ptr.ValueOr(ptr.New(7), 3))
	assert.Equal(t, 3, ptr.ValueOr[int](nil, 3))
	assert.Equal(t, "", ptr.ValueOr(ptr.New(""), "fallback"))
}
