package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTwoDigits(t *testing.T) {
	f := New(language.English)
	assert.Equal(t, "00", f.Format(0))
	assert.Equal(t, "07", f.Format(7))
	assert.Equal(t, "59", f.Format(59))
	assert.Equal(t, "23", Default.Format(23))
}

func TestFunc(t *testing.T) {
	f := Func(func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, "c", f.Format(2))
}
