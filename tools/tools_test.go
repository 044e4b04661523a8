package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordIsSaltedWithEmail(t *testing.T) {
	a := HashPassword("ana@exemplo.com", "segredo123")
	b := HashPassword("bia@exemplo.com", "segredo123")

	assert.Len(t, a, 128)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, HashPassword("ana@exemplo.com", "segredo123"))
}

func TestRandomIntStaysInRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := RandomInt(1, 4)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 4)
		seen[n] = true
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, 3, RandomInt(3, 3))
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"(11) 98765-4321":   "11987654321",
		"+55 11 98765-4321": "11987654321",
		"011 3333-4444":     "1133334444",
		"  21 2222 3333  ":  "2122223333",
		"":                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePhone(in), in)
	}
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("529.982.247-25"))
	assert.True(t, ValidCPF("52998224725"))
	assert.True(t, ValidCPF("111.444.777-35"))

	assert.False(t, ValidCPF("529.982.247-24"))
	assert.False(t, ValidCPF("111.111.111-11"))
	assert.False(t, ValidCPF("1234"))
	assert.False(t, ValidCPF(""))
}
