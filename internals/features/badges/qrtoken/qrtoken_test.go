package qrtoken

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParseValidateRoundTrip(t *testing.T) {
	codec := New("unit-test-secret")

	pairs := [][2]string{
		{"p1", "e1"},
		{"5f9c9f9e-0000-4000-8000-000000000001", "5f9c9f9e-0000-4000-8000-000000000002"},
		{"participant-with-dashes", "event-with-dashes"},
	}
	for _, pair := range pairs {
		token := codec.Encode(pair[0], pair[1])
		p, e, checksum, err := codec.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, pair[0], p)
		assert.Equal(t, pair[1], e)
		assert.True(t, codec.Validate(p, e, checksum), "token %q should validate", token)
	}
}

func TestChecksumIsShortAndOrderSensitive(t *testing.T) {
	codec := New("unit-test-secret")

	cs := codec.Checksum("alpha", "beta")
	assert.Len(t, cs, 6)
	assert.NotEqual(t, cs, codec.Checksum("beta", "alpha"))
}

func TestChecksumCollisions(t *testing.T) {
	codec := New("unit-test-secret")

	seen := map[string][2]string{}
	for i := 0; i < 50; i++ {
		for j := 0; j < 50; j++ {
			p := fmt.Sprintf("participant-%d", i)
			e := fmt.Sprintf("event-%d", j)
			cs := codec.Checksum(p, e)
			if prev, ok := seen[cs]; ok {
				t.Fatalf("checksum collision between %v and (%s,%s)", prev, p, e)
			}
			seen[cs] = [2]string{p, e}
		}
	}
}

func TestParseSegmentCount(t *testing.T) {
	codec := New("unit-test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "justonesegment"},
		{"two segments", "a|b"},
		{"four segments", "a|b|c|d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := codec.Parse(tt.token)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestValidateRejectsMutatedChecksum(t *testing.T) {
	codec := New("unit-test-secret")

	token := codec.Encode("p-77", "e-42")
	p, e, checksum, err := codec.Parse(token)
	require.NoError(t, err)

	for i := 0; i < len(checksum); i++ {
		mutated := []byte(checksum)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		assert.False(t, codec.Validate(p, e, string(mutated)),
			"mutation at position %d should invalidate", i)
	}
}

func TestValidateNeverPanicsOnGarbage(t *testing.T) {
	codec := New("unit-test-secret")

	assert.False(t, codec.Validate("", "", ""))
	assert.False(t, codec.Validate("p", "e", ""))
	assert.False(t, codec.Validate("p", "", "AAAAAA"))
	assert.False(t, codec.Validate("", "e", "AAAAAA"))
	assert.False(t, codec.Validate("p", "e", "toolongchecksum"))
	assert.False(t, codec.Validate("p", "e", strings.Repeat("!", 6)))
}

func TestDifferentSecretsDisagree(t *testing.T) {
	a := New("secret-a")
	b := New("secret-b")

	token := a.Encode("p", "e")
	p, e, checksum, err := b.Parse(token)
	require.NoError(t, err)
	assert.False(t, b.Validate(p, e, checksum))
}
