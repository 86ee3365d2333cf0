package jsonextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"prose around", "Sure! Here you go:\n{\"subject\":\"Hi\"}\nEnjoy.", `{"subject":"Hi"}`},
		{"fenced", "```json\n{\"message\":\"Hey\"}\n```", `{"message":"Hey"}`},
		{"nested", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
		{"brace in string", `{"body":"use } and { freely"}`, `{"body":"use } and { freely"}`},
		{"escaped quote", `{"body":"say \"}\" now"} trailing }`, `{"body":"say \"}\" now"}`},
		{"first of two", `{"a":1} and {"b":2}`, `{"a":1}`},
		{"skips invalid candidate", `{not json} {"ok":true}`, `{"ok":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstObject(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstObjectNotFound(t *testing.T) {
	for _, in := range []string{"", "no json here", "{unclosed", `{"a": "}`, "}{"} {
		_, err := FirstObject(in)
		assert.ErrorIs(t, err, ErrNoObject, "input %q", in)
	}
}

func TestFieldReaders(t *testing.T) {
	obj := `{"subject":"Hello","email_count":4,"sms_count":"2","key_objectives":["engagement","conversion"]}`

	assert.Equal(t, "Hello", String(obj, "subject"))
	assert.Equal(t, "", String(obj, "missing"))

	n, ok := Int(obj, "email_count")
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = Int(obj, "sms_count")
	assert.False(t, ok, "quoted numbers are not numbers")

	assert.Equal(t, []string{"engagement", "conversion"}, Strings(obj, "key_objectives"))
	assert.Nil(t, Strings(obj, "subject"))
}
