package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"맥스 사이즈 알려줘?", "맥스사이즈알려줘"},
		{"  HELLO World!  ", "helloworld"},
		{"세탁은 어떻게 하나요？", "세탁은어떻게하나요"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestNormalizeSentence(t *testing.T) {
	assert.Equal(t, "재고 없어요", NormalizeSentence(" 재고 없나요? "))
	assert.Equal(t, "배송 언제 와요", NormalizeSentence("배송 언제 와요?!"))
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"맥스", "사이즈"}, Keywords("맥스 사이즈"))
	assert.Nil(t, Keywords("아 아"), "single-rune tokens are dropped")
	assert.Equal(t, []string{"hello"}, Keywords("HELLO"))
}

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "20240101-0000001", OrderNumber("주문 20240101-0000001 조회"))
	assert.Equal(t, "", OrderNumber("주문번호 없음"))
	assert.True(t, ContainsOrderNumber("20240101-0000001"))
	assert.False(t, ContainsOrderNumber("2024-01-01"))
}

func TestIsLoggedIn(t *testing.T) {
	assert.True(t, IsLoggedIn("hong"))
	assert.False(t, IsLoggedIn(""))
	assert.False(t, IsLoggedIn("null"))
	assert.False(t, IsLoggedIn("undefined"))
	assert.False(t, IsLoggedIn("  "))
}
