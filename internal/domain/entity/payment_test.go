package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "4111111111111111", want: "************1111"},
		{name: "dashes", in: "4111-1111-1111-1234", want: "************1234"},
		{name: "trailing star", in: "4111111111111111*", want: "************1111"},
		{name: "star among digits", in: "4111 1111 1111 *111", want: "***********1111"},
		{name: "leading star then full number", in: "*4111111111111111", want: "************1111"},
		{name: "already masked", in: "************1111", want: "************1111"},
		{name: "masked short tail", in: "****12", want: "****12"},
		{name: "four digits", in: "1234", want: "1234"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskCardNumber(tt.in))
		})
	}
}

func TestNewCardPayment_MasksNumber(t *testing.T) {
	p := NewCardPayment("CUS01", "EV001", "PKG001", 120, CardDetails{CardNumber: "4111111111111111*"})

	assert.Equal(t, PaymentKindCard, p.Kind)
	assert.Equal(t, "************1111", p.Card.CardNumber)
	assert.Nil(t, p.Portal)
}
