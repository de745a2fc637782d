package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/storefront-core/internal/domain"
)

func TestPaymentMethodJSON(t *testing.T) {
	tests := []struct {
		name     string
		method   domain.PaymentMethod
		wantJSON string
	}{
		{"jazzcash", domain.PaymentJazzCash(), `{"type":"jazzcash"}`},
		{"easypaisa", domain.PaymentEasyPaisa(), `{"type":"easypaisa"}`},
		{"wallet", domain.PaymentWallet(), `{"type":"wallet"}`},
		{"card keeps last four", domain.PaymentCard("4242"), `{"type":"card","lastFour":"4242"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.method)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))

			var decoded domain.PaymentMethod
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.method.String(), decoded.String())
		})
	}
}

func TestPaymentMethodRejectsOpenStrings(t *testing.T) {
	var decoded domain.PaymentMethod

	err := json.Unmarshal([]byte(`{"type":"cash-on-delivery"}`), &decoded)
	require.Error(t, err, "payment methods are a closed set, not an open string union")
}

func TestPaymentCardLastFour(t *testing.T) {
	lastFour, ok := domain.PaymentCard("1881").CardLastFour()
	assert.True(t, ok)
	assert.Equal(t, "1881", lastFour)

	_, ok = domain.PaymentWallet().CardLastFour()
	assert.False(t, ok)
}
