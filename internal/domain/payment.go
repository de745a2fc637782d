package domain

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod is a closed set of payment variants. Card is the only
// variant carrying data, so the JSON form is a small tagged envelope.
type PaymentMethod struct {
	kind     paymentKind
	lastFour string
}

type paymentKind string

const (
	paymentJazzCash  paymentKind = "jazzcash"
	paymentEasyPaisa paymentKind = "easypaisa"
	paymentCard      paymentKind = "card"
	paymentWallet    paymentKind = "wallet"
)

func PaymentJazzCash() PaymentMethod  { return PaymentMethod{kind: paymentJazzCash} }
func PaymentEasyPaisa() PaymentMethod { return PaymentMethod{kind: paymentEasyPaisa} }
func PaymentWallet() PaymentMethod    { return PaymentMethod{kind: paymentWallet} }

func PaymentCard(lastFour string) PaymentMethod {
	return PaymentMethod{kind: paymentCard, lastFour: lastFour}
}

// CardLastFour returns the card suffix and whether this is a card payment.
func (p PaymentMethod) CardLastFour() (string, bool) {
	return p.lastFour, p.kind == paymentCard
}

func (p PaymentMethod) String() string {
	switch p.kind {
	case paymentJazzCash:
		return "JazzCash"
	case paymentEasyPaisa:
		return "EasyPaisa"
	case paymentCard:
		return fmt.Sprintf("Card ending %s", p.lastFour)
	case paymentWallet:
		return "Wallet"
	}
	return "unknown"
}

type paymentJSON struct {
	Type     paymentKind `json:"type"`
	LastFour string      `json:"lastFour,omitempty"`
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(paymentJSON{Type: p.kind, LastFour: p.lastFour})
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var raw paymentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	switch raw.Type {
	case paymentJazzCash, paymentEasyPaisa, paymentWallet:
		*p = PaymentMethod{kind: raw.Type}
	case paymentCard:
		*p = PaymentMethod{kind: paymentCard, lastFour: raw.LastFour}
	default:
		return fmt.Errorf("payment method[%s] is not valid", raw.Type)
	}

	return nil
}
