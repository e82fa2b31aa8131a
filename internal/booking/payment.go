package booking

import "errors"

// PaymentMethod is how a booking is settled. The zero value means no method
// has been chosen yet.
type PaymentMethod string

const (
	// MethodRazorpay pays the full amount through the payment gateway.
	MethodRazorpay PaymentMethod = "razorpay"
	// MethodPlayCoins settles the full amount from the wallet.
	MethodPlayCoins PaymentMethod = "playcoins"
	// MethodBoth drains the wallet and pays the remainder by gateway.
	MethodBoth PaymentMethod = "both"
)

var (
	// ErrNoPaymentMethod is returned when a payment is attempted before a
	// method was chosen. The message is shown to the user verbatim.
	ErrNoPaymentMethod = errors.New("Please Select Payment Method")
	// ErrMethodNotEligible is returned when the chosen method is not
	// available for the current wallet balance and price.
	ErrMethodNotEligible = errors.New("selected payment method is not available")
)

// PaymentOptions lists which methods can be offered for a given total and
// wallet balance.
type PaymentOptions struct {
	Razorpay  bool `json:"razorpay"`
	PlayCoins bool `json:"playcoins"`
	Both      bool `json:"both"`
}

// EligibleMethods derives the selectable payment methods. The gateway is
// always available. Wallet-only requires the balance to cover the full
// price; the mixed method applies only when it does not. At exact equality
// the wallet wins: playcoins is eligible and both is not.
func EligibleMethods(total, wallet int64) PaymentOptions {
	return PaymentOptions{
		Razorpay:  true,
		PlayCoins: wallet >= total,
		Both:      wallet < total,
	}
}

// Allows reports whether the given method may be selected.
func (o PaymentOptions) Allows(m PaymentMethod) bool {
	switch m {
	case MethodRazorpay:
		return o.Razorpay
	case MethodPlayCoins:
		return o.PlayCoins
	case MethodBoth:
		return o.Both
	}
	return false
}

// Payable computes the amount still owed through the gateway after the
// wallet offset. It must be recomputed whenever the method or the wallet
// balance changes; callers should never cache it.
func Payable(total, wallet int64, m PaymentMethod) (int64, error) {
	switch m {
	case MethodRazorpay:
		return total, nil
	case MethodPlayCoins:
		return 0, nil
	case MethodBoth:
		if remainder := total - wallet; remainder > 0 {
			return remainder, nil
		}
		return 0, nil
	case "":
		return 0, ErrNoPaymentMethod
	}
	return 0, ErrMethodNotEligible
}
