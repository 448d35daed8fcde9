package checkout

import (
	"regexp"
	"strings"

	"github.com/NailaFatima/stylehub-go/models"
)

// FieldErrors maps a form field to its validation message. An empty map
// means the form passed.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateCustomerInfo checks the shipping form: every field present,
// email matching a simple pattern.
func ValidateCustomerInfo(info models.CustomerInfo) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(info.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(info.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(info.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(info.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(info.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(info.ZipCode) == "" {
		errs["zipCode"] = "ZIP code is required"
	}
	return errs
}

// PaymentMethod selects one of the three payment branches.
type PaymentMethod string

const (
	MethodCard       PaymentMethod = "card"
	MethodUPI        PaymentMethod = "upi"
	MethodNetBanking PaymentMethod = "netbanking"
)

// Label is the human-readable method name recorded on the order.
func (m PaymentMethod) Label() string {
	switch m {
	case MethodCard:
		return "Credit Card"
	case MethodUPI:
		return "UPI"
	case MethodNetBanking:
		return "Net Banking"
	}
	return string(m)
}

// PaymentInfo carries the fields of whichever method branch was chosen.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
	CardName   string `json:"cardName"`
	UPIID      string `json:"upiId"`
	BankName   string `json:"bankName"`
}

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// ValidatePayment checks the branch selected by method. The branches are
// mutually exclusive; fields of other branches are ignored.
func ValidatePayment(method PaymentMethod, info PaymentInfo) FieldErrors {
	switch method {
	case MethodCard:
		return validateCard(info)
	case MethodUPI:
		return validateUPI(info)
	case MethodNetBanking:
		return validateNetBanking(info)
	}
	return FieldErrors{"method": "Unknown payment method"}
}

func validateCard(info PaymentInfo) FieldErrors {
	errs := FieldErrors{}
	digits := strings.ReplaceAll(info.CardNumber, " ", "")
	if digits == "" {
		errs["cardNumber"] = "Card number is required"
	} else if len(digits) < 16 {
		errs["cardNumber"] = "Card number must be 16 digits"
	}
	if info.ExpiryDate == "" {
		errs["expiryDate"] = "Expiry date is required"
	} else if !expiryPattern.MatchString(info.ExpiryDate) {
		errs["expiryDate"] = "Invalid expiry date format"
	}
	if info.CVV == "" {
		errs["cvv"] = "CVV is required"
	} else if len(info.CVV) < 3 {
		errs["cvv"] = "CVV must be 3 digits"
	}
	if strings.TrimSpace(info.CardName) == "" {
		errs["cardName"] = "Cardholder name is required"
	}
	return errs
}

func validateUPI(info PaymentInfo) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(info.UPIID) == "" {
		errs["upiId"] = "UPI ID is required"
	} else if !strings.Contains(info.UPIID, "@") {
		errs["upiId"] = "Invalid UPI ID format"
	}
	return errs
}

func validateNetBanking(info PaymentInfo) FieldErrors {
	errs := FieldErrors{}
	if info.BankName == "" {
		errs["bankName"] = "Please select a bank"
	}
	return errs
}
