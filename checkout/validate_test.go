package checkout

import (
	"testing"

	"github.com/NailaFatima/stylehub-go/models"
	"github.com/stretchr/testify/assert"
)

func validInfo() models.CustomerInfo {
	return models.CustomerInfo{
		Name:    "John Doe",
		Email:   "john.doe@email.com",
		Phone:   "+1-555-0123",
		Address: "123 Main St",
		City:    "New York",
		ZipCode: "10001",
	}
}

func TestValidateCustomerInfoPasses(t *testing.T) {
	assert.Empty(t, ValidateCustomerInfo(validInfo()))
}

func TestValidateCustomerInfoCollectsAllMissingFields(t *testing.T) {
	errs := ValidateCustomerInfo(models.CustomerInfo{})

	assert.Len(t, errs, 6)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "ZIP code is required", errs["zipCode"])
}

func TestValidateCustomerInfoEmailPattern(t *testing.T) {
	info := validInfo()
	info.Email = "not-an-email"

	errs := ValidateCustomerInfo(info)

	assert.Equal(t, "Email is invalid", errs["email"])
	assert.Len(t, errs, 1)
}

func TestValidateCardPayment(t *testing.T) {
	good := PaymentInfo{
		CardNumber: "4111 1111 1111 1111",
		ExpiryDate: "12/27",
		CVV:        "123",
		CardName:   "John Doe",
	}
	assert.Empty(t, ValidatePayment(MethodCard, good))

	short := good
	short.CardNumber = "4111 1111"
	errs := ValidatePayment(MethodCard, short)
	assert.Equal(t, "Card number must be 16 digits", errs["cardNumber"])

	badExpiry := good
	badExpiry.ExpiryDate = "2027-12"
	errs = ValidatePayment(MethodCard, badExpiry)
	assert.Equal(t, "Invalid expiry date format", errs["expiryDate"])

	badCVV := good
	badCVV.CVV = "12"
	errs = ValidatePayment(MethodCard, badCVV)
	assert.Equal(t, "CVV must be 3 digits", errs["cvv"])

	errs = ValidatePayment(MethodCard, PaymentInfo{})
	assert.Len(t, errs, 4)
}

func TestValidateUPIPayment(t *testing.T) {
	assert.Empty(t, ValidatePayment(MethodUPI, PaymentInfo{UPIID: "john@okbank"}))

	errs := ValidatePayment(MethodUPI, PaymentInfo{UPIID: "johnokbank"})
	assert.Equal(t, "Invalid UPI ID format", errs["upiId"])

	errs = ValidatePayment(MethodUPI, PaymentInfo{})
	assert.Equal(t, "UPI ID is required", errs["upiId"])
}

func TestValidateNetBanking(t *testing.T) {
	assert.Empty(t, ValidatePayment(MethodNetBanking, PaymentInfo{BankName: "HDFC"}))

	errs := ValidatePayment(MethodNetBanking, PaymentInfo{})
	assert.Equal(t, "Please select a bank", errs["bankName"])
}

func TestValidateBranchesAreExclusive(t *testing.T) {
	// A UPI payment ignores missing card fields entirely.
	errs := ValidatePayment(MethodUPI, PaymentInfo{UPIID: "john@okbank"})
	assert.Empty(t, errs)

	errs = ValidatePayment(PaymentMethod("wallet"), PaymentInfo{})
	assert.Contains(t, errs, "method")
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Credit Card", MethodCard.Label())
	assert.Equal(t, "UPI", MethodUPI.Label())
	assert.Equal(t, "Net Banking", MethodNetBanking.Label())
}
