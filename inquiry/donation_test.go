package inquiry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationSubmitEndToEnd(t *testing.T) {
	form := NewDonationForm(DonationFormValues{})
	require.NoError(t, form.Set(FieldName, "Jane Doe"))
	require.NoError(t, form.Set(FieldEmail, "jane@example.org"))
	require.NoError(t, form.Set(FieldAmount, "$50"))
	require.NoError(t, form.Set(FieldMessage, ""))

	uri, err := form.Submit(testRecipient)
	require.NoError(t, err)

	msg, err := ParseMailtoURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "Donation Inquiry — Peace Building Initiative", msg.Subject)
	assert.Equal(t,
		"DONATION INQUIRY\n\nName: Jane Doe\nEmail: jane@example.org\nIntended Amount: $50\n\nMessage:\nNo additional message\n\n---\nPlease respond with donation details and payment options.",
		msg.Body)
	assert.Equal(t, DonationFormValues{}, form.Values())
}

func TestDonationBodyPlaceholders(t *testing.T) {
	tests := []struct {
		name        string
		values      DonationFormValues
		contains    []string
		notContains []string
	}{
		{
			name:     "no amount",
			values:   DonationFormValues{Name: "Jane", Email: "jane@example.org", Message: "Happy to help"},
			contains: []string{"Intended Amount: Not specified\n", "Message:\nHappy to help\n"},
		},
		{
			name:        "no message",
			values:      DonationFormValues{Name: "Jane", Email: "jane@example.org", Amount: "$100"},
			contains:    []string{"Intended Amount: $100\n", "Message:\nNo additional message\n"},
			notContains: []string{AmountNotSpecified},
		},
		{
			name:     "custom amount",
			values:   DonationFormValues{Name: "Jane", Email: "jane@example.org", Amount: CustomAmount, CustomAmount: " $75 "},
			contains: []string{"Intended Amount: $75\n"},
		},
		{
			name:     "custom amount left blank",
			values:   DonationFormValues{Name: "Jane", Email: "jane@example.org", Amount: CustomAmount},
			contains: []string{"Intended Amount: Not specified\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri, err := NewDonationForm(tt.values).Submit(testRecipient)
			require.NoError(t, err)
			msg, err := ParseMailtoURI(uri)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, msg.Body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, msg.Body, s)
			}
		})
	}
}

func TestDonationValidation(t *testing.T) {
	tests := []struct {
		name   string
		values DonationFormValues
		field  string
	}{
		{name: "missing name", values: DonationFormValues{Email: "jane@example.org"}, field: FieldName},
		{name: "missing email", values: DonationFormValues{Name: "Jane"}, field: FieldEmail},
		{name: "unknown amount", values: DonationFormValues{Name: "Jane", Email: "jane@example.org", Amount: "$1"}, field: FieldAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewDonationForm(tt.values)
			_, err := form.Submit(testRecipient)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.Equal(t, tt.values, form.Values())
		})
	}
}

func TestAmountOptions(t *testing.T) {
	for _, opt := range AmountOptions {
		assert.True(t, isAmountOption(opt.Value), opt.Value)
	}
	assert.True(t, isAmountOption(""))
	assert.False(t, isAmountOption("$5"))
}
