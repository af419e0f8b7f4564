package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "hello", expected: "hello"},
		{name: "space", input: "Jane Doe", expected: "Jane%20Doe"},
		{name: "plus is escaped", input: "a+b", expected: "a%2Bb"},
		{name: "reserved characters", input: "a&b?c=d%e", expected: "a%26b%3Fc%3Dd%25e"},
		{name: "unreserved marks", input: "Hi! (it's *here*)", expected: "Hi!%20(it's%20*here*)"},
		{name: "newline", input: "line1\nline2", expected: "line1%0Aline2"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeComponent(tt.input))
		})
	}
}

func TestBuildMailtoURI(t *testing.T) {
	uri := BuildMailtoURI("info@example.org", "Hi there", "Line one\nLine two")
	assert.Equal(t, "mailto:info@example.org?subject=Hi%20there&body=Line%20one%0ALine%20two", uri)
}

func TestMailtoRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
	}{
		{name: "simple", subject: "Hello", body: "World"},
		{name: "ampersand and question mark", subject: "Q&A?", body: "a=1&b=2?c"},
		{name: "percent", subject: "100% sure", body: "%20 is not a space here"},
		{name: "newlines", subject: "multi", body: "first\n\nsecond\r\nthird"},
		{name: "plus signs", subject: "1+1", body: "+255 XXX XXX XXX"},
		{name: "unicode", subject: "Donation Inquiry — Peace Building Initiative", body: "Asante sana ✓"},
		{name: "hash and semicolon", subject: "#contact", body: "a;b#c"},
		{name: "empty", subject: "", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uri := BuildMailtoURI("info@example.org", tt.subject, tt.body)
			msg, err := ParseMailtoURI(uri)
			require.NoError(t, err)
			assert.Equal(t, "info@example.org", msg.To)
			assert.Equal(t, tt.subject, msg.Subject)
			assert.Equal(t, tt.body, msg.Body)
		})
	}
}

func TestParseMailtoURIErrors(t *testing.T) {
	_, err := ParseMailtoURI("https://example.org")
	assert.Error(t, err)

	_, err = ParseMailtoURI("mailto:info@example.org?body=%zz")
	assert.Error(t, err)
}
