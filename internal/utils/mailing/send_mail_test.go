package mailing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerDisabledWithoutHost(t *testing.T) {
	m := NewMailer(MailConfig{})

	assert.False(t, m.Enabled())
	require.NoError(t, m.SendMail("someone@example.com", "subject", "body"))
}

func TestMailerRejectsBadPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPPort: "not-a-port"})

	assert.True(t, m.Enabled())
	assert.Error(t, m.SendMail("someone@example.com", "subject", "body"))
}
