package mailer

import (
	"fmt"

	"github.com/google/uuid"
)

// Mailer delivers the verification email. Sending is best effort: a
// returned error makes registration roll back the freshly created user.
type Mailer interface {
	SendVerification(to string, codeID uuid.UUID, code string) error
}

const verificationSubject = "Welcome to Books App"

// verificationBody renders the confirmation mail: a button, a fallback
// link carrying the code id and token, and an ignore-if-not-you note.
func verificationBody(domain string, codeID uuid.UUID, code string) string {
	link := fmt.Sprintf("%s/users/verify/?id=%s&code=%s", domain, codeID, code)

	return fmt.Sprintf(`<p>Welcome to Books App! Here you can find the whole range of books you are interested in</p>
<p>To confirm your email, click the button below:</p>
<div style="height: 60px; display: flex; justify-content: center; align-items: center;"><a href="%s"
        style="padding: 10px; background: #9dff1e; color: #000; text-decoration: none; border-radius: 8px;">Confirm</a>
</div>
<p>If the button does not work, use the link %s</p>
<p>If you did not create this account, just ignore this email</p>`, link, link)
}
