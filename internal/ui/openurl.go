package ui

import (
	"fmt"
	"net/url"
)

// OpenURL hands url to the system handler (browser, mail client).
func OpenURL(u string) error {
	if err := openURLCommand(u).Start(); err != nil {
		return fmt.Errorf("open %s: %w", u, err)
	}
	return nil
}

// MailtoURL builds a mailto: link with an optional subject.
func MailtoURL(address, subject string) string {
	u := url.URL{Scheme: "mailto", Opaque: address}
	if subject != "" {
		u.RawQuery = "subject=" + url.PathEscape(subject)
	}
	return u.String()
}
