package orders

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
)

const messagingBase = "https://wa.me"

// LineItem is one row of an order hand-off message.
type LineItem struct {
	Name      string
	Brand     string
	Model     string
	Year      int
	Qty       int
	UnitPrice int64
}

// Handoff formats order/inquiry messages and builds the outbound messaging
// deep link. Opening the link is the client's side effect; this type only
// constructs it.
type Handoff struct {
	destination string
}

// NewHandoff keeps the configured destination identifier. Non-digit
// characters are stripped at link time, so phone-shaped values like
// "+234 916..." are fine.
func NewHandoff(destination string) *Handoff {
	return &Handoff{destination: destination}
}

// OrderMessage renders the multi-line cart order text.
func (h *Handoff) OrderMessage(items []LineItem) (string, error) {
	if len(items) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "order needs at least one item")
	}

	var b strings.Builder
	b.WriteString("Hello, I'd like to place an order:\n\n")

	var total int64
	for _, it := range items {
		b.WriteString(fmt.Sprintf("• %s — %s × %d — ₦%s each\n",
			it.Name, describeFit(it), it.Qty, humanize.Comma(it.UnitPrice)))
		total += it.UnitPrice * int64(it.Qty)
	}

	b.WriteString(fmt.Sprintf("\nTotal: ₦%s\n\nPlease confirm availability and delivery.", humanize.Comma(total)))
	return b.String(), nil
}

// QuickMessage renders the single-item quick-order text.
func (h *Handoff) QuickMessage(item LineItem) string {
	return fmt.Sprintf("Hello, I'd like a quick order:\n• %s — %s\nPrice: ₦%s\nPlease confirm availability and delivery.",
		item.Name, describeFit(item), humanize.Comma(item.UnitPrice))
}

// InquiryMessage renders the availability question used by the search page.
func (h *Handoff) InquiryMessage(name string, partID int) string {
	return fmt.Sprintf("Hello, I'm interested in %q (ID: %d). Do you have it available?", name, partID)
}

// Link percent-encodes the message into the messaging deep link. An empty
// destination still yields a shareable link without a recipient.
func (h *Handoff) Link(message string) string {
	encoded := url.QueryEscape(message)
	// match encodeURIComponent-style escapes: spaces as %20, not +
	encoded = strings.ReplaceAll(encoded, "+", "%20")

	digits := keepDigits(h.destination)
	if digits == "" {
		return fmt.Sprintf("%s/?text=%s", messagingBase, encoded)
	}
	return fmt.Sprintf("%s/%s?text=%s", messagingBase, digits, encoded)
}

func describeFit(it LineItem) string {
	fit := strings.TrimSpace(it.Brand + " " + it.Model)
	if it.Year != 0 {
		if fit != "" {
			fit += " "
		}
		fit += fmt.Sprintf("(%d)", it.Year)
	}
	return fit
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
