//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"io"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
)

// RenderBags prints the tracked baggage, one bag and its route after another.
func RenderBags(w io.Writer, bags []*domain.Bag) {
	_, _ = fmt.Fprintln(w, "All tracked baggage:")

	for _, b := range bags {
		renderBag(w, "  ", b)
	}
}

// RenderBag prints a single bag followed by its route.
func RenderBag(w io.Writer, b *domain.Bag) {
	renderBag(w, "", b)
}

func renderBag(w io.Writer, indent string, b *domain.Bag) {
	_, _ = fmt.Fprintf(w, "%s%s\n", indent, b)

	for _, cp := range b.Route {
		_, _ = fmt.Fprintf(w, "%s  %s\n", indent, cp)
	}
}

// RenderClaims prints one line per claim, with the payout once settled.
func RenderClaims(w io.Writer, title string, claims []*domain.Claim) {
	_, _ = fmt.Fprintln(w, title)

	for _, c := range claims {
		if c.Status == domain.ClaimStatusSettled {
			_, _ = fmt.Fprintf(w, "  %s | Payout:$%.2f\n", c, c.Payout)

			continue
		}

		_, _ = fmt.Fprintf(w, "  %s\n", c)
	}
}

// RenderSettlements prints the settlements of one processing pass.
func RenderSettlements(w io.Writer, settlements []domain.Settlement) {
	if len(settlements) == 0 {
		_, _ = fmt.Fprintln(w, "No open claims to settle.")

		return
	}

	for _, s := range settlements {
		_, _ = fmt.Fprintf(w, "%s claim %s settled at %s $%.2f\n", s.Kind, s.ClaimID, s.Policy, s.Payout)
	}
}
