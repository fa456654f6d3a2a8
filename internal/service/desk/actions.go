package desk

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/repository/report"
	"github.com/oshokin/baggage-desk/internal/service/common"
)

// RegisterPassenger registers a passenger and prints the profile.
func RegisterPassenger(req *api.RegisterPassengerRequest) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		p, err := client.RegisterPassenger(ctx, req)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, p)

		return err
	}
}

// UpdateContact changes a passenger's contact and prints the profile.
func UpdateContact(passengerID, contact string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		p, err := client.UpdateContact(ctx, passengerID, contact)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, p)

		return err
	}
}

// LocatePassenger prints a passenger profile with its claim ids.
func LocatePassenger(passengerID string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		p, err := client.LocatePassenger(ctx, passengerID)
		if err != nil {
			return err
		}

		if _, err = fmt.Fprintln(out, p); err != nil {
			return err
		}

		if len(p.ClaimIDs) > 0 {
			_, err = fmt.Fprintf(out, "Claims: %s\n", strings.Join(p.ClaimIDs, ", "))
		}

		return err
	}
}

// RegisterBag registers a bag and prints it.
func RegisterBag(req *api.RegisterBagRequest) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		b, err := client.RegisterBag(ctx, req)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, b)

		return err
	}
}

// Move records a checkpoint movement and prints the bag.
func Move(req *api.UpdateMovementRequest) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		b, err := client.UpdateMovement(ctx, req)
		if err != nil {
			return err
		}

		cp, _ := b.LastCheckpoint()
		_, err = fmt.Fprintf(out, "Bag %s moved through %s\n", b.Tag, cp)

		return err
	}
}

// SetStatus overwrites a bag status and prints the bag.
func SetStatus(tag, status string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		b, err := client.SetBagStatus(ctx, tag, status)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Bag %s status updated to %s\n", b.Tag, b.Status)

		return err
	}
}

// Locate prints a bag and its route.
func Locate(tag string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		b, err := client.LocateBag(ctx, tag)
		if err != nil {
			return err
		}

		common.RenderBag(out, b)

		return nil
	}
}

// ListBags prints every bag.
func ListBags() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		bags, err := client.ListBags(ctx)
		if err != nil {
			return err
		}

		common.RenderBags(out, bags)

		return nil
	}
}

// RaiseClaim raises a claim and prints its id.
func RaiseClaim(req *api.RaiseClaimRequest) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		c, err := client.RaiseClaim(ctx, req)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "Raised %s claim: %s for passenger %s\n", c.Kind, c.ID, c.PassengerID)

		return err
	}
}

// LocateClaim prints one claim.
func LocateClaim(claimID string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		c, err := client.LocateClaim(ctx, claimID)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, c)

		return err
	}
}

// ProcessClaims settles open claims and prints the settlements.
func ProcessClaims() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		settlements, err := client.ProcessClaims(ctx)
		if err != nil {
			return err
		}

		common.RenderSettlements(out, settlements)

		return nil
	}
}

// ListClaims prints all claims, or those of one passenger when passengerID is set.
func ListClaims(passengerID string) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		claims, err := client.ListClaims(ctx, passengerID)
		if err != nil {
			return err
		}

		title := "All claims summary:"
		if passengerID != "" {
			title = fmt.Sprintf("Claims for %s:", passengerID)
		}

		common.RenderClaims(out, title, claims)

		return nil
	}
}

// Journal prints the registry events.
func Journal() Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		events, err := client.Journal(ctx)
		if err != nil {
			return err
		}

		for _, e := range events {
			_, err = fmt.Fprintf(out, "%s %-20s %s\n", e.OccurredAt.Format(time.RFC3339), e.Kind, e.Message)
			if err != nil {
				return err
			}
		}

		return nil
	}
}

// Report fetches a registry snapshot and saves it to repo.
func Report(repo report.Repository) Action {
	return func(ctx context.Context, client *common.Client, out io.Writer) error {
		snapshot, err := client.Snapshot(ctx)
		if err != nil {
			return err
		}

		if err = report.Write(ctx, repo, snapshot); err != nil {
			return err
		}

		_, err = fmt.Fprintf(
			out,
			"Report with %d bags and %d claims written to %s\n",
			len(snapshot.Bags),
			len(snapshot.Claims),
			repo.Path(),
		)

		return err
	}
}
