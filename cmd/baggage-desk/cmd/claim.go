package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/service/desk"
)

// newClaimCommand builds `claim raise|locate|process|list`.
func newClaimCommand() *cobra.Command {
	claimCmd := &cobra.Command{
		Use:   "claim",
		Short: "Raise and settle claims.",
	}

	raiseCmd := &cobra.Command{
		Use:   "raise <loss|damage> <passenger-id> <tag> <amount>",
		Short: "Raise a loss or damage claim.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("parse amount %q: %w", args[3], err)
			}

			return runAction(cmd, desk.RaiseClaim(&api.RaiseClaimRequest{
				Kind:        args[0],
				PassengerID: args[1],
				BagTag:      args[2],
				Amount:      amount,
			}))
		},
	}

	locateCmd := &cobra.Command{
		Use:   "locate <claim-id>",
		Short: "Show one claim.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, desk.LocateClaim(args[0]))
		},
	}

	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Settle every open claim.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, desk.ProcessClaims())
		},
	}

	var passengerID string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List claims in raise order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, desk.ListClaims(passengerID))
		},
	}
	listCmd.Flags().StringVarP(&passengerID, "passenger", "p", "", "only list claims of this passenger")

	claimCmd.AddCommand(raiseCmd, locateCmd, processCmd, listCmd)

	return claimCmd
}
