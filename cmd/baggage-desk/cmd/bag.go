package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/service/desk"
)

// newBagCommand builds `bag register|move|status|locate|list`.
func newBagCommand() *cobra.Command {
	bagCmd := &cobra.Command{
		Use:   "bag",
		Short: "Track bags.",
	}

	registerCmd := &cobra.Command{
		Use:   "register <tag> <weight-kg> <owner-id>",
		Short: "Register a checked-in bag.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse weight %q: %w", args[1], err)
			}

			return runAction(cmd, desk.RegisterBag(&api.RegisterBagRequest{
				Tag:     args[0],
				Weight:  weight,
				OwnerID: args[2],
			}))
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move <tag> <checkpoint-id> [checkpoint-name]",
		Short: "Record a checkpoint scan; the bag goes in transit.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &api.UpdateMovementRequest{
				Tag:          args[0],
				CheckpointID: args[1],
			}

			if len(args) > 2 {
				req.CheckpointName = args[2]
			}

			return runAction(cmd, desk.Move(req))
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status <tag> <status>",
		Short: "Set a bag status (CHECKED_IN, SECURITY_CLEARED, LOADED, IN_TRANSIT, ARRIVED, CLAIMED, LOST, DAMAGED).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, desk.SetStatus(args[0], args[1]))
		},
	}

	locateCmd := &cobra.Command{
		Use:   "locate <tag>",
		Short: "Show a bag and its route.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, desk.Locate(args[0]))
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every tracked bag.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAction(cmd, desk.ListBags())
		},
	}

	bagCmd.AddCommand(registerCmd, moveCmd, statusCmd, locateCmd, listCmd)

	return bagCmd
}
