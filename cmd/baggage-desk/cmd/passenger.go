package cmd

import (
	"github.com/spf13/cobra"

	api "github.com/oshokin/baggage-desk/internal/api/grpc/baggage"
	"github.com/oshokin/baggage-desk/internal/service/desk"
)

// newPassengerCommand builds `passenger register|contact|locate`.
func newPassengerCommand() *cobra.Command {
	passengerCmd := &cobra.Command{
		Use:   "passenger",
		Short: "Manage passengers.",
	}

	var req api.RegisterPassengerRequest

	registerCmd := &cobra.Command{
		Use:   "register <passenger-id> <name>",
		Short: "Register a passenger.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ID, req.Name = args[0], args[1]

			return runAction(cmd, desk.RegisterPassenger(&req))
		},
	}
	registerCmd.Flags().StringVarP(&req.FlightNo, "flight", "f", "", "flight number")
	registerCmd.Flags().StringVar(&req.Contact, "contact", "", "e-mail or phone")

	contactCmd := &cobra.Command{
		Use:   "contact <passenger-id> <contact>",
		Short: "Update a passenger's contact.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, desk.UpdateContact(args[0], args[1]))
		},
	}

	locateCmd := &cobra.Command{
		Use:   "locate <passenger-id>",
		Short: "Show a passenger profile.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, desk.LocatePassenger(args[0]))
		},
	}

	passengerCmd.AddCommand(registerCmd, contactCmd, locateCmd)

	return passengerCmd
}
