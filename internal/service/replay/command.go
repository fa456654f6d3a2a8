package replay

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/repository/report"
	"github.com/oshokin/baggage-desk/internal/service/common"
	"github.com/oshokin/baggage-desk/internal/service/registry"
)

// Options controls a replay run.
type Options struct {
	// ScenarioPath is the YAML scenario; empty replays DefaultScenario.
	ScenarioPath string
	// ReportFile, when set, receives the final registry report.
	ReportFile string
	// Quiet drops registry narration below warning level.
	Quiet bool
	// Out receives the summary; defaults to stdout.
	Out io.Writer
}

// Run replays the scenario and prints the summary.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "baggage-replay")

	if opts.Quiet {
		ctx = logger.ToContext(ctx, logger.FromContext(ctx).WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)))
	}

	scenario := DefaultScenario()

	if opts.ScenarioPath != "" {
		loaded, err := LoadScenario(opts.ScenarioPath)
		if err != nil {
			return err
		}

		scenario = loaded
	}

	reg := registry.New()

	if err := Apply(ctx, reg, scenario); err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if err := Summarize(ctx, reg, out); err != nil {
		return err
	}

	if opts.ReportFile == "" {
		return nil
	}

	if err := report.Write(ctx, report.NewFileRepository(opts.ReportFile), reg.Snapshot(ctx)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Apply runs every scenario step against the registry and stops at the first failure.
func Apply(ctx context.Context, reg *registry.Registry, scenario *Scenario) error {
	for _, p := range scenario.Passengers {
		if _, err := reg.RegisterPassenger(ctx, p.ID, p.Name, p.FlightNo, p.Contact); err != nil {
			return err
		}
	}

	for _, b := range scenario.Bags {
		if _, err := reg.RegisterBag(ctx, b.Tag, b.Weight, b.Owner); err != nil {
			return err
		}
	}

	for _, m := range scenario.Movements {
		if err := applyMovement(ctx, reg, m); err != nil {
			return err
		}
	}

	for _, s := range scenario.Statuses {
		status, err := domain.ParseBagStatus(s.Status)
		if err != nil {
			return fmt.Errorf("status of %q: %w", s.Bag, err)
		}

		if _, err = reg.SetBagStatus(ctx, s.Bag, status); err != nil {
			return err
		}
	}

	for i, c := range scenario.Claims {
		kind, err := domain.ParseClaimKind(c.Kind)
		if err != nil {
			return fmt.Errorf("claim #%d: %w", i+1, err)
		}

		if _, err = reg.RaiseClaim(ctx, kind, c.Passenger, c.Bag, c.Amount); err != nil {
			return err
		}
	}

	if !scenario.ShouldProcess() {
		return nil
	}

	if _, err := reg.ProcessClaims(ctx); err != nil {
		return fmt.Errorf("process claims: %w", err)
	}

	return nil
}

// applyMovement scans the bag at the step's time, or now when none is given.
func applyMovement(ctx context.Context, reg *registry.Registry, m MovementStep) error {
	var err error

	if m.At.IsZero() {
		_, err = reg.RecordCheckpoint(ctx, m.Bag, m.CheckpointID, m.CheckpointName)
	} else {
		_, err = reg.UpdateMovement(ctx, m.Bag, domain.NewCheckpoint(m.CheckpointID, m.CheckpointName, m.At))
	}

	return err
}

// Summarize prints bags with routes, all claims and the claims of each passenger.
func Summarize(ctx context.Context, reg *registry.Registry, out io.Writer) error {
	snapshot := reg.Snapshot(ctx)

	common.RenderBags(out, snapshot.Bags)
	common.RenderClaims(out, "All claims summary:", snapshot.Claims)

	for _, p := range snapshot.Passengers {
		claims, err := reg.PassengerClaims(ctx, p.ID)
		if err != nil {
			return err
		}

		common.RenderClaims(out, fmt.Sprintf("Claims for %s:", p.Name), claims)
	}

	_, err := fmt.Fprintf(out, "Total payout: $%.2f\n", snapshot.TotalPayout)

	return err
}
