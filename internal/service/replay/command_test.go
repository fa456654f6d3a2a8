package replay

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/logger"
	"github.com/oshokin/baggage-desk/internal/repository/report"
	"github.com/oshokin/baggage-desk/internal/service/registry"
)

// TestApply_DefaultScenario replays the demo and checks the settled payouts.
func TestApply_DefaultScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := registry.New()

	require.NoError(t, Apply(ctx, reg, DefaultScenario()))

	bag, err := reg.LocateBag(ctx, "BAG001")
	require.NoError(t, err)
	require.Equal(t, domain.BagStatusInTransit, bag.Status)
	require.Len(t, bag.Route, 2)
	require.Equal(t, "S1", bag.Route[1].ID)
	require.True(t, bag.Route[1].Timestamp.Equal(SecurityScanAt))

	loss, err := reg.LocateClaim(ctx, "C100")
	require.NoError(t, err)
	require.Equal(t, domain.ClaimStatusSettled, loss.Status)
	require.InDelta(t, 500.0, loss.Payout, 0)

	damage, err := reg.LocateClaim(ctx, "C101")
	require.NoError(t, err)
	require.Equal(t, "P2", damage.PassengerID)
	require.InDelta(t, 150.0, damage.Payout, 0)

	_, err = reg.LocateBag(ctx, "UNKNOWN")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRun_ScenarioFile replays a YAML scenario, prints the summary and writes a report.
func TestRun_ScenarioFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	reportPath := filepath.Join(dir, "report.json")

	scenario := `
passengers:
  - id: P7
    name: Carol
    flight: AI303
    contact: carol@example.com
bags:
  - tag: BAG070
    weight: 12.5
    owner: P7
movements:
  - bag: BAG070
    checkpoint_id: C1
    checkpoint_name: Check-in
  - bag: BAG070
    checkpoint_id: G7
    checkpoint_name: Gate 7
    at: 2026-10-19T10:15:00Z
statuses:
  - bag: BAG070
    status: damaged
claims:
  - kind: Damage
    passenger: P7
    bag: BAG070
    amount: 80
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenario), 0o600))

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ScenarioPath: scenarioPath,
		ReportFile:   reportPath,
		Quiet:        true,
		Out:          &out,
	})
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "Bag[BAG070] 12.5kg Owner:P7 Status:DAMAGED")
	require.Contains(t, text, "[G7] Gate 7 at 2026-10-19T10:15:00Z")
	require.Contains(t, text, "Claims for Carol:")
	require.Contains(t, text, "Payout:$40.00")
	require.Contains(t, text, "Total payout: $40.00")

	snapshot, err := report.NewFileRepository(reportPath).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Claims, 1)
	require.Equal(t, domain.ClaimStatusSettled, snapshot.Claims[0].Status)
}

// TestApply_Failures stops at invalid steps.
func TestApply_Failures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	noProcess := false

	cases := []struct {
		name     string
		scenario *Scenario
		want     error
	}{
		{
			name: "duplicate passenger",
			scenario: &Scenario{Passengers: []PassengerStep{
				{ID: "P1", Name: "Alice"},
				{ID: "P1", Name: "Alice again"},
			}},
			want: domain.ErrAlreadyExists,
		},
		{
			name:     "movement of unknown bag",
			scenario: &Scenario{Movements: []MovementStep{{Bag: "BAG404", CheckpointID: "C1"}}},
			want:     domain.ErrNotFound,
		},
		{
			name: "unknown claim kind",
			scenario: &Scenario{
				Passengers: []PassengerStep{{ID: "P1"}},
				Bags:       []BagStep{{Tag: "B1", Owner: "P1"}},
				Claims:     []ClaimStep{{Kind: "theft", Passenger: "P1", Bag: "B1", Amount: 1}},
				Process:    &noProcess,
			},
			want: domain.ErrUnknownClaimKind,
		},
		{
			name: "unknown status",
			scenario: &Scenario{
				Passengers: []PassengerStep{{ID: "P1"}},
				Bags:       []BagStep{{Tag: "B1", Owner: "P1"}},
				Statuses:   []StatusStep{{Bag: "B1", Status: "orbiting"}},
			},
			want: domain.ErrUnknownBagStatus,
		},
	}

	for _, tc := range cases {
		err := Apply(ctx, registry.New(), tc.scenario)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestApply_WithoutProcessing leaves claims open.
func TestApply_WithoutProcessing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reg := registry.New()
	scenario := DefaultScenario()
	noProcess := false
	scenario.Process = &noProcess

	require.NoError(t, Apply(ctx, reg, scenario))

	for _, c := range reg.ListClaims(ctx) {
		require.Equal(t, domain.ClaimStatusOpen, c.Status)
	}
}

// TestRun_Quiet drops registry narration below warning level.
func TestRun_Quiet(t *testing.T) {
	t.Parallel()

	for _, quiet := range []bool{false, true} {
		core, logs := observer.New(zapcore.DebugLevel)
		ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

		var out bytes.Buffer
		require.NoError(t, Run(ctx, &Options{Quiet: quiet, Out: &out}))
		require.Contains(t, out.String(), "Total payout: $650.00")

		narration := logs.FilterLevelExact(zapcore.InfoLevel).Len()
		if quiet {
			require.Zero(t, narration)
		} else {
			require.Positive(t, narration)
		}
	}
}
