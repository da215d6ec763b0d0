package commands_test

import (
	"testing"

	"livraison/internal/core/application/usecases/commands"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFromString(t *testing.T) {
	t.Run("round trips every valid action", func(t *testing.T) {
		for _, s := range []string{"take_charge", "deliver", "report_incident", "cancel", "reopen"} {
			action, err := commands.ActionFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, action.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := commands.ActionFromString("warp")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAction_TargetStatus(t *testing.T) {
	cases := map[commands.Action]delivery.Status{
		commands.ActionTakeCharge:     delivery.StatusInTransit,
		commands.ActionDeliver:        delivery.StatusDelivered,
		commands.ActionReportIncident: delivery.StatusIncident,
		commands.ActionCancel:         delivery.StatusCancelled,
		commands.ActionReopen:         delivery.StatusAssigned,
	}
	for action, expected := range cases {
		assert.Equal(t, expected, action.TargetStatus())
	}
	assert.Equal(t, delivery.StatusUnknown, commands.ActionUnknown.TargetStatus())
}

func TestNewTransitionDeliveryCommand(t *testing.T) {
	deliveryID := kernel.NewUUID()

	t.Run("should create deliver command with signature", func(t *testing.T) {
		cmd, err := commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionDeliver, commands.TransitionPayload{
				Signature: "sig://blob/abc",
				Photos:    []string{"s3://proofs/1.jpg"},
			})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, commands.ActionDeliver, cmd.Action())
		assert.Equal(t, "sig://blob/abc", cmd.Payload().Signature)
	})

	t.Run("should reject deliver without signature", func(t *testing.T) {
		_, err := commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionDeliver, commands.TransitionPayload{})
		require.ErrorIs(t, err, commands.ErrTransitionSignatureIsRequired)
	})

	t.Run("should reject incident without type or note", func(t *testing.T) {
		_, err := commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionReportIncident, commands.TransitionPayload{IncidentType: incident.TypeDamage})
		require.ErrorIs(t, err, commands.ErrTransitionIncidentIsIncomplete)

		_, err = commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionReportIncident, commands.TransitionPayload{IncidentNote: "crushed"})
		require.ErrorIs(t, err, commands.ErrTransitionIncidentIsIncomplete)
	})

	t.Run("should reject stray payload on plain transitions", func(t *testing.T) {
		_, err := commands.NewTransitionDeliveryCommand(deliveryID, adminActor(t),
			commands.ActionCancel, commands.TransitionPayload{Signature: "sig"})
		require.ErrorIs(t, err, commands.ErrTransitionPayloadIsNotApplicable)

		_, err = commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionTakeCharge, commands.TransitionPayload{IncidentNote: "note"})
		require.ErrorIs(t, err, commands.ErrTransitionPayloadIsNotApplicable)
	})

	t.Run("should reject unknown action", func(t *testing.T) {
		_, err := commands.NewTransitionDeliveryCommand(deliveryID, driverActor(t),
			commands.ActionUnknown, commands.TransitionPayload{})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.TransitionDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionDeliveryCommandIsNotConstructed)
	})
}
