package delivery_test

import (
	"fmt"
	"testing"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.StatusUnknown))
		assert.Equal(t, 1, int(delivery.StatusPending))
		assert.Equal(t, 2, int(delivery.StatusAssigned))
		assert.Equal(t, 3, int(delivery.StatusInTransit))
		assert.Equal(t, 4, int(delivery.StatusDelivered))
		assert.Equal(t, 5, int(delivery.StatusIncident))
		assert.Equal(t, 6, int(delivery.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusAssigned,
			delivery.StatusInTransit,
			delivery.StatusDelivered,
			delivery.StatusIncident,
			delivery.StatusCancelled,
		} {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusUnknown,
			delivery.Status(-1),
			delivery.Status(7),
		} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				require.ErrorIs(t, status.Validate(), errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[delivery.Status]string{
		delivery.StatusUnknown:   "unknown",
		delivery.StatusPending:   "pending",
		delivery.StatusAssigned:  "assigned",
		delivery.StatusInTransit: "in_transit",
		delivery.StatusDelivered: "delivered",
		delivery.StatusIncident:  "incident",
		delivery.StatusCancelled: "cancelled",
	}
	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
	assert.Equal(t, "unknown", delivery.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, s := range []string{"pending", "assigned", "in_transit", "delivered", "incident", "cancelled"} {
			status, err := delivery.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := delivery.StatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, delivery.StatusDelivered.IsTerminal())
	assert.True(t, delivery.StatusCancelled.IsTerminal())
	assert.False(t, delivery.StatusPending.IsTerminal())
	assert.False(t, delivery.StatusAssigned.IsTerminal())
	assert.False(t, delivery.StatusInTransit.IsTerminal())
	assert.False(t, delivery.StatusIncident.IsTerminal())
}

// TestStatus_TransitionTable walks every (from, trigger) pair and checks the
// outcome against the lifecycle table. Anything not explicitly allowed must
// fail with ErrInvalidTransition.
func TestStatus_TransitionTable(t *testing.T) {
	all := []delivery.Status{
		delivery.StatusPending,
		delivery.StatusAssigned,
		delivery.StatusInTransit,
		delivery.StatusDelivered,
		delivery.StatusIncident,
		delivery.StatusCancelled,
	}

	triggers := map[string]struct {
		apply   func(delivery.Status) (delivery.Status, error)
		allowed map[delivery.Status]delivery.Status
	}{
		"assign": {
			apply: delivery.Status.Assign,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusPending:  delivery.StatusAssigned,
				delivery.StatusAssigned: delivery.StatusAssigned,
			},
		},
		"start": {
			apply: delivery.Status.Start,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusPending:  delivery.StatusInTransit,
				delivery.StatusAssigned: delivery.StatusInTransit,
			},
		},
		"deliver": {
			apply: delivery.Status.Deliver,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusInTransit: delivery.StatusDelivered,
			},
		},
		"report": {
			apply: delivery.Status.Report,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusInTransit: delivery.StatusIncident,
			},
		},
		"cancel": {
			apply: delivery.Status.Cancel,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusPending:   delivery.StatusCancelled,
				delivery.StatusAssigned:  delivery.StatusCancelled,
				delivery.StatusInTransit: delivery.StatusCancelled,
				delivery.StatusIncident:  delivery.StatusCancelled,
			},
		},
		"reopen": {
			apply: delivery.Status.Reopen,
			allowed: map[delivery.Status]delivery.Status{
				delivery.StatusIncident: delivery.StatusAssigned,
			},
		},
	}

	for name, trigger := range triggers {
		for _, from := range all {
			t.Run(fmt.Sprintf("%s from %s", name, from), func(t *testing.T) {
				next, err := trigger.apply(from)
				if expected, ok := trigger.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, expected, next)
				} else {
					require.ErrorIs(t, err, delivery.ErrInvalidTransition)
				}
			})
		}
	}
}
