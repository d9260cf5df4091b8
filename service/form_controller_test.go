package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantor/domain"
	"quantor/repository"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestController(t *testing.T) (*FormController, *fakeDisplay) {
	t.Helper()
	display := newFakeDisplay()
	log := NewSessionLog(repository.NewBehaviorLogMemory(), display)
	return NewFormController(display, log, WithClock(func() time.Time { return fixedNow })), display
}

func TestSubmit_ReferenceOrder(t *testing.T) {
	c, display := newTestController(t)

	outcome, err := c.Submit(context.Background(), RawInputs{Demand: "1200", OrderCost: "50", HoldingCost: "4"})
	require.NoError(t, err)
	require.NotNil(t, outcome.Entry)

	assert.InDelta(t, 173.21, outcome.Result.EOQ, 0.01)
	assert.InDelta(t, 692.82, outcome.Result.TotalAnnualCost, 0.01)
	assert.Equal(t, domain.PatternBalanced, outcome.Entry.Pattern)
	assert.Equal(t, 173.21, outcome.Entry.EOQ)
	assert.Equal(t, 692.82, outcome.Entry.TotalCost)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", outcome.Entry.Timestamp)

	assert.Equal(t, "EOQ: 173.21 units", display.eoqText)
	assert.Equal(t, "Total Annual Cost: $692.82", display.totalText)
	assert.False(t, display.anyInvalid())
	assert.Empty(t, display.notifications)
	assert.Len(t, display.blocks, 1)
	assert.Len(t, c.Log(), 1)
}

func TestSubmit_EntryIDsAreUUIDv7(t *testing.T) {
	c, _ := newTestController(t)

	outcome, err := c.Submit(context.Background(), RawInputs{Demand: "10", OrderCost: "5", HoldingCost: "1"})
	require.NoError(t, err)

	parsed, err := uuid.Parse(outcome.Entry.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestSubmit_BulkDemand(t *testing.T) {
	c, _ := newTestController(t)

	outcome, err := c.Submit(context.Background(), RawInputs{Demand: "6000", OrderCost: "10", HoldingCost: "2"})
	require.NoError(t, err)
	assert.Equal(t, domain.PatternBulkOrdering, outcome.Entry.Pattern)
}

func TestSubmit_InvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawInputs
		invalid []domain.Field
	}{
		{
			name:    "zero demand",
			raw:     RawInputs{Demand: "0", OrderCost: "50", HoldingCost: "4"},
			invalid: []domain.Field{domain.FieldDemand},
		},
		{
			name:    "non numeric holding cost",
			raw:     RawInputs{Demand: "1200", OrderCost: "50", HoldingCost: "abc"},
			invalid: []domain.Field{domain.FieldHoldingCost},
		},
		{
			name:    "all bad",
			raw:     RawInputs{Demand: "", OrderCost: "-1", HoldingCost: "NaN"},
			invalid: []domain.Field{domain.FieldDemand, domain.FieldOrderCost, domain.FieldHoldingCost},
		},
		{
			name:    "infinity is rejected",
			raw:     RawInputs{Demand: "Inf", OrderCost: "50", HoldingCost: "4"},
			invalid: []domain.Field{domain.FieldDemand},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, display := newTestController(t)

			outcome, err := c.Submit(context.Background(), tt.raw)

			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.invalid, inputErr.Fields)
			assert.Equal(t, MsgInvalidInput, inputErr.Message)
			assert.Equal(t, tt.invalid, outcome.InvalidFields)
			assert.Nil(t, outcome.Entry)

			for _, f := range domain.Fields {
				assert.Equal(t, contains(tt.invalid, f), display.invalid[f], "field %s", f)
			}
			assert.Equal(t, []string{MsgInvalidInput}, display.notifications)
			assert.Empty(t, display.eoqText)
			assert.Empty(t, c.Log())
		})
	}
}

func TestSubmit_NumericPrefixIsRejected(t *testing.T) {
	c, display := newTestController(t)

	_, err := c.Submit(context.Background(), RawInputs{Demand: "1200units", OrderCost: "50", HoldingCost: "4"})

	var inputErr *InvalidInputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, []domain.Field{domain.FieldDemand}, inputErr.Fields)
	assert.Equal(t, "1200units", display.values[domain.FieldDemand])
	assert.Empty(t, c.Log())
}

func TestSubmit_OutOfRangeResult(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInputs
	}{
		{name: "eoq overflows", raw: RawInputs{Demand: "1e200", OrderCost: "1e200", HoldingCost: "1"}},
		{name: "eoq underflows", raw: RawInputs{Demand: "1e-300", OrderCost: "1e-300", HoldingCost: "1e300"}},
		{name: "rounded total overflows", raw: RawInputs{Demand: "1e154", OrderCost: "1e153", HoldingCost: "1e307"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, display := newTestController(t)

			outcome, err := c.Submit(context.Background(), tt.raw)

			var inputErr *InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, domain.Fields, inputErr.Fields)
			assert.Equal(t, MsgOutOfRange, inputErr.Message)
			assert.Nil(t, outcome.Entry)
			for _, f := range domain.Fields {
				assert.True(t, display.invalid[f], "field %s", f)
			}
			assert.Equal(t, []string{MsgOutOfRange}, display.notifications)
			assert.Empty(t, display.eoqText)
			assert.Empty(t, c.Log())
		})
	}
}

func contains(fields []domain.Field, f domain.Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}

func TestSubmit_TrimsWhitespace(t *testing.T) {
	c, _ := newTestController(t)

	_, err := c.Submit(context.Background(), RawInputs{Demand: " 1200 ", OrderCost: "50", HoldingCost: "4\n"})
	assert.NoError(t, err)
}

func TestSubmit_ValidSubmissionClearsEarlierMarkers(t *testing.T) {
	c, display := newTestController(t)

	_, err := c.Submit(context.Background(), RawInputs{Demand: "x", OrderCost: "y", HoldingCost: "z"})
	require.Error(t, err)
	assert.True(t, display.anyInvalid())

	_, err = c.Submit(context.Background(), RawInputs{Demand: "1200", OrderCost: "50", HoldingCost: "4"})
	require.NoError(t, err)
	assert.False(t, display.anyInvalid())
}

func TestSubmit_LogKeepsSubmissionOrder(t *testing.T) {
	c, _ := newTestController(t)

	for _, d := range []string{"100", "200", "300"} {
		_, err := c.Submit(context.Background(), RawInputs{Demand: d, OrderCost: "50", HoldingCost: "4"})
		require.NoError(t, err)
	}

	log := c.Log()
	require.Len(t, log, 3)
	assert.Equal(t, 100.0, log[0].Demand)
	assert.Equal(t, 200.0, log[1].Demand)
	assert.Equal(t, 300.0, log[2].Demand)
}

func TestSubmitParameters(t *testing.T) {
	c, display := newTestController(t)

	outcome, err := c.SubmitParameters(context.Background(), domain.OrderParameters{Demand: 1200, OrderCost: 50, HoldingCost: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.PatternBalanced, outcome.Entry.Pattern)
	assert.Equal(t, "1200", display.values[domain.FieldDemand])

	_, err = c.SubmitParameters(context.Background(), domain.OrderParameters{Demand: 0, OrderCost: 50, HoldingCost: 4})
	assert.Error(t, err)
}

func TestFieldActivity_ClearsMarker(t *testing.T) {
	c, display := newTestController(t)

	_, _ = c.Submit(context.Background(), RawInputs{Demand: "0", OrderCost: "0", HoldingCost: "4"})
	require.True(t, display.invalid[domain.FieldDemand])

	c.FieldActivity(domain.FieldDemand)

	assert.False(t, display.invalid[domain.FieldDemand])
	assert.True(t, display.invalid[domain.FieldOrderCost])
}

func TestReset(t *testing.T) {
	c, display := newTestController(t)
	_, err := c.Submit(context.Background(), RawInputs{Demand: "1200", OrderCost: "50", HoldingCost: "4"})
	require.NoError(t, err)

	require.NoError(t, c.Reset(context.Background()))

	for _, f := range domain.Fields {
		assert.Empty(t, display.values[f])
		assert.False(t, display.invalid[f])
	}
	assert.Empty(t, display.eoqText)
	assert.Empty(t, display.totalText)
	assert.Empty(t, display.blocks)
	assert.Empty(t, c.Log())
	assert.Equal(t, []string{MsgResetDone}, display.notifications)

	require.NoError(t, c.Reset(context.Background()))
	assert.Empty(t, c.Log())
	assert.Equal(t, []string{MsgResetDone, MsgResetDone}, display.notifications)
}

func TestDismiss(t *testing.T) {
	c, display := newTestController(t)
	outcome, err := c.Submit(context.Background(), RawInputs{Demand: "1200", OrderCost: "50", HoldingCost: "4"})
	require.NoError(t, err)

	c.Dismiss(outcome.Entry.ID)

	assert.Empty(t, display.blocks)
	assert.Len(t, c.Log(), 1)
}
