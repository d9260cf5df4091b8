package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"quantor/domain"
	"quantor/logger"
)

// RawInputs are the form values exactly as typed.
type RawInputs struct {
	Demand      string
	OrderCost   string
	HoldingCost string
}

func (r RawInputs) value(f domain.Field) string {
	switch f {
	case domain.FieldDemand:
		return r.Demand
	case domain.FieldOrderCost:
		return r.OrderCost
	default:
		return r.HoldingCost
	}
}

// SubmitOutcome describes what a submission produced. Entry is nil when the
// input was invalid or the log could not record it.
type SubmitOutcome struct {
	Parameters    domain.OrderParameters
	Result        domain.ComputationResult
	Entry         *domain.BehaviorLogEntry
	InvalidFields []domain.Field
}

// FormController validates form input, runs the formulas and feeds the
// session log. Calls are serialized so the page behaves as a single UI thread.
type FormController struct {
	mu      sync.Mutex
	display Display
	log     *SessionLog
	now     func() time.Time
	newID   func() string
}

type FormOption func(*FormController)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) FormOption {
	return func(c *FormController) { c.now = now }
}

// WithIDGenerator overrides how log entry ids are minted.
func WithIDGenerator(newID func() string) FormOption {
	return func(c *FormController) { c.newID = newID }
}

func NewFormController(display Display, log *SessionLog, opts ...FormOption) *FormController {
	c := &FormController{
		display: display,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// parsePositive reports whether raw is a finite number strictly greater than zero.
// The whole trimmed value must be a number: "1200units" is rejected, not read
// as 1200.
func parsePositive(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, v > 0
}

// Submit handles a form submission. On invalid input every bad field is
// marked, one notification is shown and an *InvalidInputError is returned.
// Positive values whose EOQ or total cost overflows are rejected the same way
// with every field marked, before any output is rendered.
func (c *FormController) Submit(ctx context.Context, raw RawInputs) (SubmitOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	values := make(map[domain.Field]float64, len(domain.Fields))
	var invalid []domain.Field
	for _, f := range domain.Fields {
		c.display.SetFieldValue(f, raw.value(f))
		v, ok := parsePositive(raw.value(f))
		c.display.MarkInvalid(f, !ok)
		if !ok {
			invalid = append(invalid, f)
			continue
		}
		values[f] = v
	}

	if len(invalid) > 0 {
		return c.reject(ctx, invalid, MsgInvalidInput)
	}

	p := domain.OrderParameters{
		Demand:      values[domain.FieldDemand],
		OrderCost:   values[domain.FieldOrderCost],
		HoldingCost: values[domain.FieldHoldingCost],
	}
	result := Calculate(p)
	if !isFinite(roundTo2Decimals(result.EOQ)) || !isFinite(roundTo2Decimals(result.TotalAnnualCost)) {
		for _, f := range domain.Fields {
			c.display.MarkInvalid(f, true)
		}
		return c.reject(ctx, domain.Fields, MsgOutOfRange)
	}

	return c.compute(ctx, p, result), nil
}

func (c *FormController) reject(ctx context.Context, fields []domain.Field, msg string) (SubmitOutcome, error) {
	c.display.Notify(msg)
	logger.Warn(ctx, "rejected order parameters", "fields", fields, "reason", msg)
	fields = append([]domain.Field(nil), fields...)
	return SubmitOutcome{InvalidFields: fields}, &InvalidInputError{Fields: fields, Message: msg}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SubmitParameters runs the same flow for input that is already numeric.
func (c *FormController) SubmitParameters(ctx context.Context, p domain.OrderParameters) (SubmitOutcome, error) {
	return c.Submit(ctx, RawInputs{
		Demand:      strconv.FormatFloat(p.Demand, 'g', -1, 64),
		OrderCost:   strconv.FormatFloat(p.OrderCost, 'g', -1, 64),
		HoldingCost: strconv.FormatFloat(p.HoldingCost, 'g', -1, 64),
	})
}

func (c *FormController) compute(ctx context.Context, p domain.OrderParameters, result domain.ComputationResult) SubmitOutcome {
	ctx, span := logger.StartSpan(ctx, "eoq.compute",
		attribute.Float64("demand", p.Demand),
		attribute.Float64("order_cost", p.OrderCost),
		attribute.Float64("holding_cost", p.HoldingCost),
	)
	defer span.End()

	c.display.ShowResult(EOQLine(result.EOQ), TotalCostLine(result.TotalAnnualCost))

	entry := domain.BehaviorLogEntry{
		ID:          c.newID(),
		Pattern:     Classify(p.Demand, p.OrderCost, p.HoldingCost, result.EOQ),
		Demand:      p.Demand,
		OrderCost:   p.OrderCost,
		HoldingCost: p.HoldingCost,
		EOQ:         roundTo2Decimals(result.EOQ),
		TotalCost:   roundTo2Decimals(result.TotalAnnualCost),
		Timestamp:   c.now().UTC().Format(domain.TimestampLayout),
	}
	span.SetAttributes(attribute.String("pattern", string(entry.Pattern)))

	outcome := SubmitOutcome{Parameters: p, Result: result}

	// Registrar la entrada (no crítico si falla)
	if err := c.log.Record(entry); err != nil {
		logger.Warn(ctx, "failed to record behavior log entry", "error", err)
		return outcome
	}
	outcome.Entry = &entry

	logger.Info(ctx, "eoq calculated",
		"pattern", entry.Pattern,
		"eoq", entry.EOQ,
		"total_cost", entry.TotalCost,
	)
	return outcome
}

// FieldActivity clears a field's invalid marker on input or focus,
// whatever the field currently holds.
func (c *FormController) FieldActivity(field domain.Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.display.MarkInvalid(field, false)
}

// Dismiss hides one rendered log block.
func (c *FormController) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Dismiss(id)
}

// Reset clears every field, marker, output and log entry.
func (c *FormController) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, f := range domain.Fields {
		c.display.SetFieldValue(f, "")
		c.display.MarkInvalid(f, false)
	}
	c.display.ClearResult()
	if err := c.log.Clear(); err != nil {
		logger.ErrorWithErr(ctx, "failed to clear behavior log", err)
		return err
	}
	c.display.Notify(MsgResetDone)
	logger.Info(ctx, "form and logs cleared")
	return nil
}

// Log returns the recorded entries in submission order.
func (c *FormController) Log() []domain.BehaviorLogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.log.Snapshot()
}
