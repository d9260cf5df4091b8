package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "173.21", FormatQuantity(173.2050807568877))
	assert.Equal(t, "100", FormatQuantity(100))
	assert.Equal(t, "12,345.68", FormatQuantity(12345.678))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$692.82", FormatMoney(692.8203230275509))
	assert.Equal(t, "$5.00", FormatMoney(5))
}

func TestOutputLines(t *testing.T) {
	assert.Equal(t, "EOQ: 173.21 units", EOQLine(173.2050807568877))
	assert.Equal(t, "Total Annual Cost: $692.82", TotalCostLine(692.8203230275509))
}
