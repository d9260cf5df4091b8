package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quantor/domain"
	"quantor/service"
)

const calcExample = `  quantor calc --demand 1200 --order-cost 50 --holding-cost 4
  quantor calc --demand 6000 --order-cost 10 --holding-cost 2 --format json`

type calcOptions struct {
	demand      string
	orderCost   string
	holdingCost string
}

type calcResult struct {
	Result domain.ComputationResult `json:"result"`
	Entry  *domain.BehaviorLogEntry `json:"entry,omitempty"`
}

func NewCalcCommand(root *RootOptions) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Compute EOQ and total annual cost",
		Example: calcExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root.Config)
			if err != nil {
				return err
			}
			defer a.Close()

			outcome, err := a.form.Submit(cmd.Context(), service.RawInputs{
				Demand:      opts.demand,
				OrderCost:   opts.orderCost,
				HoldingCost: opts.holdingCost,
			})
			var inputErr *service.InvalidInputError
			if errors.As(err, &inputErr) {
				return fmt.Errorf("%s (%w)", inputErr.Message, err)
			}
			if err != nil {
				return err
			}

			lines := []string{
				service.EOQLine(outcome.Result.EOQ),
				service.TotalCostLine(outcome.Result.TotalAnnualCost),
			}
			if outcome.Entry != nil {
				block, err := service.RenderBlock(*outcome.Entry)
				if err != nil {
					return err
				}
				lines = append(lines, block)
			}

			out := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			return out.Print(calcResult{Result: outcome.Result, Entry: outcome.Entry}, lines...)
		},
	}

	cmd.Flags().StringVar(&opts.demand, "demand", "", "annual demand (D)")
	cmd.Flags().StringVar(&opts.orderCost, "order-cost", "", "ordering cost per order (S)")
	cmd.Flags().StringVar(&opts.holdingCost, "holding-cost", "", "holding cost per unit (H)")

	return cmd
}
