package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/ariel-frischer/gocontract/internal/config"
	"github.com/ariel-frischer/gocontract/internal/render"
	"github.com/ariel-frischer/gocontract/internal/resolver"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// divArgs bundles the arguments of the demo division function.
type divArgs struct {
	A, B int
}

var errDivideByZero = errors.New("integer divide by zero")

// div is the canonical contracted example: integer division that must never
// see a zero divisor.
var div = contract.New("div", func(a divArgs) (int, error) {
	if a.B == 0 {
		return 0, errDivideByZero
	}
	return a.A / a.B, nil
}).
	WithSpecification("Divides two integers and returns the result").
	WithPreDescription("Both arguments must be integers, divisor cannot be zero").
	WithPostDescription("Returns the integer division of a by b").
	WithPrecondition(contract.Pred(func(a divArgs) bool {
		return a.B != 0
	})).
	WithPostcondition(contract.ResultPred(func(result int, a divArgs) bool {
		return result == a.A/a.B
	}))

// sqrt is the unimplemented-stub example: the contract is fully specified
// but the body is a logical hole.
var sqrt = contract.New("sqrt", func(x float64) (float64, error) {
	return 0, contract.ImplementThis("square root function not yet implemented")
}).
	WithSpecification("Computes the square root of a non-negative number").
	WithPreDescription("Input must be non-negative").
	WithPostDescription("Result squared equals the input").
	WithDeclaredErrors(contract.ImplementThis("square root stub")).
	WithPrecondition(contract.Pred(func(x float64) bool {
		return x >= 0
	})).
	WithPostcondition(contract.ResultPred(func(result, x float64) bool {
		return math.Abs(result*result-x) < 1e-10
	}))

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the contract engine on example functions",
	Long: `Walk through the contract engine: a contracted division function with
verification enabled and disabled, an unimplemented stub, and the
company-name resolver example.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, mode, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Testing div function with contracts enabled...")
		contract.Enable()

		if result, err := div.Call(divArgs{A: 10, B: 2}); err != nil {
			render.Error(out, err, mode)
		} else {
			render.Success(out, fmt.Sprintf("div(10, 2) = %d", result), mode)
		}

		if _, err := div.Call(divArgs{A: 10, B: 0}); err != nil {
			render.Error(out, err, mode)
		}

		fmt.Fprintln(out, "\nSame call with verification disabled (full bypass)...")
		contract.Disable()
		if _, err := div.Call(divArgs{A: 10, B: 0}); err != nil {
			render.Error(out, err, mode)
		}
		contract.Enable()

		fmt.Fprintln(out, "\nTesting unimplemented sqrt function...")
		if _, err := sqrt.Call(4.0); err != nil {
			render.Error(out, err, mode)
		}

		fmt.Fprintln(out, "\nResolving company names...")
		if err := runResolverDemo(out, settings, mode); err != nil {
			render.Error(out, err, mode)
		}

		// Leave the process in the configured state.
		config.Seed(settings)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runResolverDemo resolves the sample text against the configured company
// database, with a spinner while the (simulated) lookup runs.
func runResolverDemo(out io.Writer, settings *config.Settings, mode render.Mode) error {
	db := resolver.SampleDatabase()
	if settings.CompanyDB != "" {
		loaded, err := resolver.LoadDatabase(settings.CompanyDB)
		if err != nil {
			return err
		}
		db = loaded
	}

	if out == os.Stdout && mode != render.ModeNever {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " resolving company names..."
		s.Start()
		time.Sleep(time.Duration(settings.DemoDelayMS) * time.Millisecond)
		s.Stop()
	}

	companies, err := resolver.ResolveCompanyNames.Call(resolver.ResolveArgs{
		Text:     resolver.SampleText,
		Database: db,
	})
	if err != nil {
		return err
	}

	for _, c := range companies {
		render.Success(out, fmt.Sprintf("%s (%s)", c.Name, c.URL), mode)
	}
	return nil
}
