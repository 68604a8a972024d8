package main

import (
	_ "embed"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	physconst "github.com/JackRBlack/physics-constant"
	"github.com/JackRBlack/physics-constant/log"
)

// Flags for physconst convert
var (
	ConvertFrom string // Unit of the value
	ConvertTo   string // Unit of the result
)

//go:embed help/convert.md
var convertHelp string

// ErrMixedUnits is returned when converting between a temperature and an energy.
var ErrMixedUnits = errors.New("cannot convert between temperature and energy")

// NewCmdConvert returns the [cobra.Command] used for unit conversions.
//
// Usage:
//
//	physconst convert <value> --from <unit> [--to <unit>]
//
// Flags:
//
//	-f, --from string   Unit of the value
//	-t, --to string     Unit of the result
//	-h, --help          help for convert
func NewCmdConvert() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <value> --from <unit> [--to <unit>]",
		Aliases: []string{"conv"},
		Short:   "Convert a temperature or an energy",
		Long:    convertHelp,
		Example: `  physconst convert 26.5 --from C --to F
  physconst convert --from K -- -0.001
  physconst convert 1 --from J --to eV`,
		GroupID: "conversions",
		Args:    cobra.ExactArgs(1),
		RunE:    convert,
	}

	ConvertFrom, ConvertTo = "", ""
	cmd.Flags().StringVarP(&ConvertFrom, "from", "f", "", "Unit of the value")
	cmd.Flags().StringVarP(&ConvertTo, "to", "t", "", "Unit of the result")
	cmd.MarkFlagRequired("from")

	units := cobra.FixedCompletions(
		[]cobra.Completion{"C", "F", "K", "R", "J", "eV"}, cobra.ShellCompDirectiveNoFileComp,
	)
	cmd.RegisterFlagCompletionFunc("from", units)
	cmd.RegisterFlagCompletionFunc("to", units)

	return cmd
}

func convert(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return usageError("invalid value %q: %w", args[0], err)
	}

	r := newRenderer(cmd.OutOrStdout(), cfg)

	if from, err := physconst.ParseUnit(ConvertFrom); err == nil {
		to := cfg.Temperature.Unit()
		if ConvertTo != "" {
			if to, err = physconst.ParseUnit(ConvertTo); err != nil {
				return mixedOrUnknown(err)
			}
		}
		log.Debug("Converting temperature", "value", v, "from", from, "to", to)
		res, err := physconst.ConvertTemperature(v, from, to)
		if err != nil {
			return &ExitError{Err: err, Code: 2}
		}
		return r.printConversion(conversion{
			Value:  v,
			From:   string(rune(from)),
			To:     string(rune(to)),
			Result: res,
		}, from.String(), to.String())
	}

	from, err := physconst.ParseEnergyUnit(ConvertFrom)
	if err != nil {
		return usageError("--from: %w", err)
	}
	to := physconst.Joule
	if from == physconst.Joule {
		to = physconst.Electronvolt
	}
	if ConvertTo != "" {
		if to, err = physconst.ParseEnergyUnit(ConvertTo); err != nil {
			return mixedOrUnknown(err)
		}
	}
	log.Debug("Converting energy", "value", v, "from", from, "to", to)
	res, err := physconst.ConvertEnergy(v, from, to)
	if err != nil {
		return usageError("%w", err)
	}
	return r.printConversion(conversion{
		Value:  v,
		From:   string(from),
		To:     string(to),
		Result: res,
	}, string(from), string(to))
}

// mixedOrUnknown reports ErrMixedUnits if --to names a unit of the other
// family, and err otherwise.
func mixedOrUnknown(err error) error {
	if _, terr := physconst.ParseUnit(ConvertTo); terr == nil {
		return usageError("%w", ErrMixedUnits)
	}
	if _, eerr := physconst.ParseEnergyUnit(ConvertTo); eerr == nil {
		return usageError("%w", ErrMixedUnits)
	}
	return usageError("--to: %w", err)
}
