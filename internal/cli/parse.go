package cli

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/viant/datetime"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse text into local date-time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			return runParse(cmd, converter, args)
		},
	}
}

func runParse(cmd *cobra.Command, converter *datetime.Converter, args []string) error {
	var unmatched []string
	for _, text := range args {
		value, ok := converter.ParseDate(text)
		if !ok {
			unmatched = append(unmatched, text)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), value.String())
	}
	if len(unmatched) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no date format matched: %q", unmatched))
	}
	return nil
}

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <local date-time>...",
		Short: "Format ISO local date-time as UTC instant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			return runFormat(cmd, converter, args)
		},
	}
}

func runFormat(cmd *cobra.Command, converter *datetime.Converter, args []string) error {
	for _, text := range args {
		value := &datetime.LocalDateTime{}
		if err := value.UnmarshalText([]byte(text)); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid local date-time: %q", text)).
				WithCause(err)
		}
		instant, err := converter.ToISOString(value)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to format").
				WithCause(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), instant)
	}
	return nil
}
