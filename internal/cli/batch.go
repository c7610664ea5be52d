package cli

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/viant/datetime"
)

type (
	batchInput []string

	batchResult struct {
		Input   string
		Matched bool
		Local   string
		Instant string
	}

	batchResults []*batchResult
)

func (b *batchInput) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var text string
	if err := dec.String(&text); err != nil {
		return err
	}
	*b = append(*b, text)
	return nil
}

func (r *batchResult) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("input", r.Input)
	enc.BoolKey("matched", r.Matched)
	enc.StringKeyOmitEmpty("local", r.Local)
	enc.StringKeyOmitEmpty("instant", r.Instant)
}

func (r *batchResult) IsNil() bool {
	return r == nil
}

func (r batchResults) MarshalJSONArray(enc *gojay.Encoder) {
	for _, result := range r {
		enc.Object(result)
	}
}

func (r batchResults) IsNil() bool {
	return r == nil
}

func newBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Parse JSON array of strings from stdin, writes JSON array of results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			converter, err := newConverter()
			if err != nil {
				return err
			}
			return runBatch(cmd, converter)
		},
	}
}

func runBatch(cmd *cobra.Command, converter *datetime.Converter) error {
	var input batchInput
	dec := gojay.NewDecoder(cmd.InOrStdin())
	defer dec.Release()
	if err := dec.DecodeArray(&input); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to decode batch input, expected JSON array of strings").
			WithCause(err)
	}
	results := make(batchResults, 0, len(input))
	for _, text := range input {
		result := &batchResult{Input: text}
		if value, ok := converter.ParseDate(text); ok {
			result.Matched = true
			result.Local = value.String()
			instant, err := converter.ToISOString(&value)
			if err != nil {
				return err
			}
			result.Instant = instant
		}
		results = append(results, result)
	}
	enc := gojay.NewEncoder(cmd.OutOrStdout())
	defer enc.Release()
	if err := enc.EncodeArray(results); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode batch output").
			WithCause(err)
	}
	return nil
}
