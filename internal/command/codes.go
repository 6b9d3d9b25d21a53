package command

import (
	"strconv"

	"github.com/chronos-tachyon/huffman/v2"
	"github.com/chronos-tachyon/huffman/v2/internal/fileio"
	"github.com/chronos-tachyon/huffman/v2/internal/renderer"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type codesCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newCodesCommandeer(rootCommandeer *RootCommandeer) *codesCommandeer {
	commandeer := &codesCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "codes source",
		Short: "Print the code table the encoder would build for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("Codes requires a source path")
			}

			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			data, err := fileio.ReadAll(args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to read source")
			}

			enc, freqs, err := rootCommandeer.codec.Analyze(cmd.Context(), data)
			if err != nil {
				return errors.Wrapf(err, "Failed to analyze %s", args[0])
			}

			var records [][]interface{}
			for symbol := 0; symbol < huffman.NumSymbols; symbol++ {
				hc := enc.Encode(huffman.Symbol(symbol))
				if hc.Size == 0 {
					continue
				}
				records = append(records, []interface{}{
					strconv.Quote(string([]byte{byte(symbol)})),
					freqs.Count(huffman.Symbol(symbol)),
					hc.String(),
					hc.Index(),
				})
			}

			renderer.NewRenderer(rootCommandeer.output).RenderTable(
				[]interface{}{"Symbol", "Frequency", "Code", "Slot"},
				records)

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
