package command

import (
	"github.com/chronos-tachyon/huffman/v2/internal/fileio"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type decodeCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newDecodeCommandeer(rootCommandeer *RootCommandeer) *decodeCommandeer {
	commandeer := &decodeCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:     "decode source destination",
		Aliases: []string{"unhuff"},
		Short:   "Decompress a file produced by encode",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("Decode requires a source and a destination")
			}

			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			source, destination := args[0], args[1]

			encoded, err := fileio.ReadAll(source)
			if err != nil {
				return errors.Wrap(err, "Failed to read source")
			}

			// nothing is written unless the whole input decodes
			decoded, err := rootCommandeer.codec.Decode(encoded)
			if err != nil {
				return errors.Wrapf(err, "Failed to decode %s", source)
			}

			if err := fileio.WriteAll(destination, decoded); err != nil {
				return errors.Wrap(err, "Failed to write destination")
			}

			rootCommandeer.loggerInstance.InfoWith("Decoded",
				"source", source,
				"destination", destination,
				"inputBytes", len(encoded),
				"outputBytes", len(decoded))

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
