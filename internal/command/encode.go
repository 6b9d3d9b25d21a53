package command

import (
	"github.com/chronos-tachyon/huffman/v2/internal/fileio"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type encodeCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newEncodeCommandeer(rootCommandeer *RootCommandeer) *encodeCommandeer {
	commandeer := &encodeCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:     "encode source destination",
		Aliases: []string{"huff"},
		Short:   "Compress a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("Encode requires a source and a destination")
			}

			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			source, destination := args[0], args[1]

			data, err := fileio.ReadAll(source)
			if err != nil {
				return errors.Wrap(err, "Failed to read source")
			}

			encoded, err := rootCommandeer.codec.Encode(cmd.Context(), data)
			if err != nil {
				return errors.Wrapf(err, "Failed to encode %s", source)
			}

			if err := fileio.WriteAll(destination, encoded); err != nil {
				return errors.Wrap(err, "Failed to write destination")
			}

			rootCommandeer.loggerInstance.InfoWith("Encoded",
				"source", source,
				"destination", destination,
				"inputBytes", len(data),
				"outputBytes", len(encoded))

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
