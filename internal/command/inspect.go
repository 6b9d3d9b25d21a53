package command

import (
	"github.com/chronos-tachyon/huffman/v2/internal/fileio"
	"github.com/chronos-tachyon/huffman/v2/internal/renderer"

	"github.com/nuclio/errors"
	"github.com/spf13/cobra"
)

type inspectCommandeer struct {
	cmd            *cobra.Command
	rootCommandeer *RootCommandeer
}

func newInspectCommandeer(rootCommandeer *RootCommandeer) *inspectCommandeer {
	commandeer := &inspectCommandeer{
		rootCommandeer: rootCommandeer,
	}

	cmd := &cobra.Command{
		Use:   "inspect container",
		Short: "Print the header of an encoded file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("Inspect requires a container path")
			}

			if err := rootCommandeer.initialize(); err != nil {
				return errors.Wrap(err, "Failed to initialize root")
			}

			encoded, err := fileio.ReadAll(args[0])
			if err != nil {
				return errors.Wrap(err, "Failed to read container")
			}

			container, err := rootCommandeer.codec.Inspect(encoded)
			if err != nil {
				return errors.Wrapf(err, "Failed to inspect %s", args[0])
			}

			renderer.NewRenderer(rootCommandeer.output).RenderTable(
				[]interface{}{"Field", "Value"},
				[][]interface{}{
					{"Layout", container.Layout.String()},
					{"Format tag", string(rune(container.Layout))},
					{"Original length", container.Length},
					{"Tree slots", container.Tree.Len()},
					{"Tree leaves", container.Tree.NumLeaves()},
					{"Payload bytes", len(container.Payload)},
					{"Container bytes", len(encoded)},
				})

			return nil
		},
	}

	commandeer.cmd = cmd

	return commandeer
}
