// Command muhashctl maintains a MuHash3072 multiset digest persisted as
// a raw SerializedMuHash file, updating it from elements given as
// command-line arguments or read one per line from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chaindigest/muhash3072"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "muhashctl: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	if err := newRootCmd(sugar).Execute(); err != nil {
		sugar.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	root := &cobra.Command{
		Use:           "muhashctl",
		Short:         "Maintain a MuHash3072 multiset digest over a file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInitCmd(log))
	root.AddCommand(newUpdateCmd(log, "add", "insert elements into the digest", (*muhash3072.MuHash3072).Add))
	root.AddCommand(newUpdateCmd(log, "remove", "remove elements from the digest", (*muhash3072.MuHash3072).Remove))
	root.AddCommand(newDigestCmd(log))
	return root
}

func newInitCmd(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Write a fresh identity digest snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if err := save(path, muhash3072.NewMuHash()); err != nil {
				return err
			}
			log.Infow("initialized digest", "file", path)
			return nil
		},
	}
}

// newUpdateCmd builds the "add"/"remove" subcommands; both load the
// persisted digest, apply op to every element supplied on the command
// line (or read one per line from stdin if the sole element is "-"),
// then save the result back to the same file.
func newUpdateCmd(log *zap.SugaredLogger, name, short string, op func(*muhash3072.MuHash3072, []byte)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file> <element>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			elements, err := gatherElements(args[1:])
			if err != nil {
				return err
			}

			mu, err := load(path)
			if err != nil {
				return err
			}
			for _, e := range elements {
				op(mu, e)
			}
			if err := save(path, mu); err != nil {
				return err
			}
			log.Infow("applied update", "file", path, "op", name, "count", len(elements))
			return nil
		},
	}
}

func newDigestCmd(log *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "digest <file>",
		Short: "Print the current digest as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mu, err := load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mu.Finalize())
			return nil
		},
	}
}

// gatherElements returns elements literally, except that a lone "-"
// means "read newline-delimited elements from stdin instead".
func gatherElements(args []string) ([][]byte, error) {
	if len(args) == 1 && args[0] == "-" {
		var elements [][]byte
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Bytes()
			elements = append(elements, append([]byte(nil), line...))
		}
		if err := scanner.Err(); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "muhashctl: reading elements from stdin")
		}
		return elements, nil
	}
	elements := make([][]byte, len(args))
	for i, a := range args {
		elements[i] = []byte(a)
	}
	return elements, nil
}

func load(path string) (*muhash3072.MuHash3072, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "muhashctl: reading %s", path)
	}
	mu, err := muhash3072.DeserializeMuHash(data)
	if err != nil {
		return nil, errors.Wrapf(err, "muhashctl: parsing %s", path)
	}
	return mu, nil
}

func save(path string, mu *muhash3072.MuHash3072) error {
	serialized := mu.Serialize()
	if err := os.WriteFile(path, serialized[:], 0o600); err != nil {
		return errors.Wrapf(err, "muhashctl: writing %s", path)
	}
	return nil
}
