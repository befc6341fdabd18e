package cmd

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/manpen/pace26io/version"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewVersionCmd() *cobra.Command {
	var (
		shortPrint bool
		output     string
	)

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `pace26 version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "yaml" && output != "json" {
				return errors.New("output format must be yaml or json")
			}
			if shortPrint {
				fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
				return nil
			}
			return printVersion(cmd.OutOrStdout(), output)
		},
	}
	versionCmd.Flags().BoolVar(&shortPrint, "short", false, "If true, print just the version number.")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "choose `yaml` or `json` format to print version info")
	return versionCmd
}

func printVersion(w io.Writer, format string) error {
	info := version.Get()

	var (
		marshalled []byte
		err        error
	)
	switch format {
	case "yaml":
		marshalled, err = yaml.Marshal(&info)
		if err != nil {
			return errors.Wrap(err, "fail to marshal yaml")
		}
	case "json":
		marshalled, err = json.MarshalIndent(&info, "", "  ")
		if err != nil {
			return errors.Wrap(err, "fail to marshal json")
		}
		marshalled = append(marshalled, '\n')
	}
	_, err = w.Write(marshalled)
	return err
}
