package cli

import (
	"fmt"

	"github.com/arthur-debert/graftree/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(d deps, global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := global.workDir()
			if err != nil {
				return err
			}
			loaded, err := d.loadSettings(*global, dir)
			if err != nil {
				return err
			}

			out, err := config.Dump(loaded.Settings)
			if err != nil {
				return fmt.Errorf(MsgErrDumpConfig, err)
			}
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprint(w, out); err != nil {
				return err
			}

			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			for _, layer := range loaded.Layers {
				status := MsgLayerMissing
				switch {
				case layer.Err != nil:
					status = fmt.Sprintf(MsgLayerInvalid, layer.Err)
				case layer.Loaded:
					status = MsgLayerLoaded
				}
				if _, err := fmt.Fprintf(w, MsgConfigLayer, layer.Scope, layer.Path, status); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
