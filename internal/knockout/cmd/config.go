// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/knockout/pkg/common"
)

func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved tournament configuration",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			data, err := config.Marshal()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))

			if save, _ := cmd.Flags().GetBool("save"); save {
				if err := common.WriteConfig(data); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\n\x1b[32mSaved to\x1b[0m %s\n", common.ConfigFile)
			}

			return nil
		},
	}

	configFlags(cmd)
	cmd.Flags().Bool("save", false, "Save the configuration as the default")

	return cmd
}
