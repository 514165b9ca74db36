// Copyright 2026 The Relaywire Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/relaywire/hashing/pkg/hashing/algorithms"
)

// Algorithms returns the algorithms subcommand.
func Algorithms() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported digest algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("%-10s %-8s %s\n", "NAME", "ORDINAL", "LENGTH")
			for _, a := range algorithms.All() {
				cmd.Printf("%-10s %-8d %d\n", algorithms.Name(a), int(a), algorithms.Length(a))
			}
			return nil
		},
	}
}
