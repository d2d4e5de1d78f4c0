// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// output writes v as JSON if the JSON format is selected, or the given
// formatted text otherwise.
//
func (a *app) output(cmd *cobra.Command, v interface{}, format string, args ...interface{}) error {
	w := cmd.OutOrStdout()
	if a.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "write result")
	}
	_, err := fmt.Fprintf(w, format, args...)
	return errors.Wrap(err, "write result")
}
