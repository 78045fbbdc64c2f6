// Package envfile renders a deployment profile as the TypeScript environment
// module imported by the front-end build.
package envfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quyetcv1/coffee-shop/internal/config"
)

const header = "export const environment = "

// Render writes profile to w as
//
//	export const environment = {
//	  "production": false,
//	  ...
//	};
//
// using the same field names as the JSON served to the front-end.
func Render(w io.Writer, profile config.Profile) error {
	body, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	if _, err = fmt.Fprintf(w, "%s%s;\n", header, body); err != nil {
		return fmt.Errorf("error writing environment module: %w", err)
	}

	return nil
}
