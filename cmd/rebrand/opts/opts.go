package opts

import (
	"context"
	"os"

	"github.com/walteh/rebrand/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// getwd is swapped out in tests
var getwd = os.Getwd

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
}

// ReadConfig reads the config file named by --config, or the first config file
// found in the working directory. With neither, it returns an empty config for
// flags to fill in. The result is not validated.
func (o *RootOpts) ReadConfig(ctx context.Context) (*config.Config, error) {
	path := o.ConfigFile
	if path == "" {
		wd, err := getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
		found, ok := config.Find(wd)
		if !ok {
			return &config.Config{}, nil
		}
		path = found
	}
	return config.Read(ctx, path)
}
