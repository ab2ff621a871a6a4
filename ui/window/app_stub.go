//go:build !ebiten

package window

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/driver"
	"github.com/sheikhrachel/go-life/utils"
)

// Run reports that the window front-end needs the ebiten build tag.
func Run(*driver.Session, utils.Config, int) error {
	return errors.New("[window.Run] the window front-end requires building with the 'ebiten' tag")
}
