package github

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// Viewer returns the login of the user the token belongs to.
// It is used to verify the credential before serving.
func (c *Client) Viewer(ctx context.Context) (string, error) {
	var query struct {
		Viewer struct {
			Login string
		}
	}

	startTime := time.Now()
	if err := c.gh.Query(ctx, &query, nil); err != nil {
		return "", errors.Wrap(err, "unable to query GitHub viewer")
	}
	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(startTime),
		"login":   query.Viewer.Login,
	}).Debug("GitHub viewer query succeeded")

	return query.Viewer.Login, nil
}
