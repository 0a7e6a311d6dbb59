package server_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octogate/pkg/controller/server"
)

func TestCallerFromContext(t *testing.T) {
	t.Run("empty without authentication", func(t *testing.T) {
		gt.V(t, server.CallerFromContext(context.Background())).Equal("")
	})
}
