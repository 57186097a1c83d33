package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/serene/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "redis", F: func() error {
		order = append(order, "redis")
		return errors.New("already closed")
	}})
	cleanup.CleanUp()
	assert.Equal(t, []string{"redis", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 2)
}
