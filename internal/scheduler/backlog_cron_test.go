package scheduler

import (
	"context"
	"testing"

	"github.com/Dias221467/Animal_Rescue/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyCounter struct{}

func (emptyCounter) CountByStatus(context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func TestStartBacklogCron(t *testing.T) {
	c, err := StartBacklogCron("@every 1h", jobs.NewBacklogReporter(emptyCounter{}))
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}

func TestStartBacklogCron_InvalidSpec(t *testing.T) {
	c, err := StartBacklogCron("every now and then", jobs.NewBacklogReporter(emptyCounter{}))
	assert.Error(t, err)
	assert.Nil(t, c)
}
