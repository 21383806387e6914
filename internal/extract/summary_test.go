package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport_Summaries(t *testing.T) {
	t.Parallel()

	src := newSource()
	e, err := NewExtractor(src, WithSkip("rm"), WithKeepGoing(true))
	require.NoError(t, err)

	report, err := e.Run(context.Background(), []string{"notes add", "rm", "bad"})
	require.Error(t, err)

	summaries := report.Summaries()
	require.Len(t, summaries, 3)

	require.Equal(t, Summary{
		Command: "notes add",
		Status:  StatusOK,
		ID:      "notesAdd",
		Options: 2,
		Hidden:  1,
	}, summaries[0])

	require.Equal(t, Summary{Command: "rm", Status: StatusSkipped}, summaries[1])

	require.Equal(t, "bad", summaries[2].Command)
	require.Equal(t, StatusFailed, summaries[2].Status)
	require.NotEmpty(t, summaries[2].Error)
}
