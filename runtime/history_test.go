package runtime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"stream-lab/domain"
)

func TestHistory_Record_Less_Than_Capacity(t *testing.T) {
	req := require.New(t)
	history := NewHistoryLog(100)

	// When recording fewer messages than the capacity
	for i := 0; i < 5; i++ {
		history.Record(domain.Message{ID: fmt.Sprintf("msg_%d", i)})
	}

	// Then all of them are kept, oldest first
	recent := history.Recent()
	req.Len(recent, 5)
	req.Equal("msg_0", recent[0].ID)
	req.Equal("msg_4", recent[4].ID)
}

func TestHistory_Record_Past_Capacity_Keeps_Most_Recent(t *testing.T) {
	req := require.New(t)
	history := NewHistoryLog(100)

	// When recording 150 messages into a capacity of 100
	for i := 0; i < 150; i++ {
		history.Record(domain.Message{ID: fmt.Sprintf("msg_%d", i)})
	}

	// Then only the last 100 remain, still oldest first
	recent := history.Recent()
	req.Len(recent, 100)
	req.Equal("msg_50", recent[0].ID)
	req.Equal("msg_149", recent[99].ID)
}

func TestHistory_Recent_Returns_A_Snapshot(t *testing.T) {
	req := require.New(t)
	history := NewHistoryLog(10)
	history.Record(domain.Message{ID: "msg_0"})

	// Given a snapshot taken before a later record
	snapshot := history.Recent()

	// When another message is recorded
	history.Record(domain.Message{ID: "msg_1"})

	// Then the snapshot is unchanged
	req.Len(snapshot, 1)
	req.Equal(2, history.Len())
}

func TestHistory_Empty(t *testing.T) {
	req := require.New(t)
	history := NewHistoryLog(100)

	req.Empty(history.Recent())
	req.Zero(history.Len())
}
