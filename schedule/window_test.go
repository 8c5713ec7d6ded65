package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocampo/deskplan/civil"
	"github.com/ocampo/deskplan/equipment"
	"github.com/ocampo/deskplan/schedule"
)

func item(id int64, date string) equipment.Equipment {
	return equipment.Equipment{
		ID:     id,
		Name:   "team",
		Date:   civil.Date(date),
		Status: equipment.StatusPresent,
		People: 1,
	}
}

func TestWindow_Partitions(t *testing.T) {
	ref := civil.Date("2024-06-15")
	items := []equipment.Equipment{
		item(1, "2024-06-14"),
		item(2, "2024-06-16"),
		item(3, "2024-06-15"),
	}

	res := schedule.Window(items, ref, 10)

	require.Len(t, res.Past, 1)
	require.Equal(t, int64(1), res.Past[0].Equipment.ID)
	require.Equal(t, 1, res.Past[0].Offset)
	require.Equal(t, "1 day ago", res.Past[0].Label)

	require.Len(t, res.Future, 1)
	require.Equal(t, int64(2), res.Future[0].Equipment.ID)
	require.Equal(t, 1, res.Future[0].Offset)
	require.Equal(t, "tomorrow", res.Future[0].Label)

	require.Len(t, res.Present, 1)
	require.Equal(t, int64(3), res.Present[0].Equipment.ID)
	require.Equal(t, 0, res.Present[0].Offset)
	require.Empty(t, res.Present[0].Label)
}

func TestWindow_Labels(t *testing.T) {
	ref := civil.Date("2024-06-15")
	items := []equipment.Equipment{
		item(1, "2024-06-12"),
		item(2, "2024-06-18"),
	}

	res := schedule.Window(items, ref, 10)

	require.Len(t, res.Past, 1)
	require.Equal(t, 3, res.Past[0].Offset)
	require.Equal(t, "3 days ago", res.Past[0].Label)

	require.Len(t, res.Future, 1)
	require.Equal(t, 3, res.Future[0].Offset)
	require.Equal(t, "in 3 days", res.Future[0].Label)
}

func TestWindow_SpanBoundary(t *testing.T) {
	ref := civil.Date("2024-06-15")
	items := []equipment.Equipment{
		item(1, "2024-06-05"), // 10 back, included
		item(2, "2024-06-04"), // 11 back, excluded
		item(3, "2024-06-25"), // 10 ahead, included
		item(4, "2024-06-26"), // 11 ahead, excluded
	}

	res := schedule.Window(items, ref, 10)

	require.Len(t, res.Past, 1)
	require.Equal(t, int64(1), res.Past[0].Equipment.ID)
	require.Equal(t, 10, res.Past[0].Offset)

	require.Len(t, res.Future, 1)
	require.Equal(t, int64(3), res.Future[0].Equipment.ID)
	require.Equal(t, 10, res.Future[0].Offset)
	require.Empty(t, res.Present)
}

func TestWindow_DuplicatesKept(t *testing.T) {
	ref := civil.Date("2024-06-15")
	items := []equipment.Equipment{
		item(1, "2024-06-14"),
		item(2, "2024-06-14"),
	}

	res := schedule.Window(items, ref, 10)
	require.Len(t, res.Past, 2)
}

func TestWindow_DefaultSpan(t *testing.T) {
	ref := civil.Date("2024-06-15")
	items := []equipment.Equipment{item(1, "2024-06-05")}

	res := schedule.Window(items, ref, 0)
	require.Len(t, res.Past, 1)
}
