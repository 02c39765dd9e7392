package format

import (
	"strconv"
	"time"

	"github.com/cristianoliveira/station-menu/internal/menu"
	"github.com/cristianoliveira/station-menu/internal/station"
	"github.com/cristianoliveira/station-menu/internal/storage/sqlite"
)

// StationsTable lists favorite stations.
func StationsTable(stations []station.Station) Table {
	t := Table{Columns: []Column{
		{Name: "UUID", Key: "uuid", Width: 36},
		{Name: "Name", Key: "name", Width: 28},
		{Name: "Country", Key: "countrycode"},
		{Name: "Codec", Key: "codec"},
		{Name: "Bitrate", Key: "bitrate", Alignment: "right"},
		{Name: "URL", Key: "url", Width: 48},
	}}
	for _, st := range stations {
		t.Rows = append(t.Rows, []string{
			st.UUID, st.Name, st.CountryCode, st.Codec, strconv.Itoa(st.Bitrate), st.StreamURL,
		})
	}
	return t
}

// ActionsTable lists the actions of an invocation in presentation order.
func ActionsTable(inv *menu.Invocation) Table {
	t := Table{Columns: []Column{
		{Name: "Action", Key: "action"},
		{Name: "Label", Key: "label"},
	}}
	for _, id := range inv.Actions() {
		label, _ := inv.Label(id)
		t.Rows = append(t.Rows, []string{id.String(), label})
	}
	return t
}

// AlarmsTable lists alarms.
func AlarmsTable(alarms []sqlite.Alarm) Table {
	t := Table{Columns: []Column{
		{Name: "ID", Key: "id", Width: 36},
		{Name: "Time", Key: "time"},
		{Name: "Station", Key: "station_uuid", Width: 36},
		{Name: "Enabled", Key: "enabled"},
	}}
	for _, a := range alarms {
		t.Rows = append(t.Rows, []string{a.ID, a.Clock(), a.StationUUID, strconv.FormatBool(a.Enabled)})
	}
	return t
}

// HistoryTable lists plays, most recent first.
func HistoryTable(plays []sqlite.Play) Table {
	t := Table{Columns: []Column{
		{Name: "Played at", Key: "played_at"},
		{Name: "Player", Key: "player"},
		{Name: "Station", Key: "station_uuid", Width: 36},
	}}
	for _, p := range plays {
		t.Rows = append(t.Rows, []string{p.PlayedAt.Local().Format(time.DateTime), p.Player, p.StationUUID})
	}
	return t
}
