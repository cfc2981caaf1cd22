package app

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/natefaubion/haskellweekly/pkg/model"
)

// episodeTable formate la liste des épisodes (mode -list) en tableau lisible.
func episodeTable(episodes []model.Episode) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Date", "Titre", "Durée", "Transcript"})

	for _, e := range episodes {
		hasVTT := ""
		if e.HasCaptions() {
			hasVTT = "oui"
		}
		tw.AppendRow(table.Row{
			strconv.Itoa(e.Number),
			e.Date.Format("2006-01-02"),
			e.Title,
			e.Duration.TimestampHHMMSS(),
			hasVTT,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
