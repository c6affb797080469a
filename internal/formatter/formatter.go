// package formatter provides functions to export party data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/luquetti/mis18/internal/models"
	"github.com/luquetti/mis18/internal/shared"
)

// GuestListToCSV converts the guest list to CSV with columns: ID, Name, Group, Table, Confirmed, Comment
func GuestListToCSV(users []models.User, tables []models.Table) ([]byte, error) {
	tableNames := map[string]string{}
	for _, t := range tables {
		tableNames[t.ID] = t.Name
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Group", "Table", "Confirmed", "Comment"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, u := range users {
		table := ""
		if u.TableID != nil {
			table = tableNames[*u.TableID]
		}
		confirmed := "no"
		if u.HasLoggedIn {
			confirmed = "yes"
		}
		record := []string{u.ID, u.Name, u.GroupName, table, confirmed, u.MusicComment}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// SeatingToMarkdown converts the seating chart to Markdown, one section per
// table with its occupancy fraction in the heading
func SeatingToMarkdown(seating []models.TableSeating) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Seating Chart\n\n")

	for _, seat := range seating {
		buf.WriteString(fmt.Sprintf("## %s (%d/%d)\n\n", seat.Table.Name, len(seat.Occupants), seat.Table.Capacity))
		if len(seat.Occupants) == 0 {
			buf.WriteString("_empty_\n\n")
			continue
		}
		for i, u := range seat.Occupants {
			buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, u.Name, u.GroupName))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// PlaylistToCSV converts the suggested playlist to CSV with columns: Title, Artist, Platform, Link, SuggestedBy
func PlaylistToCSV(songs []models.Song, users []models.User) ([]byte, error) {
	guestNames := map[string]string{}
	for _, u := range users {
		guestNames[u.ID] = u.Name
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Platform", "Link", "SuggestedBy"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			song.Title,
			song.Artist,
			string(song.Platform),
			song.LinkURL,
			guestNames[song.SuggestedByUserID],
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// PlaylistToText converts the suggested playlist to plain text format
func PlaylistToText(songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Suggested songs: %d\n\n", len(songs)))
	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, song.Artist, song.Title))
	}

	return buf.Bytes(), nil
}

// ToStatsJSON generates a JSON representation of the organizer dashboard numbers
func ToStatsJSON(stats models.Stats) ([]byte, error) {
	return shared.MarshalJSON(stats, true)
}

// PartyExportResult contains the paths of files created by WritePartyExport
type PartyExportResult struct {
	GuestsFile   string
	SeatingFile  string
	PlaylistFile string
	StatsFile    string
}

// WritePartyExport writes the full organizer export next to baseFilepath.
//
// Creates {base}_guests.csv, {base}_seating.md, {base}_playlist.csv and {base}_stats.json
func WritePartyExport(users []models.User, tables []models.Table, seating []models.TableSeating, songs []models.Song, stats models.Stats, baseFilepath string) (*PartyExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "party"
	}

	guestsCSV, err := GuestListToCSV(users, tables)
	if err != nil {
		return nil, fmt.Errorf("failed to generate guest CSV: %w", err)
	}
	seatingMD, err := SeatingToMarkdown(seating)
	if err != nil {
		return nil, fmt.Errorf("failed to generate seating chart: %w", err)
	}
	playlistCSV, err := PlaylistToCSV(songs, users)
	if err != nil {
		return nil, fmt.Errorf("failed to generate playlist CSV: %w", err)
	}
	statsJSON, err := ToStatsJSON(stats)
	if err != nil {
		return nil, fmt.Errorf("failed to generate stats JSON: %w", err)
	}

	result := &PartyExportResult{
		GuestsFile:   baseFilepath + "_guests.csv",
		SeatingFile:  baseFilepath + "_seating.md",
		PlaylistFile: baseFilepath + "_playlist.csv",
		StatsFile:    baseFilepath + "_stats.json",
	}

	files := []struct {
		path string
		data []byte
	}{
		{result.GuestsFile, guestsCSV},
		{result.SeatingFile, seatingMD},
		{result.PlaylistFile, playlistCSV},
		{result.StatsFile, statsJSON},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.path, err)
		}
	}

	return result, nil
}
