package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/luquetti/mis18/internal/models"
)

var (
	_ list.Item = menuItem{}
	_ list.Item = tableItem{}
	_ list.Item = wishItem{}
	_ list.Item = songItem{}
)

// menuItem is a top-level section of the party menu.
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) FilterValue() string { return i.title }
func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }

// tableItem wraps [models.TableSeating] to implement [list.Item].
type tableItem struct {
	seat models.TableSeating
}

func (i tableItem) FilterValue() string { return i.seat.Table.Name }
func (i tableItem) Title() string {
	return fmt.Sprintf("%s (%d/%d)", i.seat.Table.Name, len(i.seat.Occupants), i.seat.Table.Capacity)
}
func (i tableItem) Description() string {
	if len(i.seat.Occupants) == 0 {
		return "empty"
	}
	desc := ""
	for n, u := range i.seat.Occupants {
		if n > 0 {
			desc += ", "
		}
		desc += u.FirstName()
	}
	return desc
}

// wishItem wraps [models.WishlistItem] to implement [list.Item].
type wishItem struct {
	item  models.WishlistItem
	names map[string]string
}

func (i wishItem) FilterValue() string { return i.item.Name }
func (i wishItem) Title() string       { return i.item.Name }
func (i wishItem) Description() string {
	if !i.item.IsTaken {
		return "available"
	}
	if name, ok := i.names[i.item.TakenByUserID]; ok {
		return fmt.Sprintf("taken by %s", name)
	}
	return "taken"
}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := i.song.Artist
	if i.song.Platform != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Platform)
	}
	return desc
}
