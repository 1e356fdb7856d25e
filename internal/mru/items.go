package mru

import (
	"sort"
	"strconv"
	"strings"

	"github.com/systmms/officemru/pkg/store"
)

// Item is one parsed MRU entry.
type Item struct {
	Index int
	Path  string
}

// Items reads and parses the MRU entries stored under mruPath.
//
// Entries live in values named "Item N" whose data carries a bracketed flag
// prefix terminated by '*', for example
// "[F00000000][T01ED6D7E58D00000][O00000000]*C:\path\to\file.dotx".
// "Item Metadata N" values are companions to their items and are skipped.
// Items are returned sorted by index; malformed names and entries without a
// usable path are dropped.
func Items(st store.Store, mruPath string) []Item {
	var items []Item
	for _, v := range st.Values(mruPath) {
		if strings.HasPrefix(v.Name, "Item Metadata ") {
			continue
		}
		if !strings.HasPrefix(v.Name, "Item ") {
			continue
		}
		index, err := strconv.Atoi(strings.TrimPrefix(v.Name, "Item "))
		if err != nil {
			continue
		}
		path := ExtractPath(v.Data)
		if path == "" {
			continue
		}
		items = append(items, Item{Index: index, Path: path})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Index < items[j].Index })
	return items
}

// ExtractPath returns the file path embedded in a raw MRU value: the text
// after the last '*', trimmed. Values without a '*' are returned trimmed
// as-is.
func ExtractPath(raw string) string {
	if i := strings.LastIndex(raw, "*"); i >= 0 {
		return strings.TrimSpace(raw[i+1:])
	}
	return strings.TrimSpace(raw)
}
